package deltahtml

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		ops  []Op
		want string
	}{
		{
			name: "paragraphs",
			ops:  []Op{text("one\n\ntwo & three\n", nil)},
			want: "one\n\ntwo & three",
		},
		{
			name: "list and header",
			ops: []Op{
				text("Title", nil),
				text("\n", attr("header", 1)),
				text("a", attr("bold", true)),
				text("\n", attr("list", "bullet")),
				text("b", nil),
				text("\n", attr("list", "bullet", "indent", 1)),
			},
			want: "Title\na\nb",
		},
		{
			name: "mention",
			ops: []Op{
				{Insert: map[string]any{"mention": map[string]any{"id": "1", "index": "0", "value": "Alan"}}},
				text(" hi\n", nil),
			},
			want: "@Alan hi",
		},
		{
			name: "code block keeps lines",
			ops: []Op{
				text("a := 1", nil),
				text("\n", attr("code-block", true)),
				text("b := 2", nil),
				text("\n", attr("code-block", true)),
			},
			want: "a := 1\nb := 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.ops); got != tt.want {
				t.Errorf("PlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}
