package inline

import (
	"testing"

	"github.com/riverfjs/deltahtml-go/internal/escape"
	"github.com/riverfjs/deltahtml-go/internal/types"
)

// TestCompose 测试行内格式的嵌套顺序与 style 位置
func TestCompose(t *testing.T) {
	const a = `rel="noopener noreferrer" target="_blank"`
	tests := []struct {
		name  string
		attrs map[string]any
		want  string
	}{
		{
			name: "no attributes",
			want: "text",
		},
		{
			name:  "empty attributes",
			attrs: map[string]any{},
			want:  "text",
		},
		{
			name:  "only unknown keys",
			attrs: map[string]any{"script": "super", "alt": "x"},
			want:  "text",
		},
		{
			name:  "bold",
			attrs: map[string]any{"bold": true},
			want:  "<strong>text</strong>",
		},
		{
			name:  "false flag is not a format",
			attrs: map[string]any{"bold": false, "italic": true},
			want:  "<em>text</em>",
		},
		{
			name:  "alphabetical nesting",
			attrs: map[string]any{"underline": true, "strike": true, "italic": true, "bold": true, "link": "u"},
			want:  `<u><s><a href="u" ` + a + ` title="u"><em><strong>text</strong></em></a></s></u>`,
		},
		{
			name:  "code inside link",
			attrs: map[string]any{"link": "u", "code": true},
			want:  `<a href="u" ` + a + ` title="u"><code>text</code></a>`,
		},
		{
			name:  "style goes on outermost only",
			attrs: map[string]any{"bold": true, "underline": true, "color": "red"},
			want:  `<u style="color: red; "><strong>text</strong></u>`,
		},
		{
			name:  "style on link after title",
			attrs: map[string]any{"link": "u", "background": "#fff"},
			want:  `<a href="u" ` + a + ` title="u" style="background-color: #fff; ">text</a>`,
		},
		{
			name:  "implicit span",
			attrs: map[string]any{"color": "red", "background": "blue", "size": "12px", "font": "serif"},
			want:  `<span style="background-color: blue; color: red; font-family: serif; font-size: 12px; ">text</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose("text", types.Parse(tt.attrs), nil)
			if got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestCompose_Deterministic map 迭代顺序不影响结果
func TestCompose_Deterministic(t *testing.T) {
	attrs := map[string]any{"underline": true, "strike": true, "italic": true, "bold": true, "link": "x", "color": "c", "code": true}
	first := Compose("t", types.Parse(attrs), escape.None)
	for i := 0; i < 50; i++ {
		if got := Compose("t", types.Parse(attrs), escape.None); got != first {
			t.Fatalf("Compose() run %d = %q, want %q", i, got, first)
		}
	}
}

func TestCompose_Escape(t *testing.T) {
	got := Compose("t", types.Parse(map[string]any{"link": `a"b`, "color": `<x>`}), escape.Attribute)
	want := `<a href="a%22b" rel="noopener noreferrer" target="_blank" title="a%22b" style="color: &lt;x&gt;; ">t</a>`
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}
