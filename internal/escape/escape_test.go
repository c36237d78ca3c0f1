package escape

import "testing"

func TestAttribute(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		value string
		want  string
	}{
		{"empty", Text, "", ""},
		{"plain text", Text, "hello", "hello"},
		{"text entities", Text, `a<b>&"c"`, "a&lt;b&gt;&amp;&quot;c&quot;"},
		{"url untouched", URL, "https://example.com/a?b=c", "https://example.com/a?b=c"},
		{"url ampersand", URL, "https://example.com/?a=1&b=2", "https://example.com/?a=1&amp;b=2"},
		{"url space and quote", URL, `/a b"`, "/a%20b%22"},
		{"url keeps percent escapes", URL, "/a%20b", "/a%20b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Attribute(tt.kind, tt.value); got != tt.want {
				t.Errorf("Attribute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChoose(t *testing.T) {
	if got := Choose(false)(Text, "<"); got != "<" {
		t.Errorf("Choose(false) = %q", got)
	}
	if got := Choose(true)(Text, "<"); got != "&lt;" {
		t.Errorf("Choose(true) = %q", got)
	}
}
