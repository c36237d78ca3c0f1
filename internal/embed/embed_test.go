package embed

import (
	"testing"

	"github.com/riverfjs/deltahtml-go/internal/escape"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		obj      map[string]any
		alt      string
		want     string
		wantKind string
		wantOK   bool
	}{
		{
			name:     "image",
			obj:      map[string]any{"savvy_image": "a/b.png"},
			alt:      "pic",
			want:     `<img src="a/b.png" alt="pic">`,
			wantKind: KeyImage,
			wantOK:   true,
		},
		{
			name:     "attach image",
			obj:      map[string]any{"savvy_attach": "a/b.webp"},
			want:     `<img src="a/b.webp" alt="">`,
			wantKind: KeyAttach,
			wantOK:   true,
		},
		{
			name:     "attach video",
			obj:      map[string]any{"savvy_attach": "a/b.webm"},
			alt:      "clip",
			want:     `<video src="a/b.webm" alt="clip" controls>`,
			wantKind: KeyAttach,
			wantOK:   true,
		},
		{
			name:     "attach without extension",
			obj:      map[string]any{"savvy_attach": "ogg"},
			want:     `<video src="ogg" alt="" controls>`,
			wantKind: KeyAttach,
			wantOK:   true,
		},
		{
			name:     "mention",
			obj:      map[string]any{"mention": map[string]any{"index": "2", "id": "u1", "value": "Bob"}},
			want:     `<span class="mention" data-index="2" data-denotation-char="@" data-id="u1" data-value="Bob">&#xFEFF;<span contenteditable="false"><span class="ql-mention-denotation-char">@</span>Bob</span>&#xFEFF;</span>`,
			wantKind: KeyMention,
			wantOK:   true,
		},
		{
			name:     "mention with missing fields",
			obj:      map[string]any{"mention": map[string]any{"value": 5}},
			want:     `<span class="mention" data-index="" data-denotation-char="@" data-id="" data-value="">&#xFEFF;<span contenteditable="false"><span class="ql-mention-denotation-char">@</span></span>&#xFEFF;</span>`,
			wantKind: KeyMention,
			wantOK:   true,
		},
		{
			name: "unknown",
			obj:  map[string]any{"video": "x.mp4"},
		},
		{
			name: "wrong value type",
			obj:  map[string]any{"savvy_image": 42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind, ok := Render(tt.obj, tt.alt, Options{})
			if ok != tt.wantOK || kind != tt.wantKind {
				t.Fatalf("Render() kind, ok = %q, %v, want %q, %v", kind, ok, tt.wantKind, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Escape(t *testing.T) {
	got, _, _ := Render(map[string]any{"savvy_image": "a b.png"}, `"x"`, Options{Escape: escape.Attribute})
	want := `<img src="a%20b.png" alt="&quot;x&quot;">`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestIsVideo(t *testing.T) {
	exts := []string{"mp4"}
	if !IsVideo("x.y.mp4", exts) {
		t.Error("IsVideo(x.y.mp4) = false")
	}
	if IsVideo("x.MP4", exts) {
		t.Error("IsVideo is case sensitive, x.MP4 should not match")
	}
	if IsVideo("mp4.png", exts) {
		t.Error("IsVideo(mp4.png) = true")
	}
}
