package embed

import (
	"strings"

	"github.com/riverfjs/deltahtml-go/internal/escape"
)

// Embedded object keys understood by the renderer.
const (
	KeyImage   = "savvy_image"
	KeyAttach  = "savvy_attach"
	KeyMention = "mention"
)

// DefaultVideoExtensions 附件按扩展名识别为视频
var DefaultVideoExtensions = []string{"mp4", "webm", "ogg"}

// Options 嵌入对象渲染参数
type Options struct {
	DenotationChar  string
	VideoExtensions []string
	Escape          escape.Func
}

// Render 将嵌入对象渲染为固定的 HTML 片段
//
// 未知的嵌入对象返回 ok=false，调用方不输出任何内容。
func Render(obj map[string]any, alt string, opts Options) (html string, kind string, ok bool) {
	esc := opts.Escape
	if esc == nil {
		esc = escape.None
	}

	if src, isStr := obj[KeyImage].(string); isStr {
		return image(src, alt, esc), KeyImage, true
	}
	if src, isStr := obj[KeyAttach].(string); isStr {
		exts := opts.VideoExtensions
		if exts == nil {
			exts = DefaultVideoExtensions
		}
		if IsVideo(src, exts) {
			return video(src, alt, esc), KeyAttach, true
		}
		return image(src, alt, esc), KeyAttach, true
	}
	if m, isMap := obj[KeyMention].(map[string]any); isMap {
		return mention(m, opts.DenotationChar, esc), KeyMention, true
	}
	return "", "", false
}

// IsVideo 检查路径最后一个 "." 之后的扩展名
func IsVideo(src string, exts []string) bool {
	ext := src
	if i := strings.LastIndexByte(src, '.'); i >= 0 {
		ext = src[i+1:]
	}
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func image(src, alt string, esc escape.Func) string {
	return `<img src="` + esc(escape.URL, src) + `" alt="` + esc(escape.Text, alt) + `">`
}

// video is left open on purpose, the consuming renderer expects it that way.
func video(src, alt string, esc escape.Func) string {
	return `<video src="` + esc(escape.URL, src) + `" alt="` + esc(escape.Text, alt) + `" controls>`
}

func mention(m map[string]any, denotation string, esc escape.Func) string {
	index := esc(escape.Text, str(m["index"]))
	id := esc(escape.Text, str(m["id"]))
	value := esc(escape.Text, str(m["value"]))
	if c := str(m["denotationChar"]); c != "" {
		denotation = c
	}
	if denotation == "" {
		denotation = "@"
	}
	denotation = esc(escape.Text, denotation)

	var sb strings.Builder
	sb.WriteString(`<span class="mention" data-index="`)
	sb.WriteString(index)
	sb.WriteString(`" data-denotation-char="`)
	sb.WriteString(denotation)
	sb.WriteString(`" data-id="`)
	sb.WriteString(id)
	sb.WriteString(`" data-value="`)
	sb.WriteString(value)
	sb.WriteString(`">&#xFEFF;<span contenteditable="false"><span class="ql-mention-denotation-char">`)
	sb.WriteString(denotation)
	sb.WriteString(`</span>`)
	sb.WriteString(value)
	sb.WriteString(`</span>&#xFEFF;</span>`)
	return sb.String()
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
