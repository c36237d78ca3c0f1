package inline

import (
	"strings"

	"github.com/riverfjs/deltahtml-go/internal/escape"
	"github.com/riverfjs/deltahtml-go/internal/types"
)

// formatter 一层行内标签
type formatter struct {
	tag  string
	href string // only for <a>
}

func (f formatter) wrap(sb *strings.Builder, inner, style string, esc escape.Func) {
	sb.WriteByte('<')
	sb.WriteString(f.tag)
	if f.tag == "a" {
		href := esc(escape.URL, f.href)
		sb.WriteString(` href="`)
		sb.WriteString(href)
		sb.WriteString(`" rel="noopener noreferrer" target="_blank" title="`)
		sb.WriteString(href)
		sb.WriteByte('"')
	}
	if style != "" {
		sb.WriteString(` style="`)
		sb.WriteString(style)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	sb.WriteString(inner)
	sb.WriteString("</")
	sb.WriteString(f.tag)
	sb.WriteByte('>')
}

// Compose 将文本与行内属性组合为嵌套的 HTML 标签
//
// 属性键按字典序扫描：第一个格式化器包裹原始文本（最内层），
// 最后一个成为最外层。累积的 style 只挂在最外层标签上。
func Compose(text string, attrs types.Attributes, esc escape.Func) string {
	if !attrs.Present || len(attrs.Keys) == 0 {
		return text
	}
	if esc == nil {
		esc = escape.None
	}

	var (
		formatters []formatter
		style      strings.Builder
	)
	for _, key := range attrs.Keys {
		switch key {
		case types.KeyBold:
			formatters = append(formatters, formatter{tag: "strong"})
		case types.KeyCode:
			formatters = append(formatters, formatter{tag: "code"})
		case types.KeyItalic:
			formatters = append(formatters, formatter{tag: "em"})
		case types.KeyLink:
			formatters = append(formatters, formatter{tag: "a", href: attrs.Link})
		case types.KeyStrike:
			formatters = append(formatters, formatter{tag: "s"})
		case types.KeyUnderline:
			formatters = append(formatters, formatter{tag: "u"})
		case types.KeyBackground:
			writeStyle(&style, "background-color", attrs.Background, esc)
		case types.KeyColor:
			writeStyle(&style, "color", attrs.Color, esc)
		case types.KeyFont:
			writeStyle(&style, "font-family", attrs.Font, esc)
		case types.KeySize:
			writeStyle(&style, "font-size", attrs.Size, esc)
		}
	}

	styleStr := style.String()
	if len(formatters) == 0 {
		if styleStr == "" {
			return text
		}
		formatters = append(formatters, formatter{tag: "span"})
	}

	out := text
	last := len(formatters) - 1
	for i, f := range formatters {
		var sb strings.Builder
		if i == last {
			f.wrap(&sb, out, styleStr, esc)
		} else {
			f.wrap(&sb, out, "", esc)
		}
		out = sb.String()
	}
	return out
}

func writeStyle(sb *strings.Builder, property, value string, esc escape.Func) {
	sb.WriteString(property)
	sb.WriteString(": ")
	sb.WriteString(esc(escape.Text, value))
	sb.WriteString("; ")
}
