package escape

import (
	"github.com/yuin/goldmark/util"
)

// Func 对写入 HTML 属性的值进行转换
type Func func(kind Kind, value string) string

// Kind 区分属性值的用途
type Kind int

const (
	// Text 普通属性文本（alt、title、data-*）
	Text Kind = iota
	// URL 链接或资源地址（href、src）
	URL
)

// None 原样返回，保持编辑器原始输出
func None(_ Kind, value string) string {
	return value
}

// Attribute 使用 goldmark 的转义规则处理属性值
//
// URL 先做百分号编码（保留已有的 %XX），再做 HTML 实体转义。
func Attribute(kind Kind, value string) string {
	if value == "" {
		return value
	}
	b := []byte(value)
	if kind == URL {
		b = util.URLEscape(b, false)
	}
	return string(util.EscapeHTML(b))
}

// Choose returns Attribute when enabled, None otherwise.
func Choose(enabled bool) Func {
	if enabled {
		return Attribute
	}
	return None
}
