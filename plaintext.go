package deltahtml

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy     *bluemonday.Policy
	stripPolicyOnce sync.Once

	// 块结束与 <br> 转为换行，之后再剥离标签
	lineBreakRe = regexp.MustCompile(`(?i)<br\s*/?>|</(?:p|li|h[1-6]|pre)>`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

func policy() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// PlainText 转换后剥离所有标签，得到纯文本预览
//
// 每个块（段落、标题、列表项）占一行，代码块保留原有换行。
func PlainText(ops []Op, opts ...Option) string {
	return HTMLToText(Convert(ops, opts...))
}

// HTMLToText strips markup produced by Convert down to text.
func HTMLToText(fragment string) string {
	marked := lineBreakRe.ReplaceAllStringFunc(fragment, func(m string) string {
		if strings.EqualFold(m, "</pre>") {
			// code lines already end with a newline
			return m
		}
		return m + "\n"
	})
	stripped := policy().Sanitize(marked)
	text := html.UnescapeString(stripped)
	text = strings.ReplaceAll(text, "\ufeff", "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
