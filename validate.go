package deltahtml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

var (
	// ErrUnbalanced reports a container or formatting tag without its pair.
	ErrUnbalanced = errors.New("unbalanced tag")
	// ErrMalformed reports markup the tokenizer could not read.
	ErrMalformed = errors.New("malformed html")
)

// balancedTags 需要成对出现的标签，<video> 按约定不闭合，不在其中
var balancedTags = map[string]bool{
	"ol": true, "ul": true, "li": true, "pre": true, "p": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"strong": true, "em": true, "code": true, "a": true, "s": true, "u": true,
	"span": true,
}

// Validate 检查转换结果中的标签是否按栈的方式正确嵌套
//
// 所有问题都会被收集，返回的错误可用 multierr.Errors 展开，每一项都包装 ErrUnbalanced。
func Validate(fragment string) error {
	var (
		err   error
		stack []string
	)

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if zerr := z.Err(); zerr != nil && !errors.Is(zerr, io.EOF) {
				err = multierr.Append(err, fmt.Errorf("%w: %w", ErrMalformed, zerr))
			}
			for i := len(stack) - 1; i >= 0; i-- {
				err = multierr.Append(err, fmt.Errorf("%w: <%s> never closed", ErrUnbalanced, stack[i]))
			}
			return err

		case html.StartTagToken:
			name, _ := z.TagName()
			if tag := string(name); balancedTags[tag] {
				stack = append(stack, tag)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if !balancedTags[tag] {
				continue
			}
			at := lastIndex(stack, tag)
			if at < 0 {
				err = multierr.Append(err, fmt.Errorf("%w: </%s> without opening tag", ErrUnbalanced, tag))
				continue
			}
			for i := len(stack) - 1; i > at; i-- {
				err = multierr.Append(err, fmt.Errorf("%w: <%s> closed by </%s>", ErrUnbalanced, stack[i], tag))
			}
			stack = stack[:at]
		}
	}
}

func lastIndex(stack []string, tag string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == tag {
			return i
		}
	}
	return -1
}
