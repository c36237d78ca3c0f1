// Package block tracks the open list / code container while a delta is
// rendered line by line, and produces the tag deltas needed to move between
// block kinds and indent levels.
package block

import (
	"strconv"
	"strings"

	"github.com/riverfjs/deltahtml-go/internal/types"
)

// State 块状态机，每次转换创建一个，不可跨转换共享
type State struct {
	kind   types.BlockKind
	open   bool
	indent uint64
	// indents of the containers currently open, outermost first
	levels []uint64
}

// New creates an empty state machine.
func New() *State {
	return &State{levels: make([]uint64, 0, 4)}
}

// Current returns the open block kind and its indent.
func (s *State) Current() (kind types.BlockKind, indent uint64, ok bool) {
	return s.kind, s.indent, s.open
}

// Depth returns how many containers are open.
func (s *State) Depth() int {
	return len(s.levels)
}

// Open 处理一行块级内容，返回需要追加到输出的 HTML 片段
//
// 代码块忽略 indent 与 align。
func (s *State) Open(kind types.BlockKind, indent uint64, align, content string) string {
	if kind == types.CodeBlock {
		indent, align = 0, ""
	}

	var sb strings.Builder
	switch {
	case !s.open:
		// a new block
		writeOpen(&sb, kind)
		s.levels = append(s.levels, indent)
	case s.kind == kind && indent == s.indent:
		// same block, just append the item
	case s.kind != kind:
		// close every container of the previous kind, nested ones included
		s.closeAll(&sb)
		writeOpen(&sb, kind)
		s.levels = append(s.levels, indent)
	case indent > s.indent:
		// nested container follows the previous <li> as a sibling
		writeOpen(&sb, kind)
		s.levels = append(s.levels, indent)
	default:
		// shallower: close containers opened deeper than the target, keep the base
		for len(s.levels) > 1 && s.levels[len(s.levels)-1] > indent {
			writeClose(&sb, s.kind)
			s.levels = s.levels[:len(s.levels)-1]
		}
	}

	writeItem(&sb, kind, indent, align, content)
	s.kind = kind
	s.indent = indent
	s.open = true
	return sb.String()
}

// Close 关闭当前所有打开的容器；没有打开的块时返回空字符串
func (s *State) Close() string {
	if !s.open {
		return ""
	}
	var sb strings.Builder
	s.closeAll(&sb)
	return sb.String()
}

func (s *State) closeAll(sb *strings.Builder) {
	for range s.levels {
		writeClose(sb, s.kind)
	}
	s.levels = s.levels[:0]
	s.open = false
}

func writeOpen(sb *strings.Builder, kind types.BlockKind) {
	switch kind {
	case types.Ordered, types.Bullet:
		sb.WriteString("<" + kind.Tag() + ">")
	case types.CodeBlock:
		sb.WriteString(`<pre class="ql-syntax" spellcheck="false">`)
	}
}

func writeClose(sb *strings.Builder, kind types.BlockKind) {
	sb.WriteString("</" + kind.Tag() + ">")
}

func writeItem(sb *strings.Builder, kind types.BlockKind, indent uint64, align, content string) {
	if kind == types.CodeBlock {
		sb.WriteString(content)
		sb.WriteByte('\n')
		return
	}

	classes := classList(indent, align)
	if classes == "" {
		sb.WriteString("<li>")
	} else {
		sb.WriteString(`<li class="` + classes + `">`)
	}
	sb.WriteString(content)
	sb.WriteString("</li>")
}

// classList 只包含非默认的部分，都为默认时返回空字符串
func classList(indent uint64, align string) string {
	var classes []string
	if indent > 0 {
		classes = append(classes, "ql-indent-"+strconv.FormatUint(indent, 10))
	}
	if align != "" {
		classes = append(classes, "ql-align-"+align)
	}
	return strings.Join(classes, " ")
}
