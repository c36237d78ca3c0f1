package converter

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/riverfjs/deltahtml-go/internal/block"
	"github.com/riverfjs/deltahtml-go/internal/buffer"
	"github.com/riverfjs/deltahtml-go/internal/embed"
	"github.com/riverfjs/deltahtml-go/internal/escape"
	"github.com/riverfjs/deltahtml-go/internal/inline"
	"github.com/riverfjs/deltahtml-go/internal/types"
)

// emptyLine 空段落/标题的占位内容，列表项不使用
const emptyLine = "<br>"

// Driver 逐个消费 delta 操作，按行产生 HTML
//
// Driver 独占一个块状态机，不能在多个转换之间复用。
type Driver struct {
	reader *buffer.HTMLBuffer // current line
	html   *buffer.HTMLBuffer // output
	blocks *block.State

	esc        escape.Func
	embedOpts  embed.Options
	log        *zap.Logger
	lines      int
	dropped    int
	finished   bool
	finishHTML string
}

// New creates a driver for a single conversion.
func New(config *types.RenderConfig, log *zap.Logger) *Driver {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	esc := escape.Choose(config.EscapeAttributes)
	return &Driver{
		reader: buffer.New(),
		html:   buffer.New(),
		blocks: block.New(),
		esc:    esc,
		embedOpts: embed.Options{
			DenotationChar:  config.MentionDenotationChar,
			VideoExtensions: config.VideoExtensions,
			Escape:          esc,
		},
		log: log,
	}
}

// Run converts ops in one go.
func Run(ops []types.Op, config *types.RenderConfig, log *zap.Logger) string {
	d := New(config, log)
	for i := range ops {
		d.Feed(ops[i])
	}
	return d.Finish()
}

// Feed 处理一个操作
func (d *Driver) Feed(op types.Op) {
	if d.finished {
		d.log.Warn("Operation fed after finish, ignoring")
		return
	}
	switch insert := op.Insert.(type) {
	case string:
		d.onText(insert, op.Attributes)
	case map[string]any:
		d.onEmbed(insert, op.Attributes)
	default:
		d.log.Debug("Unsupported insert ignored", zap.Any("insert", op.Insert))
	}
}

// Finish 刷新未结束的行并关闭所有打开的块，返回完整 HTML
//
// 重复调用返回相同结果。
func (d *Driver) Finish() string {
	if d.finished {
		return d.finishHTML
	}
	if !d.reader.IsEmpty() {
		d.html.Write("<p>" + d.reader.String() + "</p>")
		d.reader.Reset()
	}
	d.html.Write(d.blocks.Close())
	d.finished = true
	d.finishHTML = d.html.String()

	d.log.Debug("Conversion finished",
		zap.Int("lines", d.lines),
		zap.Int("dropped", d.dropped),
		zap.Int("bytes", d.html.Len()))
	return d.finishHTML
}

func (d *Driver) onText(text string, raw map[string]any) {
	attrs := types.Parse(raw)

	var inner strings.Builder
	for _, ch := range text {
		if ch != '\n' {
			inner.WriteRune(ch)
			continue
		}
		// 换行符之前的内容不做行内格式化，属性属于换行本身
		d.reader.Write(inner.String())
		inner.Reset()
		d.html.Write(d.resolveLine(attrs))
		d.reader.Reset()
	}

	if inner.Len() > 0 {
		d.reader.Write(inline.Compose(inner.String(), attrs, d.esc))
	}
}

// resolveLine 根据换行所在操作的块级属性决定整行的包装方式
func (d *Driver) resolveLine(attrs types.Attributes) string {
	d.lines++
	content := d.reader.String()
	tmpContent := content
	if tmpContent == "" {
		tmpContent = emptyLine
	}

	if !attrs.Present {
		return d.blocks.Close() + "<p>" + tmpContent + "</p>"
	}

	switch {
	case attrs.HasList:
		kind, ok := types.ParseBlockKind(attrs.List)
		if !ok {
			d.dropped++
			d.log.Debug("Unknown list type, line dropped", zap.String("list", attrs.List), zap.Int("line", d.lines))
			return ""
		}
		return d.openBlock(kind, attrs, content)
	case attrs.CodeBlock:
		return d.openBlock(types.CodeBlock, attrs, content)
	case attrs.Header > 0:
		h := strconv.Itoa(attrs.Header)
		return d.blocks.Close() + "<h" + h + ">" + tmpContent + "</h" + h + ">"
	case attrs.Align != "":
		return d.blocks.Close() + `<p class="ql-align-` + attrs.Align + `">` + tmpContent + "</p>"
	}

	d.dropped++
	d.log.Debug("Line attributes carry no block format, line dropped",
		zap.Strings("keys", attrs.Keys), zap.Int("line", d.lines))
	return ""
}

func (d *Driver) openBlock(kind types.BlockKind, attrs types.Attributes, content string) string {
	if cur, indent, open := d.blocks.Current(); open && cur != kind && kind != types.CodeBlock && attrs.Indent > indent {
		d.log.Debug("Block kind change to a deeper indent",
			zap.Stringer("from", cur), zap.Uint64("from_indent", indent),
			zap.Stringer("to", kind), zap.Uint64("to_indent", attrs.Indent))
	}
	return d.blocks.Open(kind, attrs.Indent, attrs.Align, content)
}

func (d *Driver) onEmbed(obj map[string]any, raw map[string]any) {
	attrs := types.Parse(raw)
	fragment, kind, ok := embed.Render(obj, attrs.Alt, d.embedOpts)
	if !ok {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		d.log.Debug("Unknown embed ignored", zap.Strings("keys", keys))
		return
	}
	d.log.Debug("Embed rendered", zap.String("kind", kind))
	d.reader.Write(fragment)
}
