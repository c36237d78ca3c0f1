package types

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Op 表示一个 delta 操作
type Op struct {
	Insert     any            `json:"insert"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// BlockKind 块级容器类型
type BlockKind int

const (
	// Ordered 有序列表 <ol>
	Ordered BlockKind = iota
	// Bullet 无序列表 <ul>
	Bullet
	// CodeBlock 代码块 <pre>
	CodeBlock
)

// Tag returns the container tag name for the block kind.
func (k BlockKind) Tag() string {
	switch k {
	case Ordered:
		return "ol"
	case Bullet:
		return "ul"
	case CodeBlock:
		return "pre"
	default:
		return ""
	}
}

// String returns the editor name of the block kind.
func (k BlockKind) String() string {
	switch k {
	case Ordered:
		return "ordered"
	case Bullet:
		return "bullet"
	case CodeBlock:
		return "code-block"
	default:
		return "unknown"
	}
}

// ParseBlockKind 将编辑器中的名称映射为 BlockKind
func ParseBlockKind(name string) (BlockKind, bool) {
	switch name {
	case "ordered":
		return Ordered, true
	case "bullet":
		return Bullet, true
	case "code-block":
		return CodeBlock, true
	}
	return 0, false
}

// Recognized attribute keys.
const (
	KeyAlign      = "align"
	KeyAlt        = "alt"
	KeyBackground = "background"
	KeyBold       = "bold"
	KeyCode       = "code"
	KeyCodeBlock  = "code-block"
	KeyColor      = "color"
	KeyFont       = "font"
	KeyHeader     = "header"
	KeyIndent     = "indent"
	KeyItalic     = "italic"
	KeyLink       = "link"
	KeyList       = "list"
	KeySize       = "size"
	KeyStrike     = "strike"
	KeyUnderline  = "underline"
)

// Attributes 是在边界处解析后的属性集合，所有字段均为可选
type Attributes struct {
	// Present 原始属性映射非 nil，空映射同样算作存在
	Present bool
	// Keys 已识别的键，按字典序升序排列
	Keys []string

	// block
	HasList   bool // list 键存在且为字符串，可能为空
	List      string
	Indent    uint64
	Align     string
	Header    int
	CodeBlock bool

	// inline
	Link       string
	Bold       bool
	Italic     bool
	Underline  bool
	Strike     bool
	Code       bool
	Color      string
	Background string
	Size       string
	Font       string

	// embed
	Alt string
}

// Has reports whether key was recognized while parsing.
func (a Attributes) Has(key string) bool {
	i := sort.SearchStrings(a.Keys, key)
	return i < len(a.Keys) && a.Keys[i] == key
}

// Parse 将动态属性映射解析为 Attributes
//
// 未识别的键被忽略；布尔型格式键仅在值为 true 时生效，字符串型键仅在非空时生效，
// list 与 code-block 例外：只要键存在就进入块级分支。
// 数值可以是 float64、int、json.Number 或数字字符串。
func Parse(raw map[string]any) Attributes {
	var a Attributes
	if raw == nil {
		return a
	}
	a.Present = true

	for key, value := range raw {
		recognized := true
		switch key {
		case KeyList:
			a.List, a.HasList = value.(string)
			recognized = a.HasList
		case KeyIndent:
			n, ok := uintValue(value)
			a.Indent = n
			recognized = ok
		case KeyAlign:
			a.Align = stringValue(value)
			recognized = a.Align != ""
		case KeyHeader:
			n, ok := uintValue(value)
			if ok && n > 0 && n <= math.MaxInt32 {
				a.Header = int(n)
			}
			recognized = a.Header > 0
		case KeyCodeBlock:
			// any value marks a code line, the editor sends true or a language name
			a.CodeBlock = true
		case KeyLink:
			a.Link = stringValue(value)
			recognized = a.Link != ""
		case KeyBold:
			a.Bold = boolValue(value)
			recognized = a.Bold
		case KeyItalic:
			a.Italic = boolValue(value)
			recognized = a.Italic
		case KeyUnderline:
			a.Underline = boolValue(value)
			recognized = a.Underline
		case KeyStrike:
			a.Strike = boolValue(value)
			recognized = a.Strike
		case KeyCode:
			a.Code = boolValue(value)
			recognized = a.Code
		case KeyColor:
			a.Color = stringValue(value)
			recognized = a.Color != ""
		case KeyBackground:
			a.Background = stringValue(value)
			recognized = a.Background != ""
		case KeySize:
			a.Size = stringValue(value)
			recognized = a.Size != ""
		case KeyFont:
			a.Font = stringValue(value)
			recognized = a.Font != ""
		case KeyAlt:
			a.Alt = stringValue(value)
			recognized = a.Alt != ""
		default:
			recognized = false
		}
		if recognized {
			a.Keys = append(a.Keys, key)
		}
	}

	// map 的迭代顺序是随机的，必须显式排序
	sort.Strings(a.Keys)
	return a
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	}
	return ""
}

func boolValue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func uintValue(v any) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n >= math.MaxUint64 || n != math.Trunc(n) {
			return 0, false
		}
		return uint64(n), true
	case float32:
		return uintValue(float64(n))
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint64:
		return n, true
	case json.Number:
		return parseUint(n.String())
	case string:
		return parseUint(n)
	}
	return 0, false
}

func parseUint(s string) (uint64, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// MentionDenotationChar 提及前缀，mention 自身未携带时使用
	MentionDenotationChar string `yaml:"mention_denotation_char"`
	// VideoExtensions 渲染为 <video> 的附件扩展名
	VideoExtensions []string `yaml:"video_extensions"`
	// EscapeAttributes 对 href、src、alt、style 等属性值做 HTML 转义
	EscapeAttributes bool `yaml:"escape_attributes"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		MentionDenotationChar: "@",
		VideoExtensions:       []string{"mp4", "webm", "ogg"},
		EscapeAttributes:      false,
	}
}

// Clone returns a deep copy. A nil config clones the defaults.
func (c *RenderConfig) Clone() *RenderConfig {
	if c == nil {
		return DefaultRenderConfig()
	}
	cp := *c
	cp.VideoExtensions = append([]string(nil), c.VideoExtensions...)
	return &cp
}
