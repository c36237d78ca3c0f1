package deltahtml

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/riverfjs/deltahtml-go/internal/converter"
)

// ErrInvalidDelta 输入不是 delta 操作数组，也不是 {"ops": [...]} 文档
var ErrInvalidDelta = errors.New("invalid delta payload")

// Convert 将 delta 操作序列转换为 HTML 片段
//
// 转换是尽力而为的：无法识别的属性组合不会导致失败，只是不输出对应的包装标签。
func Convert(ops []Op, opts ...Option) string {
	options := applyOptions(opts...)
	return converter.Run(ops, options.Config, options.Logger)
}

// ConvertJSON 解析 JSON 格式的 delta 后转换为 HTML
func ConvertJSON(data []byte, opts ...Option) (string, error) {
	ops, err := ParseOps(data)
	if err != nil {
		return "", err
	}
	return Convert(ops, opts...), nil
}

// ParseOps 解析 `[{"insert": ...}]` 或 `{"ops": [...]}`
//
// 数字以 json.Number 保留，indent、header 不会经过浮点数。
func ParseOps(data []byte) ([]Op, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidDelta)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var ops []Op
	switch trimmed[0] {
	case '[':
		if err := dec.Decode(&ops); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDelta, err)
		}
	case '{':
		var doc struct {
			Ops []Op `json:"ops"`
		}
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDelta, err)
		}
		if doc.Ops == nil {
			return nil, fmt.Errorf("%w: missing ops", ErrInvalidDelta)
		}
		ops = doc.Ops
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidDelta, trimmed[0])
	}
	return ops, nil
}
