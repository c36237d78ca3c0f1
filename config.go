package deltahtml

import (
	"sync"

	"github.com/riverfjs/deltahtml-go/internal/types"
)

// 导出类型别名
type (
	Op           = types.Op
	RenderConfig = types.RenderConfig
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
//
// The returned value is shared, use Clone before modifying it.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
