package deltahtml

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger 返回包级日志记录器，默认不输出
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger 设置自定义日志记录器，传入 nil 恢复为静默
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("deltahtml"))
}
