package deltahtml

import (
	"go.uber.org/zap"
)

// ConvertOptions holds options for delta conversion.
type ConvertOptions struct {
	Config *RenderConfig
	Logger *zap.Logger

	escapeSet bool
	escape    bool
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithEscapeAttributes 覆盖配置中的 EscapeAttributes
func WithEscapeAttributes(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.escapeSet = true
		opts.escape = enable
	}
}

// WithLogger 为单次转换指定日志记录器
func WithLogger(l *zap.Logger) Option {
	return func(opts *ConvertOptions) {
		opts.Logger = l
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
//
// The resulting Config is always a private copy.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	options.Config = options.Config.Clone()
	if options.escapeSet {
		options.Config.EscapeAttributes = options.escape
	}
	if options.Logger == nil {
		options.Logger = Logger()
	}
	return options
}
