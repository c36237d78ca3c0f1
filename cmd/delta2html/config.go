package main

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/deltahtml-go"
)

// Config is the YAML configuration of the command.
type Config struct {
	Render  deltahtml.RenderConfig `yaml:"render"`
	Logging LoggingConfig          `yaml:"logging"`
}

// LoggingConfig selects console log verbosity: none, normal or debug.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

func defaultConfig() *Config {
	return &Config{
		Render:  *deltahtml.DefaultConfig().Clone(),
		Logging: LoggingConfig{Level: "normal"},
	}
}

// loadConfig 读取 YAML 配置，未指定的字段保留默认值
func loadConfig(fname string) (*Config, error) {
	cfg := defaultConfig()
	if fname == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration '%s': %w", fname, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration '%s': %w", fname, err)
	}
	switch cfg.Logging.Level {
	case "none", "normal", "debug":
	default:
		return nil, fmt.Errorf("unknown logging level %q (none, normal, debug)", cfg.Logging.Level)
	}
	return cfg, nil
}

func dumpConfig(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// newLogger 日志只写 stderr，stdout 留给转换结果
func newLogger(level string, debug bool) *zap.Logger {
	if debug {
		level = "debug"
	}
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "normal":
		lvl = zapcore.InfoLevel
	default:
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), lvl)
	return zap.New(core).Named("delta2html")
}
