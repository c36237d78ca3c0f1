package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/riverfjs/deltahtml-go"
)

type envKey struct{}

// env is shared between Before, actions and After.
type env struct {
	cfg *Config
	log *zap.Logger
}

func newEnv() *env {
	return &env{cfg: defaultConfig(), log: zap.NewNop()}
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return newEnv()
}

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := envFromContext(ctx)

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	e.cfg = cfg
	e.log = newLogger(cfg.Logging.Level, cmd.Bool("debug"))
	deltahtml.SetLogger(e.log)

	e.log.Debug("Program started", zap.Strings("args", os.Args))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	e := envFromContext(ctx)
	// After runs even when Before failed
	if e.log == nil {
		return nil
	}
	// stderr sync fails on some terminals, nothing to report then
	_ = e.log.Sync()
	return nil
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "delta2html",
		Usage:           "converts rich text editor delta (JSON) to HTML",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose logging to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Converts delta JSON to an HTML fragment",
				ArgsUsage: "SOURCE [DESTINATION]",
				Action:    runConvert,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "validate", Usage: "check that every container tag in the result is closed"},
					&cli.BoolFlag{Name: "text", Usage: "output plain text instead of HTML"},
					&cli.BoolFlag{Name: "escape", Usage: "escape attribute values (href, src, alt, style)"},
				},
			},
			{
				Name:      "dumpconfig",
				Usage:     "Dumps either default or actual configuration (YAML)",
				ArgsUsage: "[DESTINATION]",
				Action:    runDumpConfig,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default configuration"},
				},
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.WithValue(context.Background(), envKey{}, newEnv()), os.Interrupt, syscall.SIGTERM)

	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		os.Exit(1)
	}
}

func runConvert(ctx context.Context, cmd *cli.Command) (err error) {
	e := envFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no SOURCE specified, use '-' for STDIN")
	}
	src := cmd.Args().Get(0)
	dst := cmd.Args().Get(1)

	data, err := readSource(src)
	if err != nil {
		return err
	}
	ops, err := deltahtml.ParseOps(data)
	if err != nil {
		return fmt.Errorf("unable to decode '%s': %w", src, err)
	}

	opts := []deltahtml.Option{
		deltahtml.WithConfig(&e.cfg.Render),
		deltahtml.WithLogger(e.log),
	}
	if cmd.IsSet("escape") {
		opts = append(opts, deltahtml.WithEscapeAttributes(cmd.Bool("escape")))
	}

	var result string
	if cmd.Bool("text") {
		result = deltahtml.PlainText(ops, opts...)
	} else {
		result = deltahtml.Convert(ops, opts...)
		if cmd.Bool("validate") {
			if verr := deltahtml.Validate(result); verr != nil {
				for _, problem := range multierr.Errors(verr) {
					e.log.Warn("Validation problem", zap.Error(problem))
				}
				return fmt.Errorf("result for '%s' is not balanced: %w", src, verr)
			}
		}
	}

	out, closeOut, err := openDestination(dst)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, closeOut())
	}()
	if _, err = io.WriteString(out, result); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	e.log.Info("Converted", zap.String("source", src), zap.Int("ops", len(ops)), zap.Int("bytes", len(result)))
	return nil
}

func runDumpConfig(ctx context.Context, cmd *cli.Command) (err error) {
	e := envFromContext(ctx)

	cfg := e.cfg
	if cmd.Bool("default") {
		cfg = defaultConfig()
	}
	data, err := dumpConfig(cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	out, closeOut, err := openDestination(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, closeOut())
	}()
	_, err = out.Write(data)
	return err
}

func readSource(src string) ([]byte, error) {
	if src == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("unable to read STDIN: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("unable to read source '%s': %w", src, err)
	}
	return data, nil
}

func openDestination(dst string) (io.Writer, func() error, error) {
	if dst == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(dst)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create destination file '%s': %w", dst, err)
	}
	return f, f.Close, nil
}
