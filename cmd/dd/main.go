package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/dumpdie/internal/adapters/config"
	"github.com/mikey-austin/dumpdie/internal/adapters/decode"
	"github.com/mikey-austin/dumpdie/internal/adapters/fsys"
	"github.com/mikey-austin/dumpdie/internal/adapters/output"
	"github.com/mikey-austin/dumpdie/internal/core"
	"github.com/mikey-austin/dumpdie/internal/logging"
	"github.com/mikey-austin/dumpdie/pkg/dump"
)

type app struct {
	service core.Service
	printer output.Printer
	// summary reports dumps; stdout already carries the dumped text.
	summary output.Printer
	logger  *zap.Logger
}

// env carries the process streams and terminal action so the command tree
// can run in tests.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	term   dump.Terminator
}

type globalFlags struct {
	limit      int
	dumper     string
	configPath string
	logFormat  string
	noColor    bool
	verbose    bool
	quiet      bool
	jsonOut    bool
}

func main() {
	root := newRootCommand(env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		term:   dump.ExitTerminator,
	})
	if err := root.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "dd:", msg)
		}
		os.Exit(core.ExitCode(err))
	}
}

func newRootCommand(e env) *cobra.Command {
	root := &cobra.Command{
		Use:           "dd",
		Short:         "Dump values and die",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var flags globalFlags
	root.PersistentFlags().IntVarP(&flags.limit, "limit", "l", 0, "recursion depth limit (default 100)")
	root.PersistentFlags().StringVarP(&flags.dumper, "dumper", "d", "", "dumper: print_r|var_export|var_dump|structure-printer")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format override (text|json)")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable color")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-essential output")
	root.PersistentFlags().BoolVarP(&flags.jsonOut, "json", "j", false, "output json")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return core.WrapError(core.ExitUsage, "usage", err)
	})

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig(flags.configPath)
		if err != nil {
			return core.WrapError(core.ExitUsage, "load config", err)
		}
		coreCfg, err := resolveConfig(flags, cfg)
		if err != nil {
			return err
		}
		coreCfg.ConfigPath = path

		logger := logging.NewLogger(logConfig(flags, cfg, e.stderr))
		logger.Debug("dd starting",
			zap.String("command", cmd.Name()),
			zap.String("config", path),
			zap.Int("limit", coreCfg.Options.Limit),
			zap.String("dumper", coreCfg.Options.Mode.String()),
			zap.Bool("color", coreCfg.Color),
		)

		dumper := dump.New(dump.Config{
			Writer:     e.stdout,
			Terminator: e.term,
			Color:      coreCfg.Color,
			Defaults:   coreCfg.Options,
		})

		service := core.Service{
			Opener:   fsys.Opener{Stdin: e.stdin},
			Decoders: decode.Registry{},
			Dumper:   dumper,
			Dirs:     fsys.Dirs{},
			Logger:   logger,
			Config:   coreCfg,
		}

		var printer, summary output.Printer
		if flags.jsonOut {
			printer = output.JSONPrinter{Out: e.stdout}
			summary = output.JSONPrinter{Out: e.stderr}
		} else {
			printer = output.HumanPrinter{Out: e.stdout, Color: coreCfg.Color, Quiet: flags.quiet}
			summary = printer
		}

		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{
			service: service,
			printer: printer,
			summary: summary,
			logger:  logger,
		}))
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app := fromContext(cmd); app != nil {
			_ = app.logger.Sync()
		}
	}

	root.AddCommand(dumpCommand())
	root.AddCommand(emptyCommand())
	root.AddCommand(configCommand())
	return root
}

type appKey struct{}

func fromContext(cmd *cobra.Command) *app {
	val := cmd.Context().Value(appKey{})
	if val == nil {
		return nil
	}
	return val.(*app)
}

func loadConfig(path string) (config.Config, string, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		return cfg, path, err
	}
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load()
	return cfg, path, err
}

// resolveConfig layers flags over the config file over the defaults.
func resolveConfig(flags globalFlags, cfg config.Config) (core.Config, error) {
	opts := dump.DefaultOptions()
	if cfg.Limit > 0 {
		opts.Limit = cfg.Limit
	}
	if cfg.Dumper != "" {
		mode, ok := dump.ParseMode(cfg.Dumper)
		if !ok {
			return core.Config{}, &core.CLIError{Code: core.ExitUsage, Msg: fmt.Sprintf("unknown dumper %q in config", cfg.Dumper)}
		}
		opts.Mode = mode
	}
	if flags.limit < 0 {
		return core.Config{}, &core.CLIError{Code: core.ExitUsage, Msg: "limit must be positive"}
	}
	if flags.limit > 0 {
		opts.Limit = flags.limit
	}
	if flags.dumper != "" {
		mode, ok := dump.ParseMode(flags.dumper)
		if !ok {
			return core.Config{}, &core.CLIError{Code: core.ExitUsage, Msg: fmt.Sprintf("unknown dumper %q", flags.dumper)}
		}
		opts.Mode = mode
	}

	return core.Config{
		Options: opts,
		Format:  cfg.Format,
		Color:   cfg.ColorEnabled() && !flags.noColor,
	}, nil
}

func logConfig(flags globalFlags, cfg config.Config, stderr io.Writer) logging.LogConfig {
	level := cfg.Log.Level
	if level == "" {
		level = "warn"
	}
	if flags.verbose {
		level = "debug"
	}
	format := cfg.Log.Format
	if flags.logFormat != "" {
		format = flags.logFormat
	}
	lc := logging.LogConfig{
		Level:     level,
		Format:    format,
		Output:    cfg.Log.Output,
		AddSource: cfg.Log.Source,
		UTC:       cfg.Log.UTC,
		Color:     cfg.Log.Color && !flags.noColor,
	}
	if cfg.Log.Output == "" {
		lc.Writer = stderr
	}
	return lc
}
