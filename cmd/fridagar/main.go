package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/fridagar/internal/config"
	"github.com/username/fridagar/pkg/fridagar"
)

// app carries the state shared by all commands of one invocation
type app struct {
	configPath string
	format     string
	teeOutput  string

	cfg      *config.Config
	logger   *zap.Logger
	calendar *fridagar.Calendar
	out      io.Writer
	closers  []io.Closer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fridagar",
		Short: "Icelandic public holidays and special days",
		Long:  "List Icelandic public holidays and special days, check dates and count working days",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&a.format, "output", "o", "", "Output format: text or json (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.teeOutput, "tee-output", "", "Mirror output to file")

	rootCmd.AddCommand(
		daysCmd(a, "days", "List holidays and special days", (*fridagar.Calendar).AllDays),
		daysCmd(a, "holidays", "List public holidays", (*fridagar.Calendar).Holidays),
		daysCmd(a, "other", "List special days that are not holidays", (*fridagar.Calendar).OtherDays),
		keyedCmd(a),
		checkCmd(a),
		workdaysCmd(a),
		monthCmd(a),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = a.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	if cfg.Log.File != "" {
		a.logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
	} else {
		a.logger, err = initLogger(cfg.Log.Level)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.out = cmd.OutOrStdout()
	if a.teeOutput != "" {
		if err := os.MkdirAll(filepath.Dir(a.teeOutput), 0o755); err != nil {
			return fmt.Errorf("failed to create tee path: %w", err)
		}
		f, err := os.OpenFile(a.teeOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open tee-output file: %w", err)
		}
		a.closers = append(a.closers, f)
		a.out = io.MultiWriter(a.out, f)
	}

	a.calendar = fridagar.New(
		fridagar.WithLogger(a.logger.Named("fridagar")),
		fridagar.WithCacheTTL(cfg.Calendar.GetCacheTTL()),
	)

	a.logger.Debug("Command started",
		zap.String("command", cmd.Name()),
		zap.String("format", cfg.Output.Format),
		zap.Duration("cache_ttl", cfg.Calendar.GetCacheTTL()))

	return nil
}

func (a *app) close() {
	for _, c := range a.closers {
		c.Close()
	}
	a.closers = nil
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	return config.Build()
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
