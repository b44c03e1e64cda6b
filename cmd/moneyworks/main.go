// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the moneyworks CLI.
// Stdout carries only the startup banner; diagnostics go to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/moneyworks/ai-accountant/pkg/framework"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultLogLevel = "warn"

var (
	logger  = zap.NewNop()
	verbose bool

	// configErr holds a config read failure until the logger exists.
	configErr error
)

// logLevels are the accepted log_level values.
var logLevels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// rootCmd starts the framework when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "moneyworks",
	Short: "MoneyWorks AI Accountant framework",
	Long: `moneyworks starts the MoneyWorks AI Accountant framework. On startup it
prints the framework banner and initializes the business intelligence layer.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, lvlErr := parseLevel(viper.GetString("log_level"))
		if verbose {
			lvl = zapcore.DebugLevel
		}
		logger = newLogger(cmd.ErrOrStderr(), lvl)

		if configErr != nil {
			logger.Warn("ignoring config", zap.Error(configErr))
		}
		if lvlErr != nil {
			logger.Warn("using default log level", zap.String("level", defaultLogLevel), zap.Error(lvlErr))
		}
		if used := viper.ConfigFileUsed(); used != "" && configErr == nil {
			logger.Info("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := framework.Start(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("starting framework: %w", err)
		}
		logger.Debug("framework started", zap.String("version", version))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./moneyworks.yaml or ~/.config/moneyworks/moneyworks.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

func initConfig() {
	configErr = nil

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("moneyworks")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "moneyworks"))
		}
	}

	viper.SetEnvPrefix("MONEYWORKS")
	viper.AutomaticEnv()
	viper.SetDefault("log_level", defaultLogLevel)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

// parseLevel maps a log_level value to a zap level. Unknown values
// yield the default level along with an error describing the value.
func parseLevel(level string) (zapcore.Level, error) {
	if lvl, ok := logLevels[level]; ok {
		return lvl, nil
	}
	return logLevels[defaultLogLevel], fmt.Errorf("unrecognized log_level %q (want debug, info, warn or error)", level)
}

// newLogger builds a JSON logger writing to w at lvl.
func newLogger(w io.Writer, lvl zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
