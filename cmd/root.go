package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gnolang/razorconv/converter"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	config converter.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:              "razorconv [expressions...]",
	Short:            "razorconv - convert WebForms expression blocks to Razor expressions",
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// no subcommand
		if len(args) == 0 {
			return cmd.Help()
		}
		// Format: razorconv [expr1 expr2 ...] => behaves like the convert subcommand
		return convertCmd.RunE(convertCmd, args)
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger.Core().Enabled(zapcore.ErrorLevel) {
			logger.Error("razorconv failed", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	_ = logger.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", converter.DefaultConfigPath, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the conversion")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(rulesCmd)
}

// setup loads the configuration and builds the logger shared by all commands.
func setup() error {
	var err error
	config, err = converter.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		config.LogLevel = "debug"
	}

	logger, err = newLogger(config.Name, config.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	switch config.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
	return nil
}

// newLogger builds a stderr logger at level, named after the configured
// project name.
func newLogger(name, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if name != "" {
		l = l.Named(name)
	}
	return l, nil
}
