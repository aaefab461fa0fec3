package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"speakup/config"
	"speakup/generator"
)

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "speakup",
	Short: "Generate speeches, toasts and messages from a one-line prompt",
	Long: `speakup turns a short prompt ("birthday toast for my sister Sarah who loves hiking")
into a finished speech, toast, letter or message, shaped by tone, duration,
cultural context and role voice.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = cfg.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "speakup.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(clarifyCmd)
	rootCmd.AddCommand(tweakCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(savedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newGenerator builds the engine from config; a non-zero seed overrides generator.seed.
func newGenerator(seed int64) *generator.Generator {
	if seed == 0 {
		seed = cfg.Generator.Seed
	}
	return generator.New(
		generator.WithSeed(seed),
		generator.WithLogger(logger.Named("generator")),
		generator.WithTweakStrategy(cfg.TweakStrategy()),
	)
}
