package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/internal/config"
	"github.com/katalvlaran/algoscope/internal/logging"
	"github.com/katalvlaran/algoscope/internal/term"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool

	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "algoscope",
	Short: "Step-by-step algorithm visualizer",
	Long: `algoscope turns sorting, graph traversal, search-tree and hash-map
algorithms into annotated step sequences. Each step carries the data
state, a narration and the label of the reference source line executing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.Logging.Level = logLevel
		}
		lvl, err := logging.ParseLevel(c.Logging.Level)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		if noColor {
			c.Render.Color = false
		}
		cfg = c
		logger = logging.New(lvl, c.Logging.Format, cmd.ErrOrStderr())
		logger.Debug("configuration loaded", "file", cfgFile, "language", c.Render.Language)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./algoscope.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func renderer() *term.Renderer {
	return term.New(term.Options{
		Color:    cfg.Render.Color,
		Width:    cfg.Render.Width,
		Language: codelabel.Language(cfg.Render.Language),
	})
}

// loggerFor is the command logger with the algorithm id attached.
func loggerFor(id string) *slog.Logger {
	return logger.With("algorithm", id)
}
