package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/wiresim/config"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool
	logFile    string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wiresim",
		Short: "Evaluate 16-bit wire-logic circuits",
		Long: `wiresim reads circuits written as one assignment per line, such as
"x AND y -> d" or "NOT x -> h", and resolves the signal on every wire.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML run configuration")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "trace, debug, info, warn or error")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "log as JSON")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to a file instead of stderr")

	root.AddCommand(
		newRunCmd(a),
		newTokensCmd(a),
		newParseCmd(a),
		newLintCmd(a),
	)

	return root
}

// setup loads the configuration, applies the global flags and installs the
// default logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if a.logLevel != "" {
		if _, err := config.ParseLevel(a.logLevel); err != nil {
			return err
		}
		cfg.Log.Level = a.logLevel
	}
	if a.logJSON {
		cfg.Log.Format = "json"
	}

	var w io.Writer = cmd.ErrOrStderr()
	if a.logFile != "" {
		f, err := os.Create(a.logFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		atexit.Register(func() { f.Close() })
		w = f
	}

	slog.SetDefault(cfg.NewLogger(w))
	a.cfg = cfg

	return nil
}
