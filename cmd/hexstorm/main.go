// Package main is the entry point for the hexstorm binary editor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/hexstorm/internal/app"
	"github.com/dshills/hexstorm/internal/config"
	"github.com/dshills/hexstorm/internal/logging"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// flags holds the command line settings.
type flags struct {
	configPath string
	logLevel   string
	logFile    string
	readOnly   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "hexstorm [files...]",
		Short: "Terminal hex editor",
		Long: `hexstorm edits binary files in place, one nibble or byte at a time.

Keys:
  Tab            toggle hex / ASCII editing
  Ctrl-O         open a file          Ctrl-S  save
  Alt-S          save as              Ctrl-A  save all
  Ctrl-W         close the tab        Ctrl-Q  quit
  Ctrl-Z/Ctrl-Y  undo / redo          Ctrl-F  find
  Ctrl-N/Ctrl-P  next / previous tab

In the open and save-as prompts, Up and Down step through recent files.
Ctrl-Shift-S and Ctrl-Shift-Z also work where the terminal reports Shift.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file path (default $XDG_CONFIG_HOME/hexstorm/config.toml)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "log file path")
	cmd.Flags().BoolVarP(&f.readOnly, "readonly", "R", false, "open files read-only")
	return cmd
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		if _, err := logging.ParseLevel(f.logLevel); err != nil {
			return nil, err
		}
		cfg.Log.Level = f.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if f.readOnly {
		cfg.Editor.ReadOnly = true
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, f flags, files []string) error {
	logger, err := logging.New(cfg.Log.Logging())
	if err != nil {
		return err
	}
	defer logger.Close()

	application, err := app.New(app.Options{
		ConfigPath:  f.configPath,
		Config:      cfg,
		Logger:      logger,
		Files:       files,
		ReadOnly:    f.readOnly,
		WatchConfig: true,
	})
	if err != nil {
		return err
	}
	defer application.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	if err := application.SetBackend(term); err != nil {
		term.Shutdown()
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}
