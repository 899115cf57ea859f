// Package cli implements the modetoggle command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/modetoggle/internal/config"
	"github.com/opencode-ai/modetoggle/internal/db"
	"github.com/opencode-ai/modetoggle/internal/logging"
)

var (
	cfgFile        string
	jsonOutput     bool
	nonInteractive bool
	noProgress     bool

	appConfig *config.Config
	logger    = zerolog.Nop()
	logCloser io.Closer

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:           "modetoggle",
	Short:         "A labelled widget with a light/dark mode toggle",
	Long:          "modetoggle mounts a labelled container with a button that switches it between light and dark mode.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/modetoggle/config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")
	flags.String("log-file", "", "log file path, - for stderr")
	flags.String("journal", "", "sqlite file recording lifecycle events")
	flags.String("tag", "", "registry tag of the widget to mount")
	flags.String("title", "", "widget heading")
	flags.String("content", "", "text rendered inside the widget")
	flags.String("something", "", "initial value of the observed attribute")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON where supported")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
	flags.BoolVar(&noProgress, "no-progress", false, "suppress progress output")
}

var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"journal":    "journal.path",
	"tag":        "widget.tag",
	"title":      "widget.title",
	"content":    "widget.content",
	"something":  "widget.something",
}

func initConfig(cmd *cobra.Command) error {
	loader := config.NewLoader()
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := loader.BindFlag(key, flag); err != nil {
			return err
		}
	}

	cfg, err := loader.Load(cfgFile)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = log
	logCloser = closer

	if used := loader.ConfigFileUsed(); used != "" {
		logger.Debug().Str("path", used).Msg("config loaded")
	}
	return nil
}

// GetConfig returns the loaded configuration, or nil before initialization.
func GetConfig() *config.Config {
	return appConfig
}

// openJournal opens the configured journal database, or returns nil when
// journaling is disabled.
func openJournal(ctx context.Context) (*db.DB, error) {
	cfg := GetConfig()
	if cfg == nil || cfg.Journal.Path == "" {
		return nil, nil
	}
	database, err := db.Open(ctx, cfg.Journal.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return database, nil
}

// Execute runs the root command.
func Execute(buildVersion string) int {
	if buildVersion != "" {
		version = buildVersion
	}
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}
