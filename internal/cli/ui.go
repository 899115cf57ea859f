package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/modetoggle/internal/db"
	"github.com/opencode-ai/modetoggle/internal/events"
	"github.com/opencode-ai/modetoggle/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the widget TUI",
	Long:  "Mount the widget in a terminal user interface. This is also the default command.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or render a single frame",
			NextStep: "modetoggle render",
		}
	}

	tuiConfig, closer, err := buildTUIConfig(context.Background())
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg := GetConfig(); cfg != nil {
		tuiConfig.AltScreen = cfg.TUI.AltScreen
		tuiConfig.Mouse = cfg.TUI.Mouse
	}

	return tui.RunWithConfig(tuiConfig)
}

// buildTUIConfig maps the app config onto the host config and wires the
// journal when one is configured. The closer releases the journal.
func buildTUIConfig(ctx context.Context) (tui.Config, io.Closer, error) {
	tuiConfig := tui.Config{
		Registry: tui.DefaultRegistry(),
		Logger:   logger,
	}
	if cfg := GetConfig(); cfg != nil {
		tuiConfig.Tag = cfg.Widget.Tag
		tuiConfig.Title = cfg.Widget.Title
		tuiConfig.Content = cfg.Widget.Content
		tuiConfig.Something = cfg.Widget.Something
	}

	database, err := openJournal(ctx)
	if err != nil {
		return tui.Config{}, nil, err
	}
	if database == nil {
		return tuiConfig, nopCloser{}, nil
	}

	tuiConfig.Lifecycle = events.NewJournal(db.NewEventRepository(database), logger)
	return tuiConfig, database, nil
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
