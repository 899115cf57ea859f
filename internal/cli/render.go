package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/modetoggle/internal/tui"
)

var (
	renderToggles int
	renderWidth   int
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().IntVar(&renderToggles, "toggles", 0, "activation events to deliver before rendering")
	renderCmd.Flags().IntVar(&renderWidth, "width", 40, "frame width in cells, 0 to fit content")
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one frame of the widget",
	Long:  "Mount the widget without a TUI, deliver --toggles activation events, print the frame and unmount.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.Context(), cmd.OutOrStdout(), renderToggles, renderWidth)
	},
}

func runRender(ctx context.Context, out io.Writer, toggles, width int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", width)
	}

	tuiConfig, closer, err := buildTUIConfig(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	frame, err := tui.Render(tuiConfig, toggles, width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, frame)
	return err
}
