package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/modetoggle/internal/db"
	"github.com/opencode-ai/modetoggle/internal/models"
)

var (
	journalLimit int
	journalType  string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().IntVar(&journalLimit, "limit", 50, "maximum number of events to list")
	journalCmd.Flags().StringVar(&journalType, "type", "", "only list events of this type (e.g. widget.mode_toggled)")
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recorded lifecycle events",
	Long:  "List the lifecycle events recorded in the journal configured with --journal or journal.path.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		step := startProgress(cmd.ErrOrStderr(), "Opening journal")
		database, err := openJournal(ctx)
		if err != nil {
			step.Fail(err)
			return err
		}
		if database == nil {
			step.Fail(nil)
			return &PreflightError{
				Message:  "no journal configured",
				Hint:     "Pass --journal <path> or set journal.path in the config file",
				NextStep: "modetoggle --journal ~/.local/state/modetoggle/journal.db",
			}
		}
		defer database.Close()
		step.Done()

		return listJournal(ctx, cmd.OutOrStdout(), db.NewEventRepository(database), journalType, journalLimit)
	},
}

func listJournal(ctx context.Context, out io.Writer, repo *db.EventRepository, eventType string, limit int) error {
	query := db.EventQuery{Limit: limit}
	if eventType != "" {
		t := models.EventType(eventType)
		query.Type = &t
	}

	page, err := repo.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to list journal: %w", err)
	}

	if IsJSONOutput() {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(page.Events)
	}

	if len(page.Events) == 0 {
		_, err := fmt.Fprintln(out, "No events recorded.")
		return err
	}

	rows := make([][]string, 0, len(page.Events))
	for _, event := range page.Events {
		rows = append(rows, []string{
			event.Timestamp.Local().Format(time.DateTime),
			string(event.Type),
			shortID(event.EntityID),
			describeEvent(event),
		})
	}
	return writeTable(out, []string{"TIME", "TYPE", "WIDGET", "DETAIL"}, rows)
}

func describeEvent(event *models.Event) string {
	switch event.Type {
	case models.EventTypeWidgetModeToggled:
		var payload models.ModeToggledPayload
		if err := json.Unmarshal(event.Payload, &payload); err == nil {
			return fmt.Sprintf("%s -> %s", payload.Previous, payload.Current)
		}
	case models.EventTypeWidgetAttributeChanged:
		var payload models.AttributeChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err == nil {
			return fmt.Sprintf("%s=%s", payload.Attribute, payload.NewValue)
		}
	}
	return strings.TrimSpace(event.Metadata["tag"])
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
