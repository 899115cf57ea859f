// Package events provides helper functions for journaling widget lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/modetoggle/internal/models"
	"github.com/rs/zerolog"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogModeToggled records a mode transition for a widget.
func LogModeToggled(ctx context.Context, repo Repository, widgetID, tag, previous, current string) error {
	payload, err := json.Marshal(models.ModeToggledPayload{
		Previous: previous,
		Current:  current,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal toggle payload: %w", err)
	}
	return logWidgetEvent(ctx, repo, models.EventTypeWidgetModeToggled, widgetID, tag, payload)
}

// LogAttributeChanged records an observed attribute change for a widget.
func LogAttributeChanged(ctx context.Context, repo Repository, widgetID, tag, attr, oldValue, newValue string) error {
	payload, err := json.Marshal(models.AttributeChangedPayload{
		Attribute: attr,
		OldValue:  oldValue,
		NewValue:  newValue,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal attribute payload: %w", err)
	}
	return logWidgetEvent(ctx, repo, models.EventTypeWidgetAttributeChanged, widgetID, tag, payload)
}

// LogConnected records that a widget was inserted into the host tree.
func LogConnected(ctx context.Context, repo Repository, widgetID, tag string) error {
	return logWidgetEvent(ctx, repo, models.EventTypeWidgetConnected, widgetID, tag, nil)
}

// LogDisconnected records that a widget was removed from the host tree.
func LogDisconnected(ctx context.Context, repo Repository, widgetID, tag string) error {
	return logWidgetEvent(ctx, repo, models.EventTypeWidgetDisconnected, widgetID, tag, nil)
}

func logWidgetEvent(ctx context.Context, repo Repository, eventType models.EventType, widgetID, tag string, payload json.RawMessage) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if widgetID == "" {
		return fmt.Errorf("widget id is required")
	}

	event := &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeWidget,
		EntityID:   widgetID,
		Payload:    payload,
	}
	if tag != "" {
		event.Metadata = map[string]string{"tag": tag}
	}

	return repo.Create(ctx, event)
}

// Journal writes lifecycle events for widgets. Write failures are logged
// and never propagate into the widget.
type Journal struct {
	repo   Repository
	logger zerolog.Logger
}

// NewJournal creates a Journal over repo.
func NewJournal(repo Repository, logger zerolog.Logger) *Journal {
	return &Journal{repo: repo, logger: logger}
}

// Connected implements components.Lifecycle.
func (j *Journal) Connected(widgetID, tag string) {
	j.report(LogConnected(context.Background(), j.repo, widgetID, tag), widgetID, models.EventTypeWidgetConnected)
}

// Disconnected implements components.Lifecycle.
func (j *Journal) Disconnected(widgetID, tag string) {
	j.report(LogDisconnected(context.Background(), j.repo, widgetID, tag), widgetID, models.EventTypeWidgetDisconnected)
}

// AttributeChanged implements components.Lifecycle.
func (j *Journal) AttributeChanged(widgetID, tag, attr, oldValue, newValue string) {
	err := LogAttributeChanged(context.Background(), j.repo, widgetID, tag, attr, oldValue, newValue)
	j.report(err, widgetID, models.EventTypeWidgetAttributeChanged)
}

// ModeToggled implements components.Lifecycle.
func (j *Journal) ModeToggled(widgetID, tag, previous, current string) {
	err := LogModeToggled(context.Background(), j.repo, widgetID, tag, previous, current)
	j.report(err, widgetID, models.EventTypeWidgetModeToggled)
}

func (j *Journal) report(err error, widgetID string, eventType models.EventType) {
	if err == nil {
		return
	}
	j.logger.Warn().Err(err).Str("widget_id", widgetID).Str("event", string(eventType)).Msg("failed to journal event")
}
