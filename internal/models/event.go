// Package models defines the records written to the lifecycle journal.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes lifecycle events.
type EventType string

const (
	EventTypeWidgetConnected        EventType = "widget.connected"
	EventTypeWidgetDisconnected     EventType = "widget.disconnected"
	EventTypeWidgetAttributeChanged EventType = "widget.attribute_changed"
	EventTypeWidgetModeToggled      EventType = "widget.mode_toggled"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeWidget EntityType = "widget"
)

// Event represents an append-only journal entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity, the widget instance ID.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context, such as the widget tag.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	var errs []error
	if strings.TrimSpace(string(e.Type)) == "" {
		errs = append(errs, errors.New("event type is required"))
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		errs = append(errs, errors.New("entity_type is required"))
	}
	if strings.TrimSpace(e.EntityID) == "" {
		errs = append(errs, errors.New("entity_id is required"))
	}
	return errors.Join(errs...)
}

// ModeToggledPayload is the payload for widget.mode_toggled events.
type ModeToggledPayload struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// AttributeChangedPayload is the payload for widget.attribute_changed events.
type AttributeChangedPayload struct {
	Attribute string `json:"attribute"`
	OldValue  string `json:"old_value,omitempty"`
	NewValue  string `json:"new_value"`
}
