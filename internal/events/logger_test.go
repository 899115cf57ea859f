package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/opencode-ai/modetoggle/internal/models"
	"github.com/rs/zerolog"
)

type fakeRepo struct {
	events []*models.Event
	err    error
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *fakeRepo) last() *models.Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func TestLogModeToggled(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogModeToggled(context.Background(), repo, "w-1", "my-component", "light", "dark"); err != nil {
		t.Fatalf("LogModeToggled failed: %v", err)
	}

	event := repo.last()
	if event == nil {
		t.Fatal("expected event to be created")
	}
	if event.Type != models.EventTypeWidgetModeToggled {
		t.Fatalf("unexpected event type: %q", event.Type)
	}
	if event.EntityID != "w-1" {
		t.Fatalf("unexpected entity id: %q", event.EntityID)
	}
	if event.Metadata["tag"] != "my-component" {
		t.Fatalf("unexpected tag metadata: %v", event.Metadata)
	}

	var payload models.ModeToggledPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Previous != "light" || payload.Current != "dark" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLogAttributeChanged(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogAttributeChanged(context.Background(), repo, "w-1", "", "something", "", "42"); err != nil {
		t.Fatalf("LogAttributeChanged failed: %v", err)
	}
	event := repo.last()
	if event.Type != models.EventTypeWidgetAttributeChanged {
		t.Fatalf("unexpected event type: %q", event.Type)
	}
	if event.Metadata != nil {
		t.Fatalf("expected no metadata without tag, got %v", event.Metadata)
	}
}

func TestLogRequiresRepoAndID(t *testing.T) {
	if err := LogConnected(context.Background(), nil, "w-1", ""); err == nil {
		t.Fatal("expected error for nil repository")
	}
	if err := LogDisconnected(context.Background(), &fakeRepo{}, "", ""); err == nil {
		t.Fatal("expected error for empty widget id")
	}
}

func TestJournalSwallowsWriteErrors(t *testing.T) {
	repo := &fakeRepo{err: errors.New("disk full")}
	journal := NewJournal(repo, zerolog.Nop())

	journal.Connected("w-1", "my-component")
	journal.ModeToggled("w-1", "my-component", "light", "dark")
	journal.AttributeChanged("w-1", "my-component", "something", "", "x")
	journal.Disconnected("w-1", "my-component")

	if len(repo.events) != 0 {
		t.Fatalf("expected no events to be stored, got %d", len(repo.events))
	}
}

func TestJournalWritesLifecycle(t *testing.T) {
	repo := &fakeRepo{}
	journal := NewJournal(repo, zerolog.Nop())

	journal.Connected("w-1", "my-component")
	journal.ModeToggled("w-1", "my-component", "light", "dark")
	journal.Disconnected("w-1", "my-component")

	want := []models.EventType{
		models.EventTypeWidgetConnected,
		models.EventTypeWidgetModeToggled,
		models.EventTypeWidgetDisconnected,
	}
	if len(repo.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(repo.events))
	}
	for i, eventType := range want {
		if repo.events[i].Type != eventType {
			t.Errorf("event %d: expected %q, got %q", i, eventType, repo.events[i].Type)
		}
	}
}
