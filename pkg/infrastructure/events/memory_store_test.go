package events

import (
	"testing"
)

type recordingHandler struct {
	types    map[string]bool
	received []Event
}

func (h *recordingHandler) Handle(event Event) error {
	h.received = append(h.received, event)
	return nil
}

func (h *recordingHandler) CanHandle(eventType string) bool {
	return h.types[eventType]
}

func TestInMemoryEventStore_AppendAndRead(t *testing.T) {
	store := NewInMemoryEventStore()

	if err := store.AppendEvent("dashboard", NewEvent(ReorderTriggeredEvent, "dashboard", nil)); err != nil {
		t.Fatalf("Expected append to succeed: %v", err)
	}
	if err := store.AppendEvent("dashboard", NewEvent(KpiBreachedEvent, "dashboard", nil)); err != nil {
		t.Fatalf("Expected append to succeed: %v", err)
	}

	events, err := store.ReadEvents("dashboard", 1)
	if err != nil {
		t.Fatalf("Expected read to succeed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Version() != 1 || events[1].Version() != 2 {
		t.Errorf("Expected versions 1 and 2, got %d and %d", events[0].Version(), events[1].Version())
	}

	// Read from a later version
	tail, err := store.ReadEvents("dashboard", 2)
	if err != nil {
		t.Fatalf("Expected read to succeed: %v", err)
	}
	if len(tail) != 1 || tail[0].Type() != KpiBreachedEvent {
		t.Errorf("Expected single KPI event from version 2, got %v", tail)
	}
}

func TestInMemoryEventStore_UnknownStream(t *testing.T) {
	store := NewInMemoryEventStore()

	events, err := store.ReadEvents("missing", 1)
	if err != nil {
		t.Fatalf("Expected read of unknown stream to succeed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Expected no events, got %d", len(events))
	}
}

func TestInMemoryEventStore_Subscribe(t *testing.T) {
	store := NewInMemoryEventStore()

	handler := &recordingHandler{types: map[string]bool{KpiBreachedEvent: true}}
	if err := store.Subscribe([]string{KpiBreachedEvent}, handler); err != nil {
		t.Fatalf("Expected subscribe to succeed: %v", err)
	}

	_ = store.AppendEvent("dashboard", NewEvent(ReorderTriggeredEvent, "dashboard", nil))
	_ = store.AppendEvent("dashboard", NewEvent(KpiBreachedEvent, "dashboard", nil))

	if len(handler.received) != 1 {
		t.Fatalf("Expected handler to receive 1 event, got %d", len(handler.received))
	}
	if handler.received[0].Type() != KpiBreachedEvent {
		t.Errorf("Expected %s, got %s", KpiBreachedEvent, handler.received[0].Type())
	}
}

func TestInMemoryEventStore_ReadAllEvents(t *testing.T) {
	store := NewInMemoryEventStore()

	_ = store.AppendEvent("a", NewEvent(ReorderTriggeredEvent, "a", nil))
	_ = store.AppendEvent("b", NewEvent(DashboardRenderedEvent, "b", nil))

	all, err := store.ReadAllEvents(0)
	if err != nil {
		t.Fatalf("Expected read all to succeed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 events across streams, got %d", len(all))
	}
}
