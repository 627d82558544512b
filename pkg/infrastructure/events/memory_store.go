package events

import (
	"fmt"
	"sync"
)

// InMemoryEventStore keeps evaluation events for the lifetime of the process.
// Notification is synchronous; a dashboard pass has no background tasks.
type InMemoryEventStore struct {
	streams     map[string][]Event
	subscribers []EventHandler
	mutex       sync.RWMutex
	allEvents   []Event
}

// NewInMemoryEventStore creates an empty in-memory event store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams:   make(map[string][]Event),
		allEvents: make([]Event, 0),
	}
}

// Verify interface compliance
var _ EventStore = (*InMemoryEventStore)(nil)

// AppendEvent adds an event to the given stream, assigning the next version
func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	s.mutex.Lock()

	versioned := BaseEvent{
		EventType:    event.Type(),
		Stream:       streamID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.streams[streamID]) + 1,
	}

	s.streams[streamID] = append(s.streams[streamID], versioned)
	s.allEvents = append(s.allEvents, versioned)

	handlers := make([]EventHandler, len(s.subscribers))
	copy(handlers, s.subscribers)
	s.mutex.Unlock()

	for _, handler := range handlers {
		if !handler.CanHandle(versioned.EventType) {
			continue
		}
		if err := handler.Handle(versioned); err != nil {
			return fmt.Errorf("event handler failed for %s: %w", versioned.EventType, err)
		}
	}

	return nil
}

// ReadEvents returns events for a stream starting at fromVersion (1-based)
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream, exists := s.streams[streamID]
	if !exists {
		return []Event{}, nil
	}

	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}, nil
	}

	events := make([]Event, len(stream)-fromVersion+1)
	copy(events, stream[fromVersion-1:])
	return events, nil
}

// ReadAllEvents returns all events across streams starting at fromPosition (0-based)
func (s *InMemoryEventStore) ReadAllEvents(fromPosition int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if fromPosition < 0 {
		fromPosition = 0
	}
	if fromPosition >= len(s.allEvents) {
		return []Event{}, nil
	}

	events := make([]Event, len(s.allEvents)-fromPosition)
	copy(events, s.allEvents[fromPosition:])
	return events, nil
}

// Subscribe registers a handler for the given event types. The handler's own
// CanHandle filter decides delivery; eventTypes is advisory.
func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.subscribers = append(s.subscribers, handler)
	return nil
}
