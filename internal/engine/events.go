package engine

import "fmt"

// EventType categorizes engine notifications.
type EventType int

const (
	// EventContentChanged is emitted after any byte of the buffer changed.
	EventContentChanged EventType = iota
	// EventCursorMoved is emitted after the cursor position changed.
	EventCursorMoved
	// EventScrollTo asks the view to scroll so that Row is the top row.
	EventScrollTo
	// EventModeChanged is emitted after the edit mode toggled.
	EventModeChanged
	// EventSaved is emitted after a successful save.
	EventSaved
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventContentChanged:
		return "content-changed"
	case EventCursorMoved:
		return "cursor-moved"
	case EventScrollTo:
		return "scroll-to"
	case EventModeChanged:
		return "mode-changed"
	case EventSaved:
		return "saved"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is a notification sent to observers.
type Event struct {
	Type EventType
	Row  int // Target top row for EventScrollTo
}

// Observer receives engine events synchronously, on the goroutine that
// issued the command.
type Observer func(Event)

// Store is the save boundary. Write receives the full buffer contents.
type Store interface {
	Write(data []byte) error
}

// StoreFunc adapts a function to the Store interface.
type StoreFunc func(data []byte) error

// Write calls f(data).
func (f StoreFunc) Write(data []byte) error {
	return f(data)
}
