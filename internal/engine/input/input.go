// Package input holds window-backend-neutral input events.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Key is a keyboard key, independent of the window backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyR
	KeyW
	KeyF12
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
}

// Input collects the events of one frame. Window backends push into it.
type Input struct {
	events []Event
	quit   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Reset clears the previous frame's events. Call before polling.
func (i *Input) Reset() {
	i.events = i.events[:0]
}

// Push records an event. Quit requests are sticky.
func (i *Input) Push(e Event) {
	if e.Type == EventQuit {
		i.quit = true
	}
	i.events = append(i.events, e)
}

// QuitRequested reports whether a quit event has been seen.
func (i *Input) QuitRequested() bool {
	return i.quit
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// LastResize returns the most recent resize this frame.
func (i *Input) LastResize() (width, height int, ok bool) {
	for j := len(i.events) - 1; j >= 0; j-- {
		if e := i.events[j]; e.Type == EventWindowResize {
			return e.Width, e.Height, true
		}
	}
	return 0, 0, false
}
