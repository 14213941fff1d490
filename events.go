package allofyou

// EventSink is the interface for optional event forwarding. When set on a
// Session, mode transitions, drags, and screenshots are published to it.
// See the ecs subpackage for a Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event SessionEvent)
}

// SessionEvent carries event data for an EventSink.
type SessionEvent struct {
	Type EventType
	// Mode is the mode after the event.
	Mode Mode
	// PanelIndex is the dragged panel for drag events, -1 otherwise.
	PanelIndex int
	PanelID    string
	// World position of the pointer (drag events).
	X, Y float64
	// Label of a queued screenshot.
	Label string
}

// EventFunc adapts a plain function to an EventSink.
type EventFunc func(SessionEvent)

// EmitEvent calls f(event).
func (f EventFunc) EmitEvent(event SessionEvent) { f(event) }
