// events.go defines the event types for extension notifications.
//
// Events are fire-and-forget notifications sent after a tag change has been
// written. Extensions cannot block or veto operations via events.

package extension

// EventType identifies the kind of event.
type EventType string

const (
	EventTagAdd    EventType = "tag:add"
	EventTagRemove EventType = "tag:remove"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
	EventPath() string
}

// TagEvent is fired once per tag added to or removed from a path.
type TagEvent struct {
	Path   string
	Tag    string
	Source string
	Added  bool // true=added, false=removed
}

func (e TagEvent) EventType() EventType {
	if e.Added {
		return EventTagAdd
	}
	return EventTagRemove
}
func (e TagEvent) EventPath() string { return e.Path }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}
