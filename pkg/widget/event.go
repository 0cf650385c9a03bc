package widget

import (
	"fmt"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
)

// EventKind tags the active member of an Event.
type EventKind uint8

const (
	// EventSize carries the new window size. Only the root receives it.
	EventSize EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseMoved
	// EventHotChanged is sent by a widget's own slot when the pointer
	// enters or leaves it. It is never forwarded to children.
	EventHotChanged
	// EventFocusChanged grants or revokes focus after a focus request.
	EventFocusChanged
)

func (k EventKind) String() string {
	switch k {
	case EventSize:
		return "size"
	case EventMouseDown:
		return "mouse_down"
	case EventMouseUp:
		return "mouse_up"
	case EventMouseMoved:
		return "mouse_moved"
	case EventHotChanged:
		return "hot_changed"
	case EventFocusChanged:
		return "focus_changed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is an input or lifecycle event. Only the field matching Kind is set.
type Event struct {
	Kind  EventKind
	Size  geometry.Size
	Mouse platform.MouseEvent
	// Hot is the new hot state for EventHotChanged.
	Hot bool
	// Focused is the new focus state for EventFocusChanged.
	Focused bool
}

func SizeEvent(size geometry.Size) Event           { return Event{Kind: EventSize, Size: size} }
func MouseDownEvent(ev platform.MouseEvent) Event  { return Event{Kind: EventMouseDown, Mouse: ev} }
func MouseUpEvent(ev platform.MouseEvent) Event    { return Event{Kind: EventMouseUp, Mouse: ev} }
func MouseMovedEvent(ev platform.MouseEvent) Event { return Event{Kind: EventMouseMoved, Mouse: ev} }
func HotChangedEvent(hot bool) Event               { return Event{Kind: EventHotChanged, Hot: hot} }
func FocusChangedEvent(focused bool) Event         { return Event{Kind: EventFocusChanged, Focused: focused} }

// Recurse reports whether containers forward the event to children.
func (e Event) Recurse() bool {
	return e.Kind != EventHotChanged
}

// IsMouse reports whether the event carries a pointer position.
func (e Event) IsMouse() bool {
	return e.Kind == EventMouseDown || e.Kind == EventMouseUp || e.Kind == EventMouseMoved
}
