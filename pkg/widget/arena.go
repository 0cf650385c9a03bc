package widget

import (
	"fmt"

	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/geometry"
)

// WidgetID indexes a slot in an Arena. IDs start at 1 and are never reused.
type WidgetID uint32

// NoWidget is the reserved zero ID.
const NoWidget WidgetID = 0

// Kind tags the active member of a Variant.
type Kind uint8

const (
	KindNone Kind = iota
	KindLabel
	KindButton
	KindFlex
	KindPadding
	KindAlign
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindFlex:
		return "flex"
	case KindPadding:
		return "padding"
	case KindAlign:
		return "align"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Env is carried through every pass. It holds no values; the theme travels
// on the pass contexts.
type Env struct{}

type slot[T comparable] struct {
	widget     Variant[T]
	state      BaseState
	old        T
	hasOld     bool
	registered bool
}

// Arena is the fixed-capacity widget registry.
type Arena[T comparable] struct {
	// slots[0] is never used so that NoWidget stays invalid.
	slots []slot[T]
	next  WidgetID
}

// NewArena allocates an arena holding up to capacity widgets.
func NewArena[T comparable](capacity int) *Arena[T] {
	if capacity < 1 {
		errors.Fatal("widget.NewArena", errors.KindConfig,
			fmt.Errorf("widget capacity must be at least 1 (got %d)", capacity))
	}
	return &Arena[T]{slots: make([]slot[T], capacity+1)}
}

// Cap returns the number of widgets the arena can hold.
func (a *Arena[T]) Cap() int {
	return len(a.slots) - 1
}

// Len returns the number of IDs allocated so far.
func (a *Arena[T]) Len() int {
	return int(a.next)
}

// AllocateID hands out the next widget ID.
func (a *Arena[T]) AllocateID() WidgetID {
	if int(a.next) >= a.Cap() {
		errors.Fatal("widget.Arena.AllocateID", errors.KindCapacity, &errors.CapacityError{
			Resource: "widgets",
			Limit:    a.Cap(),
			Index:    int(a.next) + 1,
		})
	}
	a.next++
	return a.next
}

// Register stores w in the slot for id and returns a reference to it.
// Each slot can be registered once; there is no replacement at runtime.
func (a *Arena[T]) Register(id WidgetID, w Variant[T]) WidgetRef[T] {
	const op = "widget.Arena.Register"
	if id == NoWidget || int(id) > a.Cap() {
		errors.Fatal(op, errors.KindCapacity, &errors.CapacityError{
			Resource: "widgets",
			Limit:    a.Cap(),
			Index:    int(id),
		})
	}
	if id > a.next {
		errors.Fatal(op, errors.KindLookup, fmt.Errorf("widget %d was not allocated", id))
	}
	s := &a.slots[id]
	if s.registered {
		errors.Fatal(op, errors.KindLookup, fmt.Errorf("widget %d is already registered", id))
	}
	*s = slot[T]{widget: w, registered: true}
	return WidgetRef[T]{id: id}
}

// Add allocates an ID for w and registers it.
func (a *Arena[T]) Add(w Variant[T]) WidgetRef[T] {
	return a.Register(a.AllocateID(), w)
}

// Kind returns the kind stored at id, or KindNone for an empty slot.
func (a *Arena[T]) Kind(id WidgetID) Kind {
	if id == NoWidget || int(id) > a.Cap() || !a.slots[id].registered {
		return KindNone
	}
	return a.slots[id].widget.Kind
}

// Lookup returns a copy of the variant stored at id.
func (a *Arena[T]) Lookup(id WidgetID) (Variant[T], bool) {
	if id == NoWidget || int(id) > a.Cap() || !a.slots[id].registered {
		return Variant[T]{}, false
	}
	return a.slots[id].widget, true
}

// State returns the base state of the widget at id.
func (a *Arena[T]) State(id WidgetID) *BaseState {
	return &a.slot(id).state
}

// LayoutRect returns the rectangle the widget at id was given by its parent.
func (a *Arena[T]) LayoutRect(id WidgetID) geometry.Rect {
	return a.slot(id).state.layoutRect
}

func (a *Arena[T]) slot(id WidgetID) *slot[T] {
	if id == NoWidget || int(id) > a.Cap() || !a.slots[id].registered {
		errors.Fatal("widget.Arena.slot", errors.KindLookup, &errors.LookupError{
			Resource: "widget",
			ID:       uint32(id),
		})
	}
	return &a.slots[id]
}
