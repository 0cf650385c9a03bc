package window

import (
	"fmt"

	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/widget"
)

type entry[T comparable] struct {
	// kind is the root widget's kind. Every Window[T] has the same type, so
	// the dispatch switches only tell an empty slot (KindNone) from a filled one.
	kind   widget.Kind
	window Window[T]
}

// Registry is the fixed table of windows, indexed by ID. Each entry is
// tagged with the kind of its root widget.
type Registry[T comparable] struct {
	arena   *widget.Arena[T]
	entries []entry[T]
}

// NewRegistry returns a registry with capacity slots, including the
// reserved slot 0.
func NewRegistry[T comparable](arena *widget.Arena[T], capacity int) *Registry[T] {
	if capacity < 2 {
		errors.Fatal("window.NewRegistry", errors.KindConfig,
			fmt.Errorf("window capacity must be at least 2 (got %d)", capacity))
	}
	return &Registry[T]{arena: arena, entries: make([]entry[T], capacity)}
}

// Cap returns the number of slots, including slot 0.
func (r *Registry[T]) Cap() int { return len(r.entries) }

// Add stores w at id. The slot must be in range and empty, and the root
// must be registered in the arena.
func (r *Registry[T]) Add(id ID, w Window[T]) {
	const op = "window.Registry.Add"
	r.checkBounds(op, id)
	if r.entries[id].kind != widget.KindNone {
		errors.Fatal(op, errors.KindLookup, fmt.Errorf("window %d is already registered", id))
	}
	kind := r.arena.Kind(w.root.ID())
	if kind == widget.KindNone {
		errors.Fatal(op, errors.KindLookup, &errors.LookupError{Resource: "widget", ID: uint32(w.root.ID())})
	}
	r.entries[id] = entry[T]{kind: kind, window: w}
}

// Kind returns the root kind stored at id, or KindNone.
func (r *Registry[T]) Kind(id ID) widget.Kind {
	if id == 0 || int(id) >= len(r.entries) {
		return widget.KindNone
	}
	return r.entries[id].kind
}

// Get returns the window stored at id.
func (r *Registry[T]) Get(id ID) (*Window[T], bool) {
	if r.Kind(id) == widget.KindNone {
		return nil, false
	}
	return &r.entries[id].window, true
}

func (r *Registry[T]) Event(id ID, ctx *widget.EventCtx[T], ev widget.Event, data *T, env widget.Env) {
	e := r.entry("window.Registry.Event", id)
	switch e.kind {
	case widget.KindNone:
	case widget.KindLabel, widget.KindButton, widget.KindFlex, widget.KindPadding, widget.KindAlign:
		e.window.Event(ctx, ev, data, env)
	default:
		badKind("window.Registry.Event", e.kind)
	}
}

func (r *Registry[T]) Update(id ID, ctx *widget.UpdateCtx[T], data T, env widget.Env) {
	e := r.entry("window.Registry.Update", id)
	switch e.kind {
	case widget.KindNone:
	case widget.KindLabel, widget.KindButton, widget.KindFlex, widget.KindPadding, widget.KindAlign:
		e.window.Update(ctx, data, env)
	default:
		badKind("window.Registry.Update", e.kind)
	}
}

func (r *Registry[T]) Layout(id ID, ctx *widget.LayoutCtx[T], data T, env widget.Env) {
	e := r.entry("window.Registry.Layout", id)
	switch e.kind {
	case widget.KindNone:
	case widget.KindLabel, widget.KindButton, widget.KindFlex, widget.KindPadding, widget.KindAlign:
		e.window.Layout(ctx, data, env)
	default:
		badKind("window.Registry.Layout", e.kind)
	}
}

func (r *Registry[T]) Paint(id ID, ctx *widget.PaintCtx[T], data T, env widget.Env) {
	e := r.entry("window.Registry.Paint", id)
	switch e.kind {
	case widget.KindNone:
	case widget.KindLabel, widget.KindButton, widget.KindFlex, widget.KindPadding, widget.KindAlign:
		e.window.Paint(ctx, data, env)
	default:
		badKind("window.Registry.Paint", e.kind)
	}
}

// HasActive reports whether the window at id has an active widget. Empty
// slots report false.
func (r *Registry[T]) HasActive(id ID) bool {
	e := r.entry("window.Registry.HasActive", id)
	switch e.kind {
	case widget.KindNone:
		return false
	case widget.KindLabel, widget.KindButton, widget.KindFlex, widget.KindPadding, widget.KindAlign:
		return e.window.HasActive(r.arena)
	default:
		badKind("window.Registry.HasActive", e.kind)
		return false
	}
}

func (r *Registry[T]) entry(op string, id ID) *entry[T] {
	r.checkBounds(op, id)
	return &r.entries[id]
}

func (r *Registry[T]) checkBounds(op string, id ID) {
	if id == 0 || int(id) >= len(r.entries) {
		errors.Fatal(op, errors.KindCapacity, &errors.CapacityError{
			Resource: "windows",
			Limit:    len(r.entries) - 1,
			Index:    int(id),
		})
	}
}

func badKind(op string, k widget.Kind) {
	errors.Fatal(op, errors.KindLookup, fmt.Errorf("unknown window kind %s", k))
}
