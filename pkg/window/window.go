// Package window binds a root widget to a platform window and keeps the
// fixed table of open windows.
package window

import (
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/widget"
)

// ID indexes a slot in a Registry. ID 0 is reserved.
type ID uint32

// Window owns a root widget reference and the size the shell last reported.
type Window[T comparable] struct {
	root widget.WidgetRef[T]
	size geometry.Size
}

// New returns a window for root with an empty size. The shell delivers the
// real size before the first layout.
func New[T comparable](root widget.WidgetRef[T]) Window[T] {
	return Window[T]{root: root}
}

// Root returns the root widget reference.
func (w *Window[T]) Root() widget.WidgetRef[T] { return w.root }

// Size returns the size from the most recent Size event.
func (w *Window[T]) Size() geometry.Size { return w.size }

// Event records size changes and forwards ev to the root.
func (w *Window[T]) Event(ctx *widget.EventCtx[T], ev widget.Event, data *T, env widget.Env) {
	if ev.Kind == widget.EventSize {
		w.size = ev.Size
	}
	w.root.Event(ctx, ev, data, env)
}

func (w *Window[T]) Update(ctx *widget.UpdateCtx[T], data T, env widget.Env) {
	w.root.Update(ctx, data, env)
}

// Layout lays the root out tightly at the window size and places it at the
// origin.
func (w *Window[T]) Layout(ctx *widget.LayoutCtx[T], data T, env widget.Env) {
	size := w.root.Layout(ctx, geometry.Tight(w.size), data, env)
	w.root.SetLayoutRect(ctx, geometry.RectFromOriginSize(geometry.Point{}, size))
}

// Paint paints the root clipped to the window.
func (w *Window[T]) Paint(ctx *widget.PaintCtx[T], data T, env widget.Env) {
	rc := ctx.RenderContext()
	rc.Save()
	rc.Clip(geometry.RectFromOriginSize(geometry.Point{}, w.size))
	w.root.Paint(ctx, data, env)
	rc.Restore()
}

// HasActive reports whether any widget in the window holds the pointer grab.
func (w *Window[T]) HasActive(arena *widget.Arena[T]) bool {
	return arena.State(w.root.ID()).HasActive()
}
