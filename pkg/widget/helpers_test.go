package widget

import (
	"testing"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/theme"
)

var testTheme = theme.Default()

func layoutCtx(a *Arena[uint32]) *LayoutCtx[uint32] {
	return NewLayoutCtx(a, testTheme, render.MonoText{Advance: render.DefaultAdvance}, 1)
}

// layoutRoot lays root out tightly at size and places it at the origin.
func layoutRoot(a *Arena[uint32], root WidgetRef[uint32], bc geometry.Constraints, data uint32) geometry.Size {
	ctx := layoutCtx(a)
	size := root.Layout(ctx, bc, data, Env{})
	root.SetLayoutRect(ctx, geometry.RectFromOriginSize(geometry.Point{}, size))
	return size
}

// dispatch sends ev to root with a fresh root state and returns it.
func dispatch(a *Arena[uint32], root WidgetRef[uint32], ev Event, data *uint32) BaseState {
	var base BaseState
	ctx := NewEventCtx(a, testTheme, platform.WindowHandle{}, 1, &base)
	root.Event(ctx, ev, data, Env{})
	return base
}

func down(x, y float64) Event {
	return MouseDownEvent(platform.MouseEvent{Pos: geometry.Point{X: x, Y: y}, Count: 1})
}

func up(x, y float64) Event {
	return MouseUpEvent(platform.MouseEvent{Pos: geometry.Point{X: x, Y: y}})
}

func move(x, y float64) Event {
	return MouseMovedEvent(platform.MouseEvent{Pos: geometry.Point{X: x, Y: y}})
}

func increment(by uint32) ButtonAction[uint32] {
	return func(_ *EventCtx[uint32], data *uint32, _ Env) { *data += by }
}

// mustPanic runs fn and returns the value it panicked with.
func mustPanic(t *testing.T, fn func()) (v any) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
	return nil
}

func rectNear(a, b geometry.Rect) bool {
	const eps = 1e-6
	near := func(x, y float64) bool { return x-y < eps && y-x < eps }
	return near(a.Left, b.Left) && near(a.Top, b.Top) && near(a.Right, b.Right) && near(a.Bottom, b.Bottom)
}
