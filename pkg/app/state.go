// Package app owns the application data and drives the event, update,
// layout and paint cycles for every window.
package app

import (
	"fmt"

	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/theme"
	"github.com/go-drift/fixedui/pkg/widget"
	"github.com/go-drift/fixedui/pkg/window"
)

// AppState is the single owner of the widget arena, the window registry
// and the application data. Shell callbacks reach it through Handler; it is
// not safe for concurrent use.
type AppState[T comparable] struct {
	arena    *widget.Arena[T]
	windows  *window.Registry[T]
	handlers []*Handler[T]
	// anim holds the animation request of each window's last event cycle.
	anim []bool

	data  T
	env   widget.Env
	theme *theme.Theme

	nextWindow window.ID
	focused    window.ID
}

// NewAppState returns state with windows registry slots, including the
// reserved slot 0.
func NewAppState[T comparable](arena *widget.Arena[T], windows int, th *theme.Theme, data T) *AppState[T] {
	if th == nil {
		th = theme.Default()
	}
	return &AppState[T]{
		arena:    arena,
		windows:  window.NewRegistry(arena, windows),
		handlers: make([]*Handler[T], windows),
		anim:     make([]bool, windows),
		data:     data,
		theme:    th,
	}
}

func (s *AppState[T]) Arena() *widget.Arena[T]      { return s.arena }
func (s *AppState[T]) Windows() *window.Registry[T] { return s.windows }
func (s *AppState[T]) Theme() *theme.Theme          { return s.theme }

// Data returns the current application data.
func (s *AppState[T]) Data() T { return s.data }

// SetData replaces the application data. Widgets see it on the next pass.
func (s *AppState[T]) SetData(data T) { s.data = data }

// FocusedWindow returns the window that last received focus, or 0.
func (s *AppState[T]) FocusedWindow() window.ID { return s.focused }

// AllocateWindowID hands out the next window ID, starting at 1.
func (s *AppState[T]) AllocateWindowID() window.ID {
	if int(s.nextWindow)+1 >= s.windows.Cap() {
		errors.Fatal("app.AppState.AllocateWindowID", errors.KindCapacity, &errors.CapacityError{
			Resource: "windows",
			Limit:    s.windows.Cap() - 1,
			Index:    int(s.nextWindow) + 1,
		})
	}
	s.nextWindow++
	return s.nextWindow
}

// AddWindow registers w at id.
func (s *AppState[T]) AddWindow(id window.ID, w window.Window[T]) {
	s.windows.Add(id, w)
}

// AddHandler binds the shell handler for window id.
func (s *AppState[T]) AddHandler(id window.ID, h *Handler[T]) {
	s.checkWindow("app.AppState.AddHandler", id)
	s.handlers[id] = h
}

// GetHandle returns the platform handle of window id. It is the zero
// handle until the shell connects the window.
func (s *AppState[T]) GetHandle(id window.ID) platform.WindowHandle {
	s.checkWindow("app.AppState.GetHandle", id)
	if h := s.handlers[id]; h != nil {
		return h.handle
	}
	return platform.WindowHandle{}
}

func (s *AppState[T]) WindowEvent(id window.ID, ctx *widget.EventCtx[T], ev widget.Event) {
	s.windows.Event(id, ctx, ev, &s.data, s.env)
}

func (s *AppState[T]) WindowUpdate(id window.ID, ctx *widget.UpdateCtx[T]) {
	s.windows.Update(id, ctx, s.data, s.env)
}

func (s *AppState[T]) WindowLayout(id window.ID, ctx *widget.LayoutCtx[T]) {
	s.windows.Layout(id, ctx, s.data, s.env)
}

func (s *AppState[T]) WindowPaint(id window.ID, ctx *widget.PaintCtx[T]) {
	s.windows.Paint(id, ctx, s.data, s.env)
}

func (s *AppState[T]) WindowHasActive(id window.ID) bool {
	return s.windows.HasActive(id)
}

// DoEvent runs one dispatch cycle for ev on window id.
//
// The event pass may mutate the data and request focus, in which case a
// FocusChanged event follows. If anything asked for a repaint the update
// pass runs, and the shell is invalidated when the update pass asks for it.
func (s *AppState[T]) DoEvent(id window.ID, ev widget.Event) {
	handle := s.GetHandle(id)

	var base widget.BaseState
	s.WindowEvent(id, widget.NewEventCtx(s.arena, s.theme, handle, uint32(id), &base), ev)
	inval := base.NeedsInvalidate()
	anim := base.AnimRequested()

	if base.FocusRequested() {
		var focus widget.BaseState
		s.WindowEvent(id, widget.NewEventCtx(s.arena, s.theme, handle, uint32(id), &focus),
			widget.FocusChangedEvent(true))
		inval = inval || focus.NeedsInvalidate()
		anim = anim || focus.AnimRequested()
	}
	s.anim[id] = anim

	if !inval {
		return
	}
	ctx := widget.NewUpdateCtx(s.arena, s.theme, handle, uint32(id))
	s.WindowUpdate(id, ctx)
	if ctx.NeedsInvalidate() {
		handle.Invalidate()
	}
}

// Paint lays window id out against rc's text factory, clears it with the
// window background and paints it. It reports whether the last event cycle
// asked for another frame.
func (s *AppState[T]) Paint(id window.ID, rc render.RenderContext) bool {
	s.WindowLayout(id, widget.NewLayoutCtx(s.arena, s.theme, rc.Text(), uint32(id)))
	rc.Clear(s.theme.WindowBackground)
	s.WindowPaint(id, widget.NewPaintCtx(s.arena, s.theme, rc, uint32(id)))
	anim := s.anim[id]
	s.anim[id] = false
	return anim
}

// HandleTouch delivers a left press and release at (x, y) to window 1.
func (s *AppState[T]) HandleTouch(x, y float64) {
	pos := geometry.Point{X: x, Y: y}
	s.DoEvent(1, widget.MouseDownEvent(platform.MouseEvent{Pos: pos, Count: 1, Button: platform.MouseLeft}))
	s.DoEvent(1, widget.MouseUpEvent(platform.MouseEvent{Pos: pos, Count: 0, Button: platform.MouseLeft}))
}

func (s *AppState[T]) checkWindow(op string, id window.ID) {
	if id == 0 || int(id) >= len(s.handlers) {
		errors.Fatal(op, errors.KindCapacity, &errors.CapacityError{
			Resource: "windows",
			Limit:    len(s.handlers) - 1,
			Index:    int(id),
		})
	}
}

func (s *AppState[T]) String() string {
	return fmt.Sprintf("AppState{widgets: %d/%d, windows: %d/%d}",
		s.arena.Len(), s.arena.Cap(), s.nextWindow, s.windows.Cap()-1)
}
