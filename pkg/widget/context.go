package widget

import (
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/theme"
)

// EventCtx is handed to widgets during the event pass. Each widget sees a
// context whose flags apply to its own BaseState.
type EventCtx[T comparable] struct {
	arena    *Arena[T]
	theme    *theme.Theme
	window   platform.WindowHandle
	windowID uint32

	base      *BaseState
	hadActive bool
	isHandled bool
	isRoot    bool
}

// NewEventCtx returns the root context for one event dispatch. base
// collects the flags bubbled up from the tree.
func NewEventCtx[T comparable](arena *Arena[T], th *theme.Theme, window platform.WindowHandle, windowID uint32, base *BaseState) *EventCtx[T] {
	return &EventCtx[T]{
		arena:    arena,
		theme:    th,
		window:   window,
		windowID: windowID,
		base:     base,
		isRoot:   true,
	}
}

// Invalidate requests a repaint.
func (c *EventCtx[T]) Invalidate() { c.base.needsInval = true }

// SetActive grabs or releases the pointer. An active widget receives mouse
// events even when the pointer is outside it.
func (c *EventCtx[T]) SetActive(active bool) { c.base.isActive = active }

func (c *EventCtx[T]) IsActive() bool { return c.base.isActive }
func (c *EventCtx[T]) IsHot() bool    { return c.base.isHot }
func (c *EventCtx[T]) HasFocus() bool { return c.base.hasFocus }

// SetHandled stops the event from reaching later siblings.
func (c *EventCtx[T]) SetHandled()     { c.isHandled = true }
func (c *EventCtx[T]) IsHandled() bool { return c.isHandled }

// RequestFocus asks for focus. It is granted by a FocusChanged event
// dispatched after the current one.
func (c *EventCtx[T]) RequestFocus() { c.base.requestFocus = true }

// RequestAnimFrame asks the shell for another frame.
func (c *EventCtx[T]) RequestAnimFrame() { c.base.requestAnim = true }

func (c *EventCtx[T]) Window() platform.WindowHandle { return c.window }
func (c *EventCtx[T]) WindowID() uint32              { return c.windowID }
func (c *EventCtx[T]) Theme() *theme.Theme           { return c.theme }

func (c *EventCtx[T]) child(base *BaseState) EventCtx[T] {
	return EventCtx[T]{
		arena:     c.arena,
		theme:     c.theme,
		window:    c.window,
		windowID:  c.windowID,
		base:      base,
		hadActive: base.hasActive,
	}
}

// LayoutCtx is handed to widgets during layout.
type LayoutCtx[T comparable] struct {
	arena    *Arena[T]
	theme    *theme.Theme
	text     render.Text
	windowID uint32
}

// NewLayoutCtx returns a layout context measuring text with text.
func NewLayoutCtx[T comparable](arena *Arena[T], th *theme.Theme, text render.Text, windowID uint32) *LayoutCtx[T] {
	return &LayoutCtx[T]{arena: arena, theme: th, text: text, windowID: windowID}
}

func (c *LayoutCtx[T]) Text() render.Text   { return c.text }
func (c *LayoutCtx[T]) Theme() *theme.Theme { return c.theme }
func (c *LayoutCtx[T]) WindowID() uint32    { return c.windowID }

// PaintCtx is handed to widgets during paint.
type PaintCtx[T comparable] struct {
	arena    *Arena[T]
	theme    *theme.Theme
	rc       render.RenderContext
	windowID uint32
}

// NewPaintCtx returns a paint context drawing into rc.
func NewPaintCtx[T comparable](arena *Arena[T], th *theme.Theme, rc render.RenderContext, windowID uint32) *PaintCtx[T] {
	return &PaintCtx[T]{arena: arena, theme: th, rc: rc, windowID: windowID}
}

func (c *PaintCtx[T]) RenderContext() render.RenderContext { return c.rc }
func (c *PaintCtx[T]) Text() render.Text                   { return c.rc.Text() }
func (c *PaintCtx[T]) Theme() *theme.Theme                 { return c.theme }
func (c *PaintCtx[T]) WindowID() uint32                    { return c.windowID }

// UpdateCtx is handed to widgets during the update pass.
type UpdateCtx[T comparable] struct {
	arena      *Arena[T]
	theme      *theme.Theme
	window     platform.WindowHandle
	windowID   uint32
	needsInval bool
}

// NewUpdateCtx returns an update context for one window.
func NewUpdateCtx[T comparable](arena *Arena[T], th *theme.Theme, window platform.WindowHandle, windowID uint32) *UpdateCtx[T] {
	return &UpdateCtx[T]{arena: arena, theme: th, window: window, windowID: windowID}
}

// Invalidate requests a repaint.
func (c *UpdateCtx[T]) Invalidate() { c.needsInval = true }

// NeedsInvalidate reports whether any widget requested a repaint.
func (c *UpdateCtx[T]) NeedsInvalidate() bool { return c.needsInval }

func (c *UpdateCtx[T]) Window() platform.WindowHandle { return c.window }
func (c *UpdateCtx[T]) WindowID() uint32              { return c.windowID }
func (c *UpdateCtx[T]) Theme() *theme.Theme           { return c.theme }
