package app

import (
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/widget"
	"github.com/go-drift/fixedui/pkg/window"
)

// Handler adapts shell callbacks for one window into AppState cycles.
type Handler[T comparable] struct {
	state  *AppState[T]
	id     window.ID
	handle platform.WindowHandle
}

var _ platform.WinHandler = (*Handler[struct{}])(nil)

// NewHandler returns the handler for window id.
func NewHandler[T comparable](state *AppState[T], id window.ID) *Handler[T] {
	return &Handler[T]{state: state, id: id}
}

func (h *Handler[T]) ID() window.ID                 { return h.id }
func (h *Handler[T]) Handle() platform.WindowHandle { return h.handle }

func (h *Handler[T]) Connect(handle platform.WindowHandle) { h.handle = handle }

func (h *Handler[T]) Paint(rc render.RenderContext) bool {
	return h.state.Paint(h.id, rc)
}

func (h *Handler[T]) Size(width, height float64) {
	h.state.DoEvent(h.id, widget.SizeEvent(geometry.Size{Width: width, Height: height}))
}

func (h *Handler[T]) MouseDown(ev platform.MouseEvent) {
	h.state.DoEvent(h.id, widget.MouseDownEvent(ev))
}

func (h *Handler[T]) MouseUp(ev platform.MouseEvent) {
	h.state.DoEvent(h.id, widget.MouseUpEvent(ev))
}

func (h *Handler[T]) MouseMove(ev platform.MouseEvent) {
	h.state.DoEvent(h.id, widget.MouseMovedEvent(ev))
}

func (h *Handler[T]) GotFocus() {
	h.state.focused = h.id
}
