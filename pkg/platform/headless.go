package platform

import (
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/render"
)

// Headless is an in-memory Shell. Windows never reach a display; tests and
// offscreen renderers drive them directly.
type Headless struct {
	windows []*HeadlessWindow
	closed  bool
}

// NewHeadless returns a shell with no windows.
func NewHeadless() *Headless {
	return &Headless{}
}

// CreateWindow records a new window. It fails once the shell is closed.
func (h *Headless) CreateWindow(opts WindowOptions) (Window, error) {
	if h.closed {
		return nil, ErrShellClosed
	}
	w := &HeadlessWindow{handler: opts.Handler, size: opts.Size, title: opts.Title}
	h.windows = append(h.windows, w)
	return w, nil
}

// Close makes further CreateWindow calls fail.
func (h *Headless) Close() {
	h.closed = true
}

// Windows returns the created windows in creation order.
func (h *Headless) Windows() []*HeadlessWindow {
	return h.windows
}

// Window returns the i-th created window, or nil.
func (h *Headless) Window(i int) *HeadlessWindow {
	if i < 0 || i >= len(h.windows) {
		return nil
	}
	return h.windows[i]
}

// HeadlessWindow counts the calls made on its handle and forwards input.
type HeadlessWindow struct {
	handler WinHandler
	size    geometry.Size
	title   string

	visible       bool
	closed        bool
	invalidations int
	raises        int
}

func (w *HeadlessWindow) Show()                 { w.visible = true }
func (w *HeadlessWindow) Close()                { w.visible, w.closed = false, true }
func (w *HeadlessWindow) BringToFrontAndFocus() { w.raises++ }
func (w *HeadlessWindow) Invalidate()           { w.invalidations++ }

// Invalidations returns how many times Invalidate was called.
func (w *HeadlessWindow) Invalidations() int { return w.invalidations }

// Raises returns how many times BringToFrontAndFocus was called.
func (w *HeadlessWindow) Raises() int { return w.raises }

func (w *HeadlessWindow) Visible() bool       { return w.visible }
func (w *HeadlessWindow) Closed() bool        { return w.closed }
func (w *HeadlessWindow) Title() string       { return w.title }
func (w *HeadlessWindow) Size() geometry.Size { return w.size }
func (w *HeadlessWindow) Handler() WinHandler { return w.handler }

// Paint runs the handler's paint pass on rc.
func (w *HeadlessWindow) Paint(rc render.RenderContext) bool {
	return w.handler.Paint(rc)
}

// Resize delivers a size change.
func (w *HeadlessWindow) Resize(size geometry.Size) {
	w.size = size
	w.handler.Size(size.Width, size.Height)
}

func (w *HeadlessWindow) MouseDown(ev MouseEvent) { w.handler.MouseDown(ev) }
func (w *HeadlessWindow) MouseUp(ev MouseEvent)   { w.handler.MouseUp(ev) }
func (w *HeadlessWindow) MouseMove(ev MouseEvent) { w.handler.MouseMove(ev) }
func (w *HeadlessWindow) Focus()                  { w.handler.GotFocus() }

// Click delivers a left press and release at p.
func (w *HeadlessWindow) Click(p geometry.Point) {
	w.handler.MouseDown(MouseEvent{Pos: p, Count: 1, Button: MouseLeft})
	w.handler.MouseUp(MouseEvent{Pos: p, Count: 0, Button: MouseLeft})
}
