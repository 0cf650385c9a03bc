// Package platform is the boundary between the toolkit and the host display
// shell: input events flow in through WinHandler, and invalidation requests
// flow out through WindowHandle.
package platform

import (
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/render"
)

// MouseButton identifies the pressed button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Modifiers is a bit set of held keyboard modifiers.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// MouseEvent is a pointer event in window coordinates.
type MouseEvent struct {
	Pos geometry.Point
	// Count is the click count: 1 for a press, 0 for a release.
	Count  int
	Button MouseButton
	Mods   Modifiers
}

// WinHandler receives callbacks from the shell for one window.
// All calls arrive on the shell's event goroutine.
type WinHandler interface {
	// Connect hands the handler its window handle before any other call.
	Connect(handle WindowHandle)
	// Paint lays out and draws the window. It returns true when another
	// frame is wanted for animation.
	Paint(rc render.RenderContext) bool
	// Size reports the window's new size in pixels.
	Size(width, height float64)
	MouseDown(ev MouseEvent)
	MouseUp(ev MouseEvent)
	MouseMove(ev MouseEvent)
	GotFocus()
}

// Window is the shell side of a window handle.
type Window interface {
	Show()
	Close()
	BringToFrontAndFocus()
	// Invalidate schedules a repaint.
	Invalidate()
}

// WindowHandle is a copyable reference to a shell window. The zero handle
// ignores every call.
type WindowHandle struct {
	w Window
}

// NewWindowHandle wraps a shell window.
func NewWindowHandle(w Window) WindowHandle {
	return WindowHandle{w: w}
}

// IsValid reports whether the handle refers to a window.
func (h WindowHandle) IsValid() bool {
	return h.w != nil
}

func (h WindowHandle) Show() {
	if h.w != nil {
		h.w.Show()
	}
}

func (h WindowHandle) Close() {
	if h.w != nil {
		h.w.Close()
	}
}

func (h WindowHandle) BringToFrontAndFocus() {
	if h.w != nil {
		h.w.BringToFrontAndFocus()
	}
}

func (h WindowHandle) Invalidate() {
	if h.w != nil {
		h.w.Invalidate()
	}
}

// WindowOptions describes a window for Shell.CreateWindow.
type WindowOptions struct {
	Handler WinHandler
	Size    geometry.Size
	Title   string
}

// Shell creates windows on a host display.
type Shell interface {
	CreateWindow(opts WindowOptions) (Window, error)
}
