package platform

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/fixedui/pkg/geometry"
)

// DefaultWindowSize is the panel size used when none is set.
var DefaultWindowSize = geometry.Size{Width: 240, Height: 240}

// Sentinel errors for window creation.
var (
	ErrNoShell     = stderrors.New("platform: no shell")
	ErrNoHandler   = stderrors.New("platform: window has no handler")
	ErrEmptySize   = stderrors.New("platform: window size is empty")
	ErrShellClosed = stderrors.New("platform: shell closed")
)

// Error is returned when the shell cannot create a window.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WindowBuilder collects window options and creates the window.
type WindowBuilder struct {
	shell   Shell
	handler WinHandler
	size    geometry.Size
	title   string
}

// NewWindowBuilder returns a builder for shell with the default size.
func NewWindowBuilder(shell Shell) *WindowBuilder {
	return &WindowBuilder{shell: shell, size: DefaultWindowSize}
}

func (b *WindowBuilder) SetHandler(h WinHandler) *WindowBuilder {
	b.handler = h
	return b
}

func (b *WindowBuilder) SetSize(size geometry.Size) *WindowBuilder {
	b.size = size
	return b
}

func (b *WindowBuilder) SetTitle(title string) *WindowBuilder {
	b.title = title
	return b
}

// Build creates the window, connects the handler to its handle and
// delivers the initial size.
func (b *WindowBuilder) Build() (WindowHandle, error) {
	const op = "platform.WindowBuilder.Build"
	switch {
	case b.shell == nil:
		return WindowHandle{}, &Error{Op: op, Err: ErrNoShell}
	case b.handler == nil:
		return WindowHandle{}, &Error{Op: op, Err: ErrNoHandler}
	case b.size.IsEmpty():
		return WindowHandle{}, &Error{Op: op, Err: ErrEmptySize}
	}
	w, err := b.shell.CreateWindow(WindowOptions{Handler: b.handler, Size: b.size, Title: b.title})
	if err != nil {
		return WindowHandle{}, &Error{Op: op, Err: err}
	}
	handle := NewWindowHandle(w)
	b.handler.Connect(handle)
	b.handler.Size(b.size.Width, b.size.Height)
	return handle, nil
}
