package cmd

import (
	"fmt"

	"github.com/go-drift/fixedui/pkg/app"
	"github.com/go-drift/fixedui/pkg/config"
	"github.com/go-drift/fixedui/pkg/framebuffer"
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/widget"
	"github.com/go-drift/fixedui/showcase"
)

// session is one showcase demo running on a headless shell that paints
// into a framebuffer.
type session struct {
	demo   showcase.Demo
	state  *app.AppState[uint32]
	shell  *platform.Headless
	window *platform.HeadlessWindow
	canvas *framebuffer.Canvas
	root   widget.WidgetRef[uint32]
}

// newSession launches demo. With logs set, a development logger writes to
// stderr.
func newSession(cfg *config.Config, demo showcase.Demo, logs bool) (*session, error) {
	shell := platform.NewHeadless()
	launcher := app.NewAppLauncher(app.NewWindowDesc(demo.Builder).Title(demo.Title)).
		WithConfig(cfg).
		WithShell(shell)
	if logs {
		launcher.UseSimpleLogger()
	}
	if err := launcher.Launch(0); err != nil {
		return nil, err
	}

	state := launcher.State()
	w, ok := state.Windows().Get(1)
	if !ok {
		return nil, fmt.Errorf("demo %q opened no window", demo.Name)
	}
	s := &session{
		demo:   demo,
		state:  state,
		shell:  shell,
		window: shell.Window(0),
		canvas: framebuffer.New(cfg.Display.Width, cfg.Display.Height),
		root:   w.Root(),
	}
	s.paint()
	return s, nil
}

// paint redraws the window into the framebuffer.
func (s *session) paint() {
	s.canvas.Reset()
	s.window.Paint(s.canvas)
}

// buttonCenter returns the centre of the first button in window
// coordinates. Layout must have run.
func (s *session) buttonCenter() (geometry.Point, bool) {
	a := s.state.Arena()
	button, ok := a.FindKind(s.root, widget.KindButton)
	if !ok {
		return geometry.Point{}, false
	}
	rect, ok := widget.ScreenRect(a, s.root, button)
	if !ok {
		return geometry.Point{}, false
	}
	return rect.Center(), true
}

// tap clicks at p and repaints.
func (s *session) tap(p geometry.Point) {
	s.window.Click(p)
	s.paint()
}

func (s *session) close() {
	s.shell.Close()
}

func lookupDemo(args []string) (showcase.Demo, []string, error) {
	name := showcase.DefaultDemo
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		name, args = args[0], args[1:]
	}
	demo, ok := showcase.Lookup(name)
	if !ok {
		return showcase.Demo{}, nil, fmt.Errorf("unknown demo %q (available: %v)", name, showcase.Names())
	}
	return demo, args, nil
}
