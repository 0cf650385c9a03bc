package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/fixedui/pkg/app"
	"github.com/go-drift/fixedui/pkg/config"
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/widget"
	"github.com/go-drift/fixedui/pkg/window"
)

const (
	// DefaultTestWidth is the default width of the test window.
	DefaultTestWidth = config.DefaultWidth
	// DefaultTestHeight is the default height of the test window.
	DefaultTestHeight = config.DefaultHeight
)

// ErrNotLaunched is returned by operations that need a running window
// before Pump or a gesture has launched one.
var ErrNotLaunched = errors.New("widget tester: application not launched")

// WidgetTester runs one widget tree in a headless window. The tree is
// built, the window opened and a first frame painted on the first Pump or
// gesture; SetSize and SetConfig must be called before that.
type WidgetTester[T comparable] struct {
	tb       testing.TB
	build    app.Builder[T]
	data     T
	size     geometry.Size
	cfg      *config.Config
	shell    *platform.Headless
	launcher *app.AppLauncher[T]
	recorder *render.Recorder
}

// NewWidgetTester returns a tester for the tree built by build, starting
// from data. It closes the shell via tb.Cleanup.
func NewWidgetTester[T comparable](tb testing.TB, build app.Builder[T], data T) *WidgetTester[T] {
	tester := &WidgetTester[T]{
		tb:       tb,
		build:    build,
		data:     data,
		size:     geometry.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		shell:    platform.NewHeadless(),
		recorder: render.NewRecorder(),
	}
	tb.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup closes the headless shell.
func (t *WidgetTester[T]) Cleanup() {
	t.shell.Close()
}

// SetSize sets the window size.
func (t *WidgetTester[T]) SetSize(size geometry.Size) {
	t.size = size
}

// SetConfig replaces the default configuration.
func (t *WidgetTester[T]) SetConfig(cfg *config.Config) {
	t.cfg = cfg
}

func (t *WidgetTester[T]) launch() error {
	if t.launcher != nil {
		return nil
	}
	l := app.NewAppLauncher(app.NewWindowDesc(t.build).WindowSize(t.size)).WithShell(t.shell)
	if t.cfg != nil {
		l.WithConfig(t.cfg)
	}
	if err := l.Launch(t.data); err != nil {
		return err
	}
	t.launcher = l
	// First frame, so gestures can hit-test before an explicit Pump.
	t.Window().Paint(t.recorder)
	return nil
}

// Pump lays out and paints one frame into the recorder, discarding the
// operations of the previous frame.
func (t *WidgetTester[T]) Pump() error {
	if err := t.launch(); err != nil {
		return err
	}
	t.recorder.Reset()
	t.Window().Paint(t.recorder)
	return nil
}

// Recorder returns the recorder holding the last frame's operations.
func (t *WidgetTester[T]) Recorder() *render.Recorder {
	return t.recorder
}

// State returns the application state, or nil before launch.
func (t *WidgetTester[T]) State() *app.AppState[T] {
	if t.launcher == nil {
		return nil
	}
	return t.launcher.State()
}

// Window returns the headless window, or nil before launch.
func (t *WidgetTester[T]) Window() *platform.HeadlessWindow {
	return t.shell.Window(0)
}

// Data returns the current application data.
func (t *WidgetTester[T]) Data() T {
	if s := t.State(); s != nil {
		return s.Data()
	}
	return t.data
}

// Invalidations returns how many times the window was invalidated.
func (t *WidgetTester[T]) Invalidations() int {
	if w := t.Window(); w != nil {
		return w.Invalidations()
	}
	return 0
}

// Root returns the root widget of the window.
func (t *WidgetTester[T]) Root() (widget.WidgetRef[T], error) {
	s := t.State()
	if s == nil {
		return widget.WidgetRef[T]{}, ErrNotLaunched
	}
	w, ok := s.Windows().Get(window.ID(1))
	if !ok {
		return widget.WidgetRef[T]{}, ErrNotLaunched
	}
	return w.Root(), nil
}

// Find evaluates a finder against the window's widget tree.
func (t *WidgetTester[T]) Find(finder Finder[T]) FinderResult[T] {
	root, err := t.Root()
	if err != nil {
		return FinderResult[T]{finder: finder}
	}
	return FinderResult[T]{
		refs:   finder.Evaluate(t.State().Arena(), root),
		finder: finder,
	}
}
