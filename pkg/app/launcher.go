package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-drift/fixedui/pkg/config"
	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/widget"
	"github.com/go-drift/fixedui/pkg/window"
)

// Builder adds a window's widget tree to the arena and returns its root.
type Builder[T comparable] func(a *widget.Arena[T]) widget.WidgetRef[T]

// WindowDesc describes a window to open at launch.
type WindowDesc[T comparable] struct {
	builder Builder[T]
	size    geometry.Size
	title   string
}

// NewWindowDesc returns a description whose tree is built by builder.
func NewWindowDesc[T comparable](builder Builder[T]) *WindowDesc[T] {
	return &WindowDesc[T]{builder: builder}
}

// WindowSize sets the initial window size. The configured display size is
// used when it is not set.
func (d *WindowDesc[T]) WindowSize(size geometry.Size) *WindowDesc[T] {
	d.size = size
	return d
}

// Title sets the window title. The application name is used when it is not
// set.
func (d *WindowDesc[T]) Title(title string) *WindowDesc[T] {
	d.title = title
	return d
}

// AppLauncher configures and starts an application.
type AppLauncher[T comparable] struct {
	windows      []*WindowDesc[T]
	cfg          *config.Config
	shell        platform.Shell
	simpleLogger bool
	state        *AppState[T]
}

// NewAppLauncher returns a launcher opening the given windows.
func NewAppLauncher[T comparable](windows ...*WindowDesc[T]) *AppLauncher[T] {
	return &AppLauncher[T]{windows: windows}
}

// WithWindow adds another window.
func (l *AppLauncher[T]) WithWindow(desc *WindowDesc[T]) *AppLauncher[T] {
	l.windows = append(l.windows, desc)
	return l
}

// WithConfig replaces the default configuration.
func (l *AppLauncher[T]) WithConfig(cfg *config.Config) *AppLauncher[T] {
	l.cfg = cfg
	return l
}

// WithShell selects the platform shell. A headless shell is used otherwise.
func (l *AppLauncher[T]) WithShell(shell platform.Shell) *AppLauncher[T] {
	l.shell = shell
	return l
}

// UseSimpleLogger installs a development logger at the configured level
// when the application launches.
func (l *AppLauncher[T]) UseSimpleLogger() *AppLauncher[T] {
	l.simpleLogger = true
	return l
}

// State returns the running application state, or nil before Launch.
func (l *AppLauncher[T]) State() *AppState[T] { return l.state }

// Shell returns the shell windows were created on.
func (l *AppLauncher[T]) Shell() platform.Shell { return l.shell }

// Launch builds every window's widget tree with data as the initial
// application data and opens the windows on the shell. Shell failures are
// returned as *platform.Error.
func (l *AppLauncher[T]) Launch(data T) error {
	cfg := l.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if l.simpleLogger {
		if err := installLogger(cfg); err != nil {
			return err
		}
	}
	th, err := cfg.ResolveTheme()
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	if len(l.windows) == 0 {
		return fmt.Errorf("no windows to launch")
	}
	if l.shell == nil {
		l.shell = platform.NewHeadless()
	}

	arena := widget.NewArena[T](cfg.Capacity.Widgets)
	state := NewAppState(arena, cfg.Capacity.Windows, th, data)
	display := geometry.Size{Width: float64(cfg.Display.Width), Height: float64(cfg.Display.Height)}
	log := errors.Logger()

	for _, desc := range l.windows {
		id := state.AllocateWindowID()
		root := desc.builder(arena)
		state.AddWindow(id, window.New(root))
		h := NewHandler(state, id)
		state.AddHandler(id, h)

		size := desc.size
		if size.IsEmpty() {
			size = display
		}
		title := desc.title
		if title == "" {
			title = cfg.App.Name
		}
		handle, err := platform.NewWindowBuilder(l.shell).
			SetHandler(h).
			SetSize(size).
			SetTitle(title).
			Build()
		if err != nil {
			return err
		}
		handle.Show()
		log.Debug("window opened",
			zap.Uint32("window", uint32(id)),
			zap.String("title", title),
			zap.Float64("width", size.Width),
			zap.Float64("height", size.Height),
			zap.Stringer("root", arena.Kind(root.ID())))
	}

	log.Info("application launched",
		zap.Int("windows", len(l.windows)),
		zap.Int("widgets", arena.Len()),
		zap.Int("widget_capacity", arena.Cap()))
	l.state = state
	return nil
}

func installLogger(cfg *config.Config) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	errors.SetLogger(logger)
	return nil
}
