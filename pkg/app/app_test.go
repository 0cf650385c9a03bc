package app

import (
	stderrors "errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/go-drift/fixedui/pkg/config"
	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/widget"
)

func helloCounter(a *widget.Arena[uint32]) widget.WidgetRef[uint32] {
	text := widget.NewLocalizedString[uint32]("hello-counter").
		WithArg("count", func(data uint32, _ widget.Env) widget.ArgValue { return widget.U32Arg(data) })
	label := widget.Centered(a, widget.NewUniformPadding(a, 5, widget.AddLocalizedLabel(a, text)))
	button := widget.NewUniformPadding(a, 5, widget.AddButton(a, "increment",
		func(_ *widget.EventCtx[uint32], data *uint32, _ widget.Env) { *data++ }))
	return widget.Column(a, widget.Flexible(label, 1), widget.Flexible(button, 1))
}

func launch(t *testing.T, descs ...*WindowDesc[uint32]) (*AppLauncher[uint32], *platform.Headless) {
	t.Helper()
	shell := platform.NewHeadless()
	l := NewAppLauncher(descs...).WithShell(shell)
	if err := l.Launch(0); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	return l, shell
}

func texts(rec *render.Recorder) []string {
	var out []string
	for _, op := range rec.Filter("text") {
		out = append(out, op.Params["text"].(string))
	}
	return out
}

func TestHelloCounterTap(t *testing.T) {
	l, shell := launch(t, NewWindowDesc(helloCounter))
	win := shell.Window(0)
	if !win.Visible() || win.Size() != (geometry.Size{Width: 240, Height: 240}) {
		t.Fatalf("window visible=%v size=%v", win.Visible(), win.Size())
	}

	rec := render.NewRecorder()
	win.Paint(rec)
	if got := texts(rec); len(got) != 2 || got[0] != "hello-counter count=0" || got[1] != "increment" {
		t.Fatalf("texts = %v", got)
	}

	l.State().HandleTouch(120, 180)

	if got := l.State().Data(); got != 1 {
		t.Errorf("data = %d, want 1", got)
	}
	if got := win.Invalidations(); got != 1 {
		t.Errorf("invalidations = %d, want 1", got)
	}

	rec.Reset()
	win.Paint(rec)
	if got := texts(rec); got[0] != "hello-counter count=1" {
		t.Errorf("texts after tap = %v", got)
	}
}

func TestTapOutsideButtonChangesNothing(t *testing.T) {
	l, shell := launch(t, NewWindowDesc(helloCounter))
	win := shell.Window(0)
	win.Paint(render.NewRecorder())

	l.State().HandleTouch(120, 60)
	if l.State().Data() != 0 || win.Invalidations() != 0 {
		t.Errorf("data=%d invalidations=%d", l.State().Data(), win.Invalidations())
	}
}

func TestPaintClearsAndClips(t *testing.T) {
	_, shell := launch(t, NewWindowDesc(helloCounter))
	rec := render.NewRecorder()
	shell.Window(0).Paint(rec)

	ops := rec.Ops()
	if len(ops) < 3 || ops[0].Op != "clear" || ops[1].Op != "save" || ops[2].Op != "clip" {
		t.Fatalf("ops = %v", ops[:min(len(ops), 3)])
	}
	if ops[0].Params["color"] != "#292929" {
		t.Errorf("background = %v", ops[0].Params["color"])
	}
}

func TestButtonScreenRect(t *testing.T) {
	l, shell := launch(t, NewWindowDesc(helloCounter))
	shell.Window(0).Paint(render.NewRecorder())

	a := l.State().Arena()
	w, _ := l.State().Windows().Get(1)
	var button widget.WidgetRef[uint32]
	a.Walk(w.Root(), func(ref widget.WidgetRef[uint32], _ int) bool {
		if a.Kind(ref.ID()) == widget.KindButton {
			button = ref
		}
		return true
	})
	got, ok := widget.ScreenRect(a, w.Root(), button)
	if !ok || got != (geometry.Rect{Left: 5, Top: 125, Right: 235, Bottom: 235}) {
		t.Errorf("button rect = %v", got)
	}
}

func TestWindowsAreIndependent(t *testing.T) {
	small := NewWindowDesc(func(a *widget.Arena[uint32]) widget.WidgetRef[uint32] {
		return widget.AddButton(a, "x", func(_ *widget.EventCtx[uint32], d *uint32, _ widget.Env) { *d += 10 })
	}).WindowSize(geometry.Size{Width: 50, Height: 20}).Title("second")

	l, shell := launch(t, NewWindowDesc(helloCounter), small)
	first, second := shell.Window(0), shell.Window(1)
	if second.Title() != "second" || second.Size() != (geometry.Size{Width: 50, Height: 20}) {
		t.Fatalf("second window %q %v", second.Title(), second.Size())
	}
	first.Paint(render.NewRecorder())
	second.Paint(render.NewRecorder())

	second.Click(geometry.Point{X: 10, Y: 10})
	if l.State().Data() != 10 {
		t.Errorf("data = %d, want 10", l.State().Data())
	}
	if first.Invalidations() != 0 {
		t.Errorf("first window invalidated %d times", first.Invalidations())
	}

	second.Focus()
	if l.State().FocusedWindow() != 2 {
		t.Errorf("focused = %d", l.State().FocusedWindow())
	}
}

func TestHasActiveDuringPress(t *testing.T) {
	l, shell := launch(t, NewWindowDesc(helloCounter))
	win := shell.Window(0)
	win.Paint(render.NewRecorder())

	win.MouseDown(platform.MouseEvent{Pos: geometry.Point{X: 120, Y: 180}, Count: 1})
	if !l.State().WindowHasActive(1) {
		t.Error("expected active widget while pressed")
	}
	win.MouseUp(platform.MouseEvent{Pos: geometry.Point{X: 120, Y: 180}})
	if l.State().WindowHasActive(1) {
		t.Error("expected no active widget after release")
	}
}

func TestLaunchReturnsPlatformError(t *testing.T) {
	shell := platform.NewHeadless()
	shell.Close()
	err := NewAppLauncher(NewWindowDesc(helloCounter)).WithShell(shell).Launch(0)

	var perr *platform.Error
	if !stderrors.As(err, &perr) || !stderrors.Is(err, platform.ErrShellClosed) {
		t.Fatalf("err = %v, want platform error", err)
	}
}

func TestLaunchRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Capacity.Windows = 1
	err := NewAppLauncher(NewWindowDesc(helloCounter)).WithConfig(cfg).Launch(0)
	if err == nil || !strings.Contains(err.Error(), "capacity.windows") {
		t.Errorf("err = %v", err)
	}

	if err := NewAppLauncher[uint32]().Launch(0); err == nil {
		t.Error("expected error without windows")
	}
}

func TestLaunchTooManyWindowsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	descs := []*WindowDesc[uint32]{NewWindowDesc(helloCounter), NewWindowDesc(helloCounter), NewWindowDesc(helloCounter)}
	cfg := config.Default()
	cfg.Capacity.Widgets = 30
	NewAppLauncher(descs...).WithConfig(cfg).Launch(0)
}

func TestWidgetCapacityExceededPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	cfg := config.Default()
	cfg.Capacity.Widgets = 5
	NewAppLauncher(NewWindowDesc(helloCounter)).WithConfig(cfg).Launch(0)
}

func TestAddHandlerOutOfBoundsPanics(t *testing.T) {
	s := NewAppState(widget.NewArena[uint32](1), 2, nil, 0)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	s.AddHandler(2, NewHandler(s, 2))
}

func TestSetData(t *testing.T) {
	l, shell := launch(t, NewWindowDesc(helloCounter))
	l.State().SetData(41)
	rec := render.NewRecorder()
	shell.Window(0).Paint(rec)
	if got := texts(rec); got[0] != "hello-counter count=41" {
		t.Errorf("texts = %v", got)
	}
}

func TestUseSimpleLogger(t *testing.T) {
	t.Cleanup(func() { errors.SetLogger(nil) })
	cfg := config.Default()
	cfg.Log.Level = "debug"
	l := NewAppLauncher(NewWindowDesc(helloCounter)).WithConfig(cfg).UseSimpleLogger()
	if err := l.Launch(0); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if !errors.Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected a debug-enabled logger")
	}
}

func TestActionFocusAndAnimationRequests(t *testing.T) {
	build := func(a *widget.Arena[uint32]) widget.WidgetRef[uint32] {
		return widget.NewUniformPadding(a, 5, widget.AddButton(a, "focus",
			func(ctx *widget.EventCtx[uint32], _ *uint32, _ widget.Env) {
				ctx.RequestFocus()
				ctx.RequestAnimFrame()
			}))
	}
	l, shell := launch(t, NewWindowDesc(build))
	win := shell.Window(0)
	win.Paint(render.NewRecorder())

	l.State().HandleTouch(120, 120)

	w, ok := l.State().Windows().Get(1)
	if !ok {
		t.Fatal("window 1 not registered")
	}
	a := l.State().Arena()
	button, ok := a.FindKind(w.Root(), widget.KindButton)
	if !ok {
		t.Fatal("button not found")
	}
	st := a.State(button.ID())
	if !st.HasFocus() {
		t.Error("expected the button to hold focus after its action requested it")
	}
	if st.FocusRequested() || a.State(w.Root().ID()).FocusRequested() {
		t.Error("expected focus requests to be cleared after FocusChanged")
	}

	if !win.Paint(render.NewRecorder()) {
		t.Error("first paint after the tap should report the animation request")
	}
	if win.Paint(render.NewRecorder()) {
		t.Error("animation request should be consumed by the first paint")
	}
}
