package errors

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testHandler struct {
	errors []*Error
	panics []*PanicError
}

func (h *testHandler) HandleError(err *Error)      { h.errors = append(h.errors, err) }
func (h *testHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "widget.Arena.AllocateID",
		Kind: KindCapacity,
		Err:  &CapacityError{Resource: "widgets", Limit: 10, Index: 11},
	}
	want := "widget.Arena.AllocateID [capacity]: widgets capacity exceeded: index 11, limit 10"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := &LookupError{Resource: "widget", ID: 4}
	err := &Error{Op: "widget.Arena.slot", Kind: KindLookup, Err: inner}

	var lookup *LookupError
	if !stderrors.As(err, &lookup) {
		t.Fatal("expected errors.As to find the LookupError")
	}
	if lookup.ID != 4 {
		t.Errorf("expected ID 4, got %d", lookup.ID)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindCapacity, "capacity"},
		{KindLookup, "lookup"},
		{KindPlatform, "platform"},
		{KindConfig, "config"},
		{ErrorKind(99), "unknown"},
		{ErrorKind(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "app.Handler.MouseUp"
	if got, want := err.Error(), "panic in app.Handler.MouseUp: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	h := &testHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&Error{Op: "test", Kind: KindPlatform})
	Report(nil)

	if len(h.errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(h.errors))
	}
	if h.errors[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := currentHandler().(*LogHandler); !ok {
		t.Errorf("expected *LogHandler, got %T", currentHandler())
	}
}

func TestFatalReportsThenPanics(t *testing.T) {
	h := &testHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	cause := &CapacityError{Resource: "windows", Limit: 3, Index: 3}
	defer func() {
		r := recover()
		if r != cause {
			t.Fatalf("expected panic with the capacity error, got %v", r)
		}
		if len(h.errors) != 1 {
			t.Fatalf("expected 1 reported error, got %d", len(h.errors))
		}
		if h.errors[0].Kind != KindCapacity {
			t.Errorf("expected kind capacity, got %s", h.errors[0].Kind)
		}
		if h.errors[0].StackTrace == "" {
			t.Error("expected a stack trace")
		}
	}()
	Fatal("app.AppState.AddWindow", KindCapacity, cause)
}

func TestRecover(t *testing.T) {
	h := &testHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("oops")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 panic, got %d", len(h.panics))
	}
	if h.panics[0].Op != "test.op" || h.panics[0].Value != "oops" {
		t.Errorf("unexpected panic record %+v", h.panics[0])
	}
}

func TestLogHandlerWritesToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	h := &LogHandler{Verbose: true}
	h.HandleError(&Error{Op: "platform.Headless.Run", Kind: KindPlatform, Err: stderrors.New("bad"), StackTrace: "frame"})
	h.HandlePanic(&PanicError{Op: "x", Value: 1})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["op"] != "platform.Headless.Run" || fields["kind"] != "platform" || fields["stack"] != "frame" {
		t.Errorf("unexpected fields %v", fields)
	}
	if entries[1].Message != "fixedui panic" {
		t.Errorf("unexpected message %q", entries[1].Message)
	}
}

func TestWarn(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Warn("widget.Flex.Layout", "flex child in unbounded axis", zap.Int("children", 2))

	entries := logs.FilterMessage("flex child in unbounded axis").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(entries))
	}
	if entries[0].ContextMap()["op"] != "widget.Flex.Layout" {
		t.Errorf("unexpected op field %v", entries[0].ContextMap())
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing.tRunner") {
		t.Errorf("expected stack to contain the test runner, got %q", stack)
	}
}

func TestFatalStackStartsAtCaller(t *testing.T) {
	h := &testHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	defer func() {
		recover()
		if len(h.errors) != 1 {
			t.Fatalf("expected 1 reported error, got %d", len(h.errors))
		}
		first, _, _ := strings.Cut(h.errors[0].StackTrace, "\n")
		if !strings.HasSuffix(first, "TestFatalStackStartsAtCaller") {
			t.Errorf("expected trace to start at the test, got %q", first)
		}
	}()
	Fatal("widget.Arena.AllocateID", KindCapacity, &CapacityError{Resource: "widgets", Limit: 1, Index: 2})
}
