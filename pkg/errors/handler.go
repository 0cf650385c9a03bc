package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// maxStackDepth bounds CaptureStack.
const maxStackDepth = 32

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler replaces the handler that Report, ReportPanic and Fatal deliver
// to. Pass nil to restore a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err with the current time if it has none and hands it to
// the handler.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandleError(err)
}

// ReportPanic is Report for recovered panics.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandlePanic(err)
}

// Fatal reports err under op and kind, then panics with err.
// It is used for capacity exhaustion and missing registry entries, which
// leave the widget tree in a state that cannot be continued.
func Fatal(op string, kind ErrorKind, err error) {
	Report(&Error{
		Op:         op,
		Kind:       kind,
		Err:        err,
		StackTrace: CaptureStack(),
	})
	panic(err)
}

// Warn logs a non-fatal condition on the package logger.
func Warn(op, msg string, fields ...zap.Field) {
	Logger().Warn(msg, append([]zap.Field{zap.String("op", op)}, fields...)...)
}

// Recover reports a panic in progress under op and stops it.
//
//	defer errors.Recover("app.AppState.DoEvent")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the calling goroutine's stack as "function\n\tfile:line"
// entries. Frames of CaptureStack, Fatal and Recover are left out so the
// trace starts where the failure was raised.
func CaptureStack() string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !internalFrame(frame.Function) {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

func internalFrame(fn string) bool {
	const pkg = "github.com/go-drift/fixedui/pkg/errors."
	switch strings.TrimPrefix(fn, pkg) {
	case "Fatal", "Recover", "CaptureStack":
		return strings.HasPrefix(fn, pkg)
	}
	return false
}
