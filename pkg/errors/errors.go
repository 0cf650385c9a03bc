// Package errors provides structured error handling for the fixedui toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	KindUnknown  ErrorKind = iota
	KindCapacity           // a fixed-capacity table ran out of slots
	KindLookup             // an empty or out-of-range slot was read
	KindPlatform           // the host shell failed
	KindConfig             // project configuration is invalid
)

var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindCapacity: "capacity",
	KindLookup:   "lookup",
	KindPlatform: "platform",
	KindConfig:   "config",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Error is a failure raised inside the toolkit. Op names the failing
// operation in "package.Type.Method" form. StackTrace is filled in for
// fatal errors only.
type Error struct {
	Op         string
	Kind       ErrorKind
	Err        error
	StackTrace string
	Timestamp  time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// CapacityError reports an insertion past a fixed bound.
type CapacityError struct {
	// Resource names the table that overflowed ("widgets", "windows", "flex children").
	Resource string
	// Limit is the capacity of the table.
	Limit int
	// Index is the slot that was requested.
	Index int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s capacity exceeded: index %d, limit %d", e.Resource, e.Index, e.Limit)
}

// LookupError reports a lookup of a slot that holds nothing.
type LookupError struct {
	// Resource names the table ("widget", "window", "handler").
	Resource string
	// ID is the identifier that was looked up.
	ID uint32
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %d is not registered", e.Resource, e.ID)
}

// PanicError is a panic caught by Recover while dispatching to user code.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives everything passed to Report and ReportPanic.
type ErrorHandler interface {
	HandleError(err *Error)
	HandlePanic(err *PanicError)
}
