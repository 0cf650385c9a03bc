package widget

import (
	"strconv"

	"github.com/go-drift/fixedui/pkg/errors"
)

const (
	// MaxTextLen is the byte capacity of label text.
	MaxTextLen = 32
	// MaxArgs is the number of arguments a LocalizedString can carry.
	MaxArgs = 2
)

// fixedText is a string stored inline in a fixed byte array.
type fixedText struct {
	buf [MaxTextLen]byte
	n   uint8
}

func makeFixedText(op, s string) fixedText {
	var t fixedText
	t.set(op, s)
	return t
}

func (t *fixedText) set(op, s string) {
	if len(s) > MaxTextLen {
		errors.Fatal(op, errors.KindCapacity, &errors.CapacityError{
			Resource: "label text",
			Limit:    MaxTextLen,
			Index:    len(s),
		})
	}
	t.n = uint8(copy(t.buf[:], s))
}

func (t *fixedText) String() string { return string(t.buf[:t.n]) }

func (t *fixedText) equal(s string) bool {
	return int(t.n) == len(s) && string(t.buf[:t.n]) == s
}

// ArgKind tags an ArgValue.
type ArgKind uint8

const (
	ArgNone ArgKind = iota
	ArgString
	ArgU32
	ArgError
)

// ArgValue is a value substituted into a localized string.
type ArgValue struct {
	Kind ArgKind
	Str  string
	U32  uint32
}

func StringArg(s string) ArgValue { return ArgValue{Kind: ArgString, Str: s} }
func U32Arg(v uint32) ArgValue    { return ArgValue{Kind: ArgU32, U32: v} }
func ErrorArg() ArgValue          { return ArgValue{Kind: ArgError} }

func (v ArgValue) String() string {
	switch v.Kind {
	case ArgString:
		return v.Str
	case ArgU32:
		return strconv.FormatUint(uint64(v.U32), 10)
	case ArgError:
		return "Error"
	default:
		return "???"
	}
}

// ArgFunc computes an argument from the application data.
type ArgFunc[T comparable] func(data T, env Env) ArgValue

type localizedArg[T comparable] struct {
	name string
	fn   ArgFunc[T]
}

// LocalizedString is a message key plus named arguments. It resolves to
// the key followed by "name=value" for each argument, separated by spaces.
type LocalizedString[T comparable] struct {
	key      string
	args     [MaxArgs]localizedArg[T]
	nargs    int
	resolved fixedText
	valid    bool
}

// NewLocalizedString returns a string for key with no arguments.
func NewLocalizedString[T comparable](key string) LocalizedString[T] {
	return LocalizedString[T]{key: key}
}

// WithArg returns a copy of s with one more argument. Adding more than
// MaxArgs arguments is fatal.
func (s LocalizedString[T]) WithArg(name string, fn ArgFunc[T]) LocalizedString[T] {
	if s.nargs >= MaxArgs {
		errors.Fatal("widget.LocalizedString.WithArg", errors.KindCapacity, &errors.CapacityError{
			Resource: "localized args",
			Limit:    MaxArgs,
			Index:    s.nargs + 1,
		})
	}
	s.args[s.nargs] = localizedArg[T]{name: name, fn: fn}
	s.nargs++
	return s
}

// Key returns the message key.
func (s *LocalizedString[T]) Key() string { return s.key }

// Resolve recomputes the display text from data and reports whether it
// changed. The first call always reports a change.
func (s *LocalizedString[T]) Resolve(data T, env Env) bool {
	var buf [MaxTextLen * 2]byte
	out := append(buf[:0], s.key...)
	for i := 0; i < s.nargs; i++ {
		out = append(out, ' ')
		out = append(out, s.args[i].name...)
		out = append(out, '=')
		out = append(out, s.args[i].fn(data, env).String()...)
	}
	text := string(out)
	if s.valid && s.resolved.equal(text) {
		return false
	}
	s.resolved.set("widget.LocalizedString.Resolve", text)
	s.valid = true
	return true
}

// Text returns the last resolved text, or the key before the first Resolve.
func (s *LocalizedString[T]) Text() string {
	if !s.valid {
		return s.key
	}
	return s.resolved.String()
}

// LabelText is either fixed text or a LocalizedString.
type LabelText[T comparable] struct {
	localized bool
	specific  fixedText
	loc       LocalizedString[T]
}

// Specific returns fixed label text. Text longer than MaxTextLen is fatal.
func Specific[T comparable](s string) LabelText[T] {
	return LabelText[T]{specific: makeFixedText("widget.Specific", s)}
}

// Localized returns label text resolved from s on every pass.
func Localized[T comparable](s LocalizedString[T]) LabelText[T] {
	return LabelText[T]{localized: true, loc: s}
}

// Resolve updates localized text from data and reports whether it changed.
// Fixed text never changes.
func (t *LabelText[T]) Resolve(data T, env Env) bool {
	if !t.localized {
		return false
	}
	return t.loc.Resolve(data, env)
}

// Display returns the text to draw.
func (t *LabelText[T]) Display() string {
	if t.localized {
		return t.loc.Text()
	}
	return t.specific.String()
}
