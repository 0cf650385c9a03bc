package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/fixedui/pkg/widget"
)

// Finder locates widgets in an arena tree.
type Finder[T comparable] interface {
	// Evaluate returns all matching widgets under root (depth-first pre-order).
	Evaluate(a *widget.Arena[T], root widget.WidgetRef[T]) []widget.WidgetRef[T]
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult[T comparable] struct {
	refs   []widget.WidgetRef[T]
	finder Finder[T]
}

func (r FinderResult[T]) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult[T]) First() widget.WidgetRef[T] {
	if len(r.refs) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.refs[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult[T]) At(index int) widget.WidgetRef[T] {
	if index < 0 || index >= len(r.refs) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.refs), r.description()))
	}
	return r.refs[index]
}

// All returns all matches in traversal order.
func (r FinderResult[T]) All() []widget.WidgetRef[T] {
	return r.refs
}

// Count returns the number of matches.
func (r FinderResult[T]) Count() int {
	return len(r.refs)
}

// Exists returns true if at least one match was found.
func (r FinderResult[T]) Exists() bool {
	return len(r.refs) > 0
}

// matchFinder matches widgets by predicate.
type matchFinder[T comparable] struct {
	desc  string
	match func(v *widget.Variant[T]) bool
}

func (f matchFinder[T]) Evaluate(a *widget.Arena[T], root widget.WidgetRef[T]) []widget.WidgetRef[T] {
	var out []widget.WidgetRef[T]
	a.Walk(root, func(ref widget.WidgetRef[T], _ int) bool {
		if v, ok := a.Lookup(ref.ID()); ok && f.match(&v) {
			out = append(out, ref)
		}
		return true
	})
	return out
}

func (f matchFinder[T]) Description() string {
	return f.desc
}

// ByKind finds widgets of kind k.
func ByKind[T comparable](k widget.Kind) Finder[T] {
	return matchFinder[T]{
		desc:  fmt.Sprintf("ByKind(%s)", k),
		match: func(v *widget.Variant[T]) bool { return v.Kind == k },
	}
}

// ByText finds labels and buttons whose current text equals text.
func ByText[T comparable](text string) Finder[T] {
	return matchFinder[T]{
		desc: fmt.Sprintf("ByText(%q)", text),
		match: func(v *widget.Variant[T]) bool {
			s, ok := displayText(v)
			return ok && s == text
		},
	}
}

// ByTextContaining finds labels and buttons whose current text contains
// substr.
func ByTextContaining[T comparable](substr string) Finder[T] {
	return matchFinder[T]{
		desc: fmt.Sprintf("ByTextContaining(%q)", substr),
		match: func(v *widget.Variant[T]) bool {
			s, ok := displayText(v)
			return ok && strings.Contains(s, substr)
		},
	}
}

// ByID finds the widget with the given ID.
func ByID[T comparable](id widget.WidgetID) Finder[T] {
	return idFinder[T]{id: id}
}

type idFinder[T comparable] struct {
	id widget.WidgetID
}

func (f idFinder[T]) Evaluate(a *widget.Arena[T], root widget.WidgetRef[T]) []widget.WidgetRef[T] {
	var out []widget.WidgetRef[T]
	a.Walk(root, func(ref widget.WidgetRef[T], _ int) bool {
		if ref.ID() == f.id {
			out = append(out, ref)
			return false
		}
		return len(out) == 0
	})
	return out
}

func (f idFinder[T]) Description() string {
	return fmt.Sprintf("ByID(%d)", f.id)
}

func displayText[T comparable](v *widget.Variant[T]) (string, bool) {
	switch v.Kind {
	case widget.KindLabel:
		return v.Label.Text(), true
	case widget.KindButton:
		return v.Button.Text(), true
	default:
		return "", false
	}
}
