package widget

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/geometry"
)

// MaxChildren is the number of children a Flex can hold.
const MaxChildren = 8

// Axis is the direction children are stacked in.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func (a Axis) major(s geometry.Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

func (a Axis) minor(s geometry.Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// pack turns major/minor components back into x/y.
func (a Axis) pack(major, minor float64) (float64, float64) {
	if a == Horizontal {
		return major, minor
	}
	return minor, major
}

// FlexChild pairs a child with its flex weight. A weight of zero makes the
// child take its natural size on the main axis.
type FlexChild[T comparable] struct {
	widget WidgetRef[T]
	flex   float64
}

// Fixed is a child with its natural main-axis size.
func Fixed[T comparable](child WidgetRef[T]) FlexChild[T] {
	return FlexChild[T]{widget: child}
}

// Flexible is a child taking weight shares of the leftover main-axis space.
// weight must be positive.
func Flexible[T comparable](child WidgetRef[T], weight float64) FlexChild[T] {
	return FlexChild[T]{widget: child, flex: weight}
}

// Flex lays children out in a row or column.
//
// Children with weight zero are measured first with an unbounded main
// axis. The remaining main-axis space is split among the weighted children
// in proportion to their weights. Children are packed from the start in
// insertion order and aligned to the top (row) or left (column).
type Flex[T comparable] struct {
	axis     Axis
	children [MaxChildren]FlexChild[T]
	n        int

	unboundedWarned bool
}

// NewFlex returns an empty Flex along axis.
func NewFlex[T comparable](axis Axis) Flex[T] {
	return Flex[T]{axis: axis}
}

// Axis returns the main axis.
func (f *Flex[T]) Axis() Axis { return f.axis }

// Len returns the number of children.
func (f *Flex[T]) Len() int { return f.n }

// AddChild appends a child. Adding more than MaxChildren, or a weight
// that is negative or NaN, is fatal.
func (f *Flex[T]) AddChild(child WidgetRef[T], flex float64) {
	if !(flex >= 0) {
		errors.Fatal("widget.Flex.AddChild", errors.KindConfig,
			fmt.Errorf("flex weight %g must not be negative", flex))
	}
	if f.n >= MaxChildren {
		errors.Fatal("widget.Flex.AddChild", errors.KindCapacity, &errors.CapacityError{
			Resource: "flex children",
			Limit:    MaxChildren,
			Index:    f.n + 1,
		})
	}
	f.children[f.n] = FlexChild[T]{widget: child, flex: flex}
	f.n++
}

// Variant wraps f for Arena.Add.
func (f Flex[T]) Variant() Variant[T] {
	return Variant[T]{Kind: KindFlex, Flex: f}
}

// Row adds a horizontal Flex holding children.
func Row[T comparable](a *Arena[T], children ...FlexChild[T]) WidgetRef[T] {
	return addFlex(a, Horizontal, children)
}

// Column adds a vertical Flex holding children.
func Column[T comparable](a *Arena[T], children ...FlexChild[T]) WidgetRef[T] {
	return addFlex(a, Vertical, children)
}

func addFlex[T comparable](a *Arena[T], axis Axis, children []FlexChild[T]) WidgetRef[T] {
	f := NewFlex[T](axis)
	for _, c := range children {
		f.AddChild(c.widget, c.flex)
	}
	return a.Add(f.Variant())
}

func (f *Flex[T]) layout(ctx *LayoutCtx[T], bc geometry.Constraints, data T, env Env) geometry.Size {
	bc.DebugCheck("widget.Flex.Layout")
	children := f.children[:f.n]

	totalNonFlex := 0.0
	minor := f.axis.minor(bc.Min)
	for i := range children {
		child := &children[i]
		if child.flex != 0 {
			continue
		}
		var childBC geometry.Constraints
		if f.axis == Horizontal {
			childBC = geometry.NewConstraints(
				geometry.Size{Width: 0, Height: bc.Min.Height},
				geometry.Size{Width: geometry.Inf, Height: bc.Max.Height})
		} else {
			childBC = geometry.NewConstraints(
				geometry.Size{Width: bc.Min.Width, Height: 0},
				geometry.Size{Width: bc.Max.Width, Height: geometry.Inf})
		}
		size := child.widget.Layout(ctx, childBC, data, env)
		minor = math.Max(minor, f.axis.minor(size))
		totalNonFlex += f.axis.major(size)
		child.widget.SetLayoutRect(ctx, geometry.RectFromOriginSize(geometry.Point{}, size))
	}

	totalMajor := f.axis.major(bc.Max)
	remaining := math.Max(0, totalMajor-totalNonFlex)
	flexSum := 0.0
	for i := range children {
		flexSum += children[i].flex
	}

	for i := range children {
		child := &children[i]
		if child.flex == 0 {
			continue
		}
		major := remaining * child.flex / flexSum
		minMajor := major
		if math.IsInf(major, 0) {
			minMajor = 0
		}
		var childBC geometry.Constraints
		if f.axis == Horizontal {
			childBC = geometry.NewConstraints(
				geometry.Size{Width: minMajor, Height: bc.Min.Height},
				geometry.Size{Width: major, Height: bc.Max.Height})
		} else {
			childBC = geometry.NewConstraints(
				geometry.Size{Width: bc.Min.Width, Height: minMajor},
				geometry.Size{Width: bc.Max.Width, Height: major})
		}
		size := child.widget.Layout(ctx, childBC, data, env)
		minor = math.Max(minor, f.axis.minor(size))
		child.widget.SetLayoutRect(ctx, geometry.RectFromOriginSize(geometry.Point{}, size))
	}

	major := 0.0
	for i := range children {
		child := &children[i]
		x, y := f.axis.pack(major, 0)
		rect := child.widget.LayoutRect(ctx)
		rect = geometry.RectFromOriginSize(geometry.Point{X: x, Y: y}, rect.Size())
		child.widget.SetLayoutRect(ctx, rect)
		major += f.axis.major(rect.Size())
	}

	if flexSum > 0 && math.IsInf(totalMajor, 1) && !f.unboundedWarned {
		errors.Warn("widget.Flex.Layout", "flex child in unbounded flex",
			zap.Stringer("axis", f.axis), zap.Int("children", f.n))
		f.unboundedWarned = true
	}
	if flexSum > 0 {
		major = totalMajor
	}
	w, h := f.axis.pack(major, minor)
	return bc.Constrain(geometry.Size{Width: w, Height: h})
}

func (f *Flex[T]) paint(ctx *PaintCtx[T], _ *BaseState, data T, env Env) {
	for i := 0; i < f.n; i++ {
		f.children[i].widget.PaintWithOffset(ctx, data, env)
	}
}

func (f *Flex[T]) event(ctx *EventCtx[T], ev Event, data *T, env Env) {
	for i := 0; i < f.n; i++ {
		f.children[i].widget.Event(ctx, ev, data, env)
	}
}

func (f *Flex[T]) update(ctx *UpdateCtx[T], _ *T, data T, env Env) {
	for i := 0; i < f.n; i++ {
		f.children[i].widget.Update(ctx, data, env)
	}
}
