package widget

import (
	"math"

	"github.com/go-drift/fixedui/pkg/geometry"
)

// Align positions its child inside the space it is given.
//
// The child is laid out with loosened constraints. Align takes the full
// extent of every bounded axis, or a multiple of the child's size when a
// factor is set, and places the child at the alignment point of the
// leftover space.
type Align[T comparable] struct {
	align        geometry.UnitPoint
	child        WidgetRef[T]
	widthFactor  float64
	heightFactor float64
	hasWidth     bool
	hasHeight    bool
}

// Variant wraps a for Arena.Add.
func (al Align[T]) Variant() Variant[T] {
	return Variant[T]{Kind: KindAlign, Align: al}
}

// NewAlign adds an Align placing child at align.
func NewAlign[T comparable](a *Arena[T], align geometry.UnitPoint, child WidgetRef[T]) WidgetRef[T] {
	return a.Add(Align[T]{align: align, child: child}.Variant())
}

// NewAlignFactors adds an Align whose size on each axis is factor times
// the child's. A factor of zero or less leaves that axis unset.
func NewAlignFactors[T comparable](a *Arena[T], align geometry.UnitPoint, widthFactor, heightFactor float64, child WidgetRef[T]) WidgetRef[T] {
	al := Align[T]{align: align, child: child}
	if widthFactor > 0 {
		al.widthFactor, al.hasWidth = widthFactor, true
	}
	if heightFactor > 0 {
		al.heightFactor, al.hasHeight = heightFactor, true
	}
	return a.Add(al.Variant())
}

// Centered adds an Align centring child.
func Centered[T comparable](a *Arena[T], child WidgetRef[T]) WidgetRef[T] {
	return NewAlign(a, geometry.Center, child)
}

// AlignLeft adds an Align placing child at the centre of the left edge.
func AlignLeft[T comparable](a *Arena[T], child WidgetRef[T]) WidgetRef[T] {
	return NewAlign(a, geometry.Left, child)
}

// AlignRight adds an Align placing child at the centre of the right edge.
func AlignRight[T comparable](a *Arena[T], child WidgetRef[T]) WidgetRef[T] {
	return NewAlign(a, geometry.Right, child)
}

// AlignHorizontal aligns horizontally and takes the child's height.
func AlignHorizontal[T comparable](a *Arena[T], align geometry.UnitPoint, child WidgetRef[T]) WidgetRef[T] {
	return NewAlignFactors(a, align, 0, 1, child)
}

// AlignVertical aligns vertically and takes the child's width.
func AlignVertical[T comparable](a *Arena[T], align geometry.UnitPoint, child WidgetRef[T]) WidgetRef[T] {
	return NewAlignFactors(a, align, 1, 0, child)
}

func (al *Align[T]) layout(ctx *LayoutCtx[T], bc geometry.Constraints, data T, env Env) geometry.Size {
	bc.DebugCheck("widget.Align.Layout")
	size := al.child.Layout(ctx, bc.Loosen(), data, env)

	mySize := size
	if bc.IsWidthBounded() {
		mySize.Width = bc.Max.Width
	}
	if bc.IsHeightBounded() {
		mySize.Height = bc.Max.Height
	}
	if al.hasWidth {
		mySize.Width = size.Width * al.widthFactor
	}
	if al.hasHeight {
		mySize.Height = size.Height * al.heightFactor
	}
	mySize = bc.Constrain(mySize)

	extraW := math.Max(0, mySize.Width-size.Width)
	extraH := math.Max(0, mySize.Height-size.Height)
	origin := al.align.Resolve(geometry.RectFromLTWH(0, 0, extraW, extraH))
	al.child.SetLayoutRect(ctx, geometry.RectFromOriginSize(origin, size))
	return mySize
}

func (al *Align[T]) paint(ctx *PaintCtx[T], _ *BaseState, data T, env Env) {
	al.child.PaintWithOffset(ctx, data, env)
}

func (al *Align[T]) event(ctx *EventCtx[T], ev Event, data *T, env Env) {
	al.child.Event(ctx, ev, data, env)
}

func (al *Align[T]) update(ctx *UpdateCtx[T], _ *T, data T, env Env) {
	al.child.Update(ctx, data, env)
}
