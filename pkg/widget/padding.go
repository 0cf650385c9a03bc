package widget

import "github.com/go-drift/fixedui/pkg/geometry"

// Padding insets its child by fixed distances on each edge.
//
// The child is laid out with the incoming constraints shrunk by the insets
// and placed at (Left, Top); Padding reports the child's size plus the
// insets.
type Padding[T comparable] struct {
	insets geometry.Insets
	child  WidgetRef[T]
}

// Variant wraps p for Arena.Add.
func (p Padding[T]) Variant() Variant[T] {
	return Variant[T]{Kind: KindPadding, Padding: p}
}

// Insets returns the padding distances.
func (p *Padding[T]) Insets() geometry.Insets { return p.insets }

// NewPadding adds a Padding around child.
func NewPadding[T comparable](a *Arena[T], insets geometry.Insets, child WidgetRef[T]) WidgetRef[T] {
	return a.Add(Padding[T]{insets: insets, child: child}.Variant())
}

// NewUniformPadding adds a Padding with the same inset on every edge.
func NewUniformPadding[T comparable](a *Arena[T], inset float64, child WidgetRef[T]) WidgetRef[T] {
	return NewPadding(a, geometry.UniformInsets(inset), child)
}

func (p *Padding[T]) layout(ctx *LayoutCtx[T], bc geometry.Constraints, data T, env Env) geometry.Size {
	bc.DebugCheck("widget.Padding.Layout")
	hpad := p.insets.Horizontal()
	vpad := p.insets.Vertical()

	childBC := bc.Shrink(hpad, vpad)
	size := p.child.Layout(ctx, childBC, data, env)
	p.child.SetLayoutRect(ctx, geometry.RectFromOriginSize(
		geometry.Point{X: p.insets.Left, Y: p.insets.Top}, size))

	return geometry.Size{Width: size.Width + hpad, Height: size.Height + vpad}
}

func (p *Padding[T]) paint(ctx *PaintCtx[T], _ *BaseState, data T, env Env) {
	p.child.PaintWithOffset(ctx, data, env)
}

func (p *Padding[T]) event(ctx *EventCtx[T], ev Event, data *T, env Env) {
	p.child.Event(ctx, ev, data, env)
}

func (p *Padding[T]) update(ctx *UpdateCtx[T], _ *T, data T, env Env) {
	p.child.Update(ctx, data, env)
}
