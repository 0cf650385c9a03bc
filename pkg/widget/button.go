package widget

import "github.com/go-drift/fixedui/pkg/geometry"

// ButtonAction runs when a press is released over the button.
type ButtonAction[T comparable] func(ctx *EventCtx[T], data *T, env Env)

// Button is a bordered, filled rectangle with a centred label.
//
// A mouse press makes the button active; the matching release clears it and
// runs the action. Both transitions and hover changes request a repaint.
type Button[T comparable] struct {
	label  Label[T]
	action ButtonAction[T]
}

// NewButton returns a button showing text.
func NewButton[T comparable](text LabelText[T], action ButtonAction[T]) Button[T] {
	return Button[T]{
		label:  NewAlignedLabel(text, geometry.Center),
		action: action,
	}
}

// Variant wraps b for Arena.Add.
func (b Button[T]) Variant() Variant[T] {
	return Variant[T]{Kind: KindButton, Button: b}
}

// Text returns the label's display text.
func (b *Button[T]) Text() string { return b.label.Text() }

// AddButton adds a button with fixed text.
func AddButton[T comparable](a *Arena[T], text string, action ButtonAction[T]) WidgetRef[T] {
	return a.Add(NewButton(Specific[T](text), action).Variant())
}

func (b *Button[T]) paint(ctx *PaintCtx[T], base *BaseState, data T, env Env) {
	th := ctx.theme
	shape := geometry.RoundedRect{
		Rect:   geometry.RectFromOriginSize(geometry.Point{}, base.Size()),
		Radius: th.ButtonRadius,
	}
	border := th.Border
	if base.IsHot() {
		border = th.BorderLight
	}
	fill := th.ButtonDark
	if base.IsActive() {
		fill = th.ButtonLight
	}
	ctx.rc.Stroke(shape, border, th.BorderWidth)
	ctx.rc.Fill(shape, fill)
	b.label.paint(ctx, base, data, env)
}

func (b *Button[T]) layout(ctx *LayoutCtx[T], bc geometry.Constraints, data T, env Env) geometry.Size {
	bc.DebugCheck("widget.Button.Layout")
	return b.label.layout(ctx, bc, data, env)
}

func (b *Button[T]) event(ctx *EventCtx[T], ev Event, data *T, env Env) {
	switch ev.Kind {
	case EventMouseDown:
		ctx.SetActive(true)
		ctx.Invalidate()
	case EventMouseUp:
		if ctx.IsActive() {
			ctx.SetActive(false)
			ctx.Invalidate()
			if b.action != nil {
				b.action(ctx, data, env)
			}
		}
	case EventHotChanged:
		ctx.Invalidate()
	}
}

func (b *Button[T]) update(ctx *UpdateCtx[T], old *T, data T, env Env) {
	b.label.update(ctx, old, data, env)
}
