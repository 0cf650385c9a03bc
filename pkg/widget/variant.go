package widget

import (
	"fmt"

	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/geometry"
)

// Variant is the closed union of widget kinds, stored inline in an arena
// slot. Only the member named by Kind is meaningful.
type Variant[T comparable] struct {
	Kind    Kind
	Label   Label[T]
	Button  Button[T]
	Flex    Flex[T]
	Padding Padding[T]
	Align   Align[T]
}

func badKind(op string, k Kind) {
	errors.Fatal(op, errors.KindLookup, fmt.Errorf("unknown widget kind %s", k))
}

func (v *Variant[T]) paint(ctx *PaintCtx[T], base *BaseState, data T, env Env) {
	switch v.Kind {
	case KindNone:
	case KindLabel:
		v.Label.paint(ctx, base, data, env)
	case KindButton:
		v.Button.paint(ctx, base, data, env)
	case KindFlex:
		v.Flex.paint(ctx, base, data, env)
	case KindPadding:
		v.Padding.paint(ctx, base, data, env)
	case KindAlign:
		v.Align.paint(ctx, base, data, env)
	default:
		badKind("widget.Variant.paint", v.Kind)
	}
}

func (v *Variant[T]) layout(ctx *LayoutCtx[T], bc geometry.Constraints, data T, env Env) geometry.Size {
	switch v.Kind {
	case KindNone:
		return geometry.Size{}
	case KindLabel:
		return v.Label.layout(ctx, bc, data, env)
	case KindButton:
		return v.Button.layout(ctx, bc, data, env)
	case KindFlex:
		return v.Flex.layout(ctx, bc, data, env)
	case KindPadding:
		return v.Padding.layout(ctx, bc, data, env)
	case KindAlign:
		return v.Align.layout(ctx, bc, data, env)
	default:
		badKind("widget.Variant.layout", v.Kind)
		return geometry.Size{}
	}
}

func (v *Variant[T]) event(ctx *EventCtx[T], ev Event, data *T, env Env) {
	switch v.Kind {
	case KindNone:
	case KindLabel:
	case KindButton:
		v.Button.event(ctx, ev, data, env)
	case KindFlex:
		v.Flex.event(ctx, ev, data, env)
	case KindPadding:
		v.Padding.event(ctx, ev, data, env)
	case KindAlign:
		v.Align.event(ctx, ev, data, env)
	default:
		badKind("widget.Variant.event", v.Kind)
	}
}

func (v *Variant[T]) update(ctx *UpdateCtx[T], old *T, data T, env Env) {
	switch v.Kind {
	case KindNone:
	case KindLabel:
		v.Label.update(ctx, old, data, env)
	case KindButton:
		v.Button.update(ctx, old, data, env)
	case KindFlex:
		v.Flex.update(ctx, old, data, env)
	case KindPadding:
		v.Padding.update(ctx, old, data, env)
	case KindAlign:
		v.Align.update(ctx, old, data, env)
	default:
		badKind("widget.Variant.update", v.Kind)
	}
}

// children lists the references a composite holds, in insertion order.
func (v *Variant[T]) children() []WidgetRef[T] {
	switch v.Kind {
	case KindFlex:
		out := make([]WidgetRef[T], v.Flex.n)
		for i := range out {
			out[i] = v.Flex.children[i].widget
		}
		return out
	case KindPadding:
		return []WidgetRef[T]{v.Padding.child}
	case KindAlign:
		return []WidgetRef[T]{v.Align.child}
	default:
		return nil
	}
}
