package widget

import (
	"math"

	"go.uber.org/zap"

	"github.com/go-drift/fixedui/pkg/errors"
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/render"
)

// Label draws one line of text.
type Label[T comparable] struct {
	text  LabelText[T]
	align geometry.UnitPoint
}

// NewLabel returns a left-aligned label.
func NewLabel[T comparable](text LabelText[T]) Label[T] {
	return Label[T]{text: text, align: geometry.Left}
}

// NewAlignedLabel returns a label with its text placed at align.
func NewAlignedLabel[T comparable](text LabelText[T], align geometry.UnitPoint) Label[T] {
	return Label[T]{text: text, align: align}
}

// Variant wraps l for Arena.Add.
func (l Label[T]) Variant() Variant[T] {
	return Variant[T]{Kind: KindLabel, Label: l}
}

// Text returns the current display text.
func (l *Label[T]) Text() string { return l.text.Display() }

// AddLabel adds a left-aligned label with fixed text.
func AddLabel[T comparable](a *Arena[T], text string) WidgetRef[T] {
	return a.Add(NewLabel(Specific[T](text)).Variant())
}

// AddLocalizedLabel adds a left-aligned label resolved from s.
func AddLocalizedLabel[T comparable](a *Arena[T], s LocalizedString[T]) WidgetRef[T] {
	return a.Add(NewLabel(Localized(s)).Variant())
}

func (l *Label[T]) textLayout(text render.Text, fontName string, size float64) render.TextLayout {
	font, err := text.NewFont(fontName, size)
	if err != nil {
		errors.Warn("widget.Label", "font unavailable", zap.String("font", fontName), zap.Error(err))
		return nil
	}
	layout, err := text.NewTextLayout(font, l.text.Display())
	if err != nil {
		errors.Warn("widget.Label", "text layout failed", zap.Error(err))
		return nil
	}
	return layout
}

func (l *Label[T]) layout(ctx *LayoutCtx[T], bc geometry.Constraints, data T, env Env) geometry.Size {
	bc.DebugCheck("widget.Label.Layout")
	l.text.Resolve(data, env)
	width := 0.0
	if tl := l.textLayout(ctx.text, ctx.theme.FontName, ctx.theme.TextSize); tl != nil {
		width = tl.Width()
	}
	return bc.Constrain(geometry.Size{Width: width, Height: ctx.theme.LineHeight()})
}

func (l *Label[T]) paint(ctx *PaintCtx[T], base *BaseState, data T, env Env) {
	th := ctx.theme
	tl := l.textLayout(ctx.rc.Text(), th.FontName, th.TextSize)
	if tl == nil {
		return
	}
	size := base.Size()
	origin := l.align.Resolve(geometry.RectFromLTWH(0, 0,
		math.Max(0, size.Width-tl.Width()),
		size.Height+th.LineHeight()/2,
	))
	// Keep the baseline inside the widget.
	origin.Y = math.Min(origin.Y, size.Height)
	ctx.rc.DrawText(tl, origin, th.Label)
}

func (l *Label[T]) update(ctx *UpdateCtx[T], _ *T, data T, env Env) {
	if l.text.Resolve(data, env) {
		ctx.Invalidate()
	}
}
