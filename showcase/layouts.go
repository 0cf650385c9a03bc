package showcase

import (
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/widget"
)

const (
	layoutsWidgets = 10
	alignWidgets   = 7
)

// Layouts puts a title above a row of "-" and "+" buttons around the
// current value.
func Layouts(a *widget.Arena[uint32]) widget.WidgetRef[uint32] {
	title := widget.Centered(a, widget.AddLabel[uint32](a, "layouts"))

	value := widget.NewLocalizedString[uint32]("value").
		WithArg("n", func(data uint32, _ widget.Env) widget.ArgValue { return widget.U32Arg(data) })
	minus := widget.NewUniformPadding(a, 4, widget.AddButton(a, "-", Decrement))
	shown := widget.Centered(a, widget.AddLocalizedLabel(a, value))
	plus := widget.NewUniformPadding(a, 4, widget.AddButton(a, "+", Increment))
	row := widget.Row(a,
		widget.Flexible(minus, 1),
		widget.Flexible(shown, 2),
		widget.Flexible(plus, 1),
	)

	return widget.Column(a,
		widget.Flexible(title, 1),
		widget.Flexible(row, 1),
	)
}

// AlignDemo stacks three labels aligned left, centre and right.
func AlignDemo(a *widget.Arena[uint32]) widget.WidgetRef[uint32] {
	left := widget.AlignLeft(a, widget.AddLabel[uint32](a, "left"))
	center := widget.NewAlign(a, geometry.Center, widget.AddLabel[uint32](a, "center"))
	right := widget.AlignRight(a, widget.AddLabel[uint32](a, "right"))
	return widget.Column(a,
		widget.Flexible(left, 1),
		widget.Flexible(center, 1),
		widget.Flexible(right, 1),
	)
}
