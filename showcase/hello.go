package showcase

import (
	"github.com/go-drift/fixedui/pkg/widget"
)

const helloWidgets = 6

// CounterText renders the counter as "hello-counter count=N".
func CounterText() widget.LocalizedString[uint32] {
	return widget.NewLocalizedString[uint32]("hello-counter").
		WithArg("count", func(data uint32, _ widget.Env) widget.ArgValue {
			return widget.U32Arg(data)
		})
}

// Increment adds one to the counter.
func Increment(_ *widget.EventCtx[uint32], data *uint32, _ widget.Env) {
	*data++
}

// Decrement subtracts one from the counter, stopping at zero.
func Decrement(_ *widget.EventCtx[uint32], data *uint32, _ widget.Env) {
	if *data > 0 {
		*data--
	}
}

// HelloCounter is a column with the counter label centred in the top half
// and an increment button filling the bottom half.
func HelloCounter(a *widget.Arena[uint32]) widget.WidgetRef[uint32] {
	label := widget.Centered(a,
		widget.NewUniformPadding(a, 5, widget.AddLocalizedLabel(a, CounterText())))
	button := widget.NewUniformPadding(a, 5, widget.AddButton(a, "increment", Increment))
	return widget.Column(a,
		widget.Flexible(label, 1),
		widget.Flexible(button, 1),
	)
}
