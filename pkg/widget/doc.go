// Package widget implements the widget arena and the closed set of widget
// kinds: Label, Button, Flex, Padding and Align.
//
// Every widget lives in one slot of an [Arena]. A slot holds the widget's
// [Variant] inline together with its [BaseState] and the last data value it
// was updated with. Widgets refer to each other through [WidgetRef], a plain
// slot index, so composites never own their children's storage.
//
// Widgets are built bottom-up. Construct the concrete widget, then add it to
// the arena, which allocates the next ID, stores the variant and returns a
// reference:
//
//	label := widget.NewLabel[uint32](widget.Localized(counter))
//	ref := arena.Add(label.Variant())
//
// The helper constructors ([Row], [Column], [NewPadding], [Centered], ...)
// do both steps.
//
// Four passes run through the tree, each started by the window that owns
// the root reference:
//
//   - Event delivers input and may mutate the data through a pointer.
//   - Update runs after events so widgets can react to data changes.
//   - Layout negotiates sizes with box constraints.
//   - Paint draws into a render.RenderContext.
//
// The arena is fixed-capacity. Allocating past its capacity, registering a
// slot twice, or reaching an unregistered slot through a reference panics
// through errors.Fatal.
package widget
