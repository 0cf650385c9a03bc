package widget

import "github.com/go-drift/fixedui/pkg/geometry"

// Children returns the references held by the widget at id, in insertion
// order. Leaves and empty slots have none.
func (a *Arena[T]) Children(id WidgetID) []WidgetRef[T] {
	if a.Kind(id) == KindNone {
		return nil
	}
	return a.slots[id].widget.children()
}

// Walk visits root and its descendants depth-first, parents before
// children. depth is zero for root. Returning false from visit skips the
// node's subtree.
func (a *Arena[T]) Walk(root WidgetRef[T], visit func(ref WidgetRef[T], depth int) bool) {
	a.walk(root, 0, visit)
}

func (a *Arena[T]) walk(ref WidgetRef[T], depth int, visit func(WidgetRef[T], int) bool) {
	if !visit(ref, depth) {
		return
	}
	for _, c := range a.Children(ref.id) {
		a.walk(c, depth+1, visit)
	}
}

// ScreenRect returns the rectangle of target in the coordinate space of
// root's parent by summing layout origins along the path. It reports false
// when target is not in root's subtree.
func ScreenRect[T comparable](a *Arena[T], root, target WidgetRef[T]) (geometry.Rect, bool) {
	return screenRect(a, root, target, geometry.Point{})
}

func screenRect[T comparable](a *Arena[T], ref, target WidgetRef[T], offset geometry.Point) (geometry.Rect, bool) {
	rect := a.LayoutRect(ref.id).Translate(offset.X, offset.Y)
	if ref.id == target.id {
		return rect, true
	}
	for _, c := range a.Children(ref.id) {
		if r, ok := screenRect(a, c, target, rect.Origin()); ok {
			return r, true
		}
	}
	return geometry.Rect{}, false
}

// FindKind returns the first widget of kind k under root in depth-first
// order.
func (a *Arena[T]) FindKind(root WidgetRef[T], k Kind) (WidgetRef[T], bool) {
	var found WidgetRef[T]
	a.Walk(root, func(ref WidgetRef[T], _ int) bool {
		if !found.IsZero() {
			return false
		}
		if a.Kind(ref.id) == k {
			found = ref
			return false
		}
		return true
	})
	return found, !found.IsZero()
}
