package testing

import (
	"fmt"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/platform"
	"github.com/go-drift/fixedui/pkg/widget"
)

// ScreenRect returns the window rectangle of the first widget matched by
// finder, as of the last layout.
func (t *WidgetTester[T]) ScreenRect(finder Finder[T]) (geometry.Rect, error) {
	if err := t.launch(); err != nil {
		return geometry.Rect{}, err
	}
	result := t.Find(finder)
	if !result.Exists() {
		return geometry.Rect{}, fmt.Errorf("finder matched no widgets: %s", finder.Description())
	}
	root, err := t.Root()
	if err != nil {
		return geometry.Rect{}, err
	}
	rect, ok := widget.ScreenRect(t.State().Arena(), root, result.First())
	if !ok {
		return geometry.Rect{}, fmt.Errorf("widget is not in the window tree: %s", finder.Description())
	}
	return rect, nil
}

// Tap simulates a tap at the center of the first widget matched by finder.
func (t *WidgetTester[T]) Tap(finder Finder[T]) error {
	rect, err := t.ScreenRect(finder)
	if err != nil {
		return fmt.Errorf("Tap: %w", err)
	}
	return t.TapAt(rect.Center())
}

// TapAt simulates a left press and release at pos.
func (t *WidgetTester[T]) TapAt(pos geometry.Point) error {
	if err := t.Press(pos); err != nil {
		return err
	}
	return t.Release(pos)
}

// Press delivers a left mouse press at pos.
func (t *WidgetTester[T]) Press(pos geometry.Point) error {
	if err := t.launch(); err != nil {
		return err
	}
	t.Window().MouseDown(platform.MouseEvent{Pos: pos, Count: 1, Button: platform.MouseLeft})
	return nil
}

// Release delivers a left mouse release at pos.
func (t *WidgetTester[T]) Release(pos geometry.Point) error {
	if err := t.launch(); err != nil {
		return err
	}
	t.Window().MouseUp(platform.MouseEvent{Pos: pos, Button: platform.MouseLeft})
	return nil
}

// MoveTo delivers a pointer move to pos.
func (t *WidgetTester[T]) MoveTo(pos geometry.Point) error {
	if err := t.launch(); err != nil {
		return err
	}
	t.Window().MouseMove(platform.MouseEvent{Pos: pos})
	return nil
}

// Hover moves the pointer to the center of the first widget matched by
// finder.
func (t *WidgetTester[T]) Hover(finder Finder[T]) error {
	rect, err := t.ScreenRect(finder)
	if err != nil {
		return fmt.Errorf("Hover: %w", err)
	}
	return t.MoveTo(rect.Center())
}

// DragFrom simulates a press at start, a move by delta and a release.
func (t *WidgetTester[T]) DragFrom(start, delta geometry.Point) error {
	if err := t.Press(start); err != nil {
		return err
	}
	end := start.Add(delta)
	if err := t.MoveTo(end); err != nil {
		return err
	}
	return t.Release(end)
}
