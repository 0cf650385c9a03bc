package widget

import "github.com/go-drift/fixedui/pkg/geometry"

// BaseState holds the per-widget flags the passes read and write.
type BaseState struct {
	layoutRect geometry.Rect

	isHot     bool
	isActive  bool
	hasActive bool
	hasFocus  bool

	requestFocus bool
	needsInval   bool
	requestAnim  bool
}

// Size is the size of the layout rect.
func (b *BaseState) Size() geometry.Size { return b.layoutRect.Size() }

// LayoutRect is the rectangle assigned by the parent, in parent coordinates.
func (b *BaseState) LayoutRect() geometry.Rect { return b.layoutRect }

// IsHot reports whether the pointer is over the widget.
func (b *BaseState) IsHot() bool { return b.isHot }

// IsActive reports whether the widget holds the pointer grab.
func (b *BaseState) IsActive() bool { return b.isActive }

// HasActive reports whether the widget or a descendant is active.
func (b *BaseState) HasActive() bool { return b.hasActive }

// HasFocus reports whether the widget has keyboard focus.
func (b *BaseState) HasFocus() bool { return b.hasFocus }

// NeedsInvalidate reports whether a repaint was requested in the last pass.
func (b *BaseState) NeedsInvalidate() bool { return b.needsInval }

// FocusRequested reports whether a widget asked for focus in the last pass.
func (b *BaseState) FocusRequested() bool { return b.requestFocus }

// AnimRequested reports whether an animation frame was requested.
func (b *BaseState) AnimRequested() bool { return b.requestAnim }
