package widget

import "github.com/go-drift/fixedui/pkg/geometry"

// WidgetRef is a typed, copyable handle to an arena slot. It does not own
// the widget; operations look the slot up through the context's arena.
type WidgetRef[T comparable] struct {
	id WidgetID
}

// RefOf wraps an already registered id.
func RefOf[T comparable](id WidgetID) WidgetRef[T] {
	return WidgetRef[T]{id: id}
}

// ID returns the slot index.
func (r WidgetRef[T]) ID() WidgetID { return r.id }

// IsZero reports whether r refers to no widget.
func (r WidgetRef[T]) IsZero() bool { return r.id == NoWidget }

// Paint paints the widget in the current coordinate system.
func (r WidgetRef[T]) Paint(ctx *PaintCtx[T], data T, env Env) {
	s := ctx.arena.slot(r.id)
	s.widget.paint(ctx, &s.state, data, env)
}

// PaintWithOffset translates to the widget's layout origin, paints it and
// restores the previous translation.
func (r WidgetRef[T]) PaintWithOffset(ctx *PaintCtx[T], data T, env Env) {
	s := ctx.arena.slot(r.id)
	origin := s.state.layoutRect.Origin()
	ctx.rc.Save()
	ctx.rc.Translate(origin.X, origin.Y)
	s.widget.paint(ctx, &s.state, data, env)
	ctx.rc.Restore()
}

// Layout computes the widget's size under bc. The caller positions the
// result with SetLayoutRect.
func (r WidgetRef[T]) Layout(ctx *LayoutCtx[T], bc geometry.Constraints, data T, env Env) geometry.Size {
	s := ctx.arena.slot(r.id)
	return s.widget.layout(ctx, bc, data, env)
}

// SetLayoutRect records the rectangle the parent assigned, in parent
// coordinates.
func (r WidgetRef[T]) SetLayoutRect(ctx *LayoutCtx[T], rect geometry.Rect) {
	ctx.arena.slot(r.id).state.layoutRect = rect
}

// LayoutRect returns the rectangle last assigned with SetLayoutRect.
func (r WidgetRef[T]) LayoutRect(ctx *LayoutCtx[T]) geometry.Rect {
	return ctx.arena.slot(r.id).state.layoutRect
}

// Event routes ev into the widget. Mouse events reach it only when they
// fall inside its layout rect or it holds the pointer grab, with positions
// rebased to its origin. Flags set below bubble into ctx.
func (r WidgetRef[T]) Event(ctx *EventCtx[T], ev Event, data *T, env Env) {
	if ctx.isHandled || !ev.Recurse() {
		return
	}
	s := ctx.arena.slot(r.id)
	st := &s.state
	hadActive := st.hasActive
	child := ctx.child(st)
	rect := st.layoutRect

	recurse := true
	hotChanged := false
	childEv := ev
	switch ev.Kind {
	case EventSize:
		recurse = ctx.isRoot
	case EventMouseDown, EventMouseUp:
		recurse = hadActive || (!ctx.hadActive && rect.Contains(ev.Mouse.Pos))
		childEv.Mouse.Pos = ev.Mouse.Pos.Sub(rect.Origin())
	case EventMouseMoved:
		hadHot := st.isHot
		st.isHot = rect.Contains(ev.Mouse.Pos)
		hotChanged = hadHot != st.isHot
		recurse = hadActive || hadHot || st.isHot
		childEv.Mouse.Pos = ev.Mouse.Pos.Sub(rect.Origin())
	case EventFocusChanged:
		hadFocus := st.hasFocus
		focus := st.requestFocus
		st.requestFocus = false
		st.hasFocus = focus
		recurse = focus || hadFocus
		childEv.Focused = focus
	}

	st.needsInval = false
	st.requestAnim = false
	if hotChanged {
		s.widget.event(&child, HotChangedEvent(st.isHot), data, env)
	}
	if recurse {
		st.hasActive = false
		s.widget.event(&child, childEv, data, env)
		st.hasActive = st.hasActive || st.isActive
	}

	ctx.base.needsInval = ctx.base.needsInval || st.needsInval
	ctx.base.requestAnim = ctx.base.requestAnim || st.requestAnim
	ctx.base.hasActive = ctx.base.hasActive || st.hasActive
	ctx.base.requestFocus = ctx.base.requestFocus || st.requestFocus
	ctx.isHandled = ctx.isHandled || child.isHandled
}

// Update forwards to the widget unless data equals the value it last saw.
func (r WidgetRef[T]) Update(ctx *UpdateCtx[T], data T, env Env) {
	s := ctx.arena.slot(r.id)
	if s.hasOld && s.old == data {
		return
	}
	var old *T
	if s.hasOld {
		prev := s.old
		old = &prev
	}
	s.widget.update(ctx, old, data, env)
	s.old = data
	s.hasOld = true
}
