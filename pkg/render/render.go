// Package render defines the drawing surface widgets paint on.
//
// Backends implement RenderContext; pkg/framebuffer rasterizes into an
// image, and Recorder captures operations for tests.
package render

import (
	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/theme"
)

// Shape is a filled or stroked outline. A zero Radius is a plain rectangle.
type Shape = geometry.RoundedRect

// RectShape wraps r as a Shape with square corners.
func RectShape(r geometry.Rect) Shape {
	return Shape{Rect: r}
}

// Font is a text face at a fixed size.
type Font interface {
	Name() string
	Size() float64
}

// TextLayout is measured, ready to draw text.
type TextLayout interface {
	Text() string
	Font() Font
	// Width is the advance width in pixels.
	Width() float64
}

// Text creates fonts and measures text for a backend.
type Text interface {
	NewFont(name string, size float64) (Font, error)
	NewTextLayout(font Font, text string) (TextLayout, error)
}

// RenderContext is the drawing surface handed to paint passes.
// Coordinates are relative to the current translation.
type RenderContext interface {
	// Save pushes the current translation and clip.
	Save()
	// Restore pops the most recent Save.
	Restore()
	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)
	// Clip restricts future drawing to rect intersected with the current clip.
	Clip(rect geometry.Rect)
	// Clear fills the whole surface, ignoring translation and clip.
	Clear(color theme.Color)
	// Fill paints the interior of shape.
	Fill(shape Shape, color theme.Color)
	// Stroke paints the outline of shape, centred on its edge.
	Stroke(shape Shape, color theme.Color, width float64)
	// DrawText draws layout with its baseline starting at origin.
	DrawText(layout TextLayout, origin geometry.Point, color theme.Color)
	// Text returns the backend's text factory.
	Text() Text
}
