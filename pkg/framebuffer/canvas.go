// Package framebuffer implements a software RenderContext that rasterizes
// into an RGBA image sized to the panel.
package framebuffer

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/theme"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

type state struct {
	origin geometry.Point
	clip   image.Rectangle
}

// Canvas draws into an *image.RGBA.
type Canvas struct {
	img   *image.RGBA
	cur   state
	stack []state
	text  *Text
}

// New allocates a width x height framebuffer.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		img:  img,
		cur:  state{clip: img.Bounds()},
		text: NewText(),
	}
}

// Image returns the backing image. It is updated in place by drawing calls.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the framebuffer rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Reset clears the save stack, translation and clip. Pixels are kept.
func (c *Canvas) Reset() {
	c.cur = state{clip: c.img.Bounds()}
	c.stack = c.stack[:0]
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	c.cur.origin = c.cur.origin.Add(geometry.Point{X: dx, Y: dy})
}

func (c *Canvas) Clip(rect geometry.Rect) {
	c.cur.clip = c.cur.clip.Intersect(c.pixelBounds(rect))
}

func (c *Canvas) Clear(color theme.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color), image.Point{}, draw.Src)
}

func (c *Canvas) Fill(shape render.Shape, color theme.Color) {
	rect := c.abs(shape.Rect)
	if shape.Radius <= 0 && isIntegral(rect) {
		bounds := c.cur.clip.Intersect(c.pixelBounds(shape.Rect))
		if !bounds.Empty() {
			draw.Draw(c.img, bounds, image.NewUniform(color), image.Point{}, draw.Over)
		}
		return
	}
	c.rasterize(rect.Left, rect.Top, rect.Right, rect.Bottom, color, func(z *vector.Rasterizer, off geometry.Point) {
		roundedRectPath(z, rect.Translate(-off.X, -off.Y), shape.Radius, false)
	})
}

func (c *Canvas) Stroke(shape render.Shape, color theme.Color, width float64) {
	if width <= 0 {
		return
	}
	rect := c.abs(shape.Rect)
	half := width / 2
	outer := geometry.Rect{Left: rect.Left - half, Top: rect.Top - half, Right: rect.Right + half, Bottom: rect.Bottom + half}
	inner := geometry.Rect{Left: rect.Left + half, Top: rect.Top + half, Right: rect.Right - half, Bottom: rect.Bottom - half}
	c.rasterize(outer.Left, outer.Top, outer.Right, outer.Bottom, color, func(z *vector.Rasterizer, off geometry.Point) {
		roundedRectPath(z, outer.Translate(-off.X, -off.Y), shape.Radius+half, false)
		if !inner.IsEmpty() {
			roundedRectPath(z, inner.Translate(-off.X, -off.Y), math.Max(0, shape.Radius-half), true)
		}
	})
}

func (c *Canvas) DrawText(layout render.TextLayout, origin geometry.Point, color theme.Color) {
	l, ok := layout.(*textLayout)
	if !ok {
		f, err := c.text.NewFont(layout.Font().Name(), layout.Font().Size())
		if err != nil {
			return
		}
		tl, err := c.text.NewTextLayout(f, layout.Text())
		if err != nil {
			return
		}
		l = tl.(*textLayout)
	}
	if c.cur.clip.Empty() {
		return
	}
	dst := c.img.SubImage(c.cur.clip).(*image.RGBA)
	p := c.cur.origin.Add(origin)
	l.draw(dst, p, color)
}

func (c *Canvas) Text() render.Text {
	return c.text
}

// WritePNG encodes the framebuffer as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Scaled returns the framebuffer resampled to width x height with
// nearest-neighbour sampling, which keeps panel pixels crisp.
func (c *Canvas) Scaled(width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(out, out.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return out
}

// rasterize fills the path built by path inside the given absolute bounds,
// clipped to the current clip. Path coordinates are relative to off.
func (c *Canvas) rasterize(left, top, right, bottom float64, color theme.Color, path func(z *vector.Rasterizer, off geometry.Point)) {
	bounds := c.cur.clip.Intersect(image.Rect(
		int(math.Floor(left)), int(math.Floor(top)),
		int(math.Ceil(right)), int(math.Ceil(bottom)),
	))
	if bounds.Empty() {
		return
	}
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over
	path(z, geometry.Point{X: float64(bounds.Min.X), Y: float64(bounds.Min.Y)})
	z.Draw(c.img, bounds, image.NewUniform(color), image.Point{})
}

func (c *Canvas) abs(r geometry.Rect) geometry.Rect {
	return r.Translate(c.cur.origin.X, c.cur.origin.Y)
}

func (c *Canvas) pixelBounds(r geometry.Rect) image.Rectangle {
	r = c.abs(r)
	return image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
}

func isIntegral(r geometry.Rect) bool {
	return r.Left == math.Trunc(r.Left) && r.Top == math.Trunc(r.Top) &&
		r.Right == math.Trunc(r.Right) && r.Bottom == math.Trunc(r.Bottom)
}

// roundedRectPath adds a closed rounded rectangle to z. Reverse winds it
// counter-clockwise so it cuts a hole out of an enclosing clockwise path.
func roundedRectPath(z *vector.Rasterizer, r geometry.Rect, radius float64, reverse bool) {
	radius = math.Min(radius, math.Min(r.Width(), r.Height())/2)
	if radius < 0 {
		radius = 0
	}
	l, t, rt, b := float32(r.Left), float32(r.Top), float32(r.Right), float32(r.Bottom)
	rad := float32(radius)
	k := float32(radius * (1 - kappa))

	if !reverse {
		z.MoveTo(l+rad, t)
		z.LineTo(rt-rad, t)
		z.CubeTo(rt-k, t, rt, t+k, rt, t+rad)
		z.LineTo(rt, b-rad)
		z.CubeTo(rt, b-k, rt-k, b, rt-rad, b)
		z.LineTo(l+rad, b)
		z.CubeTo(l+k, b, l, b-k, l, b-rad)
		z.LineTo(l, t+rad)
		z.CubeTo(l, t+k, l+k, t, l+rad, t)
		z.ClosePath()
		return
	}
	z.MoveTo(l+rad, t)
	z.CubeTo(l+k, t, l, t+k, l, t+rad)
	z.LineTo(l, b-rad)
	z.CubeTo(l, b-k, l+k, b, l+rad, b)
	z.LineTo(rt-rad, b)
	z.CubeTo(rt-k, b, rt, b-k, rt, b-rad)
	z.LineTo(rt, t+rad)
	z.CubeTo(rt, t+k, rt-k, t, rt-rad, t)
	z.ClosePath()
}
