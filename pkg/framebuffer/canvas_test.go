package framebuffer

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/theme"
)

var (
	black = theme.Hex(0x000000)
	red   = theme.Hex(0xff0000)
	white = theme.Hex(0xffffff)
)

func pixel(c *Canvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func TestClear(t *testing.T) {
	c := New(8, 8)
	c.Translate(3, 3)
	c.Clip(geometry.RectFromLTWH(0, 0, 1, 1))
	c.Clear(red)
	for _, p := range [][2]int{{0, 0}, {7, 7}, {4, 4}} {
		if got := pixel(c, p[0], p[1]); got != (color.RGBA{R: 0xff, A: 0xff}) {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
}

func TestFillRectHonoursTranslateAndClip(t *testing.T) {
	c := New(20, 20)
	c.Clear(black)
	c.Save()
	c.Translate(5, 5)
	c.Clip(geometry.RectFromLTWH(0, 0, 5, 5))
	c.Fill(render.RectShape(geometry.RectFromLTWH(0, 0, 10, 10)), white)
	c.Restore()

	if got := pixel(c, 7, 7); got.R != 0xff {
		t.Errorf("expected (7,7) filled, got %v", got)
	}
	if got := pixel(c, 12, 12); got.R != 0 {
		t.Errorf("expected (12,12) clipped out, got %v", got)
	}
	if got := pixel(c, 4, 4); got.R != 0 {
		t.Errorf("expected (4,4) outside fill, got %v", got)
	}

	// Restore drops the clip and translation.
	c.Fill(render.RectShape(geometry.RectFromLTWH(0, 0, 2, 2)), white)
	if got := pixel(c, 1, 1); got.R != 0xff {
		t.Errorf("expected (1,1) filled after restore, got %v", got)
	}
}

func TestFillRoundedRect(t *testing.T) {
	c := New(40, 40)
	c.Clear(black)
	c.Fill(render.Shape{Rect: geometry.RectFromLTWH(0, 0, 40, 40), Radius: 10}, white)

	if got := pixel(c, 20, 20); got.R != 0xff {
		t.Errorf("expected centre filled, got %v", got)
	}
	if got := pixel(c, 0, 0); got.R > 0x20 {
		t.Errorf("expected corner mostly empty, got %v", got)
	}
	if got := pixel(c, 20, 0); got.R < 0xf0 {
		t.Errorf("expected top edge filled, got %v", got)
	}
}

func TestStrokeLeavesInterior(t *testing.T) {
	c := New(40, 40)
	c.Clear(black)
	c.Stroke(render.Shape{Rect: geometry.RectFromLTWH(10, 10, 20, 20), Radius: 4}, white, 2)

	if got := pixel(c, 20, 20); got.R != 0 {
		t.Errorf("expected interior untouched, got %v", got)
	}
	if got := pixel(c, 20, 10); got.R < 0x80 {
		t.Errorf("expected top edge stroked, got %v", got)
	}
	if got := pixel(c, 2, 2); got.R != 0 {
		t.Errorf("expected outside untouched, got %v", got)
	}
}

func TestTextMeasureAndDraw(t *testing.T) {
	c := New(120, 40)
	c.Clear(black)

	for _, name := range []string{theme.FontSansSerif, theme.FontBasic} {
		f, err := c.Text().NewFont(name, 15)
		if err != nil {
			t.Fatalf("NewFont(%s): %v", name, err)
		}
		l, err := c.Text().NewTextLayout(f, "hello")
		if err != nil {
			t.Fatalf("NewTextLayout: %v", err)
		}
		if l.Width() <= 0 {
			t.Errorf("%s: expected positive width, got %v", name, l.Width())
		}
	}

	f, _ := c.Text().NewFont(theme.FontBasic, 13)
	l, _ := c.Text().NewTextLayout(f, "HH")
	if l.Width() != 14 {
		t.Errorf("expected basic face advance 7 per glyph, got %v", l.Width())
	}
	c.DrawText(l, geometry.Point{X: 2, Y: 20}, white)

	lit := 0
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pixel(c, x, y).R > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected text to light pixels")
	}
}

func TestNewFontCachesFaces(t *testing.T) {
	text := NewText()
	a, _ := text.NewFont(theme.FontGoRegular, 12)
	b, _ := text.NewFont(theme.FontGoRegular, 12)
	if a != b {
		t.Error("expected cached font")
	}
	if _, err := text.NewFont(theme.FontGoRegular, 0); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestDrawTextFromForeignLayout(t *testing.T) {
	c := New(60, 20)
	c.Clear(black)
	mono := render.MonoText{Advance: 0.5}
	f, _ := mono.NewFont(theme.FontBasic, 13)
	l, _ := mono.NewTextLayout(f, "X")
	c.DrawText(l, geometry.Point{X: 1, Y: 14}, white)

	lit := false
	for x := 0; x < 10 && !lit; x++ {
		for y := 0; y < 20; y++ {
			if pixel(c, x, y).R > 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("expected foreign layout to be redrawn with a framebuffer face")
	}
}

func TestWritePNGAndScale(t *testing.T) {
	c := New(4, 4)
	c.Clear(red)

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("expected width 4, got %d", img.Bounds().Dx())
	}

	scaled := c.Scaled(2, 2)
	if scaled.Bounds().Dx() != 2 || scaled.RGBAAt(1, 1).R != 0xff {
		t.Errorf("unexpected scaled image %v %v", scaled.Bounds(), scaled.RGBAAt(1, 1))
	}
}
