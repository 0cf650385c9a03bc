package framebuffer

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/render"
	"github.com/go-drift/fixedui/pkg/theme"
)

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error
)

func parseGoRegular() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

type faceKey struct {
	name string
	size float64
}

// Text is the framebuffer text factory. Faces are cached by name and size.
type Text struct {
	mu    sync.Mutex
	faces map[faceKey]*fontFace
}

// NewText returns an empty text factory.
func NewText() *Text {
	return &Text{faces: make(map[faceKey]*fontFace)}
}

type fontFace struct {
	name string
	size float64
	face font.Face
}

func (f *fontFace) Name() string  { return f.name }
func (f *fontFace) Size() float64 { return f.size }

// NewFont maps "sans-serif" and "go-regular" to Go Regular at size pixels.
// "basic" and unknown names use the fixed 7x13 bitmap face.
func (t *Text) NewFont(name string, size float64) (render.Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive (got %v)", size)
	}
	key := faceKey{name: name, size: size}

	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.faces[key]; ok {
		return f, nil
	}

	var face font.Face
	switch name {
	case theme.FontSansSerif, theme.FontGoRegular:
		otf, err := parseGoRegular()
		if err != nil {
			return nil, fmt.Errorf("parse go regular: %w", err)
		}
		face, err = opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("new face %s/%v: %w", name, size, err)
		}
	default:
		face = basicfont.Face7x13
	}
	f := &fontFace{name: name, size: size, face: face}
	t.faces[key] = f
	return f, nil
}

type textLayout struct {
	text  string
	font  *fontFace
	width float64
}

func (l *textLayout) Text() string      { return l.text }
func (l *textLayout) Font() render.Font { return l.font }
func (l *textLayout) Width() float64    { return l.width }

// NewTextLayout measures text with the face behind font.
func (t *Text) NewTextLayout(f render.Font, text string) (render.TextLayout, error) {
	ff, ok := f.(*fontFace)
	if !ok {
		if f == nil {
			return nil, fmt.Errorf("nil font")
		}
		created, err := t.NewFont(f.Name(), f.Size())
		if err != nil {
			return nil, err
		}
		ff = created.(*fontFace)
	}
	adv := font.MeasureString(ff.face, text)
	return &textLayout{text: text, font: ff, width: fromFixed(adv)}, nil
}

func (l *textLayout) draw(dst *image.RGBA, baseline geometry.Point, color theme.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color),
		Face: l.font.face,
		Dot:  fixed.Point26_6{X: toFixed(baseline.X), Y: toFixed(baseline.Y)},
	}
	d.DrawString(l.text)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
