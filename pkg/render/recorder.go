package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/theme"
)

// Op is one recorded drawing operation. Rectangles and points in Params are
// in surface coordinates, with the translation stack already applied.
type Op struct {
	Op     string
	Params map[string]any
}

func (o Op) String() string {
	if len(o.Params) == 0 {
		return o.Op
	}
	keys := make([]string, 0, len(o.Params))
	for k := range o.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, o.Params[k])
	}
	return o.Op + "(" + strings.Join(parts, " ") + ")"
}

// Recorder is a RenderContext that records operations instead of drawing.
type Recorder struct {
	ops    []Op
	origin geometry.Point
	stack  []geometry.Point
	text   MonoText
}

// NewRecorder returns a Recorder measuring text with DefaultAdvance.
func NewRecorder() *Recorder {
	return &Recorder{text: MonoText{Advance: DefaultAdvance}}
}

// Ops returns every recorded operation in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Filter returns the recorded operations with the given name.
func (r *Recorder) Filter(op string) []Op {
	var out []Op
	for _, o := range r.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// Reset discards recorded operations and the translation stack.
func (r *Recorder) Reset() {
	r.ops = nil
	r.origin = geometry.Point{}
	r.stack = r.stack[:0]
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.origin)
	r.ops = append(r.ops, Op{Op: "save"})
}

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.origin = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.ops = append(r.ops, Op{Op: "restore"})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.origin = r.origin.Add(geometry.Point{X: dx, Y: dy})
	r.ops = append(r.ops, Op{Op: "translate", Params: params("dx", round2(dx), "dy", round2(dy))})
}

func (r *Recorder) Clip(rect geometry.Rect) {
	r.ops = append(r.ops, Op{Op: "clip", Params: params("rect", r.abs(rect))})
}

func (r *Recorder) Clear(color theme.Color) {
	r.ops = append(r.ops, Op{Op: "clear", Params: params("color", color.String())})
}

func (r *Recorder) Fill(shape Shape, color theme.Color) {
	r.ops = append(r.ops, Op{Op: "fill", Params: params(
		"rect", r.abs(shape.Rect),
		"radius", round2(shape.Radius),
		"color", color.String(),
	)})
}

func (r *Recorder) Stroke(shape Shape, color theme.Color, width float64) {
	r.ops = append(r.ops, Op{Op: "stroke", Params: params(
		"rect", r.abs(shape.Rect),
		"radius", round2(shape.Radius),
		"color", color.String(),
		"width", round2(width),
	)})
}

func (r *Recorder) DrawText(layout TextLayout, origin geometry.Point, color theme.Color) {
	p := r.origin.Add(origin)
	r.ops = append(r.ops, Op{Op: "text", Params: params(
		"text", layout.Text(),
		"x", round2(p.X),
		"y", round2(p.Y),
		"color", color.String(),
	)})
}

func (r *Recorder) Text() Text {
	return r.text
}

func (r *Recorder) abs(rect geometry.Rect) geometry.Rect {
	rect = rect.Translate(r.origin.X, r.origin.Y)
	return geometry.Rect{
		Left:   round2(rect.Left),
		Top:    round2(rect.Top),
		Right:  round2(rect.Right),
		Bottom: round2(rect.Bottom),
	}
}

// DefaultAdvance is the glyph advance of MonoText as a fraction of font size.
const DefaultAdvance = 0.5

// MonoText measures every byte with the same advance. It gives layout tests
// stable numbers without loading a font.
type MonoText struct {
	// Advance is the width of one character as a fraction of font size.
	Advance float64
}

type monoFont struct {
	name string
	size float64
}

func (f monoFont) Name() string  { return f.name }
func (f monoFont) Size() float64 { return f.size }

type monoLayout struct {
	text  string
	font  Font
	width float64
}

func (l monoLayout) Text() string   { return l.text }
func (l monoLayout) Font() Font     { return l.font }
func (l monoLayout) Width() float64 { return l.width }

// NewFont accepts any name and a positive size.
func (m MonoText) NewFont(name string, size float64) (Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive (got %v)", size)
	}
	return monoFont{name: name, size: size}, nil
}

// NewTextLayout measures text as len(text) * size * Advance.
func (m MonoText) NewTextLayout(font Font, text string) (TextLayout, error) {
	if font == nil {
		return nil, fmt.Errorf("nil font")
	}
	return monoLayout{
		text:  text,
		font:  font,
		width: float64(len(text)) * font.Size() * m.Advance,
	}, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// params creates a map from alternating key-value pairs.
func params(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
