package widget

import (
	"testing"

	"github.com/go-drift/fixedui/pkg/geometry"
	"github.com/go-drift/fixedui/pkg/render"
)

func opNames(ops []render.Op) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	return names
}

func paintButton(t *testing.T, pressed bool) []render.Op {
	t.Helper()
	a := NewArena[uint32](2)
	btn := AddButton(a, "ok", increment(1))
	pad := NewUniformPadding(a, 5, btn)
	layoutRoot(a, pad, geometry.Tight(geometry.Size{Width: 100, Height: 40}), 0)
	if pressed {
		var data uint32
		dispatch(a, pad, down(50, 20), &data)
	}

	rec := render.NewRecorder()
	pad.Paint(NewPaintCtx(a, testTheme, rec, 1), 0, Env{})
	return rec.Ops()
}

func TestButtonPaintOrder(t *testing.T) {
	ops := paintButton(t, false)
	want := []string{"save", "translate", "stroke", "fill", "text", "restore"}
	got := opNames(ops)
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}

	stroke := ops[2].Params
	if stroke["rect"] != (geometry.Rect{Left: 5, Top: 5, Right: 95, Bottom: 35}) {
		t.Errorf("stroke rect = %v", stroke["rect"])
	}
	if stroke["color"] != testTheme.Border.String() || stroke["width"] != testTheme.BorderWidth {
		t.Errorf("stroke = %v", ops[2])
	}
	if ops[3].Params["color"] != testTheme.ButtonDark.String() {
		t.Errorf("fill = %v", ops[3])
	}

	text := ops[4].Params
	if text["text"] != "ok" || text["x"] != 42.5 || text["y"] != 24.5 {
		t.Errorf("text = %v", ops[4])
	}
}

func TestPressedButtonUsesLightFill(t *testing.T) {
	ops := paintButton(t, true)
	fills := 0
	for _, op := range ops {
		if op.Op == "fill" {
			fills++
			if op.Params["color"] != testTheme.ButtonLight.String() {
				t.Errorf("fill colour = %v", op.Params["color"])
			}
		}
	}
	if fills != 1 {
		t.Errorf("got %d fills", fills)
	}
}

func TestLabelPaintOrigin(t *testing.T) {
	a := NewArena[uint32](1)
	label := AddLabel(a, "hi")
	layoutRoot(a, label, geometry.Loose(geometry.Size{Width: 100, Height: 100}), 0)

	rec := render.NewRecorder()
	label.Paint(NewPaintCtx(a, testTheme, rec, 1), 0, Env{})
	texts := rec.Filter("text")
	if len(texts) != 1 {
		t.Fatalf("got %d text ops", len(texts))
	}
	// Halfway down the height plus half a line: (18 + 9) / 2.
	if texts[0].Params["x"] != 0.0 || texts[0].Params["y"] != 13.5 {
		t.Errorf("text origin = %v", texts[0])
	}
}
