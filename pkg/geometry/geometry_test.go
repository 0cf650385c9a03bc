package geometry

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-drift/fixedui/pkg/errors"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{10, 20}, true},
		{Point{39.9, 59.9}, true},
		{Point{40, 30}, false},
		{Point{20, 60}, false},
		{Point{9.9, 30}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	if got := a.Intersect(b); got != (Rect{5, 5, 10, 10}) {
		t.Errorf("Intersect = %v", got)
	}
	c := RectFromLTWH(20, 20, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Error("expected disjoint intersection to be empty")
	}
}

func TestConstraintsConstrain(t *testing.T) {
	c := NewConstraints(Size{10, 10}, Size{100, Inf})
	if got := c.Constrain(Size{5, 500}); got != (Size{10, 500}) {
		t.Errorf("Constrain = %v", got)
	}
	if got := c.Constrain(Size{200, 1}); got != (Size{100, 10}) {
		t.Errorf("Constrain = %v", got)
	}
}

func TestConstraintsShrinkClampsAtZero(t *testing.T) {
	c := Tight(Size{8, 40})
	got := c.Shrink(10, 10)
	want := Constraints{Min: Size{0, 30}, Max: Size{0, 30}}
	if got != want {
		t.Errorf("Shrink = %v, want %v", got, want)
	}
	unbounded := Constraints{Max: Size{Inf, Inf}}.Shrink(10, 10)
	if unbounded.IsWidthBounded() || unbounded.IsHeightBounded() {
		t.Error("expected shrink to keep infinite bounds infinite")
	}
}

func TestConstraintsLoosen(t *testing.T) {
	c := Tight(Size{240, 240}).Loosen()
	if c.Min != (Size{}) || c.Max != (Size{240, 240}) {
		t.Errorf("Loosen = %v", c)
	}
	if c.IsTight() {
		t.Error("loosened constraints should not be tight")
	}
}

func TestDebugCheckWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	errors.SetLogger(zap.New(core))
	defer errors.SetLogger(nil)

	Tight(Size{10, 10}).DebugCheck("ok")
	if logs.Len() != 0 {
		t.Fatalf("expected no warnings, got %d", logs.Len())
	}

	NewConstraints(Size{20, 0}, Size{10, 10}).DebugCheck("min above max")
	NewConstraints(Size{Inf, 0}, Size{Inf, 10}).DebugCheck("infinite min")
	if got := logs.FilterMessage("bad constraints").Len(); got != 1 {
		t.Errorf("expected 1 bad constraints warning, got %d", got)
	}
	if got := logs.FilterMessage("infinite minimum constraint").Len(); got != 1 {
		t.Errorf("expected 1 infinite minimum warning, got %d", got)
	}
}

func TestUnitPointResolve(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 50)
	tests := []struct {
		u    UnitPoint
		want Point
	}{
		{TopLeft, Point{0, 0}},
		{Center, Point{50, 25}},
		{BottomRight, Point{100, 50}},
		{Right, Point{100, 25}},
		{Bottom, Point{50, 50}},
	}
	for _, tt := range tests {
		if got := tt.u.Resolve(r); got != tt.want {
			t.Errorf("%v.Resolve = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestSizeEqual(t *testing.T) {
	if !SizeEqual(Size{1, math.Inf(1)}, Size{1.00001, math.Inf(1)}) {
		t.Error("expected sizes within epsilon to be equal")
	}
	if SizeEqual(Size{1, 1}, Size{1.1, 1}) {
		t.Error("expected different sizes to differ")
	}
}

func TestInsets(t *testing.T) {
	in := Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}
	if in.Horizontal() != 4 || in.Vertical() != 6 {
		t.Errorf("unexpected insets sums %v %v", in.Horizontal(), in.Vertical())
	}
	if UniformInsets(5) != (Insets{5, 5, 5, 5}) {
		t.Error("UniformInsets mismatch")
	}
	if SymmetricInsets(2, 3) != (Insets{2, 3, 2, 3}) {
		t.Error("SymmetricInsets mismatch")
	}
}
