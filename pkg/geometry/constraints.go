package geometry

import (
	"math"

	"go.uber.org/zap"

	"github.com/go-drift/fixedui/pkg/errors"
)

// Constraints bounds the size a widget may choose during layout.
// Max components may be Inf for an unbounded axis.
type Constraints struct {
	Min Size
	Max Size
}

// Tight returns constraints that admit exactly size.
func Tight(size Size) Constraints {
	return Constraints{Min: size, Max: size}
}

// Loose returns constraints from zero up to size.
func Loose(size Size) Constraints {
	return Constraints{Max: size}
}

// NewConstraints builds constraints from explicit bounds.
func NewConstraints(min, max Size) Constraints {
	return Constraints{Min: min, Max: max}
}

// Loosen drops the minimum to zero, keeping the maximum.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

// Constrain clamps size to the constraints on each axis.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, c.Min.Width, c.Max.Width),
		Height: clamp(size.Height, c.Min.Height, c.Max.Height),
	}
}

// Shrink subtracts dw and dh from both bounds, never going below zero.
func (c Constraints) Shrink(dw, dh float64) Constraints {
	return Constraints{
		Min: Size{Width: math.Max(0, c.Min.Width-dw), Height: math.Max(0, c.Min.Height-dh)},
		Max: Size{Width: math.Max(0, c.Max.Width-dw), Height: math.Max(0, c.Max.Height-dh)},
	}
}

// IsWidthBounded reports whether the maximum width is finite.
func (c Constraints) IsWidthBounded() bool {
	return !math.IsInf(c.Max.Width, 1)
}

// IsHeightBounded reports whether the maximum height is finite.
func (c Constraints) IsHeightBounded() bool {
	return !math.IsInf(c.Max.Height, 1)
}

// IsTight reports whether min equals max on both axes.
func (c Constraints) IsTight() bool {
	return floatEqual(c.Min.Width, c.Max.Width) && floatEqual(c.Min.Height, c.Max.Height)
}

// Satisfies reports whether size lies within the constraints.
func (c Constraints) Satisfies(size Size) bool {
	return size.Width >= c.Min.Width-epsilon && size.Width <= c.Max.Width+epsilon &&
		size.Height >= c.Min.Height-epsilon && size.Height <= c.Max.Height+epsilon
}

// DebugCheck logs a warning when the constraints are malformed: negative,
// NaN, min above max, or an infinite minimum.
func (c Constraints) DebugCheck(name string) {
	if !(0 <= c.Min.Width && c.Min.Width <= c.Max.Width) ||
		!(0 <= c.Min.Height && c.Min.Height <= c.Max.Height) {
		errors.Warn(name, "bad constraints",
			zap.Float64("min_width", c.Min.Width), zap.Float64("min_height", c.Min.Height),
			zap.Float64("max_width", c.Max.Width), zap.Float64("max_height", c.Max.Height))
	}
	if math.IsInf(c.Min.Width, 1) || math.IsInf(c.Min.Height, 1) {
		errors.Warn(name, "infinite minimum constraint",
			zap.Float64("min_width", c.Min.Width), zap.Float64("min_height", c.Min.Height))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
