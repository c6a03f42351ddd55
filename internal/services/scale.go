package services

import "math"

// Defaults for screen sizing when no configuration overrides them.
const (
	// DefaultMinObjectPx is the smallest rendered diameter; nothing is
	// ever drawn invisible.
	DefaultMinObjectPx = 10.0
	// DefaultMaxWidthRatio bounds a rendered diameter to a fraction of
	// the screen width.
	DefaultMaxWidthRatio = 0.4
)

// Scaler converts real physical magnitudes into renderable screen
// quantities. It is stateless apart from its two clamp bounds and safe
// to share across concurrent callers.
type Scaler struct {
	MinObjectPx   float64
	MaxWidthRatio float64
}

func NewScaler(minObjectPx, maxWidthRatio float64) Scaler {
	if minObjectPx <= 0 {
		minObjectPx = DefaultMinObjectPx
	}
	if maxWidthRatio <= 0 {
		maxWidthRatio = DefaultMaxWidthRatio
	}
	return Scaler{MinObjectPx: minObjectPx, MaxWidthRatio: maxWidthRatio}
}

// ScreenDiameter maps a real diameter to pixels relative to a reference
// size. The result is always clamped into
// [MinObjectPx, screenWidth*MaxWidthRatio] however extreme the ratio —
// intentional lossy compression of scale for visibility. A zero or
// negative diameter clamps up to the minimum rather than vanishing.
func (s Scaler) ScreenDiameter(realDiameter, screenWidth, referenceSize float64) float64 {
	maxPx := screenWidth * s.MaxWidthRatio

	ratio := 0.0
	if referenceSize > 0 {
		ratio = realDiameter / referenceSize
	}
	raw := ratio * maxPx

	if raw < s.MinObjectPx {
		return s.MinObjectPx
	}
	if raw > maxPx {
		return maxPx
	}
	return raw
}

// RealToScreen maps a real distance to pixels by the ratio of
// ln(1+distance) to ln(1+max). The log keeps astronomical distances
// (up to ~1e26 m) renderable while staying monotonic and near-linear
// for small values. Non-positive inputs return 0. When realDistance
// equals maxRealDistance the result saturates to exactly screenWidth.
func RealToScreen(realDistance, maxRealDistance, screenWidth float64) float64 {
	if realDistance <= 0 || maxRealDistance <= 0 {
		return 0
	}
	return math.Log1p(realDistance) / math.Log1p(maxRealDistance) * screenWidth
}

// ProportionalSize renders a diameter as a linear fraction of the
// on-screen gap between two objects. The gap itself is fixed by the
// logarithmic mapping (scaled against itself, over 70% of the screen);
// the diameter-to-distance ratio stays linear on top of it so true
// relative proportions survive: an object twice as wide relative to the
// gap renders twice as wide relative to the gap. Floors at 1 px, no
// upper clamp. Degenerate inputs return the 1 px minimum.
func ProportionalSize(realDiameter, realDistance, screenWidth float64) float64 {
	if realDiameter <= 0 || realDistance <= 0 {
		return 1
	}

	screenDistance := RealToScreen(realDistance, realDistance, screenWidth*0.7)
	size := realDiameter / realDistance * screenDistance
	if size < 1 {
		return 1
	}
	return size
}

// ZoomFactor returns the magnification between two powers of ten.
func ZoomFactor(fromExponent, toExponent float64) float64 {
	return math.Pow(10, toExponent-fromExponent)
}
