// Package shapes provides constructors for the standard membership-function
// curves. Each constructor validates its control points and returns a value
// satisfying types.Membership; the engine itself never depends on how a
// function was built.
package shapes

import (
	"fmt"
	"math"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

// Triangular rises linearly from A to its peak at B and falls back to zero
// at C.
type Triangular struct {
	A, B, C float64
}

// NewTriangular requires a <= b <= c. Collapsing a==b or b==c produces a
// shoulder; collapsing all three produces a singleton at b.
func NewTriangular(a, b, c float64) (Triangular, error) {
	if a > b || b > c {
		return Triangular{}, fmt.Errorf("%w: triangular requires a <= b <= c, got (%v, %v, %v)", types.ErrInvalidShape, a, b, c)
	}
	return Triangular{A: a, B: b, C: c}, nil
}

func (t Triangular) At(x float64) float64 {
	switch {
	case x == t.B:
		return 1
	case x <= t.A || x >= t.C:
		return 0
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	default:
		return (t.C - x) / (t.C - t.B)
	}
}

// Trapezoidal rises from A to B, holds 1 across [B, C], and falls to zero
// at D.
type Trapezoidal struct {
	A, B, C, D float64
}

// NewTrapezoidal requires a <= b <= c <= d. a==b or c==d produce vertical
// shoulders, which is the usual way to saturate a variable's extremes.
func NewTrapezoidal(a, b, c, d float64) (Trapezoidal, error) {
	if a > b || b > c || c > d {
		return Trapezoidal{}, fmt.Errorf("%w: trapezoidal requires a <= b <= c <= d, got (%v, %v, %v, %v)", types.ErrInvalidShape, a, b, c, d)
	}
	return Trapezoidal{A: a, B: b, C: c, D: d}, nil
}

func (t Trapezoidal) At(x float64) float64 {
	switch {
	case x >= t.B && x <= t.C:
		return 1
	case x <= t.A || x >= t.D:
		return 0
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	default:
		return (t.D - x) / (t.D - t.C)
	}
}

// Gaussian is the bell curve exp(-(x-Mean)² / 2σ²).
type Gaussian struct {
	Mean, Sigma float64
}

// NewGaussian requires a strictly positive sigma.
func NewGaussian(mean, sigma float64) (Gaussian, error) {
	if sigma <= 0 {
		return Gaussian{}, fmt.Errorf("%w: gaussian requires sigma > 0, got %v", types.ErrInvalidShape, sigma)
	}
	return Gaussian{Mean: mean, Sigma: sigma}, nil
}

func (g Gaussian) At(x float64) float64 {
	d := x - g.Mean
	return math.Exp(-(d * d) / (2 * g.Sigma * g.Sigma))
}

// Sigmoid is 1 / (1 + exp(-Slope·(x-Center))). A negative slope mirrors the
// curve, so the slope is only required to be nonzero.
type Sigmoid struct {
	Slope, Center float64
}

func NewSigmoid(slope, center float64) (Sigmoid, error) {
	if slope == 0 {
		return Sigmoid{}, fmt.Errorf("%w: sigmoid requires a nonzero slope", types.ErrInvalidShape)
	}
	return Sigmoid{Slope: slope, Center: center}, nil
}

func (s Sigmoid) At(x float64) float64 {
	return 1 / (1 + math.Exp(-s.Slope*(x-s.Center)))
}

// Bell is the generalized bell 1 / (1 + |(x-Center)/Width|^(2·Slope)).
type Bell struct {
	Width, Slope, Center float64
}

// NewBell requires positive width and slope.
func NewBell(width, slope, center float64) (Bell, error) {
	if width <= 0 || slope <= 0 {
		return Bell{}, fmt.Errorf("%w: bell requires width > 0 and slope > 0, got (%v, %v)", types.ErrInvalidShape, width, slope)
	}
	return Bell{Width: width, Slope: slope, Center: center}, nil
}

func (b Bell) At(x float64) float64 {
	return 1 / (1 + math.Pow(math.Abs((x-b.Center)/b.Width), 2*b.Slope))
}

// SShaped is the smooth spline rise from 0 at A to 1 at B.
type SShaped struct {
	A, B float64
}

// NewSShaped requires a < b.
func NewSShaped(a, b float64) (SShaped, error) {
	if a >= b {
		return SShaped{}, fmt.Errorf("%w: s-shaped requires a < b, got (%v, %v)", types.ErrInvalidShape, a, b)
	}
	return SShaped{A: a, B: b}, nil
}

func (s SShaped) At(x float64) float64 {
	switch {
	case x <= s.A:
		return 0
	case x >= s.B:
		return 1
	case x <= (s.A+s.B)/2:
		t := (x - s.A) / (s.B - s.A)
		return 2 * t * t
	default:
		t := (x - s.B) / (s.B - s.A)
		return 1 - 2*t*t
	}
}

// ZShaped is the mirror of SShaped: 1 at A falling smoothly to 0 at B.
type ZShaped struct {
	A, B float64
}

// NewZShaped requires a < b.
func NewZShaped(a, b float64) (ZShaped, error) {
	if a >= b {
		return ZShaped{}, fmt.Errorf("%w: z-shaped requires a < b, got (%v, %v)", types.ErrInvalidShape, a, b)
	}
	return ZShaped{A: a, B: b}, nil
}

func (z ZShaped) At(x float64) float64 {
	s := SShaped{A: z.A, B: z.B}
	return 1 - s.At(x)
}

// PiShaped rises like SShaped over [A, B], holds 1 across [B, C], and falls
// like ZShaped over [C, D].
type PiShaped struct {
	A, B, C, D float64
}

// NewPiShaped requires a < b <= c < d.
func NewPiShaped(a, b, c, d float64) (PiShaped, error) {
	if a >= b || b > c || c >= d {
		return PiShaped{}, fmt.Errorf("%w: pi-shaped requires a < b <= c < d, got (%v, %v, %v, %v)", types.ErrInvalidShape, a, b, c, d)
	}
	return PiShaped{A: a, B: b, C: c, D: d}, nil
}

func (p PiShaped) At(x float64) float64 {
	switch {
	case x < p.B:
		s := SShaped{A: p.A, B: p.B}
		return s.At(x)
	case x <= p.C:
		return 1
	default:
		z := ZShaped{A: p.C, B: p.D}
		return z.At(x)
	}
}

// Singleton has membership 1 at exactly Value and 0 everywhere else.
type Singleton struct {
	Value float64
}

func NewSingleton(value float64) Singleton {
	return Singleton{Value: value}
}

func (s Singleton) At(x float64) float64 {
	if x == s.Value {
		return 1
	}
	return 0
}

// Constant has the same degree everywhere. The degree is clamped to [0,1].
type Constant struct {
	Degree float64
}

func NewConstant(degree float64) Constant {
	return Constant{Degree: clamp(degree)}
}

func (c Constant) At(_ float64) float64 { return c.Degree }

// Custom wraps an arbitrary function as a Membership, clamping its result
// to [0,1] so downstream sampling never sees an out-of-range degree.
func Custom(f func(x float64) float64) types.Membership {
	return types.MembershipFunc(func(x float64) float64 {
		return clamp(f(x))
	})
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
