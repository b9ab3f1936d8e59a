package shapes

import (
	"errors"
	"math"
	"testing"

	"github.com/sureshreddy197/fuzzy-engine/pkg/types"
)

func TestTriangularProperties(t *testing.T) {
	t.Parallel()
	tri, err := NewTriangular(10, 30, 60)
	if err != nil {
		t.Fatal(err)
	}

	if got := tri.At(10); got != 0 {
		t.Errorf("f(a) = %v, want 0", got)
	}
	if got := tri.At(30); got != 1 {
		t.Errorf("f(b) = %v, want 1", got)
	}
	if got := tri.At(60); got != 0 {
		t.Errorf("f(c) = %v, want 0", got)
	}

	// Non-decreasing on [a, b], non-increasing on [b, c].
	prev := -1.0
	for x := 10.0; x <= 30; x += 0.5 {
		cur := tri.At(x)
		if cur < prev {
			t.Fatalf("not non-decreasing on rise at x=%v", x)
		}
		prev = cur
	}
	prev = 2.0
	for x := 30.0; x <= 60; x += 0.5 {
		cur := tri.At(x)
		if cur > prev {
			t.Fatalf("not non-increasing on fall at x=%v", x)
		}
		prev = cur
	}
}

func TestTriangularDegenerate(t *testing.T) {
	t.Parallel()
	// a==b==c collapses to a singleton at b.
	point, err := NewTriangular(5, 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if point.At(5) != 1 || point.At(5.0001) != 0 {
		t.Error("degenerate triangle should be a singleton at b")
	}

	// a==b forms a left shoulder.
	shoulder, err := NewTriangular(0, 0, 20)
	if err != nil {
		t.Fatal(err)
	}
	if shoulder.At(0) != 1 {
		t.Error("left-shoulder triangle should be 1 at its collapsed edge")
	}
}

func TestTrapezoidalProperties(t *testing.T) {
	t.Parallel()
	trap, err := NewTrapezoidal(0, 20, 40, 60)
	if err != nil {
		t.Fatal(err)
	}

	for x := 20.0; x <= 40; x += 1 {
		if got := trap.At(x); got != 1 {
			t.Fatalf("plateau at x=%v: got %v, want 1", x, got)
		}
	}
	if trap.At(0) != 0 || trap.At(60) != 0 {
		t.Error("f(a) and f(d) must be 0")
	}
	if got := trap.At(10); got != 0.5 {
		t.Errorf("rising edge midpoint: got %v, want 0.5", got)
	}
}

func TestConstructorsRejectBadParameters(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  error
	}{
		{"triangular out of order", func() error { _, err := NewTriangular(3, 2, 1); return err }()},
		{"trapezoidal out of order", func() error { _, err := NewTrapezoidal(0, 5, 4, 10); return err }()},
		{"gaussian zero sigma", func() error { _, err := NewGaussian(0, 0); return err }()},
		{"gaussian negative sigma", func() error { _, err := NewGaussian(0, -1); return err }()},
		{"sigmoid zero slope", func() error { _, err := NewSigmoid(0, 5); return err }()},
		{"bell zero width", func() error { _, err := NewBell(0, 2, 5); return err }()},
		{"s-shaped collapsed", func() error { _, err := NewSShaped(5, 5); return err }()},
		{"z-shaped reversed", func() error { _, err := NewZShaped(10, 5); return err }()},
		{"pi-shaped reversed", func() error { _, err := NewPiShaped(0, 10, 5, 20); return err }()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, types.ErrInvalidShape) {
				t.Errorf("got %v, want ErrInvalidShape", tc.err)
			}
		})
	}
}

func TestGaussian(t *testing.T) {
	t.Parallel()
	g, err := NewGaussian(50, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.At(50); got != 1 {
		t.Errorf("peak: got %v, want 1", got)
	}
	// Symmetric around the mean.
	if math.Abs(g.At(40)-g.At(60)) > 1e-12 {
		t.Error("gaussian should be symmetric around the mean")
	}
	if g.At(0) >= g.At(45) {
		t.Error("membership should fall with distance from the mean")
	}
}

func TestSigmoidAndBell(t *testing.T) {
	t.Parallel()
	s, err := NewSigmoid(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.At(5); got != 0.5 {
		t.Errorf("sigmoid crossover: got %v, want 0.5", got)
	}
	if s.At(10) <= s.At(5) || s.At(0) >= s.At(5) {
		t.Error("positive-slope sigmoid should be increasing")
	}

	falling, err := NewSigmoid(-2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if falling.At(10) >= falling.At(0) {
		t.Error("negative-slope sigmoid should be decreasing")
	}

	b, err := NewBell(2, 4, 6)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.At(6); got != 1 {
		t.Errorf("bell center: got %v, want 1", got)
	}
	if math.Abs(b.At(4)-b.At(8)) > 1e-12 {
		t.Error("bell should be symmetric around its center")
	}
}

func TestSplineShapes(t *testing.T) {
	t.Parallel()
	s, err := NewSShaped(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.At(-1) != 0 || s.At(0) != 0 || s.At(10) != 1 || s.At(11) != 1 {
		t.Error("s-shaped boundary values wrong")
	}
	if got := s.At(5); got != 0.5 {
		t.Errorf("s-shaped midpoint: got %v, want 0.5", got)
	}

	z, err := NewZShaped(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if z.At(0) != 1 || z.At(10) != 0 {
		t.Error("z-shaped boundary values wrong")
	}
	if math.Abs(s.At(3)+z.At(3)-1) > 1e-12 {
		t.Error("z-shaped should mirror s-shaped")
	}

	p, err := NewPiShaped(0, 10, 20, 30)
	if err != nil {
		t.Fatal(err)
	}
	if p.At(10) != 1 || p.At(15) != 1 || p.At(20) != 1 {
		t.Error("pi-shaped plateau should hold 1")
	}
	if p.At(-1) != 0 || p.At(31) != 0 {
		t.Error("pi-shaped tails should be 0")
	}
}

func TestSingletonAndConstant(t *testing.T) {
	t.Parallel()
	s := NewSingleton(7)
	if s.At(7) != 1 || s.At(6.999) != 0 {
		t.Error("singleton should be 1 only at its value")
	}

	c := NewConstant(0.4)
	if c.At(-1000) != 0.4 || c.At(1000) != 0.4 {
		t.Error("constant should hold its degree everywhere")
	}
	if NewConstant(1.5).At(0) != 1 || NewConstant(-0.5).At(0) != 0 {
		t.Error("constant degree should clamp to [0, 1]")
	}
}

func TestCustomClamps(t *testing.T) {
	t.Parallel()
	m := Custom(func(x float64) float64 { return x })
	if m.At(-3) != 0 {
		t.Error("custom should clamp below 0")
	}
	if m.At(3) != 1 {
		t.Error("custom should clamp above 1")
	}
	if got := m.At(0.25); got != 0.25 {
		t.Errorf("in-range value altered: got %v", got)
	}
}
