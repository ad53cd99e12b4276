package pacing

import (
	"errors"
	"math"

	"github.com/ryanlockhart/bleak/pkg/rng"
)

// Curve evaluates pacing progress in [0,1] to an intensity in [0,1], the
// rendering of §4.L's "curve.Evaluate(progress)" where progress =
// game_depth / max_expected_depth.
type Curve interface {
	Evaluate(progress float64) float64
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// LinearCurve returns progress unchanged.
type LinearCurve struct{}

func (LinearCurve) Evaluate(progress float64) float64 { return clamp(progress) }

// SCurve is a logistic ramp, normalized so Evaluate(0)=0 and Evaluate(1)=1.
type SCurve struct {
	Steepness float64
}

// NewSCurve returns an SCurve with the teacher's default steepness.
func NewSCurve() *SCurve { return &SCurve{Steepness: 10.0} }

func (c *SCurve) Evaluate(progress float64) float64 {
	progress = clamp(progress)
	k := c.Steepness
	if k == 0 {
		k = 10.0
	}
	sigmoid := 1.0 / (1.0 + math.Exp(-k*(progress-0.5)))
	minVal := 1.0 / (1.0 + math.Exp(k*0.5))
	maxVal := 1.0 / (1.0 + math.Exp(-k*0.5))
	return clamp((sigmoid - minVal) / (maxVal - minVal))
}

// ExponentialCurve is a slow-start, fast-finish power ramp.
type ExponentialCurve struct {
	Exponent float64
}

// NewExponentialCurve returns an ExponentialCurve with the teacher's
// default exponent.
func NewExponentialCurve() *ExponentialCurve { return &ExponentialCurve{Exponent: 2.0} }

func (c *ExponentialCurve) Evaluate(progress float64) float64 {
	progress = clamp(progress)
	exp := c.Exponent
	if exp == 0 {
		exp = 2.0
	}
	return math.Pow(progress, exp)
}

// CustomCurve piecewise-linearly interpolates between sorted control
// points.
type CustomCurve struct {
	Points [][2]float64
}

var (
	ErrInsufficientPoints = errors.New("pacing: custom curve requires at least 2 points")
	ErrInvalidProgress    = errors.New("pacing: progress must be in [0,1]")
	ErrInvalidIntensity   = errors.New("pacing: intensity must be in [0,1]")
	ErrUnsortedPoints     = errors.New("pacing: custom points must be sorted by progress")
)

// NewCustomCurve validates and constructs a CustomCurve.
func NewCustomCurve(points [][2]float64) (*CustomCurve, error) {
	if len(points) < 2 {
		return nil, ErrInsufficientPoints
	}
	for i, p := range points {
		if p[0] < 0 || p[0] > 1 {
			return nil, ErrInvalidProgress
		}
		if p[1] < 0 || p[1] > 1 {
			return nil, ErrInvalidIntensity
		}
		if i > 0 && p[0] <= points[i-1][0] {
			return nil, ErrUnsortedPoints
		}
	}
	return &CustomCurve{Points: points}, nil
}

func (c *CustomCurve) Evaluate(progress float64) float64 {
	progress = clamp(progress)
	if len(c.Points) == 0 {
		return progress
	}
	if progress <= c.Points[0][0] {
		return c.Points[0][1]
	}
	last := c.Points[len(c.Points)-1]
	if progress >= last[0] {
		return last[1]
	}
	for i := 0; i < len(c.Points)-1; i++ {
		x0, y0 := c.Points[i][0], c.Points[i][1]
		x1, y1 := c.Points[i+1][0], c.Points[i+1][1]
		if progress >= x0 && progress <= x1 {
			t := (progress - x0) / (x1 - x0)
			return y0 + t*(y1-y0)
		}
	}
	return progress
}

// EvaluateWithVariance applies a bounded random offset to curve's base
// value, letting generated content deviate slightly from the ideal ramp
// without losing the overall shape.
func EvaluateWithVariance(curve Curve, progress, variance float64, r *rng.RNG) float64 {
	base := curve.Evaluate(progress)
	variance = clamp(variance)
	if variance > 0.3 {
		variance = 0.3
	}
	if variance < 1e-9 {
		return base
	}
	offset := variance * (2*r.Float64() - 1)
	return clamp(base + offset)
}
