package engine

import "github.com/chandramohan-1/mobius-strip/internal/model"

// Integration is the outcome of one composite quadrature.
type Integration struct {
	Value      float64
	Rule       model.QuadratureRule // rule actually applied
	Degenerate bool                 // Simpson was requested but too few samples were available
}

// Integrate approximates the integral of samples y taken at uniform spacing h.
//
// With QuadratureSimpson an odd sample count uses composite Simpson directly.
// An even count of at least four uses Simpson on all but one interval and the
// trapezoidal rule on the remaining end interval, averaged over both choices of
// end. Two samples cannot carry a Simpson panel, so the trapezoidal rule is
// used and the result is flagged degenerate. Fewer than two samples integrate
// to zero.
func Integrate(y []float64, h float64, rule model.QuadratureRule) Integration {
	n := len(y)
	if n < 2 {
		return Integration{Rule: rule}
	}
	if rule == model.QuadratureTrapezoid {
		return Integration{Value: trapezoid(y, h), Rule: model.QuadratureTrapezoid}
	}

	switch {
	case n == 2:
		return Integration{Value: trapezoid(y, h), Rule: model.QuadratureTrapezoid, Degenerate: true}
	case n%2 == 1:
		return Integration{Value: simpson(y, h), Rule: model.QuadratureSimpson}
	default:
		lastTrap := simpson(y[:n-1], h) + trapezoid(y[n-2:], h)
		firstTrap := trapezoid(y[:2], h) + simpson(y[1:], h)
		return Integration{Value: (lastTrap + firstTrap) / 2, Rule: model.QuadratureSimpson}
	}
}

// simpson applies composite Simpson to an odd number of samples.
func simpson(y []float64, h float64) float64 {
	n := len(y)
	sum := y[0] + y[n-1]
	for k := 1; k < n-1; k++ {
		if k%2 == 1 {
			sum += 4 * y[k]
		} else {
			sum += 2 * y[k]
		}
	}
	return sum * h / 3
}

func trapezoid(y []float64, h float64) float64 {
	var sum float64
	for _, v := range y {
		sum += v
	}
	sum -= (y[0] + y[len(y)-1]) / 2
	return sum * h
}
