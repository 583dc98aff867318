package minimize

import "math"

const (
	// gold is the default ratio by which successive intervals are magnified.
	gold = 1.618034
	// glimit is the maximum magnification allowed for a parabolic-fit step.
	glimit = 100.0
	// tinyDenom floors the parabolic denominator so the division cannot
	// overflow; the sign of the original denominator is preserved.
	tinyDenom = 1.0e-20
)

// BracketResult holds three abscissas that bracket a minimum.
// FB is no greater than FA and FC, so a minimum of a continuous
// function lies between A and C. A and C are not ordered; consumers
// wanting an ascending interval must take min/max themselves.
type BracketResult struct {
	A, B, C    float64
	FA, FB, FC float64
	// Iterations counts bracket expansions, starting at 1 for the
	// initial seed evaluation.
	Iterations int
}

// Bracket searches in the downhill direction (defined by the function
// as evaluated at the two distinct initial points a and b) and returns
// points A, B, C that bracket a minimum of f, together with the
// function values at the three points.
//
// There is no failure mode: the loop runs until f(B) <= f(C). For a
// function unbounded below the magnified steps eventually overflow and
// NaN/Inf propagate into the returned values.
func Bracket(f Objective, a, b float64) BracketResult {
	fa := f.Eval(a)
	fb := f.Eval(b)

	// Swap roles of a and b so that the search goes downhill from a to b.
	if fb > fa {
		a, b = b, a
		fa, fb = fb, fa
	}

	// First guess for c.
	c := b + gold*(b-a)
	fc := f.Eval(c)

	iterations := 1

	for fb > fc {
		// Compute u by parabolic extrapolation from a, b, c.
		r := (b - a) * (fb - fc)
		q := (b - c) * (fb - fa)
		denom := math.Copysign(math.Max(math.Abs(q-r), tinyDenom), q-r)
		u := b - ((b-c)*q-(b-a)*r)/(2.0*denom)
		ulim := b + glimit*(c-b)

		// We won't go farther than ulim. Test the possibilities:
		var fu float64
		switch {
		case (b-u)*(u-c) > 0.0:
			// Parabolic u is between b and c: try it.
			fu = f.Eval(u)
			if fu < fc {
				// Got a minimum between b and c.
				a, fa = b, fb
				b, fb = u, fu
				return BracketResult{A: a, B: b, C: c, FA: fa, FB: fb, FC: fc, Iterations: iterations}
			} else if fu > fb {
				// Got a minimum between a and u.
				c, fc = u, fu
				return BracketResult{A: a, B: b, C: c, FA: fa, FB: fb, FC: fc, Iterations: iterations}
			}
			// Parabolic fit was no use. Use default magnification.
			u = c + gold*(c-b)
			fu = f.Eval(u)
		case (c-u)*(u-ulim) > 0.0:
			// Parabolic fit is between c and its allowed limit.
			fu = f.Eval(u)
			if fu < fc {
				b, c, u = c, u, u+gold*(u-c)
				fb, fc, fu = fc, fu, f.Eval(u)
			}
		case (u-ulim)*(ulim-c) >= 0.0:
			// Limit parabolic u to its maximum allowed value.
			u = ulim
			fu = f.Eval(u)
		default:
			// Reject parabolic u, use default magnification.
			u = c + gold*(c-b)
			fu = f.Eval(u)
		}

		// Eliminate the oldest point and continue.
		a, b, c = b, c, u
		fa, fb, fc = fb, fc, fu
		iterations++
	}

	return BracketResult{A: a, B: b, C: c, FA: fa, FB: fb, FC: fc, Iterations: iterations}
}
