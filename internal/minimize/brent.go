package minimize

import "math"

// zeps protects against trying to achieve fractional accuracy for a
// minimum whose value happens to be exactly zero.
const zeps = 0x1p-52 * 1.0e-3 // float64 machine epsilon * 1e-3

// lineSearchState is the working state of a Brent-style refinement:
// the current bracket [a,b] in ascending order, the best, second-best
// and third-best abscissas seen with their values (and derivatives for
// the derivative variant), and the last two step sizes. One instance
// lives for exactly one search call.
type lineSearchState struct {
	a, b       float64
	x, w, v    float64
	fx, fw, fv float64
	dx, dw, dv float64
	d, e       float64
}

// newLineSearchState orders the outer bracket points ascending and
// seeds x, w, v at the upper endpoint.
func newLineSearchState(br BracketResult) lineSearchState {
	lo, hi := br.A, br.C
	if lo > hi {
		lo, hi = hi, lo
	}
	return lineSearchState{a: lo, b: hi, x: hi, w: hi, v: hi}
}

// Brent minimizes f by Brent's method: inverse-parabolic interpolation
// through the three best points seen so far, falling back to a golden
// section step whenever the fit is not trusted. Starting abscissas a
// and b are bracketed first with Bracket. Tolerance and iteration-cap
// handling are as in GoldenSection.
func Brent(f Objective, a, b, tol float64, maxIter int) Result {
	tol = clampTolerance(tol)
	maxIter = clampIterations(maxIter)

	br := Bracket(f, a, b)
	s := newLineSearchState(br)
	s.fx = f.Eval(s.x)
	s.fw = s.fx
	s.fv = s.fx

	iterations := 0
	for i := 0; i < maxIter; i++ {
		xm := 0.5 * (s.a + s.b)
		tol1 := tol*math.Abs(s.x) + zeps
		tol2 := 2.0 * tol1

		if math.Abs(s.x-xm) <= tol2-0.5*(s.b-s.a) {
			break
		}
		// Forced exit: once the bracket itself is narrower than the
		// requested tolerance there is nothing left to refine. Guards
		// against stalling on kinked objectives.
		if iterations > 100 && math.Abs(s.b-s.a) < tol {
			break
		}

		if math.Abs(s.e) > tol1 {
			// Construct a trial parabolic fit through x, w, v.
			r := (s.x - s.w) * (s.fx - s.fv)
			q := (s.x - s.v) * (s.fx - s.fw)
			p := (s.x-s.v)*q - (s.x-s.w)*r
			q = 2.0 * (q - r)
			if q > 0.0 {
				p = -p
			}
			q = math.Abs(q)
			etemp := s.e
			s.e = s.d

			if math.Abs(p) >= math.Abs(0.5*q*etemp) || p <= q*(s.a-s.x) || p >= q*(s.b-s.x) {
				// The fit is rejected; take the golden section step
				// into the larger of the two segments.
				if s.x >= xm {
					s.e = s.a - s.x
				} else {
					s.e = s.b - s.x
				}
				s.d = cgold * s.e
			} else {
				// Take the parabolic step.
				s.d = p / q
				u := s.x + s.d
				if u-s.a < tol2 || s.b-u < tol2 {
					s.d = math.Copysign(tol1, xm-s.x)
				}
			}
		} else {
			if s.x >= xm {
				s.e = s.a - s.x
			} else {
				s.e = s.b - s.x
			}
			s.d = cgold * s.e
		}

		// Never move by less than tol1.
		var u float64
		if math.Abs(s.d) >= tol1 {
			u = s.x + s.d
		} else {
			u = s.x + math.Copysign(tol1, s.d)
		}
		fu := f.Eval(u)

		// Housekeeping: keep x best, w second best, v third best, and
		// shrink the bracket on whichever side the new point fell.
		if fu <= s.fx {
			if u >= s.x {
				s.a = s.x
			} else {
				s.b = s.x
			}
			s.v, s.w, s.x = s.w, s.x, u
			s.fv, s.fw, s.fx = s.fw, s.fx, fu
		} else {
			if u < s.x {
				s.a = u
			} else {
				s.b = u
			}
			if fu <= s.fw || s.w == s.x {
				s.v, s.fv = s.w, s.fw
				s.w, s.fw = u, fu
			} else if fu <= s.fv || s.v == s.x || s.v == s.w {
				s.v, s.fv = u, fu
			}
		}

		iterations++
	}

	return Result{X: s.x, F: s.fx, Iterations: iterations}
}
