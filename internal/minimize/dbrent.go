package minimize

import "math"

// BrentDeriv minimizes f by a variant of Brent's method that uses the
// first derivative supplied by f. Trial steps come from a bracketed
// secant construction on the derivative at x versus the derivatives at
// the two auxiliary points w and v; when neither secant step is
// acceptable the interval is bisected toward the side the derivative
// at x says is downhill. Bracketing, tolerance and iteration-cap
// handling are as in Brent.
//
// The objective is evaluated a second time at each accepted trial
// point to recover the derivative there. That costs one extra
// evaluation per iteration but keeps every (value, derivative) pair in
// the bookkeeping consistent.
func BrentDeriv(f DerivObjective, a, b, tol float64, maxIter int) Result {
	tol = clampTolerance(tol)
	maxIter = clampIterations(maxIter)

	br := Bracket(Func(func(x float64) float64 {
		fx, _ := f.Eval(x)
		return fx
	}), a, b)
	s := newLineSearchState(br)
	s.fx, s.dx = f.Eval(s.x)
	s.fw, s.fv = s.fx, s.fx
	s.dw, s.dv = s.dx, s.dx

	iterations := 0
	for i := 0; i < maxIter; i++ {
		xm := 0.5 * (s.a + s.b)
		tol1 := tol*math.Abs(s.x) + zeps
		tol2 := 2.0 * tol1

		if math.Abs(s.x-xm) <= tol2-0.5*(s.b-s.a) {
			break
		}

		if math.Abs(s.e) > tol1 {
			// Initialize the step estimates to an out-of-bracket value.
			d1 := 2.0 * (s.b - s.a)
			d2 := d1
			// Secant method with each of the auxiliary points.
			if s.dw != s.dx {
				d1 = (s.w - s.x) * s.dx / (s.dx - s.dw)
			}
			if s.dv != s.dx {
				d2 = (s.v - s.x) * s.dx / (s.dx - s.dv)
			}

			// A step is acceptable only if it stays within the bracket
			// and lands on the side the derivative at x points downhill.
			u1 := s.x + d1
			u2 := s.x + d2
			ok1 := (s.a-u1)*(u1-s.b) > 0.0 && s.dx*d1 <= 0.0
			ok2 := (s.a-u2)*(u2-s.b) > 0.0 && s.dx*d2 <= 0.0

			olde := s.e
			s.e = s.d

			if ok1 || ok2 {
				// Take only an acceptable step; if both qualify, the
				// smaller one.
				switch {
				case ok1 && ok2:
					if math.Abs(d1) < math.Abs(d2) {
						s.d = d1
					} else {
						s.d = d2
					}
				case ok1:
					s.d = d1
				default:
					s.d = d2
				}

				if math.Abs(s.d) <= math.Abs(0.5*olde) {
					u := s.x + s.d
					if u-s.a < tol2 || s.b-u < tol2 {
						s.d = math.Copysign(tol1, xm-s.x)
					}
				} else {
					// The step fails to halve the step before last:
					// bisect, choosing the segment by the sign of the
					// derivative.
					if s.dx >= 0.0 {
						s.e = s.a - s.x
					} else {
						s.e = s.b - s.x
					}
					s.d = 0.5 * s.e
				}
			} else {
				if s.dx >= 0.0 {
					s.e = s.a - s.x
				} else {
					s.e = s.b - s.x
				}
				s.d = 0.5 * s.e
			}
		} else {
			if s.dx >= 0.0 {
				s.e = s.a - s.x
			} else {
				s.e = s.b - s.x
			}
			s.d = 0.5 * s.e
		}

		var u, fu float64
		if math.Abs(s.d) >= tol1 {
			u = s.x + s.d
			fu, _ = f.Eval(u)
		} else {
			u = s.x + math.Copysign(tol1, s.d)
			fu, _ = f.Eval(u)
			// If the minimum step in the downhill direction takes us
			// uphill, we are done.
			if fu > s.fx {
				break
			}
		}

		_, du := f.Eval(u)
		if fu <= s.fx {
			if u >= s.x {
				s.a = s.x
			} else {
				s.b = s.x
			}
			s.v, s.fv, s.dv = s.w, s.fw, s.dw
			s.w, s.fw, s.dw = s.x, s.fx, s.dx
			s.x, s.fx, s.dx = u, fu, du
		} else {
			if u < s.x {
				s.a = u
			} else {
				s.b = u
			}
			if fu <= s.fw || s.w == s.x {
				s.v, s.fv, s.dv = s.w, s.fw, s.dw
				s.w, s.fw, s.dw = u, fu, du
			} else if fu < s.fv || s.v == s.x || s.v == s.w {
				s.v, s.fv, s.dv = u, fu, du
			}
		}

		iterations++
	}

	return Result{X: s.x, F: s.fx, Iterations: iterations}
}
