package minimize

import "math"

// cgold is the golden fallback fraction (1−invPhi) used when the parabolic
// trial step is not trustworthy.
const cgold = invPhi2

// brentMin minimizes f over [lower, upper] with Brent's method: inverse
// parabolic interpolation through the three best points seen so far, guarded
// by golden-section steps whenever the parabola misbehaves.
//
// Stage 1 - seed: single probe at the interior golden point.
// Stage 2 - iterate: try a parabolic step; accept it only when it falls
// inside the bracket and moves less than half the step before last,
// otherwise take a golden step into the larger half-bracket.
// Stage 3 - stop when the bracket fits inside 2·tol1 around the incumbent,
// or report best-so-far with Converged=false when the budget runs out.
//
// State invariant: x is the best point, w the second best, v the previous w;
// [a, b] always brackets x.
//
// Complexity: superlinear convergence near smooth minima; worst case matches
// the golden-section bound. O(1) space.
func brentMin(f Func, lower, upper float64, o Options) (Result, error) {
	var (
		a, b  = lower, upper
		d, e  float64 // current and before-last step sizes
		evals int
	)

	// Stage 1 - first probe at the golden interior point.
	x := a + cgold*(b-a)
	w, v := x, x
	fx, err := guardedEval(f, x)
	evals++
	if err != nil {
		return Result{}, err
	}
	fw, fv := fx, fx

	for evals < o.maxEvals {
		xm := 0.5 * (a + b)
		tol1 := o.relTol*math.Abs(x) + zeps
		tol2 := 2 * tol1

		// Stage 3 - bracket collapsed around the incumbent.
		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return Result{Argmin: x, Value: fx, Converged: true, Evals: evals}, nil
		}

		// Stage 2 - choose the trial step.
		useGolden := true
		if math.Abs(e) > tol1 {
			// Fit a parabola through (v,fv), (w,fw), (x,fx).
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			etemp := e
			e = d
			if math.Abs(p) < math.Abs(0.5*q*etemp) && p > q*(a-x) && p < q*(b-x) {
				// Parabolic step accepted; keep it clear of the endpoints.
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
				useGolden = false
			}
		}
		if useGolden {
			// Golden step into the larger half-bracket.
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = cgold * e
		}

		// Never probe closer than tol1 to the incumbent.
		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu, err := guardedEval(f, u)
		evals++
		if err != nil {
			return Result{}, err
		}

		// Bookkeeping: shrink the bracket, reorder (x, w, v).
		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}

	// Budget exhausted: best point seen, not converged.
	return Result{Argmin: x, Value: fx, Converged: false, Evals: evals}, nil
}
