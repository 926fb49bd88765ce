package minimize

import "math"

// Golden-section constants. invPhi is (√5−1)/2; invPhi2 = 1−invPhi = invPhi².
// The pair keeps the two interior probes in a self-similar position so each
// iteration reuses one previous evaluation.
const (
	invPhi  = 0.6180339887498949
	invPhi2 = 0.3819660112501051
)

// goldenMin shrinks the bracket [a, b] by the golden ratio, one objective
// evaluation per iteration.
//
// Stage 1 - seed the two interior probes (2 evaluations).
// Stage 2 - iterate: keep the half-bracket containing the lower probe,
// reuse the surviving probe, evaluate one fresh point.
// Stage 3 - report the better probe; Converged=false when the evaluation
// budget ran out before the bracket got narrow enough.
//
// Stopping rule: (b−a) ≤ relTol·(|x1|+|x2|) + zeps.
//
// Complexity: O(log_{1/invPhi}((upper−lower)/tol)) evaluations; O(1) space.
func goldenMin(f Func, lower, upper float64, o Options) (Result, error) {
	var (
		a, b  = lower, upper
		evals int
	)

	// Stage 1 - interior probes at the golden split points.
	x1 := a + invPhi2*(b-a)
	x2 := a + invPhi*(b-a)
	f1, err := guardedEval(f, x1)
	evals++
	if err != nil {
		return Result{}, err
	}
	f2, err := guardedEval(f, x2)
	evals++
	if err != nil {
		return Result{}, err
	}

	// Stage 2 - shrink until the bracket is narrow or the budget is spent.
	for {
		if (b - a) <= o.relTol*(math.Abs(x1)+math.Abs(x2))+zeps {
			return bestProbe(x1, f1, x2, f2, true, evals), nil
		}
		if evals >= o.maxEvals {
			break
		}
		if f1 <= f2 {
			// Minimum lies in [a, x2]: drop the right tail, probe left.
			b = x2
			x2, f2 = x1, f1
			x1 = a + invPhi2*(b-a)
			f1, err = guardedEval(f, x1)
		} else {
			// Minimum lies in [x1, b]: drop the left tail, probe right.
			a = x1
			x1, f1 = x2, f2
			x2 = a + invPhi*(b-a)
			f2, err = guardedEval(f, x2)
		}
		evals++
		if err != nil {
			return Result{}, err
		}
	}

	// Stage 3 - budget exhausted: best-so-far, not converged.
	return bestProbe(x1, f1, x2, f2, false, evals), nil
}

// bestProbe packs the better of the two interior probes into a Result.
func bestProbe(x1, f1, x2, f2 float64, converged bool, evals int) Result {
	if f1 <= f2 {
		return Result{Argmin: x1, Value: f1, Converged: converged, Evals: evals}
	}

	return Result{Argmin: x2, Value: f2, Converged: converged, Evals: evals}
}
