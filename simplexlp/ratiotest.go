package simplexlp

import "math"

// ratioTest runs a Harris-style two-pass ratio test (spec.md §4.5.2
// step v) over alpha, the FTRAN'd column of the entering variable.
// First pass computes the tightest step theta_max allowed by any basic
// variable's bound, relaxed by the feasibility tolerance for numerical
// slack; second pass, among rows within that relaxed bound, picks the
// one with the largest |alpha| for pivot stability, breaking ties by
// smallest row index. Reports a bound flip when the entering variable's
// own bound gap is tighter than every row's ratio.
func (s *Solver) ratioTest(enter int, dir float64, alpha []float64) (row int, theta float64, boundFlip bool, status IterStatus) {
	tol := s.cfg.PivotTol
	feasTol := s.cfg.FeasibilityTol
	header := s.basis.Header()

	lbj, ubj := s.lb[enter], s.ub[enter]
	selfBoundFinite := !s.model.IsInfinite(lbj) && !s.model.IsInfinite(ubj)
	selfBound := math.Inf(1)
	if selfBoundFinite {
		selfBound = ubj - lbj
	}

	type candidate struct {
		row     int
		raw     float64
		relaxed float64
	}
	var cands []candidate
	thetaMax := selfBound

	for i, a := range alpha {
		eff := a * dir
		var raw float64
		switch {
		case eff > tol:
			j := header[i]
			raw = (s.x[j] - s.lb[j]) / eff
		case eff < -tol:
			j := header[i]
			if s.model.IsInfinite(s.ub[j]) {
				continue
			}
			raw = (s.ub[j] - s.x[j]) / (-eff)
		default:
			continue
		}
		if raw < 0 {
			raw = 0
		}
		relaxed := raw + feasTol
		cands = append(cands, candidate{i, raw, relaxed})
		if relaxed < thetaMax {
			thetaMax = relaxed
		}
	}

	if math.IsInf(thetaMax, 1) {
		return 0, 0, false, IterUnbounded
	}

	bestRow := -1
	var bestAbs, bestRaw float64
	for _, c := range cands {
		if c.relaxed > thetaMax {
			continue
		}
		a := math.Abs(alpha[c.row])
		if bestRow == -1 || a > bestAbs {
			bestRow, bestAbs, bestRaw = c.row, a, c.raw
		}
	}

	if bestRow == -1 || (selfBoundFinite && selfBound <= thetaMax) {
		if selfBoundFinite {
			return 0, selfBound, true, IterContinue
		}
		return 0, 0, false, IterUnbounded
	}

	if bestRaw < 0 {
		bestRaw = 0
	}
	return bestRow, bestRaw, false, IterContinue
}
