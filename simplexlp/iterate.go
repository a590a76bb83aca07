package simplexlp

import (
	"math"

	"github.com/numerix-labs/revsimplex/basis"
	"github.com/numerix-labs/revsimplex/pricing"
	"github.com/numerix-labs/revsimplex/sparse"
)

// Iterate implements simplex_iterate (spec.md §4.5.2): one call performs
// BTRAN to price, runs pricing to choose the entering variable (or
// reports optimal), FTRAN on the entering column, a Harris-style ratio
// test to choose the leaving row (or reports unbounded), and the pivot
// itself, retrying once through a forced refactor on a singular pivot.
func (s *Solver) Iterate() IterStatus {
	s.iteration++
	s.forcedRefactorRetried = false

	if s.trace != nil {
		s.trace.Record(s.iteration, s.objVal, s.phase)
	}

	if err := s.updateDual(); err != nil {
		return IterInternalError
	}
	s.recomputeReducedCosts()

	enter := s.chooseEntering()
	if enter < 0 {
		return IterOptimal
	}

	status, err := s.pivotOn(enter)
	if err != nil {
		return IterInternalError
	}
	return status
}

// updateDual computes pi = B^-T c_B from the current working objective
// and basis header.
func (s *Solver) updateDual() error {
	cB := s.colBuf
	header := s.basis.Header()
	for r, j := range header {
		cB[r] = s.obj[j]
	}
	return s.basis.BTRANVec(s.pi, cB)
}

// recomputeReducedCosts fills d[j] = obj[j] - pi . A[:,j] for every
// nonbasic variable; basic variables' reduced costs are zero by
// construction and are set to 0.
func (s *Solver) recomputeReducedCosts() {
	status := s.basis.Status()
	for j := 0; j < s.n; j++ {
		if status[j] >= 0 {
			s.d[j] = 0
			continue
		}
		rowIdx, values := s.model.A.Col(j)
		s.d[j] = s.obj[j] - sparse.SparseDenseDot(rowIdx, values, s.pi)
	}
}

// chooseEntering runs the configured pricing strategy over the current
// status/reduced-cost vectors.
func (s *Solver) chooseEntering() int {
	status := s.basis.Status()
	switch s.pricing.Strategy() {
	case pricing.SteepestEdge, pricing.Devex:
		return s.pricing.SteepestEdge(status, s.d)
	default: // Partial
		found := s.pricing.Step2(0, status, s.d, s.candBuf)
		if len(found) == 0 {
			return -1
		}
		best := found[0]
		bestAbs := math.Abs(s.d[best])
		for _, j := range found[1:] {
			if a := math.Abs(s.d[j]); a > bestAbs {
				best, bestAbs = j, a
			}
		}
		return best
	}
}

// direction returns +1 if entering increases from its current bound, -1
// if it decreases.
func (s *Solver) direction(enter int) float64 {
	switch s.basis.Status()[enter] {
	case basis.AtUpper:
		return -1
	case basis.Free:
		if s.d[enter] > 0 {
			return -1
		}
		return 1
	default: // AtLower
		return 1
	}
}

// pivotOn runs FTRAN, the ratio test, and the pivot for a chosen
// entering variable, retrying once via forced refactor if the pivot
// entry turns out to be singular.
func (s *Solver) pivotOn(enter int) (IterStatus, error) {
	dir := s.direction(enter)

	rowIdx, values := s.model.A.Col(enter)
	dense := make([]float64, s.m)
	for k, r := range rowIdx {
		dense[r] = values[k]
	}
	alpha := make([]float64, s.m)
	if err := s.basis.FTRAN(alpha, dense); err != nil {
		if refErr := s.forceRefactorRetry(); refErr != nil {
			return IterInternalError, nil
		}
		if err := s.basis.FTRAN(alpha, dense); err != nil {
			return IterInternalError, nil
		}
	}

	r, theta, boundFlip, status := s.ratioTest(enter, dir, alpha)
	if status == IterUnbounded {
		return IterUnbounded, nil
	}

	if boundFlip {
		s.applyBoundFlip(enter, dir, theta, alpha)
		return IterContinue, nil
	}

	leave := s.basis.Header()[r]
	if err := s.basis.PivotWithEta(r, enter, leave, alpha, s.obj[enter]); err != nil {
		if refErr := s.forceRefactorRetry(); refErr != nil {
			return IterInternalError, nil
		}
		if err := s.basis.FTRAN(alpha, dense); err != nil {
			return IterInternalError, nil
		}
		r, theta, boundFlip, status = s.ratioTest(enter, dir, alpha)
		if status == IterUnbounded {
			return IterUnbounded, nil
		}
		if boundFlip {
			s.applyBoundFlip(enter, dir, theta, alpha)
			return IterContinue, nil
		}
		leave = s.basis.Header()[r]
		if err := s.basis.PivotWithEta(r, enter, leave, alpha, s.obj[enter]); err != nil {
			return IterInternalError, nil
		}
	}

	s.pricing.UpdateWeights(r, enter, alpha, alpha[r], nil)
	s.applyPivotUpdate(r, enter, leave, dir, theta, alpha)
	return IterContinue, nil
}

// forceRefactorRetry rebuilds the LU factorization from scratch, used
// once per Iterate call when a pivot or FTRAN reports a singular entry.
func (s *Solver) forceRefactorRetry() error {
	if s.forcedRefactorRetried {
		return basis.ErrSingular
	}
	s.forcedRefactorRetried = true
	return s.basis.Refactor(s.obj)
}

// applyBoundFlip moves the entering variable to its opposite bound
// without changing the basis: every basic variable shifts by the step
// implied by the FTRAN'd column, and the entering variable's status
// flips between AtLower and AtUpper.
func (s *Solver) applyBoundFlip(enter int, dir, theta float64, alpha []float64) {
	delta := dir * theta
	header := s.basis.Header()
	for i, j := range header {
		s.x[j] -= alpha[i] * delta
	}
	s.x[enter] += delta
	if s.basis.Status()[enter] == basis.AtLower {
		s.basis.SetNonbasicStatus(enter, basis.AtUpper)
	} else {
		s.basis.SetNonbasicStatus(enter, basis.AtLower)
	}
	s.objVal += s.d[enter] * delta
}

// applyPivotUpdate updates x, status bookkeeping and the objective value
// after a successful basis-changing pivot at row r.
func (s *Solver) applyPivotUpdate(r, enter, leave int, dir, theta float64, alpha []float64) {
	delta := dir * theta
	header := s.basis.Header() // already updated: header[r] == enter
	for i, j := range header {
		if i == r {
			continue
		}
		s.x[j] -= alpha[i] * delta
	}
	s.x[enter] += delta
	// basis.PivotWithEta always sets the leaving variable's status to
	// AtLower; keep x[leave] consistent with that choice.
	s.x[leave] = s.lb[leave]
	s.objVal += s.d[enter] * delta

	if s.phase == 1 {
		s.setPhaseOneObjective()
	}
}
