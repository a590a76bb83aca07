package simplexlp

import "math"

// PhaseEnd implements simplex_phase_end (spec.md §4.5.3). Called once
// Phase I's pricing reports optimality: if the Phase I objective (sum of
// infeasibilities) is within the feasibility tolerance of zero, switches
// to Phase II, swaps the working objective back to the real one, and
// recomputes reduced costs; otherwise the original LP has no feasible
// solution.
func (s *Solver) PhaseEnd() Status {
	if s.objVal > s.cfg.FeasibilityTol {
		return INFEASIBLE
	}
	s.phase = 2
	copy(s.obj, s.model.Obj)
	if err := s.updateDual(); err != nil {
		return NUMERICAL
	}
	s.recomputeReducedCosts()
	s.objVal = s.computeRealObjective()
	return OK
}

// computeRealObjective evaluates the true objective at the current x.
func (s *Solver) computeRealObjective() float64 {
	var sum float64
	for j, c := range s.model.Obj {
		if c != 0 {
			sum += c * s.x[j]
		}
	}
	return sum
}

// refactorTriggerTol bounds how small the most recent pivot value may be
// before PostIterate flags a numerically motivated refactor, even if
// neither counter threshold has been reached.
const refactorTriggerTol = 1e-8

// PostIterate implements simplex_post_iterate (spec.md §4.5.3): reports
// whether a refactor is due because the pivot-count or eta-count
// threshold has been reached, or because the most recent pivot value is
// numerically small.
func (s *Solver) PostIterate() bool {
	if s.basis.PivotsSinceRefactor() >= s.cfg.RefactorInterval {
		return true
	}
	if s.basis.EtaCount() >= s.cfg.MaxEtaCount {
		return true
	}
	if head := s.basis.Head(); head != nil && math.Abs(head.PivotValue()) < refactorTriggerTol {
		return true
	}
	return false
}
