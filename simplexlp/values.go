package simplexlp

import "github.com/numerix-labs/revsimplex/basis"

// computeBasicValues fills x for every variable: nonbasic variables take
// their bound (or zero if free), and basic variables are recovered by
// FTRAN on the right-hand side adjusted for the nonbasic variables'
// contribution, b - A_N x_N.
func (s *Solver) computeBasicValues() error {
	status := s.basis.Status()
	for j := 0; j < s.n; j++ {
		if status[j] >= 0 {
			continue
		}
		switch status[j] {
		case basis.AtLower, basis.Fixed:
			s.x[j] = s.lb[j]
		case basis.AtUpper:
			s.x[j] = s.ub[j]
		case basis.Free:
			s.x[j] = 0
		}
	}

	rhsAdj := append([]float64(nil), s.model.Rhs...)
	for j := 0; j < s.n; j++ {
		if status[j] >= 0 {
			continue
		}
		xj := s.x[j]
		if xj == 0 {
			continue
		}
		rowIdx, values := s.model.A.Col(j)
		for k, r := range rowIdx {
			rhsAdj[r] -= values[k] * xj
		}
	}

	if err := s.basis.FTRAN(s.colBuf, rhsAdj); err != nil {
		return err
	}
	for r, j := range s.basis.Header() {
		s.x[j] = s.colBuf[r]
	}
	return nil
}

// anyBasicInfeasible reports whether any basic variable currently lies
// outside its bounds by more than tol.
func (s *Solver) anyBasicInfeasible(tol float64) bool {
	for _, j := range s.basis.Header() {
		if s.x[j] < s.lb[j]-tol || s.x[j] > s.ub[j]+tol {
			return true
		}
	}
	return false
}

// setPhaseOneObjective rebuilds the composite Phase I objective: zero
// for every variable except basic variables currently outside their
// bounds, which get -1 (below lower, increasing x reduces infeasibility)
// or +1 (above upper). This is recomputed whenever the set of infeasible
// basic variables may have changed, since Phase I's objective is a
// function of the current solution rather than a fixed vector.
func (s *Solver) setPhaseOneObjective() {
	for j := range s.obj {
		s.obj[j] = 0
	}
	var sum float64
	for _, j := range s.basis.Header() {
		switch {
		case s.x[j] < s.lb[j]-s.cfg.FeasibilityTol:
			s.obj[j] = -1
			sum += s.lb[j] - s.x[j]
		case s.x[j] > s.ub[j]+s.cfg.FeasibilityTol:
			s.obj[j] = 1
			sum += s.x[j] - s.ub[j]
		}
	}
	s.objVal = sum
}
