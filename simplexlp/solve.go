package simplexlp

import "github.com/numerix-labs/revsimplex/problem"

// Solve implements solve_lp (spec.md §4.5.5), the umbrella entry point:
// setup, preprocess, the Phase I/II loop, and solution extraction.
// Returns a terminal status (OPTIMAL, INFEASIBLE, UNBOUNDED,
// ITERATION_LIMIT) together with the solver context, which holds the
// final objective value, x, pi, d, basis header and status on OPTIMAL.
func Solve(model *problem.Model, cfg Config, initialBasis []int) (Status, *Solver, error) {
	s, err := Setup(model, cfg, initialBasis)
	if err != nil {
		return ERROR_INVALID_ARGUMENT, nil, err
	}

	if st := s.Preprocess(false); st != OK {
		return st, s, nil
	}
	if cfg.SolveMode == SolveModeBarrier {
		return ERROR_NOT_SUPPORTED, s, nil
	}

	return s.runPhases(), s, nil
}

// runPhases drives the Phase I / Phase II loop to termination.
func (s *Solver) runPhases() Status {
	limit := s.cfg.IterationLimit
	if limit <= 0 {
		limit = 1
	}

	for {
		if s.terminate != nil && *s.terminate {
			return ITERATION_LIMIT
		}
		if s.iteration >= limit {
			return ITERATION_LIMIT
		}

		switch s.Iterate() {
		case IterOptimal:
			if s.phase == 1 {
				if st := s.PhaseEnd(); st != OK {
					return st
				}
				continue
			}
			s.Unperturb()
			s.finalizeSolution()
			return OPTIMAL
		case IterInfeasible:
			return INFEASIBLE
		case IterUnbounded:
			if s.phase == 1 {
				// A Phase I objective (sum of infeasibilities) bounded
				// below by zero cannot be genuinely unbounded; an
				// unbounded ratio test here signals a modeling or
				// numerical inconsistency.
				return NUMERICAL
			}
			return UNBOUNDED
		case IterInternalError:
			return NUMERICAL
		}

		if s.PostIterate() {
			if err := s.basis.Refactor(s.obj); err != nil {
				return NUMERICAL
			}
			s.forcedRefactorRetried = false
		}
	}
}

// finalizeSolution recomputes x from the final basis and the true
// objective value once Phase II reports optimality.
func (s *Solver) finalizeSolution() {
	_ = s.computeBasicValues()
	s.objVal = s.computeRealObjective()
}
