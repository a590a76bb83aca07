package simplexlp

// perturbMagnitude is the base size of the deterministic bound
// perturbation applied to break ties in the ratio test under
// degeneracy.
const perturbMagnitude = 1e-7

// Perturb implements simplex_perturbation (spec.md §4.5.4): nudges every
// finite lower bound down by a small amount drawn from the solver's
// seeded generator, to break ties in the ratio test under degeneracy.
// Idempotent: calling Perturb again before an intervening Unperturb is a
// no-op.
func (s *Solver) Perturb() Status {
	if s.perturbed {
		return OK
	}
	if s.perturbDelta == nil {
		s.perturbDelta = make([]float64, s.n)
	}
	for j := range s.lb {
		if s.model.IsInfinite(s.lb[j]) {
			s.perturbDelta[j] = 0
			continue
		}
		delta := perturbMagnitude * (1 + s.rng.Float64())
		s.perturbDelta[j] = delta
		s.lb[j] -= delta
	}
	s.perturbed = true
	return OK
}

// Unperturb implements simplex_unperturb: removes a previously applied
// perturbation so it never leaks into the reported solution. Returns
// true when no perturbation was active (a no-op), false when one was
// removed.
func (s *Solver) Unperturb() bool {
	if !s.perturbed {
		return true
	}
	for j := range s.lb {
		s.lb[j] += s.perturbDelta[j]
	}
	s.perturbed = false
	return false
}
