package pricing

import "gonum.org/v1/gonum/floats"

// SteepestEdge scans every nonbasic attractive variable in status/d and
// returns the index maximizing d[j]^2 / max(weight[j], 1.0), ties broken
// by smallest index (spec.md §4.4). Returns -1 when no variable is
// attractive (optimal). Variables outside [0, numVars) are not visited.
func (c *Context) SteepestEdge(status []int, d []float64) int {
	best := -1
	var bestScore float64
	for j := 0; j < c.numVars; j++ {
		if !isCandidate(status[j], d[j], c.tol) {
			continue
		}
		c.stats.CandidatesScanned++
		w := 1.0
		if c.weight != nil && c.weight[j] > 1.0 {
			w = c.weight[j]
		}
		score := d[j] * d[j] / w
		if best == -1 || score > bestScore {
			best = j
			bestScore = score
		}
	}
	return best
}

// UpdateWeights applies the Goldfarb-Reid steepest-edge reference-weight
// update after a successful pivot at row r with entering column alpha
// (the FTRAN'd column of the entering variable). colAtJ returns the
// FTRAN'd column of variable j; when it is nil only the entering
// variable's weight is rescaled. pivotValue is alpha[r]. For Devex,
// colAtJ is not used and the cheaper reference-framework approximation is
// used instead: weights scale by the squared ratio to the pivot entry
// and are reset to 1 when they grow past a reset threshold.
func (c *Context) UpdateWeights(r, enter int, alpha []float64, pivotValue float64, colAtJ func(j int) []float64) {
	if c.weight == nil {
		return
	}
	switch c.strategy {
	case SteepestEdge:
		c.updateSteepestWeights(r, enter, alpha, pivotValue, colAtJ)
	case Devex:
		c.updateDevexWeights(r, enter, alpha, pivotValue)
	}
}

// updateSteepestWeights implements the classic Goldfarb-Reid recursion:
// gamma_q' = gamma_q / alpha_r^2 for the entering variable's own weight,
// and gamma_j' = max(gamma_j, (alpha_j/alpha_r)^2 * gamma_q) for every
// other nonbasic column j, where alpha_j is j's entry in row r of the
// FTRAN'd column (obtained lazily via colAtJ to avoid materializing a
// dense tableau row).
func (c *Context) updateSteepestWeights(r, enter int, alpha []float64, pivotValue float64, colAtJ func(j int) []float64) {
	gammaQ := c.weight[enter]
	ratio := 1.0 / (pivotValue * pivotValue)
	if colAtJ == nil {
		c.weight[enter] = gammaQ * ratio
		return
	}
	for j := 0; j < c.numVars; j++ {
		if j == enter {
			continue
		}
		col := colAtJ(j)
		if col == nil || r >= len(col) {
			continue
		}
		alphaJ := col[r]
		if alphaJ == 0 {
			continue
		}
		scaled := (alphaJ / pivotValue) * (alphaJ / pivotValue) * gammaQ
		if scaled > c.weight[j] {
			c.weight[j] = scaled
		}
	}
	c.weight[enter] = gammaQ * ratio
}

// devexResetThreshold bounds reference weight growth before the
// reference framework is reset back to 1 for every variable, the usual
// Devex safeguard against unbounded weight inflation.
const devexResetThreshold = 1e10

func (c *Context) updateDevexWeights(r, enter int, alpha []float64, pivotValue float64) {
	gammaQ := c.weight[enter]
	for j, a := range alpha {
		if j == r || a == 0 {
			continue
		}
		ratio := a / pivotValue
		candidate := ratio * ratio * gammaQ
		if candidate > c.weight[enter] {
			c.weight[enter] = candidate
		}
	}
	c.weight[enter] = gammaQ / (pivotValue * pivotValue)
	if max, _ := floats.Max(c.weight); max > devexResetThreshold {
		for j := range c.weight {
			c.weight[j] = 1.0
		}
	}
}
