package pricing

// Candidates fills buf with the indices of attractive nonbasic variables
// in pricing level lvl and returns the count (spec.md §4.4's candidate
// selection). status and d must both have length numVars; status uses
// the same encoding as basis.Status (AtLower=-1, AtUpper=-2, Free=-3,
// Fixed=-4, basic >= 0). buf is grown in place if it is too small.
func (c *Context) Candidates(lvl int, status []int, d []float64, buf []int) []int {
	lo, hi := c.levelStart[lvl], c.levelEnd[lvl]
	buf = buf[:0]
	for j := lo; j < hi; j++ {
		if isCandidate(status[j], d[j], c.tol) {
			buf = append(buf, j)
			c.stats.CandidatesScanned++
		}
	}
	if cap(c.levelCandIdx[lvl]) >= len(buf) {
		copy(c.levelCandIdx[lvl][:len(buf)], buf)
	}
	c.levelCandCount[lvl] = len(buf)
	return buf
}

// CandidatesAll scans every level in turn and returns the first level's
// worth of candidates found along with the level index, or (nil, -1, 0)
// if every level is empty, meaning optimal.
func (c *Context) CandidatesAll(status []int, d []float64, buf []int) ([]int, int, int) {
	for lvl := 0; lvl < c.maxLevels; lvl++ {
		found := c.Candidates(lvl, status, d, buf)
		if len(found) > 0 {
			return found, lvl, len(found)
		}
	}
	return nil, -1, 0
}

// Step2 implements spec.md §4.4's two-phase escalation: if the partial
// scan at lvl found nothing, the remaining levels (the "far" section) are
// scanned in order and the first non-empty level's candidates are
// returned; if every level is empty the result means optimal. Returns the
// candidate buffer, or nil when optimal.
func (c *Context) Step2(lvl int, status []int, d []float64, buf []int) []int {
	found := c.Candidates(lvl, status, d, buf)
	if len(found) > 0 {
		return found
	}
	c.stats.LevelEscalations++
	for other := 0; other < c.maxLevels; other++ {
		if other == lvl {
			continue
		}
		found = c.Candidates(other, status, d, buf)
		if len(found) > 0 {
			return found
		}
	}
	return nil
}
