package basis

import "gonum.org/v1/gonum/mat"

// Snapshot is a captured copy of {header, status, iteration count,
// dimensions}, optionally including a copy of the current LU, per
// spec.md §4.3.6. A Snapshot with valid == false is the result of Free
// and must not be read.
type Snapshot struct {
	m, n      int
	header    []int
	status    []int
	iteration int

	hasFactors bool
	lu         mat.LU

	valid bool
}

// Snapshot captures the basis's current header, status, dimensions and
// iteration count. If includeFactors is set and an LU is currently
// valid, a copy of the LU is captured too, so WarmStartFromSnapshot can
// restore a cold-start-free basis.
func (b *Basis) Snapshot(includeFactors bool, iteration int) *Snapshot {
	s := &Snapshot{
		m:         b.m,
		n:         b.n,
		header:    append([]int(nil), b.header...),
		status:    append([]int(nil), b.status...),
		iteration: iteration,
		valid:     true,
	}
	if includeFactors && b.luValid {
		s.lu = b.lu
		s.hasFactors = true
	}
	return s
}

// Valid reports whether this snapshot has not been freed.
func (s *Snapshot) Valid() bool { return s != nil && s.valid }

// Iteration returns the iteration count captured with this snapshot.
func (s *Snapshot) Iteration() int { return s.iteration }

// Diff returns the number of header/status positions that differ between
// s and other, or -1 if their dimensions do not match.
func (s *Snapshot) Diff(other *Snapshot) int {
	if other == nil || s.m != other.m || s.n != other.n {
		return -1
	}
	diff := 0
	for r := range s.header {
		if s.header[r] != other.header[r] {
			diff++
		}
	}
	for j := range s.status {
		if s.status[j] != other.status[j] {
			diff++
		}
	}
	return diff
}

// Equal reports whether s and other are identical (Diff == 0).
func (s *Snapshot) Equal(other *Snapshot) bool {
	return s.Diff(other) == 0
}

// Free releases the snapshot's buffers and clears its valid flag. Free is
// null-safe, matching spec.md's snapshot_free contract.
func (s *Snapshot) Free() {
	if s == nil {
		return
	}
	s.header = nil
	s.status = nil
	s.valid = false
	s.hasFactors = false
}
