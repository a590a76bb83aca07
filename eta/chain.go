package eta

const (
	initialChunkRecords = 64
	maxChunkRecords      = 4096
	initialChunkScalars  = 512
	maxChunkScalars      = 1 << 16
)

// Store owns the eta arena and the singly linked chain built on top of
// it. head always points at the newest record; Record.Next walks back in
// chronological order toward the oldest (the record nearest the last
// refactor).
type Store struct {
	records *arena[Record]
	ints    *arena[int]
	floats  *arena[float64]

	head                *Record
	count               int
	pivotsSinceRefactor int
}

// NewStore allocates an empty eta store.
func NewStore() *Store {
	return &Store{
		records: newArena[Record](initialChunkRecords, maxChunkRecords),
		ints:    newArena[int](initialChunkScalars, maxChunkScalars),
		floats:  newArena[float64](initialChunkScalars, maxChunkScalars),
	}
}

// Head returns the newest eta record, or nil if the chain is empty.
func (s *Store) Head() *Record { return s.head }

// Count returns the number of records currently in the chain.
func (s *Store) Count() int { return s.count }

// PivotsSinceRefactor returns the number of type-2 (pivot) records
// appended since the last Reset.
func (s *Store) PivotsSinceRefactor() int { return s.pivotsSinceRefactor }

func (s *Store) prepend(r *Record) {
	r.next = s.head
	s.head = r
	s.count++
}

func (s *Store) copyInts(src []int) []int {
	dst := s.ints.alloc(len(src))
	copy(dst, src)
	return dst
}

func (s *Store) copyFloats(src []float64) []float64 {
	dst := s.floats.alloc(len(src))
	copy(dst, src)
	return dst
}

// NewRefactor allocates and prepends a type-1 (refactorization / bound
// fix) record. indices/values are copied into arena storage; the caller
// retains ownership of the slices passed in.
func (s *Store) NewRefactor(pivotRow, pivotVar int, pivotValue float64, status int, objCoeff float64, indices []int, values []float64) *Record {
	slot := s.records.alloc(1)
	r := &slot[0]
	*r = Record{
		kind:       Refactor,
		pivotRow:   pivotRow,
		pivotVar:   pivotVar,
		pivotValue: pivotValue,
		status:     status,
		objCoeff:   objCoeff,
		indices:    s.copyInts(indices),
		values:     s.copyFloats(values),
	}
	s.prepend(r)
	return r
}

// NewPivot allocates and prepends a type-2 (pivot update) record. An
// identity column (no nonzeros outside the pivot entry) is represented by
// nil indices/values, per spec.md §4.3.4.
func (s *Store) NewPivot(pivotRow, pivotVar, leavingRow int, pivotValue float64, status int, objCoeff float64, indices []int, values []float64, colIndices []int, colValues []float64) *Record {
	slot := s.records.alloc(1)
	r := &slot[0]
	*r = Record{
		kind:       Pivot,
		pivotRow:   pivotRow,
		pivotVar:   pivotVar,
		pivotValue: pivotValue,
		status:     status,
		objCoeff:   objCoeff,
		indices:    s.copyInts(indices),
		values:     s.copyFloats(values),
		colIndices: s.copyInts(colIndices),
		colValues:  s.copyFloats(colValues),
		leavingRow: leavingRow,
	}
	s.prepend(r)
	s.pivotsSinceRefactor++
	return r
}

// Reset discards the chain and rewinds the arena for reuse (spec.md
// §4.2's arena reset, invoked by basis.Refactor).
func (s *Store) Reset() {
	s.records.reset()
	s.ints.reset()
	s.floats.reset()
	s.head = nil
	s.count = 0
	s.pivotsSinceRefactor = 0
}

// Free releases every chunk owned by the store. The store must not be
// used afterwards.
func (s *Store) Free() {
	s.records.free()
	s.ints.free()
	s.floats.free()
	s.head = nil
	s.count = 0
}
