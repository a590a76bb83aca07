package sparse

// CSR is the row-major counterpart of a CSC matrix, built on demand by
// CSC.ToCSR. It is invalidated (discarded, never left stale) by any
// mutation of the CSC it was built from; see CSC.invalidateCSR.
type CSR struct {
	m, n   int
	rowPtr []int
	colIdx []int
	values []float64
	valid  bool
}

// Dims returns (rows, cols).
func (c *CSR) Dims() (int, int) { return c.m, c.n }

// Row returns the column indices and values of row i, in the order the
// source CSC's columns were visited during the build phase.
func (c *CSR) Row(i int) (colIdx []int, values []float64) {
	lo, hi := c.rowPtr[i], c.rowPtr[i+1]
	return c.colIdx[lo:hi], c.values[lo:hi]
}

// Valid reports whether this view still reflects its source CSC.
func (c *CSR) Valid() bool { return c.valid }

// csrBuilder stages the three-phase CSR construction pipeline spec.md
// §4.1 calls out explicitly: prepare (count per-row lengths into rowPtr),
// build (scatter colIdx/values in column order), finalize (mark valid).
// Keeping the phases as separate methods, rather than one fused loop,
// mirrors the staged build gonum's CSR-from-COO conversions use.
type csrBuilder struct {
	m, n   int
	rowPtr []int
	colIdx []int
	values []float64
	cursor []int
}

// prepareCSR allocates rowPtr and counts per-row nonzero lengths by a
// single pass over the source's row indices; rowPtr[i] holds the running
// start offset of row i after the prefix sum below.
func prepareCSR(c *CSC) *csrBuilder {
	b := &csrBuilder{
		m:      c.m,
		n:      c.n,
		rowPtr: make([]int, c.m+1),
		colIdx: make([]int, len(c.rowIdx)),
		values: make([]float64, len(c.values)),
	}
	for _, r := range c.rowIdx {
		b.rowPtr[r+1]++
	}
	for i := 0; i < c.m; i++ {
		b.rowPtr[i+1] += b.rowPtr[i]
	}
	b.cursor = make([]int, c.m)
	copy(b.cursor, b.rowPtr[:c.m])
	return b
}

// build scatters each CSC entry into its row's slot, advancing that row's
// cursor; entries within a row end up ordered by the column they came
// from, i.e. ascending column index, since the source CSC is visited
// column by column.
func (b *csrBuilder) build(c *CSC) {
	for j := 0; j < c.n; j++ {
		lo, hi := c.colPtr[j], c.colPtr[j+1]
		for k := lo; k < hi; k++ {
			r := c.rowIdx[k]
			pos := b.cursor[r]
			b.colIdx[pos] = j
			b.values[pos] = c.values[k]
			b.cursor[r]++
		}
	}
}

// finalize marks the CSR valid and hands back an owned view; the
// csrBuilder's scratch cursor is dropped.
func (b *csrBuilder) finalize() *CSR {
	return &CSR{
		m:      b.m,
		n:      b.n,
		rowPtr: b.rowPtr,
		colIdx: b.colIdx,
		values: b.values,
		valid:  true,
	}
}

// ToCSR builds (or returns the cached) row-major view of c. The result is
// owned by c until the next mutating call on c invalidates it.
func (c *CSC) ToCSR() *CSR {
	if c.csrValid && c.csr != nil {
		return c.csr
	}
	b := prepareCSR(c)
	b.build(c)
	csr := b.finalize()
	c.csr = csr
	c.csrValid = true
	return csr
}
