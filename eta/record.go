package eta

// Kind distinguishes the two eta record shapes spec.md §3 defines.
type Kind int

const (
	// Refactor records a bound-fix adjustment appended during Refactor
	// for a variable fixed at its bound (status == -4).
	Refactor Kind = 1
	// Pivot records a basis change produced by pivot_with_eta.
	Pivot Kind = 2
)

// Record is one immutable elementary-transformation matrix. It is built
// once by Store.NewRefactor or Store.NewPivot and never modified
// afterwards; every field below is read through an accessor so that, once
// published to a chain, only shared borrows of a Record are reachable
// (spec.md §9's "compile-time exclusive access" design note).
type Record struct {
	kind       Kind
	pivotRow   int
	pivotVar   int
	pivotValue float64
	status     int
	objCoeff   float64

	indices []int
	values  []float64

	colIndices []int
	colValues  []float64
	leavingRow int

	next *Record
}

func (r *Record) Kind() Kind            { return r.kind }
func (r *Record) PivotRow() int         { return r.pivotRow }
func (r *Record) PivotVar() int         { return r.pivotVar }
func (r *Record) PivotValue() float64   { return r.pivotValue }
func (r *Record) Status() int           { return r.status }
func (r *Record) ObjCoeff() float64     { return r.objCoeff }
func (r *Record) NNZ() int              { return len(r.indices) }
func (r *Record) Indices() []int        { return r.indices }
func (r *Record) Values() []float64     { return r.values }
func (r *Record) ColCount() int         { return len(r.colIndices) }
func (r *Record) ColIndices() []int     { return r.colIndices }
func (r *Record) ColValues() []float64  { return r.colValues }
func (r *Record) LeavingRow() int       { return r.leavingRow }
func (r *Record) Next() *Record         { return r.next }
