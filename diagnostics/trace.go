// Package diagnostics renders a per-iteration trace of the solver's
// working objective value, plotted to an image instead of returned as a
// slice for programmatic consumption.
package diagnostics

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Trace accumulates one (iteration, objective value, phase) sample per
// call to Record. It is driven by the solver's iteration loop, not
// stored inside the solver context itself, so collecting a trace is
// opt-in and costs nothing when unused.
type Trace struct {
	Iteration []float64
	ObjValue  []float64
	Phase     []int
}

// Record appends one sample.
func (t *Trace) Record(iteration int, objValue float64, phase int) {
	t.Iteration = append(t.Iteration, float64(iteration))
	t.ObjValue = append(t.ObjValue, objValue)
	t.Phase = append(t.Phase, phase)
}

// Len reports the number of recorded samples.
func (t *Trace) Len() int { return len(t.Iteration) }

// FinalDrop reports the total decrease in objective value across every
// recorded Phase II sample, a quick numerical sanity check for the
// objective-monotonicity property: a positive value for a minimization
// trace with more than one Phase II sample.
func (t *Trace) FinalDrop() float64 {
	var first, last float64
	seen := false
	for i, phase := range t.Phase {
		if phase != 2 {
			continue
		}
		if !seen {
			first = t.ObjValue[i]
			seen = true
		}
		last = t.ObjValue[i]
	}
	if !seen {
		return 0
	}
	return first - last
}

// SavePNG renders the recorded (iteration, objective value) trace as a
// line plot and writes it to path.
func SavePNG(t *Trace, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "objective value"

	pts := make(plotter.XYs, t.Len())
	for i := range pts {
		pts[i].X = t.Iteration[i]
		pts[i].Y = t.ObjValue[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
