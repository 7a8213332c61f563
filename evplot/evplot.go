package evplot

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyTrace indicates that the trace holds no finite log-evidence
// values (e.g. only the -Inf seed).
var ErrEmptyTrace = errors.New("evplot: trace contains no finite points")

// TracePlot builds a line plot of the finite entries of a log-evidence
// trace, indexed by iteration. The -Inf seed at index 0 is skipped.
func TracePlot(trace []float64, title string) (*plot.Plot, error) {
	pts := make(plotter.XYs, 0, len(trace))
	for i, v := range trace {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: v})
	}
	if len(pts) == 0 {
		return nil, ErrEmptyTrace
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "log evidence"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid(), line)

	return p, nil
}

// SaveTracePNG renders the trace with TracePlot and writes it to path
// as a 4×4 inch PNG.
func SaveTracePNG(trace []float64, title, path string) error {
	p, err := TracePlot(trace, title)
	if err != nil {
		return err
	}

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
