// Package evplot renders the per-iteration log-evidence trace produced
// by the evidence-approximation engine as a line plot, for visual
// convergence monitoring.
//
// The trace's -Inf seed (and any other non-finite entry) is dropped
// from the plotted series; what remains is one point per completed
// iteration.
//
// ⚙️ Usage:
//
//	res, _ := evidence.Approximate(xc, yc, svd, nil)
//	if err := evplot.SaveTracePNG(res.Trace, "evidence", "trace.png"); err != nil {
//		...
//	}
package evplot
