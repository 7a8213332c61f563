package evplot_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayreg/evplot"
)

// TestTracePlot_SkipsNonFinite verifies that the -Inf seed and NaN
// entries are dropped while finite points survive.
func TestTracePlot_SkipsNonFinite(t *testing.T) {
	trace := []float64{math.Inf(-1), -120.5, math.NaN(), -118.2, -117.9}

	p, err := evplot.TracePlot(trace, "evidence")
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, "evidence", p.Title.Text)
}

// TestTracePlot_EmptyTrace verifies the no-finite-points guard.
func TestTracePlot_EmptyTrace(t *testing.T) {
	_, err := evplot.TracePlot([]float64{math.Inf(-1)}, "seed only")
	assert.ErrorIs(t, err, evplot.ErrEmptyTrace)

	_, err = evplot.TracePlot(nil, "empty")
	assert.ErrorIs(t, err, evplot.ErrEmptyTrace)
}

// TestSaveTracePNG_WritesFile smoke-tests the PNG writer.
func TestSaveTracePNG_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.png")
	trace := []float64{math.Inf(-1), -50.1, -42.7, -41.9, -41.8}

	require.NoError(t, evplot.SaveTracePNG(trace, "evidence", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "PNG file must not be empty")
}
