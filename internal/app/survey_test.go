package app

import (
	"os"
	"path/filepath"
	"testing"

	"lattice-ca/internal/lattice"
	"lattice-ca/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyBlockSettlesEverywhere(t *testing.T) {
	logging.SetLogger(nil)
	path := filepath.Join(t.TempDir(), "block.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 4\n----\n-XX-\n-XX-\n----\n"), 0o644))

	cfg := NewConfig()
	cfg.Init = path
	boundaries := []lattice.Boundary{lattice.Periodic, lattice.None, lattice.OpenCold}
	results, err := Survey(cfg, boundaries, []int64{7, 3}, 4, 2)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for i, res := range results {
		assert.Equal(t, 4, res.Initial, "run %d", i)
		assert.Equal(t, 4, res.Final, "run %d", i)
		assert.Equal(t, 4, res.Peak, "run %d", i)
		assert.Equal(t, 1, res.Settled, "run %d", i)
		assert.Equal(t, 4, res.Rows, "run %d", i)
		assert.Equal(t, 4, res.Cols, "run %d", i)
	}

	// Sorted by boundary, then seed.
	assert.Equal(t, lattice.None, results[0].Boundary)
	assert.Equal(t, int64(3), results[0].Seed)
	assert.Equal(t, int64(7), results[1].Seed)
	assert.Equal(t, lattice.OpenCold, results[2].Boundary)
	assert.Equal(t, lattice.Periodic, results[5].Boundary)
}

func TestSurveyRandomRunsAreDeterministic(t *testing.T) {
	logging.SetLogger(nil)
	cfg := NewConfig()
	cfg.Rows, cfg.Cols = 12, 12
	seeds := []int64{1, 2, 3}

	first, err := Survey(cfg, []lattice.Boundary{lattice.Periodic}, seeds, 10, 3)
	require.NoError(t, err)
	second, err := Survey(cfg, []lattice.Boundary{lattice.Periodic}, seeds, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, res := range first {
		assert.Positive(t, res.Initial)
		assert.LessOrEqual(t, res.Final, 144)
		assert.GreaterOrEqual(t, res.Peak, res.Final)
	}
}

func TestSurveyReportsBuildErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Init = filepath.Join(t.TempDir(), "missing.txt")
	_, err := Survey(cfg, []lattice.Boundary{lattice.OpenCold}, []int64{1}, 1, 1)
	require.Error(t, err)

	_, err = Survey(NewConfig(), []lattice.Boundary{lattice.OpenCold}, []int64{1}, -1, 1)
	require.Error(t, err)
}
