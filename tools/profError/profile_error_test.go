package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arghdos/bluffbody-LES/dataset"
	"github.com/arghdos/bluffbody-LES/utils"
)

func TestAscending(t *testing.T) {
	{ // Already increasing, returned as-is
		xs, vs := ascending([]float64{0, 1, 2}, []float64{5, 6, 7})
		assert.Equal(t, []float64{0, 1, 2}, xs)
		assert.Equal(t, []float64{5, 6, 7}, vs)
	}
	{ // Flipped axis reversed into fitting order
		xs, vs := ascending([]float64{2, 1, 0}, []float64{7, 6, 5})
		assert.Equal(t, []float64{0, 1, 2}, xs)
		assert.Equal(t, []float64{5, 6, 7}, vs)
	}
}

func TestDeviation(t *testing.T) {
	var (
		simX = []float64{0, 0.5, 1}
		simV = []float64{0, 1, 2} // exactly v = 2x
	)
	{ // Simulation matching the measurements has zero error
		row := deviation("Ux", []float64{0.25, 0.75}, []float64{0.5, 1.5}, simX, simV)
		assert.Equal(t, "Ux", row.column)
		assert.True(t, near(row.rms, 0))
		assert.True(t, near(row.max, 0))
	}
	{ // Symmetric perturbation
		row := deviation("Ux", []float64{0.25, 0.75}, []float64{0.6, 1.4}, simX, simV)
		assert.True(t, near(row.rms, 0.1))
		assert.True(t, near(row.max, 0.1))
	}
}

func TestProfileError(t *testing.T) {
	var (
		exp = dataset.New("axialDeficitPlot_0point95.dat", []string{"y", "Ux"},
			utils.NewMatrix(2, 2, []float64{0.25, 0.5, 0.75, 1.7}), false)
		sim = dataset.New("lesCase axialDeficitPlot_0point95", []string{"y", "Ux"},
			utils.NewMatrix(3, 2, []float64{0, 0, 0.5, 1, 1, 2}), true)
	)
	rows := profileError(exp, sim)
	require.Equal(t, 1, len(rows))
	assert.Equal(t, "Ux", rows[0].column)
	// Deviations are 0 and -0.2
	assert.True(t, near(rows[0].max, 0.2))
	assert.True(t, near(rows[0].rms, 0.2/math.Sqrt2))
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Abs(b)+1.e-12 {
		l = true
	}
	return
}
