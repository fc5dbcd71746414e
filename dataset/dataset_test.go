package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arghdos/bluffbody-LES/rig"
	"github.com/arghdos/bluffbody-LES/utils"
)

func TestDatasetConstruction(t *testing.T) {
	{
		ds := New("lowRe axialDeficitPlot_0point95", []string{"y", "Ux"},
			utils.NewMatrix(3, 2), true)
		assert.Equal(t, 3, ds.NPoints())
		assert.False(t, ds.Normalized())
		assert.False(t, ds.IsFluctuation())
	}
	// Column count must match the table
	{
		assert.Panics(t, func() {
			New("bad", []string{"y", "Ux", "Uy"}, utils.NewMatrix(3, 2), true)
		})
	}
	// Column names must be unique
	{
		assert.Panics(t, func() {
			New("bad", []string{"y", "y"}, utils.NewMatrix(3, 2), true)
		})
	}
	// Column lookup
	{
		ds := New("lowRe", []string{"y", "Ux"}, utils.NewMatrix(2, 2, []float64{
			1, 10,
			2, 20,
		}), true)
		v, err := ds.Col("Ux")
		assert.Nil(t, err)
		assert.Equal(t, []float64{10, 20}, v.Data())
		_, err = ds.Col("Uz")
		assert.NotNil(t, err)
	}
}

func TestNormalize(t *testing.T) {
	// Spatial columns map to (v - offset) * flip / D
	{
		ds := New("case centerlinePlot", []string{"y", "z"}, utils.NewMatrix(2, 2, []float64{
			0.100, -0.240,
			0.060, -0.200,
		}), true)
		ds.Normalize(false)
		assert.True(t, near(ds.Data.At(0, 0), 1.0))  // (0.100-0.060)/0.040
		assert.True(t, near(ds.Data.At(0, 1), 1.0))  // (-0.240+0.200)*(-1)/0.040
		assert.True(t, near(ds.Data.At(1, 0), 0.0))
		assert.True(t, near(ds.Data.At(1, 1), 0.0))
		assert.True(t, ds.Normalized())
	}
	// Mm-equivalent literal check of the spatial transform
	{
		ds := New("case", []string{"z"}, utils.NewMatrix(1, 1, []float64{100}), true)
		ds.normalize(rig.Dimensions{D: 40, ZOffset: 60, ZFlip: -1, Ubulk: 1})
		assert.True(t, near(ds.Data.At(0, 0), -1.0)) // (100-60)*(-1)/40
	}
	// Velocities scale by the condition's bulk velocity and the axis flip
	{
		ds := New("case axialDeficitPlot_0point95", []string{"Ux", "Uz", "other"},
			utils.NewMatrix(1, 3, []float64{17.6, 17.6, 42}), true)
		ds.Normalize(true)
		assert.True(t, near(ds.Data.At(0, 0), 1.0))  // x axis has no flip
		assert.True(t, near(ds.Data.At(0, 1), -1.0)) // z axis flips
		assert.Equal(t, 42., ds.Data.At(0, 2))       // unknown columns pass through
	}
	// Fluctuation statistics skip the mean-flow flip
	{
		ds := New("case axialFluctuationPlot_0point95", []string{"Uz"},
			utils.NewMatrix(1, 1, []float64{16.6}), true)
		assert.True(t, ds.IsFluctuation())
		ds.Normalize(false)
		assert.True(t, near(ds.Data.At(0, 0), 1.0))
	}
	// Experimental data may not be normalized
	{
		ds := New("experiment", []string{"y"}, utils.NewMatrix(1, 1), false)
		assert.Panics(t, func() { ds.Normalize(false) })
	}
	// A dataset is normalized exactly once
	{
		ds := New("case", []string{"y"}, utils.NewMatrix(1, 1), true)
		ds.Normalize(false)
		assert.Panics(t, func() { ds.Normalize(false) })
	}
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Abs(b)+1.e-12 {
		l = true
	}
	return
}
