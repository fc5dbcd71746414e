package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Col / Row extraction
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{2, 5}, M.Col(1).Data())
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).Data())
		assert.Equal(t, []float64{3, 6}, M.Col(-1).Data()) // index from the end
	}
	// Copy is independent of the source
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Copy()
		A.Set(0, 0, 10)
		assert.Equal(t, 1., M.At(0, 0))
		assert.Equal(t, 10., A.At(0, 0))
	}
	// Add / Scale accumulate in place
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := NewMatrix(2, 2, []float64{
			4, 3,
			2, 1,
		})
		M.Add(A).Scale(0.5)
		assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, M.RawMatrix().Data)
	}
	// SetCol
	{
		M := NewMatrix(2, 2)
		M.SetCol(1, []float64{7, 8})
		assert.Equal(t, []float64{0, 7, 0, 8}, M.RawMatrix().Data)
	}
	// Min / Max
	{
		M := NewMatrix(2, 2, []float64{
			-1, 2,
			3, 0.5,
		})
		assert.Equal(t, -1., M.Min())
		assert.Equal(t, 3., M.Max())
	}
	// Allocation size mismatch
	{
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
	// Read only protection
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 0) })
		M.SetWritable()
		M.Set(0, 0, 9)
		assert.Equal(t, 9., M.At(0, 0))
	}
}
