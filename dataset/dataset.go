package dataset

import (
	"fmt"
	"strings"

	"github.com/arghdos/bluffbody-LES/rig"
	"github.com/arghdos/bluffbody-LES/utils"
)

// Dataset carries one sampled profile as a labeled (points x columns)
// table. Experimental reference data is already in the experiment's
// non-dimensional frame; simulation data starts in the solver frame and is
// converted by Normalize.
type Dataset struct {
	Columns      []string
	Data         utils.Matrix
	Name         string
	IsSimulation bool
	normalized   bool
}

func New(name string, columns []string, data utils.Matrix, isSimulation bool) (ds *Dataset) {
	var (
		_, nc = data.Dims()
		seen  = make(map[string]bool, len(columns))
	)
	if nc != len(columns) {
		err := fmt.Errorf("mismatch in dataset %s: %d columns named, data has %d", name, len(columns), nc)
		panic(err)
	}
	for _, col := range columns {
		if seen[col] {
			err := fmt.Errorf("duplicate column %s in dataset %s", col, name)
			panic(err)
		}
		seen[col] = true
	}
	ds = &Dataset{
		Columns:      columns,
		Data:         data,
		Name:         name,
		IsSimulation: isSimulation,
	}
	return
}

// NPoints is the number of sample points in the table.
func (ds *Dataset) NPoints() int {
	np, _ := ds.Data.Dims()
	return np
}

// Col returns a copy of the named column.
func (ds *Dataset) Col(name string) (v utils.Vector, err error) {
	for j, col := range ds.Columns {
		if col == name {
			v = ds.Data.Col(j)
			return
		}
	}
	err = fmt.Errorf("no column named %s in dataset %s, have %v", name, ds.Name, ds.Columns)
	return
}

// IsFluctuation reports whether the dataset holds a fluctuation statistic,
// which is exempt from mean-flow flip corrections.
func (ds *Dataset) IsFluctuation() bool {
	return strings.Contains(strings.ToLower(ds.Name), "fluct")
}

func (ds *Dataset) Normalized() bool { return ds.normalized }

// Normalize converts the table in place into the experimental frame:
// spatial coordinates become offset and flipped multiples of D, velocities
// become fractions of the bulk velocity of the selected condition. The
// transform offsets and rescales on every application, so normalizing a
// dataset twice, or normalizing experimental data, is a contract violation.
func (ds *Dataset) Normalize(reacting bool) {
	if !ds.IsSimulation {
		err := fmt.Errorf("dataset %s is not simulation data, experimental data is already normalized", ds.Name)
		panic(err)
	}
	if ds.normalized {
		err := fmt.Errorf("dataset %s has already been normalized", ds.Name)
		panic(err)
	}
	ds.normalize(rig.NewDimensions(reacting))
	ds.normalized = true
}

func (ds *Dataset) normalize(dims rig.Dimensions) {
	for j, col := range ds.Columns {
		switch {
		case isSpatial(col):
			offset, flip := dims.Offset(col), dims.Flip(col)
			v := ds.Data.Col(j).Apply(func(val float64) float64 {
				return (val - offset) * flip / dims.D
			})
			ds.Data.SetCol(j, v.Data())
		case isVelocity(col):
			flip := 1.
			if !ds.IsFluctuation() {
				flip = dims.Flip(axisOf(col))
			}
			v := ds.Data.Col(j).Apply(func(val float64) float64 {
				return val * flip / dims.Ubulk
			})
			ds.Data.SetCol(j, v.Data())
		}
	}
}

func isSpatial(col string) bool {
	return col == "y" || col == "z"
}

func isVelocity(col string) bool {
	return col == "Ux" || col == "Uy" || col == "Uz"
}

// axisOf maps a velocity component name to its spatial axis.
func axisOf(col string) string {
	return strings.ToLower(col[len(col)-1:])
}
