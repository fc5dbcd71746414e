package rig

// Physical constants of the Volvo validation rig test section. Lengths in
// meters, velocities in m/s.
const (
	// D is the characteristic length, the width of the triangular
	// flameholder trailing edge.
	D = 40. / 1000.
	// UbulkNonReacting and UbulkReacting are the inlet bulk velocities of
	// the two flow conditions.
	UbulkNonReacting = 16.6
	UbulkReacting    = 17.6
	// TrailingEdge is the z station of the flameholder trailing edge in
	// the simulation coordinate frame.
	TrailingEdge = -200. / 1000.
)

// Dimensions fixes the offsets, flip signs and scales that convert solver
// coordinates into the experimental non-dimensional frame.
type Dimensions struct {
	D            float64
	Height       float64
	Width        float64
	Ubulk        float64
	TrailingEdge float64
	YOffset      float64
	ZOffset      float64
	ZFlip        float64
	Reacting     bool
}

func NewDimensions(reacting bool) (d Dimensions) {
	d = Dimensions{
		D:            D,
		Height:       3 * D,
		Width:        2 * D,
		Ubulk:        UbulkNonReacting,
		TrailingEdge: TrailingEdge,
		ZFlip:        -1,
		Reacting:     reacting,
	}
	if reacting {
		d.Ubulk = UbulkReacting
	}
	// The sample lines cross the duct with y = 0 at the lower wall, and
	// run downstream with z decreasing from the trailing edge.
	d.YOffset = d.Height / 2
	d.ZOffset = d.TrailingEdge
	return
}

// Offset returns the coordinate offset of a spatial axis. Axes without a
// configured offset use 0.
func (d Dimensions) Offset(axis string) (o float64) {
	switch axis {
	case "y":
		o = d.YOffset
	case "z":
		o = d.ZOffset
	}
	return
}

// Flip returns the sign correction of an axis. Axes without a configured
// flip use +1.
func (d Dimensions) Flip(axis string) (f float64) {
	f = 1
	if axis == "z" {
		f = d.ZFlip
	}
	return
}
