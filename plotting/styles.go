package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Styles hands out one color per curve on a comparison figure from a
// sequential color map. Slot 0 is reserved for experimental data and case
// number i sits at slot i+1. One extra slot is allocated beyond the last
// case so that case colors stay off the washed-out end of the map.
type Styles struct {
	colors []color.Color
}

// NewStyles builds the palette for ncases simulation cases. grey selects a
// black to white luminance map for print, otherwise an extended black body
// map is used.
func NewStyles(ncases int, grey bool) (ps *Styles) {
	var (
		cmap palette.ColorMap
		err  error
	)
	if grey {
		if cmap, err = moreland.NewLuminance([]color.Color{color.Black, color.White}); err != nil {
			panic(err)
		}
	} else {
		cmap = moreland.ExtendedBlackBody()
	}
	cmap.SetMin(0)
	cmap.SetMax(1)
	ps = &Styles{
		colors: cmap.Palette(ncases + 2).Colors(),
	}
	return
}

// NCases is the number of simulation cases the palette was sized for.
func (ps *Styles) NCases() int {
	return len(ps.colors) - 2
}

// ExperimentalColor is the reserved color for measured reference data.
func (ps *Styles) ExperimentalColor() color.Color {
	return ps.colors[0]
}

// CaseColor returns the color for simulation case caseno, counted from zero.
func (ps *Styles) CaseColor(caseno int) color.Color {
	if caseno < 0 || caseno >= ps.NCases() {
		panic(fmt.Errorf("no color allocated for case %d, palette holds %d cases", caseno, ps.NCases()))
	}
	return ps.colors[caseno+1]
}
