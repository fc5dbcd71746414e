package plotting

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

// LiveChart shows profiles in an interactive window while figures are being
// written. Series colors run over the avs map from -1 (red) to 1 (blue).
type LiveChart struct {
	Chart    *chart2d.Chart2D
	ColorMap *utils2.ColorMap
}

func NewLiveChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LiveChart) {
	lc = &LiveChart{
		Chart:    chart2d.NewChart2D(width, height, float32(xmin), float32(xmax), float32(fmin), float32(fmax)),
		ColorMap: utils2.NewColorMap(-1, 1, 1),
	}
	go lc.Chart.Plot()
	return
}

// AddLine overlays a simulation profile.
func (lc *LiveChart) AddLine(name string, x, f []float64, lineColor float64) {
	if err := lc.Chart.AddSeries(name, x, f,
		chart2d.NoGlyph, chart2d.Solid, lc.ColorMap.GetRGB(float32(lineColor))); err != nil {
		panic("unable to add graph series")
	}
}

// AddPoints overlays measured reference points.
func (lc *LiveChart) AddPoints(name string, x, f []float64, ptColor float64) {
	if err := lc.Chart.AddSeries(name, x, f,
		chart2d.CrossGlyph, chart2d.NoLine, lc.ColorMap.GetRGB(float32(ptColor))); err != nil {
		panic("unable to add graph series")
	}
}

// Hold keeps the window up for the given wall time.
func (lc *LiveChart) Hold(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}
