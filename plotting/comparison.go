package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arghdos/bluffbody-LES/dataset"
	"github.com/arghdos/bluffbody-LES/utils"
)

// Series is one curve on a comparison figure. Experimental series draw as
// scatter glyphs, simulation series as solid lines.
type Series struct {
	Name         string
	X, Y         []float64
	Color        color.Color
	Experimental bool
}

// FromDataset pulls two named columns out of a dataset into a series,
// keeping the dataset name for the legend.
func FromDataset(ds *dataset.Dataset, xCol, yCol string, c color.Color) (s Series, err error) {
	var (
		x, y utils.Vector
	)
	if x, err = ds.Col(xCol); err != nil {
		return
	}
	if y, err = ds.Col(yCol); err != nil {
		return
	}
	s = Series{
		Name:         ds.Name,
		X:            x.Data(),
		Y:            y.Data(),
		Color:        c,
		Experimental: !ds.IsSimulation,
	}
	return
}

// Comparison assembles one figure overlaying every series.
func Comparison(title, xLabel, yLabel string, series []Series) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			err = fmt.Errorf("series %s has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
			return
		}
		pts := make(plotter.XYs, len(s.X))
		for i := range s.X {
			pts[i].X, pts[i].Y = s.X[i], s.Y[i]
		}
		if s.Experimental {
			var sc *plotter.Scatter
			if sc, err = plotter.NewScatter(pts); err != nil {
				return
			}
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Color = s.Color
			sc.GlyphStyle.Radius = vg.Points(2.5)
			p.Add(sc)
			p.Legend.Add(s.Name, sc)
		} else {
			var ln *plotter.Line
			if ln, err = plotter.NewLine(pts); err != nil {
				return
			}
			ln.LineStyle.Color = s.Color
			ln.LineStyle.Width = vg.Points(1.5)
			p.Add(ln)
			p.Legend.Add(s.Name, ln)
		}
	}
	return
}

// Save writes the figure at width x height in inches, with the image format
// taken from the filename extension.
func Save(p *plot.Plot, width, height float64, filename string) (err error) {
	if err = p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, filename); err != nil {
		err = fmt.Errorf("unable to save figure %s: %w", filename, err)
	}
	return
}

// SaveComparison assembles and writes one comparison figure.
func SaveComparison(title, xLabel, yLabel string, series []Series, width, height float64, filename string) (err error) {
	var (
		p *plot.Plot
	)
	if p, err = Comparison(title, xLabel, yLabel, series); err != nil {
		return
	}
	err = Save(p, width, height, filename)
	return
}
