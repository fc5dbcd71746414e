package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML plot parameter file. Parse overlays the
// file onto the defaults, so a file only needs the fields it overrides.
type PlotParameters struct {
	Title             string   `yaml:"Title"`
	Stations          []string `yaml:"Stations"`
	MeanFile          string   `yaml:"MeanFile"`
	FluctFile         string   `yaml:"FluctFile"`
	ProfileColumns    []string `yaml:"ProfileColumns"`
	CenterlineColumns []string `yaml:"CenterlineColumns"`
	ImageFormat       string   `yaml:"ImageFormat"`
	Width             float64  `yaml:"Width"`  // Figure width in inches
	Height            float64  `yaml:"Height"` // Figure height in inches
}

// DefaultParameters matches the sampling setup of the OpenFOAM cases: the
// measurement stations in x/D behind the trailing edge, the sampled file
// names and their column layouts.
func DefaultParameters() (pp *PlotParameters) {
	pp = &PlotParameters{
		Stations:          []string{"0point95", "1point53", "3point75", "point375", "9point4"},
		MeanFile:          "line_UMean.xy",
		FluctFile:         "line_UPrime2Mean.xy",
		ProfileColumns:    []string{"y", "Ux", "Uy", "Uz"},
		CenterlineColumns: []string{"z", "Ux", "Uy", "Uz"},
		ImageFormat:       "pdf",
		Width:             5,
		Height:            4,
	}
	return
}

func (pp *PlotParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *PlotParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("%v\t= Stations\n", pp.Stations)
	fmt.Printf("[%s]\t\t= MeanFile\n", pp.MeanFile)
	fmt.Printf("[%s]\t= FluctFile\n", pp.FluctFile)
	fmt.Printf("%v\t= ProfileColumns\n", pp.ProfileColumns)
	fmt.Printf("%v\t= CenterlineColumns\n", pp.CenterlineColumns)
	fmt.Printf("[%s]\t\t\t= ImageFormat\n", pp.ImageFormat)
	fmt.Printf("%8.5f\t\t= Width\n", pp.Width)
	fmt.Printf("%8.5f\t\t= Height\n", pp.Height)
}

// StationLabel renders a station directory token as the x/D value it names,
// "point375" -> "0.375".
func StationLabel(station string) (label string) {
	label = strings.Replace(station, "point", ".", 1)
	if strings.HasPrefix(label, ".") {
		label = "0" + label
	}
	return
}
