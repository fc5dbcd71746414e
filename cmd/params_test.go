package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/arghdos/bluffbody-LES/InputParameters"
)

func TestPlotParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Volvo validation
Stations:
  - 0point95
  - 9point4
ImageFormat: png # Can be pdf, png or svg
Width: 6.5
`)
	params := InputParameters.DefaultParameters()
	if err = params.Parse(fileInput); err != nil {
		panic(err)
	}
	// Check overridden fields
	assert.Equal(t, params.Stations, []string{"0point95", "9point4"})
	assert.Equal(t, params.ImageFormat, "png")
	assert.Equal(t, params.Width, 6.5)
	// Unset fields keep their defaults
	assert.Equal(t, params.MeanFile, "line_UMean.xy")
	assert.Equal(t, params.FluctFile, "line_UPrime2Mean.xy")
	assert.Equal(t, params.Height, 4.)
	params.Print()
	assert.Equal(t, InputParameters.StationLabel("point375"), "0.375")
	assert.Equal(t, InputParameters.StationLabel("0point95"), "0.95")
	assert.Equal(t, InputParameters.StationLabel("9point4"), "9.4")
}
