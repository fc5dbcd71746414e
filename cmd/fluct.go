/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/arghdos/bluffbody-LES/InputParameters"
	"github.com/arghdos/bluffbody-LES/dataset"
)

const fluctGraph = "axialFluctuationPlot_%s"

// fluctCmd represents the fluct command
var fluctCmd = &cobra.Command{
	Use:   "fluct",
	Short: "Plot the velocity fluctuation profiles behind the trailing edge",
	Long: `Plots the normalized velocity fluctuation profiles at each
measurement station for the selected velocity component(s), as compared to
experimental data. Fluctuation magnitudes keep their sign, only the bulk
velocity scaling applies.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fluct called")
		opts := optionsFromFlags(cmd)
		RunFluct(opts)
	},
}

func init() {
	rootCmd.AddCommand(fluctCmd)
	addCommonFlags(fluctCmd)
}

// RunFluct writes one fluctuation comparison figure per station and selected
// velocity component.
func RunFluct(opts *UserOptions) {
	var (
		outDir string
		err    error
	)
	if outDir, err = opts.MakeOutputDir(); err != nil {
		log.Fatalf("unable to create output directory: %v", err)
	}
	for _, station := range opts.Params.Stations {
		var (
			exp  *dataset.Dataset
			sims []*dataset.Dataset
		)
		graphName := fmt.Sprintf(fluctGraph, station)
		if exp, sims, err = readComparison(opts, graphName, opts.Params.FluctFile, opts.Params.ProfileColumns); err != nil {
			log.Fatalf("%v", err)
		}
		for _, component := range opts.VelocityComponents {
			column := "U" + component
			title := fmt.Sprintf("%sU%s' at x/D = %s", titlePrefix(opts), component,
				InputParameters.StationLabel(station))
			file := filepath.Join(outDir,
				fmt.Sprintf("fluctuation_velocity_plot_%s_%s.%s", component, station, opts.Params.ImageFormat))
			if err = saveComparison(opts, title, column, exp.Columns[0], file, exp, sims); err != nil {
				log.Fatalf("%v", err)
			}
		}
	}
}
