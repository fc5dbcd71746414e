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

const deficitGraph = "axialDeficitPlot_%s"

// deficitCmd represents the deficit command
var deficitCmd = &cobra.Command{
	Use:   "deficit",
	Short: "Plot the axial velocity deficit profiles behind the trailing edge",
	Long: `Plots the time-averaged, normalized axial velocity profile at each
measurement station behind the bluff-body trailing edge, as compared to
experimental data. One figure is written per station.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("deficit called")
		opts := optionsFromFlags(cmd)
		RunDeficit(opts)
	},
}

func init() {
	rootCmd.AddCommand(deficitCmd)
	addCommonFlags(deficitCmd)
}

// RunDeficit writes one velocity deficit comparison figure per measurement
// station, velocity on the horizontal axis and cross-stream position on the
// vertical.
func RunDeficit(opts *UserOptions) {
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
		graphName := fmt.Sprintf(deficitGraph, station)
		if exp, sims, err = readComparison(opts, graphName, opts.Params.MeanFile, opts.Params.ProfileColumns); err != nil {
			log.Fatalf("%v", err)
		}
		title := fmt.Sprintf("%sx/D = %s", titlePrefix(opts), InputParameters.StationLabel(station))
		file := filepath.Join(outDir, fmt.Sprintf("axial_deficit_plot_%s.%s", station, opts.Params.ImageFormat))
		if err = saveComparison(opts, title, exp.Columns[1], exp.Columns[0], file, exp, sims); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// titlePrefix prepends the configured title, when one is set.
func titlePrefix(opts *UserOptions) (prefix string) {
	if len(opts.Params.Title) != 0 {
		prefix = opts.Params.Title + ", "
	}
	return
}
