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

	"github.com/arghdos/bluffbody-LES/dataset"
)

const centerlineGraph = "centerlinePlot"

// centerlineCmd represents the centerline command
var centerlineCmd = &cobra.Command{
	Use:   "centerline",
	Short: "Plot the mean axial velocity along the centerline",
	Long: `Plots the time-averaged, normalized axial velocity along the
centerline of the Volvo bluff-body experiment, as compared to experimental
data.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("centerline called")
		opts := optionsFromFlags(cmd)
		RunCenterline(opts)
	},
}

func init() {
	rootCmd.AddCommand(centerlineCmd)
	addCommonFlags(centerlineCmd)
}

// RunCenterline writes the single centerline comparison figure, downstream
// distance on the horizontal axis.
func RunCenterline(opts *UserOptions) {
	var (
		outDir string
		exp    *dataset.Dataset
		sims   []*dataset.Dataset
		err    error
	)
	if outDir, err = opts.MakeOutputDir(); err != nil {
		log.Fatalf("unable to create output directory: %v", err)
	}
	if exp, sims, err = readComparison(opts, centerlineGraph, opts.Params.MeanFile, opts.Params.CenterlineColumns); err != nil {
		log.Fatalf("%v", err)
	}
	title := fmt.Sprintf("%smean axial velocity", titlePrefix(opts))
	file := filepath.Join(outDir, fmt.Sprintf("centerline_plot.%s", opts.Params.ImageFormat))
	if err = saveComparison(opts, title, exp.Columns[0], exp.Columns[1], file, exp, sims); err != nil {
		log.Fatalf("%v", err)
	}
}
