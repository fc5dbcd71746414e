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
	"strings"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/arghdos/bluffbody-LES/InputParameters"
	"github.com/arghdos/bluffbody-LES/dataset"
	"github.com/arghdos/bluffbody-LES/plotting"
	"github.com/arghdos/bluffbody-LES/readfiles"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <graph>",
	Short: "Render a sampled graph of the first case in the terminal",
	Long: `Reads the named postProcessing graph of the first supplied case,
normalizes it, and renders each velocity column as a terminal graph. No
figure files are written; useful for a quick look at a running case over
ssh, e.g.

	bluffplot preview centerlinePlot -c lesCase`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("preview called")
		opts := optionsFromFlags(cmd)
		RunPreview(opts, args[0])
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addCommonFlags(previewCmd)
}

// graphSpec picks the sampled file and column layout matching a graph name.
func graphSpec(pp *InputParameters.PlotParameters, graphName string) (graphFile string, columns []string) {
	graphFile = pp.MeanFile
	if strings.Contains(strings.ToLower(graphName), "fluct") {
		graphFile = pp.FluctFile
	}
	columns = pp.ProfileColumns
	if strings.Contains(strings.ToLower(graphName), "centerline") {
		columns = pp.CenterlineColumns
	}
	return
}

// RunPreview renders the velocity columns of one case's graph as terminal
// graphs.
func RunPreview(opts *UserOptions, graphName string) {
	var (
		ds       *dataset.Dataset
		graphDir string
		out      string
		err      error
	)
	graphFile, columns := graphSpec(opts.Params, graphName)
	if graphDir, err = opts.SimulationPath(opts.Cases[0], graphName); err != nil {
		log.Fatalf("%v", err)
	}
	name := fmt.Sprintf("%s %s", opts.CaseNames[0], graphName)
	if ds, err = readfiles.ReadSimulation(graphDir, graphFile, name, columns, opts.TStart, opts.TEnd); err != nil {
		log.Fatalf("%v", err)
	}
	ds.Normalize(opts.Reacting)
	// The leading column is the sample position, the rest are profiles
	if out, err = plotting.Preview(ds, columns[1:], 15, 80); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Print(out)
}
