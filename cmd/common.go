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
	"math"
	"path/filepath"

	"github.com/arghdos/bluffbody-LES/dataset"
	"github.com/arghdos/bluffbody-LES/plotting"
	"github.com/arghdos/bluffbody-LES/readfiles"
)

// readComparison loads the experimental table for a graph plus each case's
// time-averaged simulation profile, normalized into the experimental frame.
func readComparison(opts *UserOptions, graphName, graphFile string, columns []string) (exp *dataset.Dataset, sims []*dataset.Dataset, err error) {
	expPath := opts.ExperimentalPath(graphName)
	if exp, err = readfiles.ReadExperimental(expPath, filepath.Base(expPath)); err != nil {
		return
	}
	sims = make([]*dataset.Dataset, len(opts.Cases))
	for i, casePath := range opts.Cases {
		var graphDir string
		if graphDir, err = opts.SimulationPath(casePath, graphName); err != nil {
			return
		}
		name := fmt.Sprintf("%s %s", opts.CaseNames[i], graphName)
		if sims[i], err = readfiles.ReadSimulation(graphDir, graphFile, name, columns, opts.TStart, opts.TEnd); err != nil {
			return
		}
		sims[i].Normalize(opts.Reacting)
	}
	return
}

// buildSeries colors the experimental dataset and each simulation case for
// one figure, experimental first.
func buildSeries(opts *UserOptions, exp *dataset.Dataset, sims []*dataset.Dataset, xCol, yCol string) (series []plotting.Series, err error) {
	var (
		s plotting.Series
	)
	if s, err = plotting.FromDataset(exp, xCol, yCol, opts.Style.ExperimentalColor()); err != nil {
		return
	}
	series = append(series, s)
	for i, sim := range sims {
		if s, err = plotting.FromDataset(sim, xCol, yCol, opts.Style.CaseColor(i)); err != nil {
			return
		}
		series = append(series, s)
	}
	return
}

// axisLabel appends the non-dimensionalizing quantity to a column name.
func axisLabel(col string) string {
	switch col {
	case "y", "z":
		return col + "/D"
	case "Ux", "Uy", "Uz":
		return col + "/Ubulk"
	}
	return col
}

// saveComparison writes one comparison figure and mirrors it to a live graph
// window when --graph is set.
func saveComparison(opts *UserOptions, title, xCol, yCol, filename string, exp *dataset.Dataset, sims []*dataset.Dataset) (err error) {
	var (
		series []plotting.Series
	)
	if series, err = buildSeries(opts, exp, sims, xCol, yCol); err != nil {
		return
	}
	if err = plotting.SaveComparison(title, axisLabel(xCol), axisLabel(yCol), series,
		opts.Params.Width, opts.Params.Height, filename); err != nil {
		return
	}
	fmt.Printf("wrote %s\n", filename)
	liveOverlay(opts, series)
	return
}

// liveOverlay renders the series to an avs chart window.
func liveOverlay(opts *UserOptions, series []plotting.Series) {
	if !opts.Graph || len(series) == 0 {
		return
	}
	var (
		xmin, xmax = series[0].X[0], series[0].X[0]
		ymin, ymax = series[0].Y[0], series[0].Y[0]
	)
	for _, s := range series {
		for i := range s.X {
			xmin = math.Min(xmin, s.X[i])
			xmax = math.Max(xmax, s.X[i])
			ymin = math.Min(ymin, s.Y[i])
			ymax = math.Max(ymax, s.Y[i])
		}
	}
	lc := plotting.NewLiveChart(1024, 768, xmin, xmax, ymin, ymax)
	for i, s := range series {
		if s.Experimental {
			lc.AddPoints(s.Name, s.X, s.Y, -1)
		} else {
			lc.AddLine(s.Name, s.X, s.Y, float64(i)/float64(len(series)))
		}
	}
	lc.Hold(opts.Delay)
}
