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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/arghdos/bluffbody-LES/InputParameters"
	"github.com/arghdos/bluffbody-LES/plotting"
)

// UserOptions holds the resolved per-invocation settings shared by every
// plotting command.
type UserOptions struct {
	CaseNames          []string // case names as supplied on the command line
	Cases              []string // resolved absolute case directories
	Reacting           bool
	TStart             float64
	TEnd               float64 // < 0 leaves the averaging window open ended
	BasePath           string  // absolute, ends in the condition directory
	OutPath            string
	VelocityComponents []string
	Graph              bool
	Delay              int // milliseconds to hold the live graph
	Params             *InputParameters.PlotParameters
	Style              *plotting.Styles
}

// addCommonFlags registers the flag set every plotting command shares.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("reacting", "r", false, "plot the reacting-flow data")
	cmd.Flags().BoolP("non-reacting", "n", false, "plot the non-reacting-flow data (the default)")
	cmd.Flags().StringSliceP("caselist", "c", nil, "the simulation(s) to plot. If more than one simulation is supplied,\nthey will be plotted on the same figure in the first supplied case's directory")
	cmd.Flags().Float64("startTime", 0, "the start time for simulation averaging in seconds")
	cmd.Flags().Float64("endTime", -1, "the end time for simulation averaging in seconds, -1 to average to the end")
	cmd.Flags().StringP("basePath", "p", "", "the base path to the top-level folder that contains the non-reacting and reacting cases")
	cmd.Flags().StringP("outPath", "o", "", "the path to place the generated plots in. If not supplied, stores in the case-directory")
	cmd.Flags().StringP("velocityComponent", "v", "both", "the velocity component(s) to plot: both, y or z")
	cmd.Flags().StringP("paramFile", "I", "", "YAML file overriding the default plot parameters")
	cmd.Flags().BoolP("graph", "g", false, "display a live graph of each figure while plotting")
	cmd.Flags().IntP("delay", "d", 0, "milliseconds to hold the live graph after each figure")
	cmd.Flags().Bool("grey", false, "use a greyscale palette")
}

// optionsFromFlags builds the UserOptions for one invocation, exiting with a
// usage message when required flags are missing or inconsistent.
func optionsFromFlags(cmd *cobra.Command) (opts *UserOptions) {
	var (
		err      error
		willExit bool
	)
	opts = &UserOptions{}
	if opts.CaseNames, err = cmd.Flags().GetStringSlice("caselist"); err != nil {
		panic(err)
	}
	reacting, _ := cmd.Flags().GetBool("reacting")
	nonReacting, _ := cmd.Flags().GetBool("non-reacting")
	opts.TStart, _ = cmd.Flags().GetFloat64("startTime")
	opts.TEnd, _ = cmd.Flags().GetFloat64("endTime")
	opts.BasePath, _ = cmd.Flags().GetString("basePath")
	opts.OutPath, _ = cmd.Flags().GetString("outPath")
	opts.Graph, _ = cmd.Flags().GetBool("graph")
	opts.Delay, _ = cmd.Flags().GetInt("delay")
	grey, _ := cmd.Flags().GetBool("grey")
	component, _ := cmd.Flags().GetString("velocityComponent")
	paramFile, _ := cmd.Flags().GetString("paramFile")

	if len(opts.CaseNames) == 0 {
		err := fmt.Errorf("must supply at least one case (-c, --caselist)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if reacting && nonReacting {
		err := fmt.Errorf("supply at most one of --reacting and --non-reacting")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if component != "both" && component != "y" && component != "z" {
		err := fmt.Errorf("unknown velocity component %s, must be both, y or z", component)
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	opts.Reacting = reacting
	opts.VelocityComponents = velocityComponents(component)
	if err = opts.GetCases(); err != nil {
		log.Fatalf("unable to resolve case paths: %v", err)
	}
	opts.Params = processParams(paramFile)
	opts.Style = plotting.NewStyles(len(opts.Cases), grey)
	return
}

// velocityComponents expands the "both" shorthand, z first to match the
// measurement convention.
func velocityComponents(component string) []string {
	if component == "both" {
		return []string{"z", "y"}
	}
	return []string{component}
}

// processParams loads the YAML plot parameter file over the defaults when one
// is supplied.
func processParams(paramFile string) (pp *InputParameters.PlotParameters) {
	pp = InputParameters.DefaultParameters()
	if len(paramFile) == 0 {
		return
	}
	data, err := os.ReadFile(paramFile)
	if err != nil {
		log.Fatalf("unable to read plot parameter file: %v", err)
	}
	if err = pp.Parse(data); err != nil {
		log.Fatalf("unable to parse plot parameter file %s: %v", paramFile, err)
	}
	return
}

// Condition names the flow condition directory.
func (opts *UserOptions) Condition() string {
	if opts.Reacting {
		return "reacting"
	}
	return "non-reacting"
}

func (opts *UserOptions) NCases() int {
	return len(opts.Cases)
}

// GetCases resolves each supplied case name to an absolute case directory
// under the condition folder. An unset base path defaults to the parent of
// the working directory.
func (opts *UserOptions) GetCases() (err error) {
	var (
		base = opts.BasePath
	)
	if len(base) == 0 {
		base = ".."
	}
	if base, err = filepath.Abs(base); err != nil {
		return
	}
	opts.BasePath = filepath.Join(base, opts.Condition())
	opts.Cases = make([]string, len(opts.CaseNames))
	for i, name := range opts.CaseNames {
		opts.Cases[i] = filepath.Join(opts.BasePath, name)
	}
	return
}

// SimulationPath returns the path to a case's sampled graph directory.
func (opts *UserOptions) SimulationPath(casePath, graphName string) (path string, err error) {
	path = filepath.Join(casePath, "postProcessing", graphName)
	if path, err = filepath.Abs(path); err != nil {
		return
	}
	info, serr := os.Stat(path)
	if serr != nil || !info.IsDir() {
		err = fmt.Errorf("Graph %s for case %s %s not found, %s is not a valid directory",
			graphName, opts.Condition(), filepath.Base(casePath), path)
	}
	return
}

// ExperimentalPath returns the reference data table for a graph under the
// condition folder.
func (opts *UserOptions) ExperimentalPath(graphName string) string {
	return filepath.Join(opts.BasePath, "experimental", graphName+".dat")
}

// OutputDir is where figures land: the out path, defaulting to the working
// directory, joined with the first case's name.
func (opts *UserOptions) OutputDir() string {
	root := opts.OutPath
	if len(root) == 0 {
		root = "."
	}
	return filepath.Join(root, opts.CaseNames[0])
}

// MakeOutputDir creates OutputDir if needed.
func (opts *UserOptions) MakeOutputDir() (dir string, err error) {
	dir = opts.OutputDir()
	err = os.MkdirAll(dir, 0755)
	return
}
