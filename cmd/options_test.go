package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arghdos/bluffbody-LES/InputParameters"
)

func TestGetCases(t *testing.T) {
	{ // Reacting cases resolve under the reacting condition folder
		opts := &UserOptions{
			CaseNames: []string{"caseA", "caseB"},
			Reacting:  true,
			BasePath:  "/data/volvo",
		}
		require.NoError(t, opts.GetCases())
		assert.Equal(t, 2, opts.NCases())
		assert.Equal(t, filepath.Join("/data/volvo", "reacting"), opts.BasePath)
		assert.Equal(t, filepath.Join("/data/volvo", "reacting", "caseA"), opts.Cases[0])
		assert.Equal(t, filepath.Join("/data/volvo", "reacting", "caseB"), opts.Cases[1])
	}
	{ // Non-reacting is the default condition
		opts := &UserOptions{CaseNames: []string{"caseA"}, BasePath: "/data/volvo"}
		require.NoError(t, opts.GetCases())
		assert.Equal(t, "non-reacting", opts.Condition())
		assert.Equal(t, filepath.Join("/data/volvo", "non-reacting", "caseA"), opts.Cases[0])
	}
	{ // An unset base path resolves to the parent of the working directory
		opts := &UserOptions{CaseNames: []string{"caseA"}}
		require.NoError(t, opts.GetCases())
		parent, err := filepath.Abs("..")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(parent, "non-reacting"), opts.BasePath)
		assert.True(t, filepath.IsAbs(opts.Cases[0]))
	}
}

func TestVelocityComponents(t *testing.T) {
	assert.Equal(t, []string{"z", "y"}, velocityComponents("both"))
	assert.Equal(t, []string{"y"}, velocityComponents("y"))
	assert.Equal(t, []string{"z"}, velocityComponents("z"))
}

func TestSimulationPath(t *testing.T) {
	var (
		base = t.TempDir()
		opts = &UserOptions{CaseNames: []string{"lesCase"}, BasePath: base}
	)
	require.NoError(t, opts.GetCases())
	graphDir := filepath.Join(opts.Cases[0], "postProcessing", "centerlinePlot")
	require.NoError(t, os.MkdirAll(graphDir, 0755))
	{ // Existing graph directory resolves
		path, err := opts.SimulationPath(opts.Cases[0], "centerlinePlot")
		require.NoError(t, err)
		assert.Equal(t, graphDir, path)
	}
	{ // Missing graph directory names the graph, condition and case
		_, err := opts.SimulationPath(opts.Cases[0], "axialDeficitPlot_0point95")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "axialDeficitPlot_0point95"))
		assert.True(t, strings.Contains(err.Error(), "non-reacting"))
		assert.True(t, strings.Contains(err.Error(), "lesCase"))
		assert.True(t, strings.Contains(err.Error(), "not a valid directory"))
	}
}

func TestExperimentalPath(t *testing.T) {
	opts := &UserOptions{CaseNames: []string{"caseA"}, Reacting: true, BasePath: "/data/volvo"}
	require.NoError(t, opts.GetCases())
	assert.Equal(t,
		filepath.Join("/data/volvo", "reacting", "experimental", "centerlinePlot.dat"),
		opts.ExperimentalPath("centerlinePlot"))
}

func TestOutputDir(t *testing.T) {
	{ // Figures land in a folder named for the first case
		opts := &UserOptions{CaseNames: []string{"caseA", "caseB"}, OutPath: "/tmp/plots"}
		assert.Equal(t, filepath.Join("/tmp/plots", "caseA"), opts.OutputDir())
	}
	{ // Defaulting to the working directory
		opts := &UserOptions{CaseNames: []string{"caseA"}}
		assert.Equal(t, "caseA", opts.OutputDir())
	}
	{ // MakeOutputDir creates on demand
		opts := &UserOptions{CaseNames: []string{"caseA"}, OutPath: t.TempDir()}
		dir, err := opts.MakeOutputDir()
		require.NoError(t, err)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestGraphSpec(t *testing.T) {
	var (
		pp = InputParameters.DefaultParameters()
	)
	{ // Mean-flow profile graphs
		file, columns := graphSpec(pp, "axialDeficitPlot_0point95")
		assert.Equal(t, pp.MeanFile, file)
		assert.Equal(t, pp.ProfileColumns, columns)
	}
	{ // Centerline swaps the column layout
		file, columns := graphSpec(pp, "centerlinePlot")
		assert.Equal(t, pp.MeanFile, file)
		assert.Equal(t, pp.CenterlineColumns, columns)
	}
	{ // Fluctuation graphs read the prime-squared export
		file, columns := graphSpec(pp, "axialFluctuationPlot_9point4")
		assert.Equal(t, pp.FluctFile, file)
		assert.Equal(t, pp.ProfileColumns, columns)
	}
}

func TestAxisLabel(t *testing.T) {
	assert.Equal(t, "y/D", axisLabel("y"))
	assert.Equal(t, "z/D", axisLabel("z"))
	assert.Equal(t, "Ux/Ubulk", axisLabel("Ux"))
	assert.Equal(t, "Uz/Ubulk", axisLabel("Uz"))
	assert.Equal(t, "T", axisLabel("T"))
}
