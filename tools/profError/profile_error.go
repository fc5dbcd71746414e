package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/arghdos/bluffbody-LES/dataset"
	"github.com/arghdos/bluffbody-LES/readfiles"
	"github.com/arghdos/bluffbody-LES/utils"
)

var (
	expFile   string
	simDirs   string
	graphFile = "line_UMean.xy"
	outFile   = "profile_error.csv"
	reacting  bool
	tStart    float64
	tEnd      = -1.0
)

func main() {
	expFilePtr := flag.String("expFile", expFile, "experimental data table for the graph")
	simDirsPtr := flag.String("simDirs", simDirs, "comma separated postProcessing graph directories, one per case")
	graphFilePtr := flag.String("graphFile", graphFile, "sampled file name inside each time directory")
	outFilePtr := flag.String("outFile", outFile, "CSV report destination")
	reactingPtr := flag.Bool("reacting", false, "the cases are reacting-flow simulations")
	tStartPtr := flag.Float64("startTime", tStart, "start time for simulation averaging in seconds")
	tEndPtr := flag.Float64("endTime", tEnd, "end time for simulation averaging in seconds, -1 to average to the end")
	flag.Parse()
	expFile = *expFilePtr
	simDirs = *simDirsPtr
	graphFile = *graphFilePtr
	outFile = *outFilePtr
	reacting = *reactingPtr
	tStart = *tStartPtr
	tEnd = *tEndPtr
	if len(expFile) == 0 || len(simDirs) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Experimental file: %v\n", expFile)
	exp, err := readfiles.ReadExperimental(expFile, filepath.Base(expFile))
	if err != nil {
		panic(err)
	}
	records := [][]string{{"case", "column", "RMS", "max"}}
	for _, dir := range strings.Split(simDirs, ",") {
		dir = filepath.Clean(dir)
		sim, err := readfiles.ReadSimulation(dir, graphFile, dir, exp.Columns, tStart, tEnd)
		if err != nil {
			panic(err)
		}
		sim.Normalize(reacting)
		fmt.Printf("Case = %s\n", dir)
		for _, row := range profileError(exp, sim) {
			fmt.Printf("%s, %v, %v\n", row.column, row.rms, row.max)
			records = append(records, []string{dir, row.column,
				strconv.FormatFloat(row.rms, 'g', -1, 64),
				strconv.FormatFloat(row.max, 'g', -1, 64)})
		}
	}
	writeCSV(outFile, records)
	fmt.Printf("Report written to: %v\n", outFile)
}

type errorRow struct {
	column   string
	rms, max float64
}

// profileError resamples the simulation profile at the experimental sample
// locations and tabulates the deviation for every shared column. The leading
// column of both datasets is the sample position.
func profileError(exp, sim *dataset.Dataset) (rows []errorRow) {
	var (
		expX, expV utils.Vector
		simX, simV utils.Vector
		err        error
	)
	if expX, err = exp.Col(exp.Columns[0]); err != nil {
		panic(err)
	}
	if simX, err = sim.Col(exp.Columns[0]); err != nil {
		panic(err)
	}
	for _, col := range exp.Columns[1:] {
		if expV, err = exp.Col(col); err != nil {
			panic(err)
		}
		if simV, err = sim.Col(col); err != nil {
			panic(err)
		}
		rows = append(rows, deviation(col, expX.Data(), expV.Data(), simX.Data(), simV.Data()))
	}
	return
}

// deviation interpolates the simulation curve at the experimental locations
// and reduces the pointwise error to RMS and max-abs.
func deviation(column string, expX, expV, simX, simV []float64) (row errorRow) {
	var (
		pl interp.PiecewiseLinear
	)
	xs, vs := ascending(simX, simV)
	if err := pl.Fit(xs, vs); err != nil {
		panic(err)
	}
	d := make([]float64, len(expX))
	for i := range expX {
		d[i] = pl.Predict(expX[i]) - expV[i]
	}
	row.column = column
	row.rms = math.Sqrt(floats.Dot(d, d) / float64(len(d)))
	for i := range d {
		d[i] = math.Abs(d[i])
	}
	row.max = floats.Max(d)
	return
}

// ascending reverses the profile when the spatial axis came out flipped by
// normalization.
func ascending(x, v []float64) (xs, vs []float64) {
	xs, vs = x, v
	if len(x) > 1 && x[0] > x[len(x)-1] {
		xs = make([]float64, len(x))
		vs = make([]float64, len(v))
		for i := range x {
			xs[i] = x[len(x)-1-i]
			vs[i] = v[len(v)-1-i]
		}
	}
	return
}

func writeCSV(outFile string, records [][]string) {
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.WriteAll(records); err != nil {
		panic(err)
	}
}
