package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/arghdos/bluffbody-LES/dataset"
	"github.com/arghdos/bluffbody-LES/utils"
)

// ReadExperimental reads a whitespace separated reference data table. The
// first comment line ('#' prefix) names the columns, later comment lines
// are skipped. The values are already in the experimental non-dimensional
// frame, so the returned dataset is marked read only and is never
// normalized.
func ReadExperimental(filename, name string) (ds *dataset.Dataset, err error) {
	var (
		file    *os.File
		columns []string
		flat    []float64
		nr      int
	)
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("unable to open experimental data file %s: %w", filename, err)
		return
	}
	defer file.Close()
	if columns, flat, nr, err = readTable(bufio.NewReader(file), filename); err != nil {
		return
	}
	if nr == 0 {
		err = fmt.Errorf("no data rows in %s", filename)
		return
	}
	M := utils.NewMatrix(nr, len(columns), flat)
	M.SetReadOnly(name)
	ds = dataset.New(name, columns, M, false)
	return
}

// readTable consumes '#'-headed tables. The first comment line carries the
// column names and fixes the width of every following data row.
func readTable(reader *bufio.Reader, filename string) (columns []string, flat []float64, nr int, err error) {
	var (
		line   string
		rerr   error
		lineNo int
	)
	for {
		lineNo++
		line, rerr = reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if len(line) != 0 {
			switch {
			case strings.HasPrefix(line, "#"):
				if columns == nil {
					columns = strings.Fields(strings.TrimPrefix(line, "#"))
					if len(columns) == 0 {
						err = fmt.Errorf("empty column header on line %d of %s", lineNo, filename)
						return
					}
				} else {
					log.Debugf("skipping comment on line %d of %s", lineNo, filename)
				}
			default:
				if columns == nil {
					err = fmt.Errorf("data before the column header on line %d of %s, expected a leading '# name name ...' line", lineNo, filename)
					return
				}
				var vals []float64
				if vals, err = parseRow(line); err != nil {
					err = fmt.Errorf("line %d of %s: %w", lineNo, filename, err)
					return
				}
				if len(vals) != len(columns) {
					err = fmt.Errorf("line %d of %s has %d values, header names %d columns", lineNo, filename, len(vals), len(columns))
					return
				}
				flat = append(flat, vals...)
				nr++
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			err = fmt.Errorf("unable to read %s: %w", filename, rerr)
			return
		}
	}
	if columns == nil {
		err = fmt.Errorf("no column header found in %s, expected a leading '# name name ...' line", filename)
	}
	return
}

func parseRow(line string) (vals []float64, err error) {
	var (
		fields = strings.Fields(line)
	)
	vals = make([]float64, len(fields))
	for i, field := range fields {
		if vals[i], err = strconv.ParseFloat(field, 64); err != nil {
			err = fmt.Errorf("unable to parse %q as a number: %w", field, err)
			return
		}
	}
	return
}
