package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/arghdos/bluffbody-LES/dataset"
	"github.com/arghdos/bluffbody-LES/utils"
)

// ReadSimulation reads an OpenFOAM sampled graph directory and averages the
// profile over every time directory inside [tStart, tEnd]. tEnd < 0 leaves
// the window open ended. The sampled files carry no header, so the caller
// names the columns.
func ReadSimulation(graphDir, graphFile, name string, columns []string, tStart, tEnd float64) (ds *dataset.Dataset, err error) {
	var (
		entries []os.DirEntry
		sum     utils.Matrix
		nsnap   int
	)
	if entries, err = os.ReadDir(graphDir); err != nil {
		err = fmt.Errorf("unable to read graph directory %s: %w", graphDir, err)
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t, perr := strconv.ParseFloat(entry.Name(), 64)
		if perr != nil {
			log.Debugf("skipping non-time directory %s in %s", entry.Name(), graphDir)
			continue
		}
		if t < tStart || (tEnd >= 0 && t > tEnd) {
			continue
		}
		var M utils.Matrix
		if M, err = readXY(filepath.Join(graphDir, entry.Name(), graphFile), len(columns)); err != nil {
			return
		}
		if nsnap == 0 {
			sum = M
		} else {
			nr, _ := sum.Dims()
			nrM, _ := M.Dims()
			if nrM != nr {
				err = fmt.Errorf("snapshot %s of %s has %d points, earlier snapshots have %d: the sampling changed mid run", entry.Name(), graphDir, nrM, nr)
				return
			}
			sum.Add(M)
		}
		nsnap++
	}
	if nsnap == 0 {
		err = fmt.Errorf("no time directories inside the averaging window [%g, %g] under %s", tStart, tEnd, graphDir)
		return
	}
	sum.Scale(1 / float64(nsnap))
	ds = dataset.New(name, columns, sum, true)
	return
}

// readXY reads one sampled .xy file, a headerless whitespace table with a
// fixed column count.
func readXY(filename string, ncols int) (M utils.Matrix, err error) {
	var (
		file   *os.File
		flat   []float64
		nr     int
		line   string
		rerr   error
		lineNo int
	)
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("unable to open sampled file %s: %w", filename, err)
		return
	}
	defer file.Close()
	reader := bufio.NewReader(file)
	for {
		lineNo++
		line, rerr = reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if len(line) != 0 && !strings.HasPrefix(line, "#") {
			var vals []float64
			if vals, err = parseRow(line); err != nil {
				err = fmt.Errorf("line %d of %s: %w", lineNo, filename, err)
				return
			}
			if len(vals) != ncols {
				err = fmt.Errorf("line %d of %s has %d values, expected %d", lineNo, filename, len(vals), ncols)
				return
			}
			flat = append(flat, vals...)
			nr++
		}
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			err = fmt.Errorf("unable to read %s: %w", filename, rerr)
			return
		}
	}
	if nr == 0 {
		err = fmt.Errorf("no data rows in %s", filename)
		return
	}
	M = utils.NewMatrix(nr, ncols, flat)
	return
}
