package plotting

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/arghdos/bluffbody-LES/dataset"
)

// Preview renders the named columns of a dataset as terminal graphs, one per
// column with the sample index on the horizontal axis. Nothing is written to
// disk.
func Preview(ds *dataset.Dataset, columns []string, height, width int) (out string, err error) {
	for _, col := range columns {
		v, cerr := ds.Col(col)
		if cerr != nil {
			err = cerr
			return
		}
		out += asciigraph.Plot(v.Data(),
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("%s: %s", ds.Name, col)),
		) + "\n\n"
	}
	return
}
