// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/copurchase/core"
)

// WriteEdgeList writes every edge of g once as "<label>\t<label>" with
// u ≤ v, grouped by ascending u. A non-empty header is written first as '#'
// comment lines. Isolated nodes have no line; everything else round-trips
// through Load.
func WriteEdgeList(w io.Writer, g *core.Graph, header string) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
				return fmt.Errorf("WriteEdgeList: %w", err)
			}
		}
	}
	// resolve labels up front so the edge walk holds only the adjacency lock
	labels := make([]string, g.NodeCount())
	for i := range labels {
		labels[i] = g.Label(core.NodeID(i))
	}
	var werr error
	g.EachEdge(func(u, v core.NodeID) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bw, "%s\t%s\n", labels[u], labels[v])
	})
	if werr != nil {
		return fmt.Errorf("WriteEdgeList: %w", werr)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteEdgeList: %w", err)
	}

	return nil
}

// WriteFile writes g to path, compressing by extension like LoadFile.
func WriteFile(path string, g *core.Graph, header string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zw := gzip.NewWriter(f)
		if err = WriteEdgeList(zw, g, header); err != nil {
			return err
		}
		return zw.Close()
	case ".zst":
		zw, zerr := zstd.NewWriter(f)
		if zerr != nil {
			return fmt.Errorf("WriteFile: zstd: %w", zerr)
		}
		if err = WriteEdgeList(zw, g, header); err != nil {
			return err
		}
		return zw.Close()
	default:
		return WriteEdgeList(f, g, header)
	}
}
