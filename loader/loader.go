// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/katalvlaran/copurchase/core"
)

// Sentinel errors for loading.
var (
	// ErrMalformedLine is returned in strict mode for a line without exactly two tokens.
	ErrMalformedLine = errors.New("loader: malformed edge line")

	// ErrNilReader is returned when Load receives a nil reader.
	ErrNilReader = errors.New("loader: nil reader")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Stats summarizes one load.
type Stats struct {
	Lines      int // physical lines read
	Comments   int // '#' and blank lines
	Edges      int // edges inserted
	Skipped    int // lines without exactly two tokens
	Duplicates int // edges already present
	SelfLoops  int // u–u lines rejected by the graph
}

// Option configures Load.
type Option func(*options)

type options struct {
	graphOpts []core.GraphOption
	strict    bool
	logger    *zap.Logger
}

// WithGraphOptions forwards options to core.NewGraph (e.g. core.WithMultiEdges).
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, opts...) }
}

// WithStrict turns malformed lines into ErrMalformedLine instead of skipping them.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger routes per-line warnings and the load summary to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load parses an edge list from r.
func Load(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	var st Stats
	if r == nil {
		return nil, st, ErrNilReader
	}

	g := core.NewGraph(o.graphOpts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			st.Comments++
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			if o.strict {
				return nil, st, fmt.Errorf("Load: line %d: %d fields: %w", st.Lines, len(fields), ErrMalformedLine)
			}
			st.Skipped++
			o.logger.Debug("skipping malformed line", zap.Int("line", st.Lines), zap.Int("fields", len(fields)))
			continue
		}

		_, _, err := g.AddEdgeByLabel(fields[0], fields[1])
		switch {
		case err == nil:
			st.Edges++
		case errors.Is(err, core.ErrMultiEdgeNotAllowed):
			st.Duplicates++
		case errors.Is(err, core.ErrLoopNotAllowed):
			st.SelfLoops++
		default:
			return nil, st, fmt.Errorf("Load: line %d: %w", st.Lines, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("Load: read after line %d: %w", st.Lines, err)
	}

	o.logger.Info("edge list loaded",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", st.Edges),
		zap.Int("skipped", st.Skipped),
		zap.Int("duplicates", st.Duplicates),
		zap.Int("self_loops", st.SelfLoops))

	return g, st, nil
}

// LoadFile opens path, decompresses ".gz"/".zst" transparently, and calls Load.
func LoadFile(path string, opts ...Option) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("LoadFile: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("LoadFile: zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	g, st, err := Load(r, opts...)
	if err != nil {
		return nil, st, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	return g, st, nil
}
