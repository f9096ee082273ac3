// SPDX-License-Identifier: MIT
//
// api.go - the BuildGraph orchestrator and the named-topology lookup used
// by the CLI.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/copurchase/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Params carries the numeric knobs a named topology may read.
// Fields irrelevant to the chosen topology are ignored.
type Params struct {
	N    int     // vertex count (rows for grid)
	Cols int     // grid columns
	P    float64 // edge probability (random)
	M    int     // edges per new node (preferential)
}

// topologies maps CLI names to constructor factories.
var topologies = map[string]func(Params) Constructor{
	"star":         func(p Params) Constructor { return Star(p.N) },
	"path":         func(p Params) Constructor { return Path(p.N) },
	"cycle":        func(p Params) Constructor { return Cycle(p.N) },
	"wheel":        func(p Params) Constructor { return Wheel(p.N) },
	"complete":     func(p Params) Constructor { return Complete(p.N) },
	"grid":         func(p Params) Constructor { return Grid(p.N, p.Cols) },
	"random":       func(p Params) Constructor { return RandomSparse(p.N, p.P) },
	"preferential": func(p Params) Constructor { return PreferentialAttachment(p.N, p.M) },
}

// Named returns the constructor registered under name (case-insensitive).
func Named(name string, p Params) (Constructor, error) {
	factory, ok := topologies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("Named(%q): %w", name, ErrUnknownTopology)
	}

	return factory(p), nil
}

// Topologies lists the registered topology names in sorted order.
func Topologies() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
