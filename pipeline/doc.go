// Package pipeline runs the full analysis over one graph: degree, sampled
// closeness and clustering concurrently, then normalized closeness and its
// top-N ranking.
//
// The three metrics share nothing but the read-only graph, so each runs in
// its own errgroup goroutine (and is itself parallel over node ranges).
// A context cancelled before a metric starts stops it from starting; a
// metric that has started runs to completion.
//
// Optional Prometheus instrumentation (Metrics) records per-metric duration
// and the graph size on a caller-supplied registry.
package pipeline
