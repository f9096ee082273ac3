// Package builder assembles deterministic synthetic co-purchase graphs for
// tests, benchmarks and the `generate` command.
//
// A graph is built by composing Constructors inside BuildGraph:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithSymbNumb("p")},
//	    builder.PreferentialAttachment(10_000, 3),
//	)
//
// Topologies:
//
//   - Star(n):    hub "Center" plus n-1 leaves. Degree, closeness and
//     clustering are all known in closed form, so it anchors metric tests.
//   - Path(n), Cycle(n), Wheel(n), Complete(n), Grid(rows, cols).
//   - RandomSparse(n, p): G(n,p) by geometric edge skipping, O(n + |E|).
//   - PreferentialAttachment(n, m): Barabási–Albert growth; every new node
//     attaches to m distinct existing nodes with probability ∝ degree. Its
//     heavy-tailed degree distribution resembles real co-purchase data.
//
// Vertex labels come from an IDFn (DefaultIDFn "0","1",… unless overridden
// with WithIDScheme / WithSymbNumb / WithSymbolIDs / WithExcelColumnIDs).
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed, ErrUnknownTopology), wrapped with
// the constructor name. Option constructors panic on meaningless input
// (nil IDFn, nil *rand.Rand); constructors themselves never panic.
//
// Determinism: the same options, seed and constructor order always yield
// the same labels, NodeIDs and edge insertion order.
package builder
