// Package copurchase analyzes product co-purchase networks: which products
// sit at the center of the graph, and how tightly their neighborhoods knit
// together.
//
// What it computes
//
//   - Degree centrality: neighbor count per product.
//   - Closeness centrality: R/D from a random sample of source products,
//     where R counts the nodes reached by a BFS and D sums their hop
//     distances. Products outside the sample are absent, not zero.
//   - Clustering coefficient: the fraction of neighbor pairs that are
//     themselves connected.
//   - Ranking: the top-N products by normalized closeness.
//
// Layout
//
//	core/        dense-id undirected Graph, View and metric map types
//	bfs/         breadth-first search and the buffer-reusing Walker
//	centrality/  Degree, Sample, Closeness
//	clustering/  Coefficients, Triangles, Average
//	ranking/     TopN, TopNDegree, Normalize
//	loader/      edge-list reading and writing (.gz, .zst)
//	builder/     deterministic and seeded synthetic topologies
//	pipeline/    concurrent orchestration with Prometheus instrumentation
//	report/      text and YAML reports with distribution summaries
//	visualize/   sorted bar charts rendered to PNG
//	cmd/copurchase the analyze, generate and inspect CLI
//
// Every metric partitions the node range across workers, computes a private
// map per worker and merges after the join, so no lock is taken on the hot
// path.
//
// Quick example:
//
//	g, _, _ := loader.LoadFile("amazon0302.txt.gz")
//	res, _ := pipeline.Run(ctx, g, pipeline.Config{SampleSize: 150, TopN: 10})
//	for i, e := range res.Top {
//		fmt.Printf("%d. %s %.4f\n", i+1, g.Label(e.Node), e.Score)
//	}
//
//	go install github.com/katalvlaran/copurchase/cmd/copurchase@latest
package copurchase
