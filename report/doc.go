// Package report renders analysis results as a plain-text report or YAML.
//
// Text layout (sections separated by a blank line):
//
//	Degree Centrality:
//	Node: <label>, Degree Centrality: <int>
//	...
//	Closeness Centrality:
//	Node: <label>, Closeness Centrality: <float>
//	...
//	Clustering Coefficients:
//	Node: <label>, Clustering Coefficient: <float>
//	...
//	Summary:
//	<metric>: count=… mean=… stddev=… min=… median=… p90=… max=…
//	...
//	Top <N> Central Nodes:
//	<rank>. Node: <label>, Centrality: <float>
//
// Node lines are ordered by ascending NodeID. Floats use the shortest
// decimal form that round-trips ('f', -1); summary statistics are printed
// with four decimals and come from gonum/stat.
package report
