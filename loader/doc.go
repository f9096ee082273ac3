// Package loader reads whitespace-separated edge lists into a core.Graph
// and writes them back out.
//
// Input format (one undirected edge per line):
//
//	# comment lines start with '#'
//	<token> <token>
//
// Tokens are arbitrary non-blank strings (product ids in the co-purchase
// datasets) and are interned to dense NodeIDs in first-seen order. Lines
// that do not hold exactly two tokens are skipped and counted in Stats; with
// WithStrict they abort the load instead. Repeated edges (including the
// reverse direction of a directed dump) and self-loops are counted and
// dropped unless the graph options allow them.
//
// LoadFile picks a decompressor from the file extension: ".gz" (gzip) and
// ".zst" (zstd), both via github.com/klauspost/compress.
package loader
