// Package ranking orders metric maps and rescales them.
//
//   - TopN: the n highest-scoring (node, score) pairs, descending by score,
//     ties broken by ascending NodeID so the output is fully deterministic.
//   - Normalize: divides every score by the map's maximum so the top entry
//     becomes exactly 1.0.
//
// Both refuse NaN scores (ErrNaNScore) instead of sorting them into an
// arbitrary position. Normalize also refuses a map whose maximum is not
// positive (ErrUndefinedNormalization), since dividing by it would produce
// NaN or flip the ordering.
package ranking
