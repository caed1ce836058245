// Package metric evaluates the distance between two equal-length vectors
// under one of a closed set of metrics:
//   - Euclidean: sqrt(sum((a[i]-b[i])^2))
//   - Manhattan: sum(|a[i]-b[i]|)
//   - CosineDistance: 1 - cos(a, b), in [0, 2]; 1 when either vector is zero
//
// Every metric rejects vectors of different lengths with a
// *vector.DimensionMismatchError before any arithmetic runs. Metrics are
// looked up by canonical name ("euclidean", "manhattan", "cosinesim") or by
// single-letter shorthand ("e", "m", "c"), case-insensitively.
//
// All functions are pure and safe for concurrent use.
package metric
