// Package vector defines the read-only vector view consumed by the metric
// package. It includes:
//   - Vector: length, element access, dot product and Euclidean norm
//   - DimensionMismatchError shared by every length-checked operation
//   - Embedding encoding (BLOB) used by the SQLite bridge
package vector
