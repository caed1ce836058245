// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering SQL scalar
// functions that evaluate distance metrics over embedding BLOBs.
//
// Registered functions:
//
//	vec_distance(metric TEXT, a BLOB, b BLOB) REAL
//	vec_euclidean(a BLOB, b BLOB) REAL
//	vec_manhattan(a BLOB, b BLOB) REAL
//	vec_cosine_distance(a BLOB, b BLOB) REAL
//
// A NULL argument yields NULL.
package engine
