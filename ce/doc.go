// Package ce parses DAP constraint expressions: the query grammar that
// selects which variables of a dataset to return and which records to
// keep.
//
// A constraint expression combines a projection (requested variables or
// server-side function calls, each path segment with optional hyperslab
// slicing) and a selection (filter clauses applied to records):
//
//	projection, selection, err := ce.ParseCE("a,b[0:2:9],c&a>1&b<2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// projection: a, b sliced [0:2:9], c
//	// selection:  "a>1", "b<2"
//
// Selection clauses are returned verbatim; evaluating them against data
// is the caller's concern. Function calls in the projection are kept as
// opaque tokens, including any nested calls, for a function registry to
// resolve.
//
// Hyperslab bounds are inclusive on both ends in the DAP grammar; the
// parser converts the upper bound to Go's exclusive convention, so
// "[1:2]" covers indexes 1 and 2 and parses to (1, 3, nil).
package ce
