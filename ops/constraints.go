// Package ops holds the monomorphic per-(type, operator) comparator loops
// that back the linear scanner and binary-search engine. Each exported
// function is specialized for exactly one element type and one operator so
// the inner loop never branches on either at runtime; the column package
// picks which one to call via a two-level (type, then op) switch evaluated
// once per query.
package ops

// Ints is the closed set of integer element types a column can hold.
type Ints interface {
	~uint32 | ~int32 | ~int64
}
