// Package introspect reports on the shape of nested values: their depth,
// their leaves and the paths that reach them.
//
// Mappings, sequences and tuples are traversed the same way the nested
// package navigates them, so every path returned by [Paths] resolves with
// [nested.Get].
package introspect
