// Package eval evaluates expr-lang expressions against nested documents.
//
// Expressions see the document as "doc" and, for mappings, each top level
// key as a variable.  The following functions resolve against the document:
//
//   - getpath(path): the value at path, failing if it does not resolve
//   - getor(path, default): the value at path or default
//   - exists(path): whether path resolves
//
// and these inspect any value:
//
//   - paths(v), depth(v), leaves(v), kind(v)
//   - tuple(list): an immutable copy of list
//
// getenv(name) reads the process environment.
//
// [ExpandString] and [ExpandAny] substitute $[expr] references in strings.
package eval
