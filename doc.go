// Package nested provides path based access into nested data made of
// mappings, sequences and immutable sequences.
//
// # Overview
//
// A path is either a '.'-delimited string ("users.0.name") or an explicit
// token sequence ([]any{"users", 0, "name"}).  The package resolves a path
// step by step through a value to Get, Set, Delete or check the existence of
// whatever lies at the end of it.  Containers are mutated in place; the root
// passed in is never copied.
//
// # Kinds
//
// Every value met during traversal has a Kind:
//
//   - MappingKind: map[string]any or map[any]any
//   - SequenceKind: []any or *[]any
//   - TupleKind: Tuple, a read-only sequence
//   - LeafKind: anything else, including nil
//
// Navigating into a leaf always fails.
//
// # Indices
//
// On a sequence, a token must be an integer or a decimal numeral, possibly
// negative.  Reads treat out of range indices as "not found".  Writes are
// strict: a negative index must name an existing element and a positive
// index may name an existing element or the position just past the end,
// which appends.  Writing further past the end requires Create(true) and a
// fill strategy other than FillAuto, and is bounded by MaxIndex.
//
// On a mapping, a token is always a literal key: "0" looks up the key "0".
//
// A sequence changes length only if the slot holding it can be rewritten.
// Pass a *[]any as root to let a top level sequence grow or shrink.
//
// # Usage
//
//	root := map[string]any{}
//	err := nested.Set(root, "user.profile.name", "Alice", nested.Create(true))
//	name, err := nested.Get(root, "user.profile.name")     // "Alice"
//	age, err := nested.GetOr(root, "user.profile.age", 0) // 0
//
//	items := map[string]any{"items": []any{10, 20, 30}}
//	last, err := nested.Delete(items, "items.-1", nested.AllowSequenceDelete(true)) // 30
//
// # Errors
//
// Failures are *PathError values carrying a Code.  errors.Is matches them
// against ErrInvalidPath, ErrEmptyPath, ErrMissingKey, ErrInvalidIndex,
// ErrNonNavigable, ErrImmutableContainer, ErrOperationDisabled and
// ErrInvalidFillStrategy.  Set and Delete do not roll back on failure.
//
// # Concurrency
//
// Operations are synchronous and do no locking.  Callers sharing a root
// between goroutines must synchronize access themselves.
//
// # Related Packages
//
//   - github.com/signadot/nested/introspect - depth, leaf counts and leaf paths
//   - github.com/signadot/nested/format - YAML, JSON and HCL documents
//   - github.com/signadot/nested/jsonpatch - mutations as RFC 6902 patches
package nested
