// Package libdiff computes line diffs of rendered documents.
//
// # Usage
//
//	// Compute a diff between two renderings
//	lines := libdiff.Lines(before, after)
//
//	// Render it with 3 lines of context
//	fmt.Print(libdiff.Unified(before, after, 3))
//
// # Related Packages
//
//   - github.com/signadot/nested/format - renders documents as text
//   - github.com/signadot/nested/encode - colours diff lines
package libdiff
