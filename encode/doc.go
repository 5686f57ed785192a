// Package encode renders paths, leaves and diffs for terminals.
//
// # Usage
//
//	// Colour when writing to a terminal
//	c := encode.ForWriter(os.Stdout)
//	fmt.Println(encode.PathString(nested.MustParse("a.0.b"), c))
//
//	// Colour a unified diff
//	fmt.Print(encode.Unified(libdiff.Unified(before, after, 3), c))
//
// # Related Packages
//
//   - github.com/signadot/nested/format - document encoding
//   - github.com/signadot/nested/libdiff - line diffs
package encode
