// Package format reads and writes documents as values the nested package
// can navigate.
//
// YAML and JSON can be decoded and encoded.  HCL attribute files can be
// decoded; HCL tuple expressions become immutable [nested.Tuple] values.
package format
