// Package jsonpatch records nested mutations as RFC 6902 JSON patches and
// applies such patches to documents.
//
// [SetOps] and [DeleteOps] perform the mutation on the document in place,
// exactly as [nested.Set] and [nested.Delete] do, and describe what
// changed.  [Apply] replays operations with github.com/evanphx/json-patch,
// so a recorded patch applied to the original document yields the mutated
// one.
package jsonpatch
