package main

import (
	"fmt"
	"io"

	"github.com/signadot/nested/encode"
	"github.com/signadot/nested/format"
	"github.com/signadot/nested/jsonpatch"
	"github.com/signadot/nested/libdiff"
)

// mutation is what set and delete print once the document has changed.
type mutation struct {
	diff, patch bool
}

// seqRoot lets a sequence document grow or shrink: a bare []any root
// cannot change length in place, a *[]any can.
func seqRoot(doc *document) (any, func()) {
	s, ok := doc.root.([]any)
	if !ok {
		return doc.root, func() {}
	}
	p := &s
	return p, func() { doc.root = *p }
}

// before renders doc for a later diff.  It returns "" unless m.diff.
func (m mutation) before(cfg *MainConfig, doc *document) (string, error) {
	if !m.diff {
		return "", nil
	}
	d, err := format.Marshal(doc.root, cfg.outFormat(doc.format))
	if err != nil {
		return "", fmt.Errorf("error encoding document: %w", err)
	}
	return string(d), nil
}

func (m mutation) write(cfg *MainConfig, w io.Writer, doc *document, before string, ops []jsonpatch.Op) error {
	switch {
	case m.patch:
		d, err := jsonpatch.Marshal(ops)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	case m.diff:
		after, err := format.Marshal(doc.root, cfg.outFormat(doc.format))
		if err != nil {
			return fmt.Errorf("error encoding document: %w", err)
		}
		u := libdiff.Unified(before, string(after), 3)
		_, err = io.WriteString(w, encode.Unified(u, cfg.colors(w)))
		return err
	default:
		return cfg.writeValue(w, doc, doc.root)
	}
}
