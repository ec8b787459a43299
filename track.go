// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtrack

import (
	"strings"

	"github.com/creachadair/mds/mapset"
)

// A Tracker reports which structures of an incrementally arriving JSON
// document are complete, meaning their terminating token has been observed
// in the text analyzed so far. The zero value is ready for use.
//
// A Tracker holds the snapshot of its most recent Analyze call only; it is
// cheap to construct and is not safe for concurrent use. Callers tracking
// multiple in-flight documents should use one Tracker per document.
type Tracker struct {
	comments bool
	tcomma   bool

	src   string
	paths mapset.Set[string]
	spans map[string]Span
}

// AllowComments configures the tracker to treat (true) or not treat (false)
// C++ style comments (/* ... */ and // ...) as whitespace during analysis.
// Comments are a non-standard extension of the JSON spec.
func (t *Tracker) AllowComments(ok bool) { t.comments = ok }

// AllowTrailingCommas configures the tracker to allow (true) or reject
// (false) a trailing comma before the closing token of an object or array.
func (t *Tracker) AllowTrailingCommas(ok bool) { t.tcomma = ok }

// Analyze replaces the tracker's snapshot with the result of scanning text
// from the beginning. It never fails: if text is empty, whitespace-only,
// truncated, or malformed, the affected paths are simply absent from the
// complete set. Analyze re-scans from scratch each time; text must be the
// full accumulated input, not the latest increment.
func (t *Tracker) Analyze(text string) {
	t.src = text
	t.paths = mapset.New[string]()
	t.spans = make(map[string]Span)
	if strings.TrimSpace(text) == "" {
		return
	}
	s := &scan{
		src:      text,
		comments: t.comments,
		tcomma:   t.tcomma,
		paths:    t.paths,
		spans:    t.spans,
	}
	s.scanValue("", 0)
}

// IsPathComplete reports whether the structure at path was complete in the
// most recently analyzed text. The empty path queries the document root; a
// path never visited by the scan reports false.
func (t *Tracker) IsPathComplete(path string) bool { return t.paths.Has(path) }

// IsRootComplete reports whether the whole document was complete in the
// most recently analyzed text.
func (t *Tracker) IsRootComplete() bool { return t.IsPathComplete("") }

// CompletePaths returns the set of all complete paths from the most recent
// Analyze call. The returned set is a copy; modifying it does not affect
// the tracker.
func (t *Tracker) CompletePaths() mapset.Set[string] {
	if t.paths == nil {
		return mapset.New[string]()
	}
	return t.paths.Clone()
}

// PathSpan returns the span of text occupied by the complete structure at
// path, and reports whether path was complete in the most recently analyzed
// text. Spans are fixed for the lifetime of one snapshot, but re-analyzing
// longer input may assign the same path a different span.
func (t *Tracker) PathSpan(path string) (Span, bool) {
	sp, ok := t.spans[path]
	return sp, ok
}

// CompleteText returns the source text of the complete structure at path,
// and reports whether path was complete in the most recently analyzed text.
func (t *Tracker) CompleteText(path string) (string, bool) {
	sp, ok := t.spans[path]
	if !ok {
		return "", false
	}
	return t.src[sp.Pos:sp.End], true
}
