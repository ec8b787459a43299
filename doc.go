// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jtrack tracks the completeness of a JSON document that arrives
// incrementally, for example as the accumulating output of a language model
// stream.
//
// # Tracking
//
// A Tracker scans the text available so far and records, for each structure
// addressable by a structural path, whether its terminating token has been
// observed. Call Analyze with the full accumulated text after each new
// increment, then query by path:
//
//	var t jtrack.Tracker
//	t.Analyze(`{"name": "Alice", "address": {"city": "NY`)
//	t.IsRootComplete()           // false
//	t.IsPathComplete("name")     // true
//	t.IsPathComplete("address")  // false
//
// Analyze never fails: truncation and malformation are both reflected as
// paths absent from the complete set. Each call to Analyze replaces the
// previous snapshot wholesale; the tracker keeps no state between calls
// beyond the most recent result.
//
// # Structural paths
//
// A structural path names a location in the document tree. The root is the
// empty path. An object member appends "." and the member key; an array
// element appends its index in square brackets:
//
//	""           the document root
//	"name"       member "name" of the root object
//	"items[2]"   third element of member "items"
//	"a.b[0].c"   a nested member
//
// Keys appear in paths as written in the source, undecoded. A key that
// itself contains "." or "[" is ambiguous with a nested path; keys are not
// escaped.
//
// # Probing
//
// IsComplete reports whether an entire document is complete, by strict
// parse. It answers a coarser question than a Tracker: a prefix of a
// document may have many complete sub-paths while the document as a whole
// has not finished arriving. IsCompleteJWCC is the same check for input
// that may carry comments and trailing commas.
package jtrack
