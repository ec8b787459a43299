// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtrack

import (
	"strings"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
)

// IsComplete reports whether text is a single complete well-formed JSON
// document, by strict parse. Truncated and malformed input are both
// incomplete, as is empty or whitespace-only input.
//
// IsComplete answers a coarser question than a Tracker: a partial prefix
// may have many complete sub-paths while the document as a whole does not
// parse.
func IsComplete(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return gjson.Valid(text)
}

// IsCompleteJWCC is IsComplete for documents that may carry comments and
// trailing commas (JWCC). The text is standardized to plain JSON before the
// strict check; input that cannot be standardized is incomplete.
func IsCompleteJWCC(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	std, err := hujson.Standardize([]byte(text))
	if err != nil {
		return false
	}
	return gjson.Valid(string(std))
}
