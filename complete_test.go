// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtrack_test

import (
	"testing"

	"github.com/creachadair/jtrack"
)

func TestIsComplete(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"\t\r\n", false},

		{`{}`, true},
		{`[]`, true},
		{`123`, true},
		{`"x"`, true},
		{`true`, true},
		{`{"a": 1}`, true},
		{`[1, 2, 3]`, true},
		{`  {"a": [null, {"b": "c"}]}  `, true},

		{`{`, false},
		{`{"a": 1`, false},
		{`[1, 2,`, false},
		{`"unterminated`, false},
		{`{"a": }`, false},
		{`)`, false},
		{`{"a": 1,}`, false}, // trailing comma is not standard JSON
		{`{"a": 1} {"b": 2}`, false},
	}

	for _, test := range tests {
		if got := jtrack.IsComplete(test.input); got != test.want {
			t.Errorf("IsComplete(%#q): got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestIsCompleteJWCC(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"// only a comment", false},

		{`{"a": 1}`, true},
		{`{"a": 1, /* note */ "b": 2}`, true},
		{`{"a": 1,}`, true},
		{`[1, 2, 3,]`, true},
		{"// header\n{\"a\": 1} // done", true},

		{`{"a": 1`, false},
		{`{"a": 1, /* unterminated`, false},
		{`[1, 2,,]`, false},
	}

	for _, test := range tests {
		if got := jtrack.IsCompleteJWCC(test.input); got != test.want {
			t.Errorf("IsCompleteJWCC(%#q): got %v, want %v", test.input, got, test.want)
		}
	}
}

// The strict probe and the path tracker answer different questions: a
// partial prefix can have many complete sub-paths while the document as a
// whole does not parse.
func TestProbeDisagreement(t *testing.T) {
	const prefix = `{"name": "Alice", "items": [1, 2], "address": {"city": "NY`

	if jtrack.IsComplete(prefix) {
		t.Error("IsComplete on a truncated prefix: got true, want false")
	}

	var tr jtrack.Tracker
	tr.Analyze(prefix)
	for _, path := range []string{"name", "items", "items[0]", "items[1]"} {
		if !tr.IsPathComplete(path) {
			t.Errorf("IsPathComplete(%q): got false, want true", path)
		}
	}
	if tr.IsRootComplete() {
		t.Error("IsRootComplete on a truncated prefix: got true, want false")
	}
}

// On complete documents, root completeness and the strict probe agree.
func TestProbeAgreement(t *testing.T) {
	docs := []string{
		`{}`, `[]`, `0`, `"x"`, `null`,
		`{"a": [1, 2.5, {"b": true}], "c": null}`,
		`[[[[]]]]`,
	}

	var tr jtrack.Tracker
	for _, doc := range docs {
		tr.Analyze(doc)
		if !tr.IsRootComplete() {
			t.Errorf("Document %#q: root not complete", doc)
		}
		if !jtrack.IsComplete(doc) {
			t.Errorf("Document %#q: IsComplete false", doc)
		}
	}
}
