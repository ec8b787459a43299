// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtrack

import (
	"strings"

	"github.com/creachadair/mds/mapset"
	"go4.org/mem"
)

// A scan is the state of one analysis pass over a fixed input. The scan
// functions return the offset just past the structure they consumed, and
// report whether the structure's terminating token was observed. They are
// total over arbitrary input: truncation and malformation both surface as a
// false report, never as an error.
type scan struct {
	src      string
	comments bool // treat comments as whitespace
	tcomma   bool // allow trailing commas in objects and arrays

	paths mapset.Set[string]
	spans map[string]Span
}

// mark records path as complete, spanning src[pos:end].
func (s *scan) mark(path string, pos, end int) {
	s.paths.Add(path)
	s.spans[path] = Span{Pos: pos, End: end}
}

// scanValue scans a single value of any type at or after pos, recording
// path and any descendant paths whose terminating tokens it reaches.
func (s *scan) scanValue(path string, pos int) (int, bool) {
	pos = s.skipSpace(pos)
	if pos >= len(s.src) {
		return 0, false
	}
	switch c := s.src[pos]; {
	case c == '{':
		return s.scanObject(path, pos)
	case c == '[':
		return s.scanArray(path, pos)
	case c == '"':
		return s.scanString(path, pos)
	case c == '-' || isDigit(c):
		return s.scanNumber(path, pos)
	default:
		return s.scanLiteral(path, pos)
	}
}

// scanObject scans an object from its opening brace. Completeness of the
// object is all-or-nothing at the closing brace, but members already fully
// scanned remain recorded by the recursive calls even when the object
// itself never closes.
func (s *scan) scanObject(path string, open int) (int, bool) {
	pos := open + 1
	first := true
	for {
		pos = s.skipSpace(pos)
		if pos >= len(s.src) {
			return 0, false
		}
		if s.src[pos] == '}' {
			s.mark(path, open, pos+1)
			return pos + 1, true
		}
		if !first {
			if s.src[pos] != ',' {
				return 0, false
			}
			pos = s.skipSpace(pos + 1)
			if pos >= len(s.src) {
				return 0, false
			}
			if s.tcomma && s.src[pos] == '}' {
				s.mark(path, open, pos+1)
				return pos + 1, true
			}
		}
		first = false

		// A member key is a string; an unterminated key truncates the object.
		if s.src[pos] != '"' {
			return 0, false
		}
		end, ok := s.skipString(pos)
		if !ok {
			return 0, false
		}
		key := s.src[pos+1 : end-1]

		pos = s.skipSpace(end)
		if pos >= len(s.src) || s.src[pos] != ':' {
			return 0, false
		}
		pos, ok = s.scanValue(memberPath(path, key), pos+1)
		if !ok {
			return 0, false
		}
	}
}

// scanArray scans an array from its opening bracket. Element indices count
// only elements whose scan succeeded.
func (s *scan) scanArray(path string, open int) (int, bool) {
	pos := open + 1
	index := 0
	first := true
	for {
		pos = s.skipSpace(pos)
		if pos >= len(s.src) {
			return 0, false
		}
		if s.src[pos] == ']' {
			s.mark(path, open, pos+1)
			return pos + 1, true
		}
		if !first {
			if s.src[pos] != ',' {
				return 0, false
			}
			pos = s.skipSpace(pos + 1)
			if pos >= len(s.src) {
				return 0, false
			}
			if s.tcomma && s.src[pos] == ']' {
				s.mark(path, open, pos+1)
				return pos + 1, true
			}
		}
		first = false

		var ok bool
		pos, ok = s.scanValue(elemPath(path, index), pos)
		if !ok {
			return 0, false
		}
		index++
	}
}

// scanString scans a string value from its opening quote.
func (s *scan) scanString(path string, open int) (int, bool) {
	end, ok := s.skipString(open)
	if ok {
		s.mark(path, open, end)
	}
	return end, ok
}

// skipString advances past a string from its opening quote, returning the
// offset just past the closing quote. A backslash skips the byte after it
// without interpreting the escape, which is enough to step over \" without
// ending the string early. This finds the string's boundary; it does not
// check escape legality.
func (s *scan) skipString(open int) (int, bool) {
	pos := open + 1
	for pos < len(s.src) {
		switch s.src[pos] {
		case '\\':
			pos += 2
		case '"':
			return pos + 1, true
		default:
			pos++
		}
	}
	return 0, false
}

// scanNumber scans a number starting at pos. A number has no terminating
// token of its own, so completeness is judged by what follows the maximal
// numeric token: whitespace, a separator, a closing bracket, or the end of
// the currently available input. Anything else means the number is still
// streaming or malformed.
func (s *scan) scanNumber(path string, pos int) (int, bool) {
	start := pos
	if s.src[pos] == '-' {
		pos++
	}
	if pos >= len(s.src) {
		return 0, false
	}
	if s.src[pos] == '0' {
		pos++
	} else if isDigit(s.src[pos]) {
		for pos < len(s.src) && isDigit(s.src[pos]) {
			pos++
		}
	} else {
		return 0, false
	}

	if pos < len(s.src) && s.src[pos] == '.' {
		pos++
		if pos >= len(s.src) || !isDigit(s.src[pos]) {
			return 0, false // no digits after the decimal point (yet)
		}
		for pos < len(s.src) && isDigit(s.src[pos]) {
			pos++
		}
	}

	if pos < len(s.src) && (s.src[pos] == 'e' || s.src[pos] == 'E') {
		pos++
		if pos < len(s.src) && (s.src[pos] == '+' || s.src[pos] == '-') {
			pos++
		}
		if pos >= len(s.src) || !isDigit(s.src[pos]) {
			return 0, false // no exponent digits (yet)
		}
		for pos < len(s.src) && isDigit(s.src[pos]) {
			pos++
		}
	}

	if pos < len(s.src) && !isTerminator(s.src[pos]) {
		return 0, false
	}
	s.mark(path, start, pos)
	return pos, true
}

var literals = []mem.RO{mem.S("true"), mem.S("false"), mem.S("null")}

// scanLiteral matches one of the constants true, false, or null. A literal
// is complete the instant its full text is present; a truncated prefix is
// not a value at all.
func (s *scan) scanLiteral(path string, pos int) (int, bool) {
	rest := mem.S(s.src[pos:])
	for _, lit := range literals {
		if mem.HasPrefix(rest, lit) {
			end := pos + lit.Len()
			s.mark(path, pos, end)
			return end, true
		}
	}
	return 0, false
}

// skipSpace advances pos past whitespace, and past comments when enabled.
// An unterminated block comment consumes the rest of the input.
func (s *scan) skipSpace(pos int) int {
	for pos < len(s.src) {
		switch c := s.src[pos]; {
		case isSpace(c):
			pos++
		case s.comments && c == '/' && pos+1 < len(s.src) && s.src[pos+1] == '/':
			pos += 2
			for pos < len(s.src) && s.src[pos] != '\n' {
				pos++
			}
		case s.comments && c == '/' && pos+1 < len(s.src) && s.src[pos+1] == '*':
			i := strings.Index(s.src[pos+2:], "*/")
			if i < 0 {
				return len(s.src)
			}
			pos += 2 + i + 2
		default:
			return pos
		}
	}
	return pos
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isTerminator reports whether c may validly follow a number.
func isTerminator(c byte) bool {
	return isSpace(c) || c == ',' || c == '}' || c == ']'
}
