// Package scanner provides a cursor over a string used by the plist and
// xcconfig parsers: scanString, scanUpTo, character-class runs, and
// single-character peek/consume. A zero-allocation cursor over the source
// string, generalized from line-at-a-time to byte-at-a-time.
package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned by ScanQuotedBody, shared by the plist and xcconfig
// parsers since both quote strings with the same four escapes.
var (
	ErrUnterminatedQuote = errors.New("unterminated quoted string")
	ErrDanglingEscape    = errors.New("dangling escape at end of input")
)

// Scanner walks a string by byte offset. It never allocates beyond the
// slices it returns to callers.
type Scanner struct {
	data string
	pos  int
}

// New returns a Scanner positioned at the start of s.
func New(s string) *Scanner {
	return &Scanner{data: s}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// AtEnd reports whether the cursor has consumed all input.
func (s *Scanner) AtEnd() bool { return s.pos >= len(s.data) }

// Peek returns the byte at the cursor without consuming it, and whether
// one was available.
func (s *Scanner) Peek() (byte, bool) {
	if s.AtEnd() {
		return 0, false
	}
	return s.data[s.pos], true
}

// PeekAt returns the byte offset bytes ahead of the cursor, without
// consuming anything.
func (s *Scanner) PeekAt(offset int) (byte, bool) {
	p := s.pos + offset
	if p < 0 || p >= len(s.data) {
		return 0, false
	}
	return s.data[p], true
}

// Consume advances the cursor by one byte and returns it.
func (s *Scanner) Consume() (byte, bool) {
	b, ok := s.Peek()
	if ok {
		s.pos++
	}
	return b, ok
}

// ConsumeIf advances the cursor by one byte and returns true if the next
// byte equals b; otherwise leaves the cursor untouched and returns false.
func (s *Scanner) ConsumeIf(b byte) bool {
	if c, ok := s.Peek(); ok && c == b {
		s.pos++
		return true
	}
	return false
}

// ScanString consumes exactly s if it appears at the cursor, advancing past
// it and returning true; otherwise leaves the cursor untouched.
func (s *Scanner) ScanString(prefix string) bool {
	if strings.HasPrefix(s.data[s.pos:], prefix) {
		s.pos += len(prefix)
		return true
	}
	return false
}

// ScanUpTo consumes and returns everything up to (not including) the next
// occurrence of delim, advancing the cursor to just before delim. Reports
// false if delim never occurs, in which case the cursor is not moved.
func (s *Scanner) ScanUpTo(delim string) (string, bool) {
	rest := s.data[s.pos:]
	idx := strings.Index(rest, delim)
	if idx < 0 {
		return "", false
	}
	out := rest[:idx]
	s.pos += idx
	return out, true
}

// ScanWhile consumes and returns the longest run of bytes satisfying
// class, starting at the cursor. May return an empty string if the cursor
// byte does not satisfy class.
func (s *Scanner) ScanWhile(class func(byte) bool) string {
	start := s.pos
	for s.pos < len(s.data) && class(s.data[s.pos]) {
		s.pos++
	}
	return s.data[start:s.pos]
}

// SkipWhile advances the cursor past a run of bytes satisfying class,
// discarding them.
func (s *Scanner) SkipWhile(class func(byte) bool) {
	for s.pos < len(s.data) && class(s.data[s.pos]) {
		s.pos++
	}
}

// Rewind moves the cursor back n bytes, clamped at the start of input.
// Used when a class-based scan consumes past a boundary it didn't know
// to stop at (e.g. an unquoted xcconfig token running into "//" with no
// preceding whitespace) and needs to give some of it back.
func (s *Scanner) Rewind(n int) {
	s.pos -= n
	if s.pos < 0 {
		s.pos = 0
	}
}

// Remaining returns the unconsumed tail of the input.
func (s *Scanner) Remaining() string {
	return s.data[s.pos:]
}

// Context returns up to n characters starting at the cursor, for error
// reporting.
func (s *Scanner) Context(n int) string {
	rest := s.data[s.pos:]
	if len(rest) > n {
		return rest[:n]
	}
	return rest
}

// ScanQuotedBody consumes a quoted string's body, given the cursor is
// positioned just past the opening quote character. It stops at the first
// unescaped occurrence of quote, processing the four escapes shared by the
// plist and xcconfig grammars: \n \t \" \\, plus the "&#HHHH;" hex
// character entity the renderer substitutes for every non-ASCII rune. An
// unknown escape or an unterminated string is an error.
func (s *Scanner) ScanQuotedBody(quote byte) (string, error) {
	var sb strings.Builder
	for {
		b, ok := s.Consume()
		if !ok {
			return "", ErrUnterminatedQuote
		}
		if b == quote {
			return sb.String(), nil
		}
		if b == '\\' {
			esc, ok := s.Consume()
			if !ok {
				return "", ErrDanglingEscape
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				return "", fmt.Errorf("unknown escape \\%c", esc)
			}
			continue
		}
		if b == '&' {
			if r, ok := s.scanHexEntity(); ok {
				sb.WriteRune(r)
				continue
			}
		}
		sb.WriteByte(b)
	}
}

// scanHexEntity consumes a "#HHHH;" hex-entity body, given the cursor is
// positioned just past the leading '&'. Reports false (rewinding to '&')
// if what follows isn't a well-formed entity, so the '&' is kept as a
// literal character.
func (s *Scanner) scanHexEntity() (rune, bool) {
	start := s.pos
	if !s.ConsumeIf('#') {
		return 0, false
	}
	hex := s.ScanWhile(isHexDigit)
	if hex == "" || !s.ConsumeIf(';') {
		s.pos = start
		return 0, false
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		s.pos = start
		return 0, false
	}
	return rune(val), true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// LineColumn computes the 1-based line and column of the cursor's current
// position, scanning from the start of the input. Used only for error
// reporting, where performance is not a concern.
func (s *Scanner) LineColumn() (line, column int) {
	line = 1
	column = 1
	for i := 0; i < s.pos && i < len(s.data); i++ {
		if s.data[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
