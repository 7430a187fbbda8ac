// Package plist implements the ASCII property-list format used by
// project.pbxproj: a recursive-descent parser producing the object
// package's Dictionary/Array/Literal tree, and a depth-first renderer
// that writes it back out byte-for-byte compatible with the IDE's own
// formatting.
package plist

import (
	"github.com/standardbeagle/xcproj/internal/errors"
	"github.com/standardbeagle/xcproj/internal/object"
	"github.com/standardbeagle/xcproj/internal/scanner"
)

// prologue is the optional UTF-8 marker comment at the top of every
// project.pbxproj file.
const prologue = "// !$*UTF8*$!"

// Parse parses src as an ASCII property list and returns its root
// dictionary. The root element must be a dictionary; its absence is a
// fatal error, per spec.
func Parse(src string) (*object.Dictionary, error) {
	s := scanner.New(src)
	p := &parser{s: s}

	s.SkipWhile(isSpace)
	s.ScanString(prologue)
	p.skipSpace()

	b, ok := s.Peek()
	if !ok || b != '{' {
		return nil, p.errorAt("root dictionary")
	}
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return val.(*object.Dictionary), nil
}

type parser struct {
	s *scanner.Scanner
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// isKeyChar matches the key token class: [A-Za-z0-9_.]
func isKeyChar(b byte) bool {
	return isAlnum(b) || b == '_' || b == '.'
}

// isUnquotedValueChar matches the unquoted-string-value token class:
// [A-Za-z0-9._/]
func isUnquotedValueChar(b byte) bool {
	return isAlnum(b) || b == '_' || b == '.' || b == '/'
}

// skipSpace consumes whitespace and /* ... */ comments, which may appear
// between any two tokens. An unterminated comment is left for the next
// token scan to fail on, producing a more useful error location.
func (p *parser) skipSpace() {
	for {
		p.s.SkipWhile(isSpace)
		if !p.s.ScanString("/*") {
			return
		}
		if _, ok := p.s.ScanUpTo("*/"); !ok {
			return
		}
		p.s.ScanString("*/")
	}
}

// parseValue implements value ::= unquoted | quoted | dict | array.
func (p *parser) parseValue() (object.Value, error) {
	p.skipSpace()
	b, ok := p.s.Peek()
	if !ok {
		return nil, p.errorAt("value")
	}
	switch {
	case b == '{':
		return p.parseDict()
	case b == '(':
		return p.parseArray()
	case b == '"':
		lit, err := p.parseQuotedLiteral()
		if err != nil {
			return nil, err
		}
		return lit, nil
	case isUnquotedValueChar(b):
		lit, err := p.parseUnquotedLiteral()
		if err != nil {
			return nil, err
		}
		return lit, nil
	default:
		return nil, p.errorAt("value")
	}
}

// parseDict implements dict ::= "{" (key "=" value ";")* "}". The trailing
// semicolon is required for every entry.
func (p *parser) parseDict() (*object.Dictionary, error) {
	p.s.Consume() // '{'
	d := object.NewDictionary()
	for {
		p.skipSpace()
		if p.s.ConsumeIf('}') {
			return d, nil
		}
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.s.ConsumeIf('=') {
			return nil, p.errorAt("'='")
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.s.ConsumeIf(';') {
			return nil, p.errorAt("';'")
		}
		d.SetString(key, val)
	}
}

// parseArray implements array ::= "(" (value ",")* ")". The trailing
// comma is required for every element.
func (p *parser) parseArray() (*object.Array, error) {
	p.s.Consume() // '('
	arr := object.NewArray()
	for {
		p.skipSpace()
		if p.s.ConsumeIf(')') {
			return arr, nil
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.s.ConsumeIf(',') {
			return nil, p.errorAt("','")
		}
		arr.Append(val)
	}
}

// parseKey accepts either a quoted string or a bare run of [A-Za-z0-9_.].
func (p *parser) parseKey() (string, error) {
	p.skipSpace()
	b, ok := p.s.Peek()
	if !ok {
		return "", p.errorAt("key")
	}
	if b == '"' {
		lit, err := p.parseQuotedLiteral()
		if err != nil {
			return "", err
		}
		return lit.String(), nil
	}
	key := p.s.ScanWhile(isKeyChar)
	if key == "" {
		return "", p.errorAt("key")
	}
	return key, nil
}

func (p *parser) parseQuotedLiteral() (object.Literal, error) {
	p.s.Consume() // opening quote
	body, err := p.s.ScanQuotedBody('"')
	if err != nil {
		return object.Literal{}, p.wrapScanError(err)
	}
	return object.NewLiteral(body), nil
}

func (p *parser) parseUnquotedLiteral() (object.Literal, error) {
	s := p.s.ScanWhile(isUnquotedValueChar)
	if s == "" {
		return object.Literal{}, p.errorAt("value")
	}
	return object.NewLiteral(s), nil
}

func (p *parser) errorAt(expected string) error {
	line, col := p.s.LineColumn()
	return errors.NewParseError(errors.KindParsePlist, p.s.Pos(), line, col, expected, p.s.Context(20))
}

// wrapScanError turns a scanner-level quoting error (unterminated quote,
// dangling escape, unknown escape) into a ParseError carrying the same
// location and context conventions as every other parse failure.
func (p *parser) wrapScanError(err error) error {
	line, col := p.s.LineColumn()
	return errors.NewParseError(errors.KindParsePlist, p.s.Pos(), line, col, "", p.s.Context(20)).WithUnderlying(err)
}
