// Package xcconfig implements the .xcconfig configuration format: a
// line-oriented parser (this file), and a four-level configuration tree
// (tree.go) with include-overlay semantics (configuration.go).
package xcconfig

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/xcproj/internal/errors"
	"github.com/standardbeagle/xcproj/internal/scanner"
)

// Conditions holds the three recognized bracketed qualifiers a config
// line may carry, each defaulting to "*" when absent.
type Conditions struct {
	Config string
	SDK    string
	Arch   string
}

// LineKind discriminates the four shapes a logical line can take.
type LineKind int

const (
	KindEmpty LineKind = iota
	KindComment
	KindInclude
	KindConfig
)

// Line is one parsed logical line of an .xcconfig file.
type Line struct {
	Kind LineKind

	// KindComment
	Text string

	// KindInclude
	Path     string
	Optional bool

	// KindConfig
	Key        string
	Conditions Conditions
	Values     []string
	Comment    string // trailing "// ..." text, if any (leading space stripped)
}

func isKeyChar(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// ParseLine parses one logical line (no trailing newline) per §4.9.
func ParseLine(src string) (Line, error) {
	p := &lineParser{s: scanner.New(src)}
	return p.parse()
}

type lineParser struct {
	s *scanner.Scanner
}

func (p *lineParser) parse() (Line, error) {
	p.s.SkipWhile(isSpace)
	if p.s.AtEnd() {
		return Line{Kind: KindEmpty}, nil
	}

	if p.s.ScanString("//") {
		text := strings.TrimPrefix(p.s.Remaining(), " ")
		return Line{Kind: KindComment, Text: text}, nil
	}

	if p.s.ScanString("#include") {
		return p.parseInclude()
	}

	return p.parseConfig()
}

func (p *lineParser) parseInclude() (Line, error) {
	optional := p.s.ConsumeIf('?')
	p.s.SkipWhile(isSpace)
	if !p.s.ConsumeIf('"') {
		return Line{}, p.errorAt(`quoted include path`)
	}
	path, err := p.s.ScanQuotedBody('"')
	if err != nil {
		return Line{}, p.wrapScanError(err)
	}
	p.s.SkipWhile(isSpace)
	if !p.s.AtEnd() {
		return Line{}, p.errorAt("end of line after #include")
	}
	return Line{Kind: KindInclude, Path: path, Optional: optional}, nil
}

func (p *lineParser) parseConfig() (Line, error) {
	key := p.s.ScanWhile(isKeyChar)
	if key == "" {
		return Line{}, p.errorAt("config key")
	}

	conds := Conditions{Config: "*", SDK: "*", Arch: "*"}
	for {
		if !p.s.ConsumeIf('[') {
			break
		}
		body, ok := p.s.ScanUpTo("]")
		if !ok {
			return Line{}, p.errorAt("closing ']'")
		}
		p.s.Consume() // ']'
		if body == "" {
			// An empty "[]" terminates the conditional list per §4.9
			// step 2, rather than being skipped as a no-op entry.
			break
		}
		eq := strings.IndexByte(body, '=')
		if eq < 0 {
			return Line{}, p.errorAt("'name=value' inside '[...]'")
		}
		name, value := body[:eq], body[eq+1:]
		switch name {
		case "config":
			conds.Config = value
		case "sdk":
			conds.SDK = value
		case "arch":
			conds.Arch = value
		default:
			return Line{}, p.errorAt(fmt.Sprintf("conditional name config, sdk, or arch (got %q)", name))
		}
	}

	p.s.SkipWhile(isSpace)
	if !p.s.ConsumeIf('=') {
		return Line{}, p.errorAt("'='")
	}
	p.s.SkipWhile(isSpace)

	values, err := p.parseValueCluster()
	if err != nil {
		return Line{}, err
	}

	p.s.SkipWhile(isSpace)
	comment := ""
	if p.s.ScanString("//") {
		comment = strings.TrimPrefix(p.s.Remaining(), " ")
	}

	return Line{Kind: KindConfig, Key: key, Conditions: conds, Values: values, Comment: comment}, nil
}

func isUnquotedTokenChar(b byte) bool {
	return !isSpace(b)
}

// parseValueCluster scans a whitespace-separated run of tokens, stopping
// at end of input or a top-level "//" comment.
func (p *lineParser) parseValueCluster() ([]string, error) {
	var values []string
	for {
		p.s.SkipWhile(isSpace)
		if p.s.AtEnd() {
			break
		}
		if b, ok := p.s.Peek(); ok && b == '/' {
			if next, ok := p.s.PeekAt(1); ok && next == '/' {
				break
			}
		}

		if p.s.ConsumeIf('"') {
			body, err := p.s.ScanQuotedBody('"')
			if err != nil {
				return nil, p.wrapScanError(err)
			}
			values = append(values, body)
			continue
		}

		token := p.s.ScanWhile(func(b byte) bool {
			if isSpace(b) {
				return false
			}
			return true
		})
		if token == "" {
			break
		}
		values = append(values, stopAtComment(token, p))
	}
	return values, nil
}

// stopAtComment handles an unquoted token that runs into a "//" with no
// preceding whitespace (e.g. "abc//comment"): the scanner's unquoted
// ScanWhile above already consumed the whole run including the "//", so
// split it back apart and rewind the cursor to just before the comment.
func stopAtComment(token string, p *lineParser) string {
	idx := strings.Index(token, "//")
	if idx < 0 {
		return token
	}
	rewind := len(token) - idx
	p.s.Rewind(rewind)
	return token[:idx]
}

func (p *lineParser) errorAt(expected string) error {
	line, col := p.s.LineColumn()
	return errors.NewParseError(errors.KindParseConfig, p.s.Pos(), line, col, expected, p.s.Context(20))
}

func (p *lineParser) wrapScanError(err error) error {
	line, col := p.s.LineColumn()
	return errors.NewParseError(errors.KindParseConfig, p.s.Pos(), line, col, "", p.s.Context(20)).WithUnderlying(err)
}
