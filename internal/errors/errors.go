// Package errors defines the typed error hierarchy for parse, render, and
// create failures raised by xcproj's parsers and object model.
package errors

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind classifies which stage of the pipeline raised the error.
type Kind string

const (
	KindParsePlist     Kind = "parse_plist"
	KindParseWorkspace Kind = "parse_workspace"
	KindParseConfig    Kind = "parse_config"
	KindRender         Kind = "render"
	KindCreate         Kind = "create"
	KindLink           Kind = "link"
)

// ParseError reports a syntax failure in one of the three file formats.
// Offset/Line/Column locate the failure; Context holds up to 20 characters
// of the actual input encountered, per spec.
type ParseError struct {
	Kind       Kind
	Offset     int
	Line       int
	Column     int
	Expected   string
	Context    string
	Underlying error
	OpID       uuid.UUID
	Timestamp  time.Time
}

const contextLimit = 20

// NewParseError constructs a ParseError, truncating context to the first
// 20 characters.
func NewParseError(kind Kind, offset, line, column int, expected, context string) *ParseError {
	if len(context) > contextLimit {
		context = context[:contextLimit]
	}
	return &ParseError{
		Kind:      kind,
		Offset:    offset,
		Line:      line,
		Column:    column,
		Expected:  expected,
		Context:   context,
		OpID:      uuid.New(),
		Timestamp: time.Now(),
	}
}

// WithUnderlying attaches a wrapped cause (e.g. an io error) and returns
// the receiver for chaining.
func (e *ParseError) WithUnderlying(err error) *ParseError {
	e.Underlying = err
	return e
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: expected %s at %d:%d, found %q", e.Kind, e.Expected, e.Line, e.Column, e.Context)
	}
	return fmt.Sprintf("%s: %d:%d: %q", e.Kind, e.Line, e.Column, e.Context)
}

func (e *ParseError) Unwrap() error { return e.Underlying }

// RenderError reports the one documented render failure: an unknown value
// kind encountered during tree walk.
type RenderError struct {
	Kind       Kind
	ValueKind  string
	Underlying error
	OpID       uuid.UUID
	Timestamp  time.Time
}

// NewRenderError constructs a RenderError for an unrecognized value kind.
func NewRenderError(valueKind string) *RenderError {
	return &RenderError{
		Kind:      KindRender,
		ValueKind: valueKind,
		OpID:      uuid.New(),
		Timestamp: time.Now(),
	}
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: unknown value kind %q", e.ValueKind)
}

func (e *RenderError) Unwrap() error { return e.Underlying }

// CreateError reports a failed object construction: content missing isa.
type CreateError struct {
	ISA       string
	Reason    string
	OpID      uuid.UUID
	Timestamp time.Time
}

// NewCreateError constructs a CreateError.
func NewCreateError(isa, reason string) *CreateError {
	return &CreateError{
		ISA:       isa,
		Reason:    reason,
		OpID:      uuid.New(),
		Timestamp: time.Now(),
	}
}

func (e *CreateError) Error() string {
	if e.ISA == "" {
		return fmt.Sprintf("create: %s", e.Reason)
	}
	return fmt.Sprintf("create %s: %s", e.ISA, e.Reason)
}
