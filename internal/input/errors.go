package input

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrParse indicates a malformed document.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates schema violations: missing fields, wrong types, unknown fields.
	ErrSchema = errors.New("schema error")

	// ErrUnsupportedFormat indicates an input format this package cannot read.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// ParseError represents a failure to parse a document.
type ParseError struct {
	Source string // Document name, usually a file path
	Msg    string
	Err    error // Optional underlying decoder error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %s", ErrParse, e.Source, msg)
	}
	return fmt.Sprintf("%s: %s", ErrParse, msg)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// SchemaError represents a schema validation failure.
type SchemaError struct {
	Field string // Path of the offending field, e.g. "[2].nodeId"
	Msg   string
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", ErrSchema, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrSchema, e.Msg)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }
