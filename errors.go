package slc

import "fmt"

// SyntaxError is reported by the lexer and the parser.
type SyntaxError struct {
	Message string
	Span    Span
}

func (e SyntaxError) Error() string { return e.Message }

// TypeError is reported by the code generator for unknown types and
// unknown or misapplied annotations.
type TypeError struct {
	Message string
	Span    Span
}

func (e TypeError) Error() string { return e.Message }

// RuntimeError is reported by the code generator for structurally
// impossible constructs: member access on a non-pointer identifier,
// an invalid unary/binary operator slot, and similar.
type RuntimeError struct {
	Message string
	Span    Span
}

func (e RuntimeError) Error() string { return e.Message }

// Diagnostic renders an error per the format in spec.md §6:
// [<file>:<line>:<column>] <Kind>: <message>
func Diagnostic(file string, source []byte, err error) string {
	kind, message, span := classify(err)
	loc := LocationIn(source, span.Start)
	return fmt.Sprintf("[%s:%d:%d] %s: %s", file, loc.Line, loc.Column, kind, message)
}

func classify(err error) (kind, message string, span Span) {
	switch e := err.(type) {
	case SyntaxError:
		return "SyntaxError", e.Message, e.Span
	case TypeError:
		return "TypeError", e.Message, e.Span
	case RuntimeError:
		return "RuntimeError", e.Message, e.Span
	default:
		return "Error", err.Error(), Span{}
	}
}
