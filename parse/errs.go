package parse

import (
	"errors"
	"fmt"

	"github.com/json5ast/go-json5/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrUnterminatedStructure = errors.New("unterminated structure")
	ErrTrailingContent       = errors.New("trailing content")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrDepth                 = errors.New("max nesting depth exceeded")

	errInternal = errors.New("internal error")
)

// Error is a syntax error carrying the span of the offending token.
// Unwrap yields the error kind sentinel.
type Error struct {
	Err  error
	Msg  string
	Span token.Span
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s at %s", ErrParse, e.Err, e.Span.String())
	}
	return fmt.Sprintf("%s: %s: %s at %s", ErrParse, e.Err, e.Msg, e.Span.String())
}

func unexpectedErr(expected string, t *token.Token) error {
	return &Error{
		Err:  ErrUnexpectedToken,
		Msg:  fmt.Sprintf("expected %s, found %s", expected, found(t)),
		Span: t.Span,
	}
}

func unterminatedErr(what string, open *token.Token) error {
	return &Error{
		Err:  ErrUnterminatedStructure,
		Msg:  fmt.Sprintf("%s is never closed", what),
		Span: open.Span,
	}
}

func found(t *token.Token) string {
	if t.Type == token.TEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", string(t.Bytes))
}
