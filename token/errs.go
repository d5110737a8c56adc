package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8             = errors.New("bad utf8")
	ErrUnterminated        = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrBadEscape           = errors.New("bad escape")
	ErrBadUnicode          = errors.New("bad unicode escape")
	ErrStringControl       = errors.New("control character in string")
	ErrNumber              = errors.New("bad number")
	ErrNumberLeadingZero   = errors.New("leading zero")
	ErrUnexpectedChar      = errors.New("unexpected character")
)

// LexErr is a lexical error carrying the span of the offending input.
type LexErr struct {
	Err  error
	Span Span
}

func NewLexErr(e error, s Span) *LexErr {
	return &LexErr{Err: e, Span: s}
}

func (e *LexErr) Unwrap() error {
	return e.Err
}

func (e *LexErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Span.String())
}

func UnexpectedErr(what string, s Span) error {
	return NewLexErr(fmt.Errorf("%w %q", ErrUnexpectedChar, what), s)
}
