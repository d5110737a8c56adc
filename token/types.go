package token

import (
	"fmt"
)

type TokenType int

const (
	TString TokenType = iota
	TInteger
	TFloat
	TIdent
	TTrue
	TFalse
	TNull
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TIdent:   "TIdent",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TEOF:     "TEOF",
	}[t]
}

type Token struct {
	Type  TokenType
	Span  Span
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Span.String())
}

// String returns the token's value: for strings, the decoded text with
// quotes stripped and escapes resolved, otherwise the raw lexeme.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	case TEOF:
		return "end of input"
	default:
		return string(t.Bytes)
	}
}
