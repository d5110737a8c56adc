package token

import (
	"bytes"
	"unicode/utf8"

	"github.com/json5ast/go-json5/debug"
)

// Tokenize converts src into its token sequence, appending to dst. The
// returned slice always ends with a TEOF token spanning the empty range
// at the end of input. Whitespace and comments produce no tokens.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := NewDoc(src)
	i := 0
	n := len(src)
	for i < n {
		tok, consumed, err := tokenizeOne(doc, src, i)
		if err != nil {
			return nil, err
		}
		i += consumed
		if tok == nil {
			continue
		}
		if debug.Tokens() {
			debug.Logger().Debug("token",
				"type", tok.Type.String(),
				"lexeme", string(tok.Bytes),
				"start", tok.Span.Start,
				"end", tok.Span.End)
		}
		dst = append(dst, *tok)
	}
	dst = append(dst, Token{Type: TEOF, Span: doc.end()})
	return dst, nil
}

func tokenizeOne(doc *Doc, d []byte, i int) (*Token, int, error) {
	switch c := d[i]; c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return nil, 1, nil

	case '{':
		return punct(doc, d, i, TLCurl), 1, nil
	case '}':
		return punct(doc, d, i, TRCurl), 1, nil
	case '[':
		return punct(doc, d, i, TLSquare), 1, nil
	case ']':
		return punct(doc, d, i, TRSquare), 1, nil
	case ':':
		return punct(doc, d, i, TColon), 1, nil
	case ',':
		return punct(doc, d, i, TComma), 1, nil

	case '"', '\'':
		j, err := scanQuoted(d[i:])
		if err != nil {
			return nil, 0, NewLexErr(err, doc.Span(i, i+1))
		}
		return &Token{Type: TString, Span: doc.Span(i, i+j), Bytes: d[i : i+j]}, j, nil

	case '/':
		return comment(doc, d, i)

	case '+', '-', '.',
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return num(doc, d, i)

	default:
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return nil, 0, NewLexErr(ErrBadUTF8, doc.Span(i, i+1))
		}
		if isSpace(r) {
			return nil, sz, nil
		}
		l, err := identifier(d[i:])
		if err != nil {
			return nil, 0, NewLexErr(err, doc.Span(i, i+sz))
		}
		if l == 0 {
			return nil, 0, UnexpectedErr(string(r), doc.Span(i, i+sz))
		}
		tok := &Token{Type: TIdent, Span: doc.Span(i, i+l), Bytes: d[i : i+l]}
		switch string(tok.Bytes) {
		case "true":
			tok.Type = TTrue
		case "false":
			tok.Type = TFalse
		case "null":
			tok.Type = TNull
		}
		return tok, l, nil
	}
}

func punct(doc *Doc, d []byte, i int, t TokenType) *Token {
	return &Token{Type: t, Span: doc.Span(i, i+1), Bytes: d[i : i+1]}
}

func num(doc *Doc, d []byte, i int) (*Token, int, error) {
	l, isFloat, err := number(d[i:])
	if err != nil {
		return nil, 0, NewLexErr(err, doc.Span(i, i+1))
	}
	// a literal fused with identifier or number characters is one bad
	// token, not two: 1px, 0x1FG, 1.2.3
	if i+l < len(d) {
		r, _ := utf8.DecodeRune(d[i+l:])
		if r == '.' || isIdentPart(r) {
			return nil, 0, NewLexErr(ErrNumber, doc.Span(i, i+l+1))
		}
	}
	t := TInteger
	if isFloat {
		t = TFloat
	}
	return &Token{Type: t, Span: doc.Span(i, i+l), Bytes: d[i : i+l]}, l, nil
}

func comment(doc *Doc, d []byte, i int) (*Token, int, error) {
	n := len(d)
	if i+1 >= n {
		return nil, 0, UnexpectedErr("/", doc.Span(i, i+1))
	}
	switch d[i+1] {
	case '/':
		j := i + 2
		for j < n && d[j] != '\n' {
			j++
		}
		return nil, j - i, nil
	case '*':
		if k := bytes.Index(d[i+2:], []byte("*/")); k >= 0 {
			return nil, k + 4, nil
		}
		return nil, 0, NewLexErr(ErrUnterminatedComment, doc.Span(i, i+2))
	default:
		return nil, 0, UnexpectedErr("/", doc.Span(i, i+1))
	}
}
