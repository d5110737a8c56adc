// Package json5 parses and serializes JSON5 documents.
//
// Parse turns JSON5 text into an ast.Node tree in which every node
// carries the source span it was parsed from; Stringify is the inverse
// transform. The subpackages token, ast, parse and encode expose the
// individual pipeline stages for callers that need them.
package json5

import (
	"bytes"
	"errors"

	"github.com/json5ast/go-json5/ast"
	"github.com/json5ast/go-json5/encode"
	"github.com/json5ast/go-json5/parse"
	"github.com/json5ast/go-json5/token"
)

// Parse decodes one complete JSON5 document: a single value, optionally
// surrounded by whitespace and comments, followed by end of input.
func Parse(d []byte, opts ...parse.Option) (*ast.Node, error) {
	return parse.Parse(d, opts...)
}

func ParseString(s string, opts ...parse.Option) (*ast.Node, error) {
	return parse.Parse([]byte(s), opts...)
}

// MustParse is Parse for document literals known to be valid. It panics
// on error.
func MustParse(s string, opts ...parse.Option) *ast.Node {
	y, err := ParseString(s, opts...)
	if err != nil {
		panic(err)
	}
	return y
}

// Stringify renders node as JSON5 text, compact unless an indent option
// is given. Re-parsing the result yields a tree value-equal to node.
func Stringify(node *ast.Node, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustStringify is Stringify for option sets that cannot fail. It
// panics on error.
func MustStringify(node *ast.Node, opts ...encode.EncodeOption) string {
	return encode.MustString(node, opts...)
}

// ErrSpan reports the source span attached to a Parse error. Both
// lexical and syntactic errors carry one.
func ErrSpan(err error) (token.Span, bool) {
	var pe *parse.Error
	if errors.As(err, &pe) {
		return pe.Span, true
	}
	var le *token.LexErr
	if errors.As(err, &le) {
		return le.Span, true
	}
	return token.Span{}, false
}
