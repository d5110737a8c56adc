// Package parse builds ast.Node trees from JSON5 text.
package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/json5ast/go-json5/ast"
	"github.com/json5ast/go-json5/debug"
	"github.com/json5ast/go-json5/token"
)

// Parse decodes a complete JSON5 document: exactly one value, optionally
// surrounded by whitespace and comments, followed by end of input. On
// failure no partial tree is returned, only an error carrying the span
// of the offending input.
func Parse(d []byte, opts ...Option) (*ast.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	off := 0
	res, err := parseValue(toks, &off, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if t := &toks[off]; t.Type != token.TEOF {
		return nil, &Error{
			Err:  ErrTrailingContent,
			Msg:  fmt.Sprintf("found %s after top-level value", found(t)),
			Span: t.Span,
		}
	}
	return res, nil
}

func parseValue(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ast.Node, error) {
	t := &toks[*pi]
	if opts.maxDepth > 0 && depth > opts.maxDepth {
		return nil, &Error{Err: ErrDepth, Span: t.Span}
	}
	if debug.Parse() {
		debug.Logger().Debug("value", "token", t.Info(), "depth", depth)
	}
	switch t.Type {
	case token.TLCurl:
		*pi++
		return parseObj(toks, t, pi, depth, opts)
	case token.TLSquare:
		*pi++
		return parseArr(toks, t, pi, depth, opts)
	case token.TString:
		*pi++
		return ast.FromString(t.String()).WithSpan(t.Span), nil
	case token.TTrue:
		*pi++
		return ast.FromBool(true).WithSpan(t.Span), nil
	case token.TFalse:
		*pi++
		return ast.FromBool(false).WithSpan(t.Span), nil
	case token.TNull:
		*pi++
		return ast.Null().WithSpan(t.Span), nil
	case token.TInteger:
		*pi++
		return integerNode(t)
	case token.TFloat:
		*pi++
		return floatNode(t)
	case token.TIdent:
		switch string(t.Bytes) {
		case "Infinity", "NaN":
			*pi++
			return floatNode(t)
		}
		return nil, unexpectedErr("value", t)
	default:
		return nil, unexpectedErr("value", t)
	}
}

func integerNode(t *token.Token) (*ast.Node, error) {
	if token.IsHex(t.Bytes) {
		// HexValue is total over lexemes the tokenizer accepted;
		// magnitudes beyond int64 come back float-kinded
		i, f, isFloat := token.HexValue(t.Bytes)
		if isFloat {
			return ast.FromFloat(f).WithSpan(t.Span), nil
		}
		return ast.FromInt(i).WithSpan(t.Span), nil
	}
	i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
	if err == nil {
		return ast.FromInt(i).WithSpan(t.Span), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return floatNode(t)
	}
	return nil, fmt.Errorf("%w: invalid integer %q (%v) %s",
		errInternal, string(t.Bytes), err, t.Span)
}

func floatNode(t *token.Token) (*ast.Node, error) {
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: invalid float %q (%v) %s",
			errInternal, string(t.Bytes), err, t.Span)
	}
	// out-of-range literals saturate to +/-Inf, which JSON5 can express
	return ast.FromFloat(f).WithSpan(t.Span), nil
}

func parseObj(toks []token.Token, open *token.Token, pi *int, depth int, opts *parseOpts) (*ast.Node, error) {
	kvs := []ast.KeyVal{}
	seen := map[string]int{}
	for {
		t := &toks[*pi]
		switch t.Type {
		case token.TRCurl:
			*pi++
			obj := ast.FromKeyValsAt(&ast.Node{}, kvs)
			return obj.WithSpan(open.Span.To(t.Span)), nil

		case token.TEOF:
			return nil, unterminatedErr("object", open)

		case token.TString, token.TIdent, token.TTrue, token.TFalse, token.TNull:
			key := ast.FromString(t.String()).WithSpan(t.Span)
			*pi++
			if ct := &toks[*pi]; ct.Type != token.TColon {
				if ct.Type == token.TEOF {
					return nil, unterminatedErr("object", open)
				}
				return nil, unexpectedErr("':'", ct)
			}
			*pi++
			val, err := parseValue(toks, pi, depth+1, opts)
			if err != nil {
				return nil, err
			}
			if j, ok := seen[key.String]; ok {
				if opts.strictFields {
					return nil, &Error{
						Err:  ErrDuplicateKey,
						Msg:  fmt.Sprintf("key %q", key.String),
						Span: key.Span,
					}
				}
				// last wins, first position kept
				kvs[j].Val = val
			} else {
				seen[key.String] = len(kvs)
				kvs = append(kvs, ast.KeyVal{Key: key, Val: val})
			}
			switch sep := &toks[*pi]; sep.Type {
			case token.TComma:
				*pi++
			case token.TRCurl:
			case token.TEOF:
				return nil, unterminatedErr("object", open)
			default:
				return nil, unexpectedErr("',' or '}'", sep)
			}

		default:
			return nil, unexpectedErr("object key or '}'", t)
		}
	}
}

func parseArr(toks []token.Token, open *token.Token, pi *int, depth int, opts *parseOpts) (*ast.Node, error) {
	vals := []*ast.Node{}
	for {
		t := &toks[*pi]
		switch t.Type {
		case token.TRSquare:
			*pi++
			arr := ast.FromSliceAt(&ast.Node{}, vals)
			return arr.WithSpan(open.Span.To(t.Span)), nil

		case token.TEOF:
			return nil, unterminatedErr("array", open)

		default:
			elt, err := parseValue(toks, pi, depth+1, opts)
			if err != nil {
				return nil, err
			}
			vals = append(vals, elt)
			switch sep := &toks[*pi]; sep.Type {
			case token.TComma:
				*pi++
			case token.TRSquare:
			case token.TEOF:
				return nil, unterminatedErr("array", open)
			default:
				return nil, unexpectedErr("',' or ']'", sep)
			}
		}
	}
}
