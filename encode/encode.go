// Package encode renders ast.Node trees as JSON5 or strict JSON text.
package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/json5ast/go-json5/ast"
	"github.com/json5ast/go-json5/debug"
	"github.com/json5ast/go-json5/token"
)

var ErrEncoding = errors.New("encoding error")

// EncState carries encoder configuration and the current nesting depth.
type EncState struct {
	depth          int
	indent         string
	singleQuote    bool
	trailingCommas bool
	json           bool

	Color func(ast.Type, ColorAttr, string) string
}

// Encode writes node to w. Output is compact JSON5 unless an indent is
// configured; the JSON option restricts it to strict JSON. Re-parsing the
// output yields a tree value-equal to node. Encoding is total over
// well-formed trees except for non-finite floats in JSON mode.
func Encode(node *ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.json {
		es.singleQuote = false
		es.trailingCommas = false
	}
	if debug.Encode() {
		debug.Logger().Debug("encode", "type", node.Type, "indent", strconv.Quote(es.indent))
	}
	return encode(node, w, es)
}

func encode(node *ast.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ast.ObjectType:
		return encodeObject(node, w, es)
	case ast.ArrayType:
		return encodeArray(node, w, es)
	case ast.StringType:
		return encodeString(node, w, es)
	case ast.IntegerType:
		return encodeInteger(node, w, es)
	case ast.FloatType:
		return encodeFloat(node, w, es)
	case ast.BoolType:
		return encodeBool(node, w, es)
	case ast.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func encodeObject(node *ast.Node, w io.Writer, es *EncState) error {
	if err := writePunct(w, es, ast.ObjectType, "{"); err != nil {
		return err
	}
	if len(node.Fields) == 0 {
		return writePunct(w, es, ast.ObjectType, "}")
	}
	es.depth++
	n := len(node.Fields)
	for i, f := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, f.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 || es.pretty() && es.trailingCommas {
			if err := writePunct(w, es, ast.ObjectType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writePunct(w, es, ast.ObjectType, "}")
}

func encodeArray(node *ast.Node, w io.Writer, es *EncState) error {
	if err := writePunct(w, es, ast.ArrayType, "["); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writePunct(w, es, ast.ArrayType, "]")
	}
	es.depth++
	n := len(node.Values)
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 || es.pretty() && es.trailingCommas {
			if err := writePunct(w, es, ast.ArrayType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writePunct(w, es, ast.ArrayType, "]")
}

// String encoding

func encodeString(node *ast.Node, w io.Writer, es *EncState) error {
	v := es.quote(node.String)
	return writeString(w, applyColor(es, ast.StringType, ValueColor, v))
}

func (es *EncState) quote(v string) string {
	if es.json {
		return token.QuoteJSON(v)
	}
	return token.Quote(v, es.singleQuote)
}

// Number encoding

func encodeInteger(node *ast.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatInt(node.Int64, 10)
	return writeString(w, applyColor(es, ast.IntegerType, ValueColor, v))
}

func encodeFloat(node *ast.Node, w io.Writer, es *EncState) error {
	f := node.Float64
	var v string
	switch {
	case math.IsInf(f, 1):
		v = "Infinity"
	case math.IsInf(f, -1):
		v = "-Infinity"
	case math.IsNaN(f):
		v = "NaN"
	default:
		v = strconv.FormatFloat(f, 'g', -1, 64)
		// keep the literal float-kinded on re-parse
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
	}
	if es.json && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return fmt.Errorf("%w: cannot encode %s as JSON", ErrEncoding, v)
	}
	return writeString(w, applyColor(es, ast.FloatType, ValueColor, v))
}

// Bool and null encoding

func encodeBool(node *ast.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	return writeString(w, applyColor(es, ast.BoolType, ValueColor, v))
}

func encodeNull(node *ast.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ast.NullType, ValueColor, "null"))
}

// Field writing

func writeField(w io.Writer, f string, es *EncState) error {
	if es.json || !token.IsIdentifier(f) {
		f = es.quote(f)
	}
	f = applyColor(es, ast.ObjectType, FieldColor, f)
	sep := applyColor(es, ast.ObjectType, SepColor, ":")
	if es.pretty() {
		sep += " "
	}
	return writeString(w, f+sep)
}

// Helper functions for writing

func (es *EncState) pretty() bool {
	return es.indent != ""
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty() {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writePunct(w io.Writer, es *EncState, t ast.Type, s string) error {
	return writeString(w, applyColor(es, t, SepColor, s))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Color application helpers

func applyColor(es *EncState, t ast.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
