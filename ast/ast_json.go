package ast

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo writes the node as strict JSON, preserving object key
// order. Non-finite floats have no JSON representation and fail.
func (n *Node) MarshalJSONTo(enc *jsontext.Encoder) error {
	switch n.Type {
	case NullType:
		return enc.WriteToken(jsontext.Null)
	case BoolType:
		return enc.WriteToken(jsontext.Bool(n.Bool))
	case IntegerType:
		return enc.WriteToken(jsontext.Int(n.Int64))
	case FloatType:
		if math.IsInf(n.Float64, 0) || math.IsNaN(n.Float64) {
			return fmt.Errorf("ast: cannot marshal %v as JSON", n.Float64)
		}
		return enc.WriteToken(jsontext.Float(n.Float64))
	case StringType:
		return enc.WriteToken(jsontext.String(n.String))
	case ArrayType:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, v := range n.Values {
			if err := v.MarshalJSONTo(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case ObjectType:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i, f := range n.Fields {
			if err := enc.WriteToken(jsontext.String(f.String)); err != nil {
				return err
			}
			if err := n.Values[i].MarshalJSONTo(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("ast: cannot marshal type %s", n.Type)
	}
}

// UnmarshalJSONFrom reads one JSON value into the node. Nodes built this
// way carry zero spans. Numbers keep the lexical integer/float split:
// a literal with a fraction or exponent becomes a Float.
func (n *Node) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	switch k := dec.PeekKind(); k {
	case '0':
		v, err := dec.ReadValue()
		if err != nil {
			return err
		}
		*n = Node{}
		if !bytes.ContainsAny(v, ".eE") {
			if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
				n.Type = IntegerType
				n.Int64 = i
				return nil
			}
		}
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("ast: bad number %q: %w", string(v), err)
		}
		n.Type = FloatType
		n.Float64 = f
		return nil

	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		vals := []*Node{}
		for dec.PeekKind() != ']' {
			elt := &Node{}
			if err := elt.UnmarshalJSONFrom(dec); err != nil {
				return err
			}
			vals = append(vals, elt)
		}
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		*n = Node{}
		FromSliceAt(n, vals)
		return nil

	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		kvs := []KeyVal{}
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return err
			}
			val := &Node{}
			if err := val.UnmarshalJSONFrom(dec); err != nil {
				return err
			}
			kvs = append(kvs, KeyVal{Key: FromString(keyTok.String()), Val: val})
		}
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		*n = Node{}
		FromKeyValsAt(n, kvs)
		return nil

	default:
		tok, err := dec.ReadToken()
		if err != nil {
			return err
		}
		*n = Node{}
		switch k {
		case 'n':
			n.Type = NullType
		case 't', 'f':
			n.Type = BoolType
			n.Bool = tok.Bool()
		case '"':
			n.Type = StringType
			n.String = tok.String()
		default:
			return fmt.Errorf("ast: unexpected JSON kind %v", k)
		}
		return nil
	}
}
