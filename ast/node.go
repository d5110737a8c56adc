package ast

import (
	"maps"
	"slices"

	"github.com/json5ast/go-json5/token"
)

// Node is a single value in a parsed document. The Type field selects
// which payload fields are meaningful; Span records where in the source
// text the value was parsed from and is ignored by Equal and Compare.
//
// Object nodes keep Fields[i] as the key node for Values[i]. Keys are
// string typed, unique, and kept in source order; an unexported index
// gives O(1) keyed lookup.
type Node struct {
	Type Type
	Span token.Span

	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []*Node
	Values []*Node
	index  map[string]int

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

// WithSpan sets the node's span and returns it.
func (y *Node) WithSpan(s token.Span) *Node {
	y.Span = s
	return y
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromSlice(ySlice []*Node) *Node {
	return FromSliceAt(&Node{}, ySlice)
}

func FromSliceAt(res *Node, ySlice []*Node) *Node {
	res.Type = ArrayType
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		y.Parent = res
		y.ParentIndex = i
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{}, kvs)
}

// FromKeyValsAt builds an object node from key/value pairs in order.
// A repeated key replaces the value at the key's first position, so the
// resulting object always has unique keys.
func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = res.Fields[:0]
	res.Values = res.Values[:0]
	res.index = make(map[string]int, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if j, ok := res.index[kv.Key.String]; ok {
			kv.Val.Parent = res
			kv.Val.ParentIndex = j
			kv.Val.ParentField = kv.Key.String
			res.Values[j] = kv.Val
			continue
		}
		j := len(res.Fields)
		kv.Key.Parent = res
		kv.Key.ParentIndex = j
		kv.Key.ParentField = kv.Key.String
		kv.Val.Parent = res
		kv.Val.ParentIndex = j
		kv.Val.ParentField = kv.Key.String
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
		res.index[kv.Key.String] = j
	}
	return res
}

// FromMap builds an object node with keys in sorted order. Use
// FromKeyVals when insertion order matters.
func FromMap(yMap map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		kvs = append(kvs, KeyVal{Key: FromString(key), Val: yMap[key]})
	}
	return FromKeyVals(kvs)
}

// ToMap flattens an object node into a Go map, losing key order.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// Get returns the value for field, or nil. Lookup is O(1).
func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	if j, ok := y.index[field]; ok {
		return y.Values[j]
	}
	return nil
}

// IndexOf returns the position of field in source order, or -1.
func (y *Node) IndexOf(field string) int {
	if j, ok := y.index[field]; ok {
		return j
	}
	return -1
}

// Keys returns the object's keys in source order.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	keys := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		keys[i] = f.String
	}
	return keys
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Span = y.Span
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	dst.Fields = make([]*Node, len(y.Fields))
	if y.index != nil {
		dst.index = make(map[string]int, len(y.Fields))
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
		if dst.index != nil {
			dst.index[yf.String] = i
		}
	}
	return dst
}

// Visit walks the tree. f is called with isPost false before a node's
// children and true after; returning false from the pre call skips the
// children. Object key nodes are visited before their values.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for i, yy := range y.Values {
			if i < len(y.Fields) {
				if err := y.Fields[i].Visit(f); err != nil {
					return err
				}
			}
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
