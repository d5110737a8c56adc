package ast

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// Hash returns a 64-bit hash of the node's value, consistent with Equal:
// spans and parent links do not contribute. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ast: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

var hashSeed = maphash.MakeSeed()

func (n *Node) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntegerType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case FloatType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Float64))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		for _, v := range n.Values {
			v.hashTo(h)
		}
	case ObjectType:
		for i, f := range n.Fields {
			f.hashTo(h)
			n.Values[i].hashTo(h)
		}
	}
}
