package ast

import (
	"cmp"
	"strings"
)

// Equal reports value equality, ignoring spans and parent links. Two
// nodes parsed from different source text compare equal when their
// values and structure match. Integer and Float are distinct kinds:
// FromInt(1) is not equal to FromFloat(1).
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerType:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Integer < Float < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntegerType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
