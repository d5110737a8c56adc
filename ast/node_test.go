package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func obj(kvs ...KeyVal) *Node { return FromKeyVals(kvs) }

func kv(k string, v *Node) KeyVal { return KeyVal{Key: FromString(k), Val: v} }

func TestObjectOrder(t *testing.T) {
	y := obj(
		kv("b", FromInt(1)),
		kv("a", FromInt(2)),
		kv("c", FromInt(3)),
	)
	require.Equal(t, ObjectType, y.Type)
	require.Equal(t, []string{"b", "a", "c"}, y.Keys())
	require.Equal(t, 0, y.IndexOf("b"))
	require.Equal(t, 2, y.IndexOf("c"))
	require.Equal(t, -1, y.IndexOf("missing"))
}

func TestObjectGet(t *testing.T) {
	y := obj(kv("a", FromInt(1)), kv("b", FromBool(true)))
	require.NotNil(t, Get(y, "a"))
	require.Equal(t, int64(1), Get(y, "a").Int64)
	require.True(t, Get(y, "b").Bool)
	require.Nil(t, Get(y, "nope"))
	require.Nil(t, Get(FromInt(1), "a"))
}

func TestObjectDuplicateKeys(t *testing.T) {
	// the later value replaces the earlier one at the key's first position
	y := obj(
		kv("a", FromInt(1)),
		kv("b", FromInt(2)),
		kv("a", FromInt(3)),
	)
	require.Equal(t, []string{"a", "b"}, y.Keys())
	require.Equal(t, int64(3), Get(y, "a").Int64)
	require.Equal(t, 0, y.IndexOf("a"))
}

func TestParentLinks(t *testing.T) {
	inner := FromSlice([]*Node{FromInt(1), FromInt(2)})
	y := obj(kv("xs", inner))
	require.Same(t, y, inner.Parent)
	require.Equal(t, "xs", inner.ParentField)
	require.Same(t, inner, inner.Values[0].Parent)
	require.Equal(t, 1, inner.Values[1].ParentIndex)
	require.Same(t, y, inner.Values[0].Root())
}

func TestFromMapSorted(t *testing.T) {
	y := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	require.Equal(t, []string{"a", "m", "z"}, y.Keys())
	m := ToMap(y)
	require.Len(t, m, 3)
	require.Equal(t, int64(1), m["z"].Int64)
	require.Nil(t, ToMap(FromInt(1)))
}

func TestClone(t *testing.T) {
	y := obj(
		kv("a", FromSlice([]*Node{FromInt(1), FromString("x")})),
		kv("b", Null()),
	)
	c := y.Clone()
	require.True(t, Equal(y, c))
	require.NotSame(t, y, c)
	require.NotSame(t, Get(y, "a"), Get(c, "a"))
	require.Equal(t, 1, c.IndexOf("b"))

	// mutating the clone leaves the original alone
	Get(c, "a").Values[0].Int64 = 99
	require.Equal(t, int64(1), Get(y, "a").Values[0].Int64)
	require.False(t, Equal(y, c))
}

func TestVisit(t *testing.T) {
	y := obj(
		kv("a", FromInt(1)),
		kv("b", FromSlice([]*Node{FromBool(true)})),
	)
	var pre, post []Type
	err := y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Type)
		} else {
			pre = append(pre, n.Type)
		}
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, []Type{
		ObjectType,
		StringType, IntegerType,
		StringType, ArrayType, BoolType,
	}, pre)
	require.Len(t, post, len(pre))
	require.Equal(t, ObjectType, post[len(post)-1])
}

func TestVisitSkip(t *testing.T) {
	y := obj(kv("a", FromSlice([]*Node{FromInt(1)})))
	var seen []Type
	err := y.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			seen = append(seen, n.Type)
		}
		return n.Type != ArrayType, nil
	})
	require.NoError(t, err)
	require.Equal(t, []Type{ObjectType, StringType, ArrayType}, seen)
}
