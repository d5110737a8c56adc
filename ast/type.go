package ast

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	FloatType
	StringType
	ArrayType
	ObjectType
)

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case NullType:
		return []byte("null"), nil
	case BoolType:
		return []byte("bool"), nil
	case IntegerType:
		return []byte("integer"), nil
	case FloatType:
		return []byte("float"), nil
	case StringType:
		return []byte("string"), nil
	case ArrayType:
		return []byte("array"), nil
	case ObjectType:
		return []byte("object"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a type>", t)
	}
}

func (t *Type) UnmarshalText(d []byte) error {
	v, ok := map[string]Type{
		"null":    NullType,
		"bool":    BoolType,
		"integer": IntegerType,
		"float":   FloatType,
		"string":  StringType,
		"array":   ArrayType,
		"object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("bad type %q", string(d))
	}
	*t = v
	return nil
}
