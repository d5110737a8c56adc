package encode

import (
	"bytes"

	"github.com/json5ast/go-json5/ast"
)

// MustString encodes node with the given options and panics on error.
// With the default options encoding cannot fail.
func MustString(node *ast.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
