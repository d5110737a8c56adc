package parse

import (
	"bytes"
	"testing"

	"github.com/json5ast/go-json5/ast"
	"github.com/json5ast/go-json5/encode"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`3.14`,
		`-1e10`,
		`.5`,
		`5.`,
		`+0x1F`,
		`Infinity`,
		`-Infinity`,
		`NaN`,
		`""`,
		`"hello"`,
		`'single'`,

		// Arrays
		`[]`,
		`[1, 2, 3]`,
		`[1, 2, 3,]`,
		`[[nested], [arrays]]`,

		// Objects
		`{}`,
		`{foo: 'bar'}`,
		`{a: 1, b: 2,}`,
		`{nested: {object: null}}`,
		`{'single': 1, "double": 2, bare: 3}`,

		// Mixed
		`{users: [{name: 'alice'}, {name: 'bob'}]}`,

		// Strings with special chars
		`"with\nnewline"`,
		`"with\ttab"`,
		`"with \"quotes\""`,
		`"é😀"`,
		`"\x41"`,

		// Comments
		"// comment\n1",
		"1 // trailing",
		"/* block */ [1 /* mid */, 2]",

		// Edge cases
		`{"":""}`,
		`[[[[[[1]]]]]]`,
		`-0`,
		`0e0`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// anything that parses must stringify, and the result must
		// re-parse to a value-equal tree
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			t.Fatalf("encode of parsed %q: %v", data, err)
		}
		node2, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("re-parse of %q (from %q): %v", buf.Bytes(), data, err)
		}
		if !ast.Equal(node, node2) {
			t.Fatalf("round trip of %q changed value: %q", data, buf.Bytes())
		}
	})
}
