package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/json5ast/go-json5/ast"
	"github.com/json5ast/go-json5/parse"

	"github.com/fatih/color"
)

func mustParse(t *testing.T, in string) *ast.Node {
	t.Helper()
	y, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return y
}

func stringify(y *ast.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"null", `null`, `null`},
		{"bool", `true`, `true`},
		{"integer", `42`, `42`},
		{"hex normalizes to decimal", `0x1F`, `31`},
		{"float keeps a fraction", `1.0`, `1.0`},
		{"exponent value", `1e2`, `100.0`},
		{"big float", `1e21`, `1e+21`},
		{"string", `'hi'`, `"hi"`},
		{"string escapes", "\"a\\nb\"", `"a\nb"`},
		{"empty array", `[]`, `[]`},
		{"empty object", `{}`, `{}`},
		{"array", `[1, 2, 'x',]`, `[1,2,"x"]`},
		{"ident keys stay bare", `{"a": 1, "b c": 2}`, `{a:1,"b c":2}`},
		{"nested", `{xs: [1, {y: null}]}`, `{xs:[1,{y:null}]}`},
		{"non-finite", `[Infinity, -Infinity, NaN]`, `[Infinity,-Infinity,NaN]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(mustParse(t, tt.in))
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("encode %q: (-want +got):\n%s", tt.in, d)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	y := mustParse(t, `{a: 1, b: [2, 3], c: {}}`)
	want := strings.Join([]string{
		`{`,
		`  a: 1,`,
		`  b: [`,
		`    2,`,
		`    3`,
		`  ],`,
		`  c: {}`,
		`}`,
	}, "\n")
	got := MustString(y, Indent("  "))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEncodeTrailingCommas(t *testing.T) {
	y := mustParse(t, `{a: [1]}`)
	want := strings.Join([]string{
		`{`,
		`  a: [`,
		`    1,`,
		`  ],`,
		`}`,
	}, "\n")
	got := MustString(y, Indent("  "), TrailingCommas())
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	// compact output never carries trailing commas
	if got := MustString(y, TrailingCommas()); got != `{a:[1]}` {
		t.Errorf("expected compact output, got %q", got)
	}
}

func TestEncodeSingleQuotes(t *testing.T) {
	y := mustParse(t, `{"a b": "it's"}`)
	got := MustString(y, SingleQuotes())
	want := `{'a b':'it\'s'}`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestEncodeJSON(t *testing.T) {
	y := mustParse(t, `{a: 1, b: ['x',], c: 1.5}`)
	got := MustString(y, JSON())
	want := `{"a":1,"b":["x"],"c":1.5}`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	// JSON wins over JSON5-only options
	if got := MustString(y, JSON(), SingleQuotes(), TrailingCommas()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	_, err := stringify(mustParse(t, `[Infinity]`), JSON())
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected encoding error, got %v", err)
	}
	_, err = stringify(mustParse(t, `NaN`), JSON())
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected encoding error, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		`{a: 1, "b c": [1.5, null, true, 'x'], d: {e: [[]]}}`,
		`[0x10, .5, 5., -0, +7, 1e-3]`,
		`[Infinity, NaN]`,
		`{"": "", nested: {deep: {deeper: [{}]}}}`,
	}
	for _, in := range inputs {
		y := mustParse(t, in)
		for _, opts := range [][]EncodeOption{
			nil,
			{Indent("  ")},
			{Indent("\t"), TrailingCommas()},
			{SingleQuotes()},
		} {
			out := MustString(y, opts...)
			back := mustParse(t, out)
			if !ast.Equal(y, back) {
				t.Errorf("round trip %q via %q changed value", in, out)
			}
		}
	}
}

func TestEncodeColors(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	y := mustParse(t, `{a: [1, 'x', null]}`)
	got := MustString(y, EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected colored output, got %q", got)
	}
}

func TestEncodeFloatForms(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{100, "100.0"},
		{1e21, "1e+21"},
		{5e-324, "5e-324"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
	}
	for _, tt := range tests {
		got := MustString(ast.FromFloat(tt.f))
		if got != tt.want {
			t.Errorf("float %v: expected %s, got %s", tt.f, tt.want, got)
		}
	}
}

func TestEncodeJSONStrings(t *testing.T) {
	y := mustParse(t, "{\"k\\vk\": 'a\\vb', plain: 'x\\u0001y'}")
	got := MustString(y, JSON())
	want := `{"k\u000bk":"a\u000bb","plain":"x\u0001y"}`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("output %s is not valid JSON", got)
	}

	// JSON5 mode keeps the short escape
	if got := MustString(y); got != `{"k\vk":"a\vb",plain:"x\u0001y"}` {
		t.Errorf("unexpected output %s", got)
	}
}
