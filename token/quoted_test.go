package token

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		name   string
		lexeme string
		want   string
	}{
		{"plain double", `"hello"`, "hello"},
		{"plain single", `'hello'`, "hello"},
		{"empty", `""`, ""},
		{"simple escapes", `"\n\t\b\f\r\v\0"`, "\n\t\b\f\r\v\x00"},
		{"quote escapes", `"\"\'\\\/"`, `"'\/`},
		{"hex escape", `"\x41\x7a"`, "Az"},
		{"unicode escape", `"\u0041\u00e9"`, "A\u00e9"},
		{"surrogate pair", `"\ud83d\ude00"`, "\U0001F600"},
		{"unpaired surrogate", `"\ud83d"`, "\ufffd"},
		{"surrogate then bmp", `"\ud83dA"`, "\ufffdA"},
		{"continuation lf", "\"a\\\nb\"", "ab"},
		{"continuation crlf", "\"a\\\r\nb\"", "ab"},
		{"continuation cr", "\"a\\\rb\"", "ab"},
		{"continuation ls", "\"a\\\u2028b\"", "ab"},
		{"raw tab", "\"a\tb\"", "a\tb"},
		{"multibyte", `"héllo ✓"`, "héllo ✓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unquote(tt.lexeme)
			if err != nil {
				t.Fatalf("unquote %q: %v", tt.lexeme, err)
			}
			if got != tt.want {
				t.Errorf("unquote %q: expected %q, got %q", tt.lexeme, tt.want, got)
			}
		})
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []struct {
		lexeme string
		err    error
	}{
		{`"abc`, ErrUnterminated},
		{`"abc'`, ErrUnterminated},
		{`"a"x`, ErrUnterminated},
		{`"\q"`, ErrBadEscape},
		{`"\u00"`, ErrBadUnicode},
	}
	for _, tt := range tests {
		_, err := Unquote(tt.lexeme)
		if !errors.Is(err, tt.err) {
			t.Errorf("unquote %q: expected %v, got %v", tt.lexeme, tt.err, err)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name   string
		v      string
		single bool
		want   string
	}{
		{"plain", "hello", false, `"hello"`},
		{"double quote in double", `say "hi"`, false, `"say \"hi\""`},
		{"double quote in single", `say "hi"`, true, `'say "hi"'`},
		{"single quote in single", "it's", true, `'it\'s'`},
		{"single quote in double", "it's", false, `"it's"`},
		{"controls", "a\nb\tc", false, `"a\nb\tc"`},
		{"nul", "a\x00b", false, "\"a\\u0000b\""},
		{"line separators", "a\u2028b\u2029c", false, `"a\u2028b\u2029c"`},
		{"backslash", `a\b`, false, `"a\\b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.v, tt.single)
			if got != tt.want {
				t.Errorf("quote %q: expected %s, got %s", tt.v, tt.want, got)
			}
			back, err := Unquote(got)
			if err != nil {
				t.Fatalf("unquote %s: %v", got, err)
			}
			if back != tt.v {
				t.Errorf("round trip %q: got %q", tt.v, back)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	for _, s := range []string{"a", "_", "$", "a1", "_x$y2", "πr", "true"} {
		if !IsIdentifier(s) {
			t.Errorf("expected %q to be an identifier", s)
		}
	}
	for _, s := range []string{"", "1a", "a-b", "a b", "a.b", "\xff"} {
		if IsIdentifier(s) {
			t.Errorf("expected %q not to be an identifier", s)
		}
	}
}

func TestQuoteJSON(t *testing.T) {
	tests := []struct {
		name string
		v    string
		want string
	}{
		{"plain", "hello", `"hello"`},
		{"vertical tab", "a\vb", `"a\u000bb"`},
		{"named escapes", "a\nb\tc", `"a\nb\tc"`},
		{"nul", "a\x00b", `"a\u0000b"`},
		{"single quote stays raw", "it's", `"it's"`},
		{"line separators", "a\u2028b", `"a\u2028b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuoteJSON(tt.v)
			if got != tt.want {
				t.Errorf("quote %q: expected %s, got %s", tt.v, tt.want, got)
			}
			if !json.Valid([]byte(got)) {
				t.Errorf("quote %q: %s is not valid JSON", tt.v, got)
			}
		})
	}
}
