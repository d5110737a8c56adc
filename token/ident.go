package token

import (
	"unicode"
	"unicode/utf8"
)

// identifier returns the byte length of the identifier at the start of d.
func identifier(d []byte) (int, error) {
	i := 0
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		if i == 0 {
			if !isIdentStart(r) {
				return 0, nil
			}
		} else if !isIdentPart(r) {
			break
		}
		i += sz
	}
	return i, nil
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentPart(r rune) bool {
	if isIdentStart(r) {
		return true
	}
	switch {
	case unicode.IsDigit(r):
		return true
	case unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc):
		return true
	case r == '\u200c' || r == '\u200d': // zero width joiners
		return true
	}
	return false
}

// IsIdentifier reports whether s can appear unquoted as an object key.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	n, err := identifier([]byte(s))
	return err == nil && n == len(s)
}

// isSpace recognizes the JSON5 whitespace set: ASCII whitespace plus
// NBSP, BOM, the Unicode space separators and the LS/PS line terminators.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	case '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
