package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// scanQuoted returns the byte length of a quoted string literal at the
// start of d, including both quote characters. Single and double quotes
// are accepted; the closing quote must match the opening one.
func scanQuoted(d []byte) (int, error) {
	qc := rune(d[0])
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		switch {
		case r == utf8.RuneError && sz == 1:
			return 0, ErrBadUTF8
		case r == qc:
			return i + sz, nil
		case r == '\\':
			esc, err := scanEscape(d[i:])
			if err != nil {
				return 0, err
			}
			i += esc
			continue
		case r == '\n' || r == '\r':
			return 0, ErrUnterminated
		case r != '\t' && unicode.IsControl(r):
			return 0, ErrStringControl
		}
		i += sz
	}
	return 0, ErrUnterminated
}

// scanEscape returns the byte length of the escape sequence at the start
// of d, where d[0] is the backslash. Line continuations (backslash
// followed by a line terminator) count as escapes.
func scanEscape(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrUnterminated
	}
	switch c := d[1]; c {
	case 'n', 't', 'b', 'f', 'r', 'v', '0', '\'', '"', '\\', '/':
		return 2, nil
	case 'x':
		if len(d) < 4 {
			return 0, ErrUnterminated
		}
		if hexDigit(d[2]) < 0 || hexDigit(d[3]) < 0 {
			return 0, ErrBadUnicode
		}
		return 4, nil
	case 'u':
		if len(d) < 6 {
			return 0, ErrUnterminated
		}
		for j := 2; j < 6; j++ {
			if hexDigit(d[j]) < 0 {
				return 0, ErrBadUnicode
			}
		}
		return 6, nil
	case '\n':
		return 2, nil
	case '\r':
		if len(d) > 2 && d[2] == '\n' {
			return 3, nil
		}
		return 2, nil
	default:
		r, sz := utf8.DecodeRune(d[1:])
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		if r == '\u2028' || r == '\u2029' {
			return 1 + sz, nil
		}
		return 0, ErrBadEscape
	}
}

// QuotedToString decodes a quoted lexeme previously accepted by
// scanQuoted: quotes stripped, escapes resolved, line continuations
// removed. It is total over what scanQuoted accepts; an unpaired
// surrogate decodes to the replacement character.
func QuotedToString(d []byte) string {
	qc := rune(d[0])
	b := &strings.Builder{}
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == qc {
			return b.String()
		}
		if r != '\\' {
			b.WriteRune(r)
			i += sz
			continue
		}
		switch c := d[i+1]; c {
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'v':
			b.WriteByte('\v')
			i += 2
		case '0':
			b.WriteByte(0)
			i += 2
		case '\'', '"', '\\', '/':
			b.WriteByte(c)
			i += 2
		case 'x':
			b.WriteRune(rune(hexDigit(d[i+2])<<4 | hexDigit(d[i+3])))
			i += 4
		case 'u':
			r1 := hex4(d[i+2 : i+6])
			i += 6
			if utf16.IsSurrogate(r1) && i+6 <= n && d[i] == '\\' && d[i+1] == 'u' {
				if r2 := hex4(d[i+2 : i+6]); utf16.IsSurrogate(r2) {
					if dec := utf16.DecodeRune(r1, r2); dec != unicode.ReplacementChar {
						b.WriteRune(dec)
						i += 6
						continue
					}
				}
			}
			b.WriteRune(r1)
		case '\n':
			i += 2
		case '\r':
			i += 2
			if i < n && d[i] == '\n' {
				i++
			}
		default:
			r2, sz2 := utf8.DecodeRune(d[i+1:])
			if r2 == '\u2028' || r2 == '\u2029' {
				i += 1 + sz2
				continue
			}
			b.WriteRune(r2)
			i += 1 + sz2
		}
	}
	return b.String()
}

func hex4(d []byte) rune {
	return rune(hexDigit(d[0])<<12 | hexDigit(d[1])<<8 | hexDigit(d[2])<<4 | hexDigit(d[3]))
}

// Unquote decodes a complete quoted string lexeme.
func Unquote(v string) (string, error) {
	d := []byte(v)
	n, err := scanQuoted(d)
	if err != nil {
		return "", err
	}
	if n != len(d) {
		return "", ErrUnterminated
	}
	return QuotedToString(d), nil
}

// Quote renders v as a quoted string literal using the requested quote
// character. Control characters, the quote character and backslashes are
// escaped; the source form of the original escapes is not preserved.
func Quote(v string, single bool) string {
	qc := byte('"')
	if single {
		qc = '\''
	}
	return quote(v, qc, false)
}

// QuoteJSON renders v as a strict JSON string literal: double quotes, and
// only escapes the JSON grammar defines; \v has no JSON escape and is
// written as \u000b.
func QuoteJSON(v string) string {
	return quote(v, '"', true)
}

func quote(v string, qc byte, json bool) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = qc
	for _, r := range v {
		switch r {
		case rune(qc):
			d = append(d, '\\', qc)
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '\v':
			if json {
				d = append(d, `\u000b`...)
			} else {
				d = append(d, '\\', 'v')
			}
		case '\u2028':
			d = append(d, `\u2028`...)
		case '\u2029':
			d = append(d, `\u2029`...)
		default:
			if unicode.IsControl(r) {
				d = fmt.Appendf(d, `\u%04x`, r)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, qc)
	return string(d)
}
