// Package token tokenizes JSON5 source text.
//
// The tokenizer turns a byte slice into a flat sequence of tokens, each
// carrying the half-open byte Span it occupied in the source. JSON5
// lexical extensions are handled here: single-quoted strings, unquoted
// identifiers, hex and signed numeric literals, Infinity and NaN, line
// and block comments, and the extended whitespace set.
//
// String literals reject raw control characters other than horizontal
// tab; controls must be written with escapes. This is stricter than the
// ES5 string grammar, which admits any source character outside the
// quote, backslash and line terminators.
//
// Lexical errors are values of type LexErr wrapping a sentinel error and
// the offending Span; the first error aborts tokenization.
package token
