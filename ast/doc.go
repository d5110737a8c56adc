// Package ast defines the node tree produced by parsing JSON5 text.
//
// A Node is a tagged union over the JSON5 value kinds: null, bool,
// integer, float, string, array and object. Integer and Float are
// distinct kinds, chosen from the lexical form of the source literal,
// never from the numeric value. Every node records the source Span it
// was parsed from; spans are carried for downstream diagnostics and are
// ignored by Equal, Compare and Hash.
//
// Object nodes pair a Fields slice of key nodes with a Values slice in
// source order, so key iteration order always mirrors the source object
// literal. An internal index keeps keyed lookup O(1) without giving up
// ordering.
//
// Trees are built bottom-up from completed children and are not mutated
// after construction, so a finished tree is safe for concurrent reads.
package ast
