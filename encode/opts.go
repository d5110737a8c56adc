package encode

import (
	"io"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// Indent enables multi-line output with s as the per-level indent. The
// empty string, the default, keeps output on one line.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// SingleQuotes switches string and key literals to single quotes.
func SingleQuotes() EncodeOption {
	return func(es *EncState) { es.singleQuote = true }
}

// TrailingCommas emits a comma after the last element of multi-line
// objects and arrays. It has no effect on compact or JSON output.
func TrailingCommas() EncodeOption {
	return func(es *EncState) { es.trailingCommas = true }
}

// JSON restricts output to strict JSON: double quotes only, all keys
// quoted, no trailing commas. Non-finite floats become an ErrEncoding.
func JSON() EncodeOption {
	return func(es *EncState) { es.json = true }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// AutoColors enables colored output when w is a terminal.
func AutoColors(w io.Writer) EncodeOption {
	return func(es *EncState) {
		type fder interface {
			Fd() uintptr
		}
		f, ok := w.(fder)
		if !ok {
			return
		}
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			es.Color = NewColors().Color
		}
	}
}
