// Package debug gates opt-in trace logging behind environment variables.
//
// Set JSON5_DEBUG_TOKENS, JSON5_DEBUG_PARSE or JSON5_DEBUG_ENCODE to a
// true value to trace the corresponding stage on stderr.
package debug

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
)

type debug struct {
	Tokens bool
	Parse  bool
	Encode bool
}

var (
	d      *debug
	logger *log.Logger
)

func init() {
	d = &debug{
		Tokens: boolEnv("JSON5_DEBUG_TOKENS"),
		Parse:  boolEnv("JSON5_DEBUG_PARSE"),
		Encode: boolEnv("JSON5_DEBUG_ENCODE"),
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "json5",
	})
	if d.Tokens || d.Parse || d.Encode {
		logger.SetLevel(log.DebugLevel)
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}

func Logger() *log.Logger {
	return logger
}
