package parse

// DefaultMaxDepth bounds the nesting of arrays and objects. Parsing is
// recursive, so the bound keeps hostile input from exhausting the stack.
const DefaultMaxDepth = 10000

type parseOpts struct {
	strictFields bool
	maxDepth     int
}

type Option func(*parseOpts)

// StrictFields makes a repeated key within one object literal a
// DuplicateKey error. The default is last-wins: the later value replaces
// the earlier one at the key's first position.
func StrictFields() Option {
	return func(o *parseOpts) { o.strictFields = true }
}

// MaxDepth overrides DefaultMaxDepth. n <= 0 means unlimited.
func MaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}
