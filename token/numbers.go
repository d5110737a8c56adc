package token

import (
	"bytes"
	"math"
)

// number scans a numeric literal at the start of d and returns its byte
// length and whether the literal is float-kinded. The kind is decided by
// lexical form alone: a fraction, an exponent, Infinity or NaN make a
// float; everything else, hex included, is an integer.
func number(d []byte) (int, bool, error) {
	i := 0
	n := len(d)
	if i < n && (d[i] == '+' || d[i] == '-') {
		i++
	}
	if i == n {
		return 0, false, ErrNumber
	}
	if bytes.HasPrefix(d[i:], []byte("Infinity")) {
		return i + len("Infinity"), true, nil
	}
	if bytes.HasPrefix(d[i:], []byte("NaN")) {
		return i + len("NaN"), true, nil
	}
	if d[i] == '0' && i+1 < n && (d[i+1] == 'x' || d[i+1] == 'X') {
		h := hexDigits(d[i+2:])
		if h == 0 {
			return 0, false, ErrNumber
		}
		return i + 2 + h, false, nil
	}
	digits := asciiDigits(d[i:])
	if digits > 1 && d[i] == '0' {
		return 0, false, ErrNumberLeadingZero
	}
	i += digits
	f, err := fract(d[i:], digits)
	if err != nil {
		return 0, false, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return 0, false, err
	}
	i += e
	return i, f+e > 0, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// fract returns the length of a fractional part at the start of d.
// intDigits is the number of digits before the dot: "5." and ".5" are
// both valid, "." alone is not.
func fract(d []byte, intDigits int) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		if intDigits == 0 {
			return 0, ErrNumber
		}
		return 0, nil
	}
	m := asciiDigits(d[1:])
	if m == 0 && intDigits == 0 {
		return 0, ErrNumber
	}
	return 1 + m, nil
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	m := asciiDigits(d[i:])
	if m == 0 {
		return 0, ErrNumber
	}
	return i + m, nil
}

func hexDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if hexDigit(d[i]) < 0 {
			return i
		}
		i++
	}
	return i
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// IsHex reports whether d is a hex literal lexeme (optional sign followed
// by a 0x or 0X prefix).
func IsHex(d []byte) bool {
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	return len(d) > 2 && d[0] == '0' && (d[1] == 'x' || d[1] == 'X')
}

// HexValue converts a hex lexeme to a value. The digit set here is
// exactly the set number accepted, so there is no failure path:
// magnitudes that do not fit in int64 accumulate as float64 instead.
func HexValue(d []byte) (int64, float64, bool) {
	neg := false
	i := 0
	switch d[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	i += 2 // 0x
	var (
		u        uint64
		f        float64
		overflow bool
	)
	for ; i < len(d); i++ {
		v := uint64(hexDigit(d[i]))
		if !overflow {
			if u > (math.MaxUint64-v)/16 {
				overflow = true
				f = float64(u)
			} else {
				u = u*16 + v
				continue
			}
		}
		f = f*16 + float64(v)
	}
	if !overflow {
		if neg {
			if u < 1<<63 {
				return -int64(u), 0, false
			}
			if u == 1<<63 {
				return math.MinInt64, 0, false
			}
		} else if u <= math.MaxInt64 {
			return int64(u), 0, false
		}
		f = float64(u)
	}
	if neg {
		f = -f
	}
	return 0, f, true
}
