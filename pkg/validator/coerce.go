package validator

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// toNumber converts a control value the way browsers coerce form input to a
// number: surrounding whitespace is ignored, the empty string is zero,
// decimal and exponent notation, 0x/0o/0b integer prefixes and Infinity are
// accepted, and anything else is NaN.
func toNumber(raw string) float64 {
	s := strings.TrimFunc(raw, unicode.IsSpace)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		if base := prefixBase(s[1]); base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return math.NaN()
		}
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return n
		}
		return math.NaN()
	}
	return n
}

func prefixBase(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	default:
		return 0
	}
}
