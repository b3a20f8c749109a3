package main

import (
	"errors"
	"math"
	"strconv"

	"github.com/hexpatch/hexedit/pkg/patch"
)

var (
	errBadArgCount = errors.New("wrong argument count")
	errBadOrder    = errors.New("invalid parameter order")
)

// parseArgs validates the fixed argv shape:
//
//	hexedit -pos X -w HEXDATA -r SOURCE_FILE -o OUTPUT_FILE
//
// The four flags must appear in exactly this order.
func parseArgs(argv []string) (*patch.Request, error) {
	if len(argv) != 9 {
		return nil, errBadArgCount
	}
	if argv[1] != "-pos" || argv[3] != "-w" || argv[5] != "-r" || argv[7] != "-o" {
		return nil, errBadOrder
	}
	return &patch.Request{
		Offset: parseOffset(argv[2]),
		Hex:    []byte(argv[4]),
		Source: argv[6],
		Dest:   argv[8],
	}, nil
}

// parseOffset follows strtol(s, NULL, 10): optional leading whitespace and
// sign, then as many decimal digits as present. Trailing junk is ignored and
// a digit-free input yields 0; out-of-range values saturate.
func parseOffset(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digitStart {
		return 0
	}
	v, err := strconv.ParseInt(s[start:i], 10, 64)
	if err != nil {
		if s[start] == '-' {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return v
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
