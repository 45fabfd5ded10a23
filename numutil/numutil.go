// Package numutil contains two small integer routines: chained triangular
// numbers and fixed-width binary formatting.
package numutil

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

var (
	ErrNegativeCount = errors.New("count must not be negative")
	ErrOverflow      = errors.New("integer overflow")
	ErrWidth         = errors.New("width must be between 1 and 32")
)

// DefaultBinaryWidth is the width used when none is given.
const DefaultBinaryWidth = 8

type TriangularStep struct {
	Limit int64
	Total int64
}

func (s TriangularStep) String() string {
	return fmt.Sprintf("1 + ... + %d = %d", s.Limit, s.Total)
}

// TriangularChain starts from n and m times replaces it with 1 + ... + n.
func TriangularChain(n int64, m int) ([]TriangularStep, error) {
	if m < 0 {
		return nil, ErrNegativeCount
	}
	steps := make([]TriangularStep, 0, m)
	limit := n
	for i := 0; i < m; i++ {
		total, err := triangular(limit)
		if err != nil {
			return steps, fmt.Errorf("step %d (limit %d): %w", i+1, limit, err)
		}
		steps = append(steps, TriangularStep{Limit: limit, Total: total})
		limit = total
	}
	return steps, nil
}

// Sum returns the final total of TriangularChain(n, m), or 0 when m == 0.
func Sum(n int64, m int) (int64, error) {
	steps, err := TriangularChain(n, m)
	if err != nil || len(steps) == 0 {
		return 0, err
	}
	return steps[len(steps)-1].Total, nil
}

// triangular returns n*(n+1)/2, failing if the product does not fit in int64.
func triangular(n int64) (int64, error) {
	if n == math.MaxInt64 {
		return 0, ErrOverflow
	}
	a, b := n, n+1
	// halve the even factor first so only the final product can overflow
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU64(a), absU64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	if neg {
		return -int64(lo), nil
	}
	return int64(lo), nil
}

func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// IntToBinary formats the lowest width bits of v, most significant first.
// Negative values use two's complement.
func IntToBinary(v int32, width int) (string, error) {
	if width < 1 || width > 32 {
		return "", fmt.Errorf("%w: %d", ErrWidth, width)
	}
	var sb strings.Builder
	sb.Grow(width)
	u := uint32(v)
	for i := width - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(u>>uint(i)&1))
	}
	return sb.String(), nil
}
