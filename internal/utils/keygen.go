package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandSource draws integers uniformly from [0, n) for n > 0.
type RandSource interface {
	Int64N(n int64) (int64, error)
}

// CryptoRandSource draws from crypto/rand. It is safe for concurrent use and
// needs no seeding, so one instance can serve every call.
type CryptoRandSource struct{}

// NewCryptoRandSource returns the default RandSource.
func NewCryptoRandSource() CryptoRandSource {
	return CryptoRandSource{}
}

// Int64N returns a uniform integer in [0, n).
func (CryptoRandSource) Int64N(n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: random bound must be > 0, got %d", ErrOutOfRange, n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, fmt.Errorf("crypto/rand: %w", err)
	}
	return v.Int64(), nil
}

// GenerateKeyInRange draws a key uniformly from the closed interval
// [lower, upper]. Intervals whose size does not fit in int64 are rejected.
func GenerateKeyInRange(src RandSource, lower, upper int) (int, error) {
	span := int64(upper) - int64(lower) + 1
	if lower < 0 || span <= 0 {
		return 0, fmt.Errorf("%w: key range [%d, %d] is not drawable", ErrOutOfRange, lower, upper)
	}
	offset, err := src.Int64N(span)
	if err != nil {
		return 0, fmt.Errorf("draw key: %w", err)
	}
	return lower + int(offset), nil
}
