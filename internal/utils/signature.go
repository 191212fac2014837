package utils

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
	"unicode/utf8"
)

// HashAlgorithm names a digest supported by Hasher.
type HashAlgorithm string

const (
	HashMD5  HashAlgorithm = "MD5"
	HashSHA1 HashAlgorithm = "SHA1"
)

// Hasher computes provider signatures: digest of the ASCII bytes of a text,
// rendered as uppercase hex. The algorithm is fixed at construction.
type Hasher struct {
	algorithm HashAlgorithm
	newHash   func() hash.Hash
}

// NewHasher returns a Hasher for the given algorithm.
func NewHasher(alg HashAlgorithm) (*Hasher, error) {
	switch alg {
	case HashMD5:
		return &Hasher{algorithm: alg, newHash: md5.New}, nil
	case HashSHA1:
		return &Hasher{algorithm: alg, newHash: sha1.New}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported hash algorithm %q", ErrInvalidArgument, alg)
	}
}

// NewMD5Hasher returns a Hasher producing 32 hex characters.
func NewMD5Hasher() *Hasher {
	return &Hasher{algorithm: HashMD5, newHash: md5.New}
}

// NewSHA1Hasher returns a Hasher producing 40 hex characters.
func NewSHA1Hasher() *Hasher {
	return &Hasher{algorithm: HashSHA1, newHash: sha1.New}
}

// Algorithm returns the digest this Hasher was built with.
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

// Hash returns the uppercase hex digest of text. Blank text is rejected.
func (h *Hasher) Hash(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: hash input must not be blank", ErrInvalidArgument)
	}
	d := h.newHash()
	d.Write(asciiBytes(text))
	return strings.ToUpper(hex.EncodeToString(d.Sum(nil))), nil
}

// asciiBytes encodes text as single-byte ASCII. Every UTF-16 code unit outside
// 0x00-0x7F becomes '?', so runes above U+FFFF (surrogate pairs) become "??".
func asciiBytes(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		out = append(out, '?')
		if r > 0xFFFF {
			out = append(out, '?')
		}
	}
	return out
}
