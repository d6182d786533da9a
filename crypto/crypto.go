// Package crypto recovers plaintext from XOR-enciphered English text and
// fingerprints ECB-mode ciphertext. All functions operate on fully
// materialized byte buffers and have no side effects.
package crypto

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

var (
	// ErrLengthMismatch is returned when two buffers that must be compared
	// byte by byte have different lengths.
	ErrLengthMismatch = errors.New("buffers have different length")

	// ErrNoCandidate is returned when no key turns a ciphertext into
	// acceptable plaintext.
	ErrNoCandidate = errors.New("no candidate found")
)

func XOR(buf, x, y []byte) []byte {
	if len(x) != len(y) {
		panic(fmt.Sprintf("buffers have different length: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	buf = resize(buf, len(x))
	for i := range x {
		buf[i] = x[i] ^ y[i]
	}
	return buf
}

func XORByte(buf, x []byte, y byte) []byte {
	buf = resize(buf, len(x))
	for i, b := range x {
		buf[i] = b ^ y
	}
	return buf
}

// XORRepeat XORs x against key, cycling the key from its first byte.
// It both encrypts and decrypts repeating-key XOR.
func XORRepeat(buf, x, key []byte) []byte {
	if len(key) == 0 {
		panic("repeating key is empty")
	}
	buf = resize(buf, len(x))
	for i, b := range x {
		buf[i] = b ^ key[i%len(key)]
	}
	return buf
}

// HammingDistance returns the number of differing bits between x and y.
func HammingDistance(x, y []byte) (int, error) {
	if len(x) != len(y) {
		return 0, errors.Wrapf(ErrLengthMismatch, "hamming distance: len(x) = %d, len(y) = %d", len(x), len(y))
	}
	n := 0
	for i := range x {
		n += bits.OnesCount8(x[i] ^ y[i])
	}
	return n, nil
}

func resize(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}
