// Package testutil holds fixtures shared by the tests of several packages.
package testutil

import (
	"crypto/sha256"
	_ "embed"
	"fmt"
)

// Tale is the opening of A Tale of Two Cities: printable English with
// newlines, long enough for repeating-key analysis up to 33-byte keys.
//
//go:embed testdata/tale.txt
var tale []byte

// Tale returns a fresh copy of the shared English plaintext.
func Tale() []byte {
	return append([]byte(nil), tale...)
}

// Noise returns n deterministic bytes derived from seed. Different seeds (and
// different 32-byte runs of one seed) share no 16-byte blocks.
func Noise(seed string, n int) []byte {
	var buf []byte
	for i := 0; len(buf) < n; i++ {
		sum := sha256.Sum256([]byte(fmt.Sprintf("%s %d", seed, i)))
		buf = append(buf, sum[:]...)
	}
	return buf[:n]
}
