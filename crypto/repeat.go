package crypto

import "github.com/pkg/errors"

// CrackXORRepeat recovers a repeating XOR key whose length lies in
// [minKeySize, maxKeySize] and decrypts ct with it.
//
// The key size comes from EstimateKeySize. The ciphertext is then transposed
// so each key byte can be attacked independently with CrackXORByte. If any
// key byte cannot be recovered the whole attack fails with ErrNoCandidate.
//
// ct must hold at least KeySizeSamples*maxKeySize bytes and at least
// keySize*keySize bytes for the chosen key size.
func CrackXORRepeat(ct []byte, minKeySize, maxKeySize int) (key, pt []byte, err error) {
	keySize := EstimateKeySize(ct, minKeySize, maxKeySize, KeySizeSamples)
	columns := Transpose(ct, keySize)

	key = make([]byte, keySize)
	for i := 0; i < keySize; i++ {
		c, ok := CrackXORByte(columns[i*keySize : (i+1)*keySize])
		if !ok {
			return nil, nil, errors.Wrapf(ErrNoCandidate, "key byte %d of %d", i, keySize)
		}
		key[i] = c.Key
	}

	pt = XORRepeat(nil, ct, key)
	return key, pt, nil
}

// MaxKeySize returns the largest key size CrackXORRepeat can analyse in an
// n-byte ciphertext: there must be KeySizeSamples chunks of that size and a
// full square for the transposition.
func MaxKeySize(n int) int {
	max := n / KeySizeSamples
	for max > 0 && max*max > n {
		max--
	}
	return max
}
