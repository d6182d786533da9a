package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jayconrod.com/xorcrack/crypto"
)

func TestHammingDistance(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		x, y []byte
		want int
	}{
		{[]byte("this is a test"), []byte("wokka wokka!!!"), 37},
		{[]byte{0, 0, 0, 0}, []byte{1, 2, 4, 8}, 4},
		{[]byte{1, 2, 3, 4}, []byte{2, 3, 4, 5}, 2 + 1 + 3 + 1},
		{[]byte{0xff}, []byte{0x00}, 8},
		{nil, nil, 0},
	} {
		got, err := crypto.HammingDistance(tc.x, tc.y)
		require.NoError(t, err)
		if got != tc.want {
			t.Errorf("HammingDistance(%q, %q) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
		rev, err := crypto.HammingDistance(tc.y, tc.x)
		require.NoError(t, err)
		assert.Equal(t, got, rev, "distance is not symmetric")
		self, err := crypto.HammingDistance(tc.x, tc.x)
		require.NoError(t, err)
		assert.Zero(t, self)
	}
}

func TestHammingDistanceLengthMismatch(t *testing.T) {
	t.Parallel()
	_, err := crypto.HammingDistance([]byte("this is a test"), []byte("wokka wokka"))
	require.Error(t, err)
	if !errors.Is(err, crypto.ErrLengthMismatch) {
		t.Errorf("got error %v, want ErrLengthMismatch", err)
	}
	assert.Contains(t, err.Error(), "len(x) = 14, len(y) = 11")
}

func TestXOR(t *testing.T) {
	t.Parallel()
	got := crypto.XOR(nil, []byte{0x1c, 0x01, 0x11}, []byte{0x68, 0x69, 0x74})
	want := []byte{0x74, 0x68, 0x65}
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
	assert.Panics(t, func() { crypto.XOR(nil, []byte{1}, []byte{1, 2}) })
}

func TestXORRepeat(t *testing.T) {
	t.Parallel()
	pt := []byte("Burning 'em, if you ain't quick and nimble")
	key := []byte("ICE")
	ct := crypto.XORRepeat(nil, pt, key)
	for i := range ct {
		if ct[i] != pt[i]^key[i%3] {
			t.Fatalf("byte %d: got %#x, want %#x", i, ct[i], pt[i]^key[i%3])
		}
	}
	back := crypto.XORRepeat(ct[:0], ct, key)
	if !bytes.Equal(back, pt) {
		t.Errorf("got %q, want %q", back, pt)
	}
	assert.Panics(t, func() { crypto.XORRepeat(nil, pt, nil) })
}

func TestXORByteReusesBuffer(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 0, 8)
	got := crypto.XORByte(buf, []byte("abc"), 0x20)
	assert.Equal(t, []byte("ABC"), got)
	assert.Equal(t, 8, cap(got))
}
