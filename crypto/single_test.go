package crypto_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jayconrod.com/xorcrack/crypto"
)

func TestScore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, crypto.Weight('e'), crypto.Weight('E'))
	assert.Equal(t, 1918182, crypto.Weight(' '))
	assert.Zero(t, crypto.Weight('!'))
	assert.Zero(t, crypto.Weight(0xe9))
	assert.Equal(t, crypto.Weight('h')+crypto.Weight('i')+crypto.Weight('!'), crypto.Score([]byte("hi!")))
}

func TestIsPlaintextByte(t *testing.T) {
	t.Parallel()
	for b := 0; b < 256; b++ {
		want := (b >= 32 && b <= 126) || b == '\n'
		if got := crypto.IsPlaintextByte(byte(b)); got != want {
			t.Errorf("IsPlaintextByte(%#x) = %v, want %v", b, got, want)
		}
	}
}

func TestPeakByte(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in   []byte
		want byte
	}{
		{[]byte("aaab"), 'a'},
		{[]byte{1, 2, 2, 1}, 2},
		{[]byte{9, 3}, 9},
		{nil, 255},
	} {
		if got := crypto.PeakByte(tc.in); got != tc.want {
			t.Errorf("PeakByte(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCrackXORByte(t *testing.T) {
	t.Parallel()
	ct, err := hex.DecodeString("1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	require.NoError(t, err)
	c, ok := crypto.CrackXORByte(ct)
	require.True(t, ok)
	assert.Equal(t, "Cooking MC's like a pound of bacon", string(c.Plaintext))
	assert.Equal(t, byte('X'), c.Key)
	assert.Equal(t, crypto.Score(c.Plaintext), c.Score)
}

func TestCrackXORByteRoundTrip(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		pt  string
		key byte
	}{
		{"Now that the party is jumping\n", 53},
		{"the quick brown fox jumps over the lazy dog", 0x42},
		{"It was the best of times, it was the worst of times.", 1},
		{"Hello world and everyone in it", 0x7f},
	} {
		ct := crypto.XORByte(nil, []byte(tc.pt), tc.key)
		c, ok := crypto.CrackXORByte(ct)
		if !ok {
			t.Errorf("%q: no candidate", tc.pt)
			continue
		}
		if c.Key != tc.key || !bytes.Equal(c.Plaintext, []byte(tc.pt)) {
			t.Errorf("got key %#x plaintext %q, want key %#x plaintext %q", c.Key, c.Plaintext, tc.key, tc.pt)
		}
	}
}

func TestCrackXORByteTies(t *testing.T) {
	t.Parallel()

	// "Ee" (key 0x04) and "eE" (key 0x24) score the same; the later key wins.
	c, ok := crypto.CrackXORByte([]byte("Aa"))
	require.True(t, ok)
	assert.Equal(t, byte(0x24), c.Key)
	assert.Equal(t, "eE", string(c.Plaintext))

}

func TestCrackXORByteNoCandidate(t *testing.T) {
	t.Parallel()
	// Any key leaves one of these two bytes with the high bit set.
	_, ok := crypto.CrackXORByte([]byte{0x00, 0x80})
	assert.False(t, ok)

	_, ok = crypto.CrackXORByte(nil)
	assert.False(t, ok)
	_, ok = crypto.CrackXORByte([]byte{})
	assert.False(t, ok)
}

func TestBestCandidate(t *testing.T) {
	t.Parallel()
	_, ok := crypto.BestCandidate(nil)
	assert.False(t, ok)

	cands := []crypto.Candidate{
		{Key: 1, Score: 10},
		{Key: 2, Score: 30},
		{Key: 3, Score: 30},
		{Key: 4, Score: 5},
	}
	best, ok := crypto.BestCandidate(cands)
	require.True(t, ok)
	assert.Equal(t, byte(3), best.Key)
}
