package crypto

import (
	"encoding/binary"
	"sort"
)

// ECBBlockSize is the cipher block size fingerprinted by the ECB detector.
const ECBBlockSize = 16

// Block128 is one 16-byte ciphertext block packed big-endian into a 128-bit
// integer. Ordering by Hi, then Lo, is numeric order.
type Block128 struct {
	Hi, Lo uint64
}

func (b Block128) less(c Block128) bool {
	return b.Hi < c.Hi || (b.Hi == c.Hi && b.Lo < c.Lo)
}

// PackBlocks packs every full 16-byte block of ct and returns them sorted.
// A trailing partial block is ignored.
func PackBlocks(ct []byte) []Block128 {
	blocks := make([]Block128, 0, len(ct)/ECBBlockSize)
	for i := 0; i+ECBBlockSize <= len(ct); i += ECBBlockSize {
		blocks = append(blocks, Block128{
			Hi: binary.BigEndian.Uint64(ct[i : i+8]),
			Lo: binary.BigEndian.Uint64(ct[i+8 : i+16]),
		})
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].less(blocks[j])
	})
	return blocks
}

// CountRepeats counts adjacent equal pairs in a sorted block list, which is
// the number of blocks that duplicate an earlier block.
func CountRepeats(sorted []Block128) int {
	n := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			n++
		}
	}
	return n
}

// RepeatedBlocks returns the number of 16-byte blocks of ct that repeat an
// earlier block.
func RepeatedBlocks(ct []byte) int {
	return CountRepeats(PackBlocks(ct))
}

// DetectECB returns the index of the ciphertext most likely produced in ECB
// mode: the one with the most repeated blocks. Later ciphertexts win ties.
// It returns -1 if cts is empty.
func DetectECB(cts [][]byte) int {
	found := -1
	max := 0
	for i, ct := range cts {
		if n := RepeatedBlocks(ct); n >= max {
			max = n
			found = i
		}
	}
	return found
}
