package crypto

import "fmt"

// KeySizeSamples is the number of leading chunks compared when estimating the
// key size for CrackXORRepeat: three consecutive pairs.
const KeySizeSamples = 6

// KeySizeScore is the normalized Hamming distance measured for one candidate
// key size.
type KeySizeScore struct {
	Size     int
	Distance float64

	// total is the summed pair distance, kept for exact comparisons.
	total int
}

// KeySizeDistances measures every key size from minSize to maxSize inclusive.
//
// For a size n, the first samples chunks of n bytes are paired (0 with 1,
// 2 with 3, ...), and the Hamming distances of the pairs are averaged and
// divided by n. ct must hold at least samples*maxSize bytes.
func KeySizeDistances(ct []byte, minSize, maxSize, samples int) []KeySizeScore {
	if minSize < 1 || minSize > maxSize {
		panic(fmt.Sprintf("invalid key size range: min = %d, max = %d", minSize, maxSize))
	}
	if samples < 2 || samples%2 != 0 {
		panic(fmt.Sprintf("sample count must be even and at least 2: samples = %d", samples))
	}
	if need := samples * maxSize; len(ct) < need {
		panic(fmt.Sprintf("ciphertext too short for key size estimate: len(ct) = %d, need %d", len(ct), need))
	}

	pairs := samples / 2
	scores := make([]KeySizeScore, 0, maxSize-minSize+1)
	for n := minSize; n <= maxSize; n++ {
		total := 0
		for p := 0; p < pairs; p++ {
			a := ct[2*p*n : (2*p+1)*n]
			b := ct[(2*p+1)*n : (2*p+2)*n]
			d, err := HammingDistance(a, b)
			if err != nil {
				panic(err)
			}
			total += d
		}
		scores = append(scores, KeySizeScore{
			Size:     n,
			Distance: float64(total) / float64(pairs) / float64(n),
			total:    total,
		})
	}
	return scores
}

// EstimateKeySize returns the most likely repeating-key length in
// [minSize, maxSize]: the one with the smallest normalized Hamming distance
// between sampled chunks. On ties the larger size wins.
func EstimateKeySize(ct []byte, minSize, maxSize, samples int) int {
	scores := KeySizeDistances(ct, minSize, maxSize, samples)
	best := scores[0]
	for _, s := range scores[1:] {
		// s.total/s.Size <= best.total/best.Size; the pair count cancels.
		if s.total*best.Size <= best.total*s.Size {
			best = s
		}
	}
	return best.Size
}
