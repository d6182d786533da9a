package crypto

// Candidate is a plaintext recovered with a single-byte key, together with
// its English frequency score.
type Candidate struct {
	Plaintext []byte
	Score     int
	Key       byte
}

// ByteCounts returns the number of occurrences of each byte value in x.
func ByteCounts(x []byte) [256]int {
	var counts [256]int
	for _, b := range x {
		counts[b]++
	}
	return counts
}

// PeakByte returns the most frequent byte in x. When several bytes share the
// highest count, the largest of them is returned.
func PeakByte(x []byte) byte {
	counts := ByteCounts(x)
	var peak byte
	max := 0
	for i, c := range counts {
		if c >= max {
			max = c
			peak = byte(i)
		}
	}
	return peak
}

// CrackXORByte tries every single-byte key against ct and returns the key
// whose plaintext is all printable and scores highest. Among equal scores the
// larger key wins. ok is false when ct is empty or no key produces printable
// plaintext.
func CrackXORByte(ct []byte) (c Candidate, ok bool) {
	if len(ct) == 0 {
		return Candidate{}, false
	}
	pt := make([]byte, len(ct))
	best := make([]byte, len(ct))
	bestScore := 0
	var bestKey byte
	for key := 0; key < 256; key++ {
		if !xorPlaintext(pt, ct, byte(key)) {
			continue
		}
		score := Score(pt)
		if !ok || score >= bestScore {
			ok = true
			bestScore = score
			bestKey = byte(key)
			copy(best, pt)
		}
	}
	if !ok {
		return Candidate{}, false
	}
	return Candidate{Plaintext: best, Score: bestScore, Key: bestKey}, true
}

// xorPlaintext writes ct^key into pt, stopping at the first byte that is not
// acceptable plaintext.
func xorPlaintext(pt, ct []byte, key byte) bool {
	for i, b := range ct {
		p := b ^ key
		if !IsPlaintextByte(p) {
			return false
		}
		pt[i] = p
	}
	return true
}

// BestCandidate returns the highest scoring candidate, preferring later
// candidates on ties. ok is false if cands is empty.
func BestCandidate(cands []Candidate) (best Candidate, ok bool) {
	for i, c := range cands {
		if i == 0 || c.Score >= best.Score {
			best = c
			ok = true
		}
	}
	return best, ok
}
