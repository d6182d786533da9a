package crypto

// englishWeights maps each byte to its relative frequency in English text,
// scaled to integers so scores compare exactly. Letters are weighted the same
// in either case; bytes other than letters and space weigh nothing.
var englishWeights = newEnglishWeights()

func newEnglishWeights() [256]int {
	var w [256]int
	w[' '] = 1918182
	lower := [26]int{
		651738,  // a
		124248,  // b
		217339,  // c
		349835,  // d
		1041442, // e
		197881,  // f
		158610,  // g
		492888,  // h
		558094,  // i
		9033,    // j
		50529,   // k
		331490,  // l
		202124,  // m
		564513,  // n
		596302,  // o
		137645,  // p
		8606,    // q
		497563,  // r
		515760,  // s
		729357,  // t
		225134,  // u
		82903,   // v
		171272,  // w
		13692,   // x
		145984,  // y
		7836,    // z
	}
	for i, f := range lower {
		w['a'+i] = f
		w['A'+i] = f
	}
	return w
}

// Weight returns the English frequency weight of b.
func Weight(b byte) int {
	return englishWeights[b]
}

// Score sums the English frequency weights of every byte in pt.
// Higher scores are more likely to be English.
func Score(pt []byte) int {
	s := 0
	for _, b := range pt {
		s += englishWeights[b]
	}
	return s
}

// IsPlaintextByte reports whether b may appear in recovered plaintext:
// printable ASCII (32 through 126) or a newline.
func IsPlaintextByte(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n'
}
