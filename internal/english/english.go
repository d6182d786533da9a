// Package english checks whether recovered plaintext reads as English.
//
// The cryptanalysis itself ranks candidates with a fixed letter-frequency
// table. This package is an optional second opinion on the final result,
// using a statistical language model that knows about whole words.
package english

import (
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
	"github.com/pkg/errors"
)

// DefaultThreshold is the English confidence above which text is accepted.
const DefaultThreshold = 0.5

// Verifier compares English against a handful of languages that share its
// alphabet. The underlying detector loads its models on first use.
type Verifier struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

func NewVerifier() *Verifier {
	return &Verifier{}
}

func (v *Verifier) load() lingua.LanguageDetector {
	v.once.Do(func() {
		v.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.French, lingua.German, lingua.Spanish, lingua.Italian, lingua.Dutch).
			Build()
	})
	return v.detector
}

// Confidence returns a value between 0 and 1 for how likely pt is English.
func (v *Verifier) Confidence(pt []byte) (float64, error) {
	if !utf8.Valid(pt) {
		return 0, errors.New("plaintext is not valid UTF-8")
	}
	return v.load().ComputeLanguageConfidence(string(pt), lingua.English), nil
}

func (v *Verifier) IsEnglish(pt []byte, threshold float64) (bool, error) {
	c, err := v.Confidence(pt)
	if err != nil {
		return false, err
	}
	return c >= threshold, nil
}
