package challenge

import "github.com/pkg/errors"

// Config controls which challenges run and where their inputs live.
type Config struct {
	// Dir holds the challenge payload files (4.txt, 6.txt, 7.txt, 8.txt).
	Dir string

	// Only selects a single challenge by number. Zero runs all of them.
	Only int

	// MinKeySize and MaxKeySize bound the repeating-key search. MaxKeySize
	// is lowered further when the ciphertext is too short to support it.
	MinKeySize, MaxKeySize int

	// VerifyEnglish logs a language-model confidence for recovered text.
	VerifyEnglish bool
}

func DefaultConfig() Config {
	return Config{
		Dir:        "payloads",
		MinKeySize: 2,
		MaxKeySize: 40,
	}
}

func (c Config) Validate() error {
	if c.Dir == "" {
		return errors.New("payload directory not set")
	}
	if c.MinKeySize < 1 {
		return errors.Errorf("minimum key size must be positive, got %d", c.MinKeySize)
	}
	if c.MaxKeySize < c.MinKeySize {
		return errors.Errorf("maximum key size %d is less than minimum %d", c.MaxKeySize, c.MinKeySize)
	}
	if c.Only != 0 && lookup(c.Only) == nil {
		return errors.Errorf("unknown challenge %d", c.Only)
	}
	return nil
}
