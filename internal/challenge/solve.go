package challenge

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"jayconrod.com/xorcrack/crypto"
	"jayconrod.com/xorcrack/internal/codec"
	"jayconrod.com/xorcrack/internal/english"
)

type challenge struct {
	set, num int
	solve    func(r *Runner) (string, error)
}

var challenges = []challenge{
	{1, 1, (*Runner).hexToBase64},
	{1, 2, (*Runner).fixedXOR},
	{1, 3, (*Runner).singleByteXOR},
	{1, 4, (*Runner).detectSingleByteXOR},
	{1, 5, (*Runner).repeatingKeyXOR},
	{1, 6, (*Runner).breakRepeatingKeyXOR},
	{1, 7, (*Runner).decryptAESECB},
	{1, 8, (*Runner).detectAESECB},
	{2, 9, (*Runner).pkcs7Pad},
}

func lookup(num int) *challenge {
	for i := range challenges {
		if challenges[i].num == num {
			return &challenges[i]
		}
	}
	return nil
}

func (r *Runner) payload(name string) string {
	return filepath.Join(r.Config.Dir, name)
}

// Convert hex to base64.
func (r *Runner) hexToBase64() (string, error) {
	return codec.HexToBase64("49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d")
}

// Fixed XOR.
func (r *Runner) fixedXOR() (string, error) {
	a, err := codec.DecodeHex("1c0111001f010100061a024b53535009181c")
	if err != nil {
		return "", err
	}
	b, err := codec.DecodeHex("686974207468652062756c6c277320657965")
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(crypto.XOR(nil, a, b)), nil
}

// Single-byte XOR cipher.
func (r *Runner) singleByteXOR() (string, error) {
	ct, err := codec.DecodeHex("1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	if err != nil {
		return "", err
	}
	c, ok := crypto.CrackXORByte(ct)
	if !ok {
		return "", errors.Wrap(crypto.ErrNoCandidate, "single-byte XOR")
	}
	r.Log.WithFields(logrus.Fields{
		"key":   c.Key,
		"score": c.Score,
		"peak":  crypto.PeakByte(ct),
	}).Debug("recovered single-byte key")
	return r.text(c.Plaintext)
}

// Detect single-character XOR.
func (r *Runner) detectSingleByteXOR() (string, error) {
	path := r.payload("4.txt")
	lines, err := codec.ReadHexLines(path)
	if err != nil {
		return "", err
	}
	var cands []crypto.Candidate
	for _, ct := range lines {
		if c, ok := crypto.CrackXORByte(ct); ok {
			cands = append(cands, c)
		}
	}
	best, ok := crypto.BestCandidate(cands)
	if !ok {
		return "", errors.Wrapf(crypto.ErrNoCandidate, "%d lines of %s", len(lines), path)
	}
	r.Log.WithFields(logrus.Fields{
		"file":       path,
		"lines":      len(lines),
		"candidates": len(cands),
		"key":        best.Key,
	}).Debug("selected single-byte XOR line")
	return r.text(best.Plaintext)
}

// Implement repeating-key XOR.
func (r *Runner) repeatingKeyXOR() (string, error) {
	pt := []byte("Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal")
	return codec.EncodeHex(crypto.XORRepeat(nil, pt, []byte("ICE"))), nil
}

// Break repeating-key XOR.
func (r *Runner) breakRepeatingKeyXOR() (string, error) {
	path := r.payload("6.txt")
	ct, err := codec.ReadBase64File(path)
	if err != nil {
		return "", err
	}
	maxKeySize := supportedKeySize(len(ct), r.Config.MaxKeySize)
	if maxKeySize < r.Config.MinKeySize {
		return "", errors.Errorf("%s: %d bytes is too short to search key sizes from %d", path, len(ct), r.Config.MinKeySize)
	}
	for _, s := range crypto.KeySizeDistances(ct, r.Config.MinKeySize, maxKeySize, crypto.KeySizeSamples) {
		r.Log.WithFields(logrus.Fields{"key_size": s.Size, "distance": s.Distance}).Debug("key size distance")
	}
	key, pt, err := crypto.CrackXORRepeat(ct, r.Config.MinKeySize, maxKeySize)
	if err != nil {
		return "", errors.Wrap(err, path)
	}
	r.Log.WithFields(logrus.Fields{
		"file":     path,
		"key_size": len(key),
		"key":      string(key),
	}).Info("recovered repeating key")
	return r.text(pt)
}

// supportedKeySize lowers max to the largest key size an n-byte ciphertext
// can be analysed with.
func supportedKeySize(n, max int) int {
	if m := crypto.MaxKeySize(n); m < max {
		return m
	}
	return max
}

// AES in ECB mode.
func (r *Runner) decryptAESECB() (string, error) {
	path := r.payload("7.txt")
	ct, err := codec.ReadBase64File(path)
	if err != nil {
		return "", err
	}
	pt, err := codec.DecryptAESECB([]byte("YELLOW SUBMARINE"), ct)
	if err != nil {
		return "", errors.Wrap(err, path)
	}
	return codec.PrintableText(pt)
}

// Detect AES in ECB mode.
func (r *Runner) detectAESECB() (string, error) {
	path := r.payload("8.txt")
	lines, err := codec.ReadHexLines(path)
	if err != nil {
		return "", err
	}
	i := crypto.DetectECB(lines)
	if i < 0 {
		return "", errors.Errorf("%s: no ciphertexts", path)
	}
	r.Log.WithFields(logrus.Fields{
		"file":    path,
		"line":    i + 1,
		"repeats": crypto.RepeatedBlocks(lines[i]),
	}).Debug("selected ECB candidate")
	return codec.EncodeHex(lines[i]), nil
}

// Implement PKCS#7 padding.
func (r *Runner) pkcs7Pad() (string, error) {
	padded, err := codec.Pad([]byte("YELLOW SUBMARINE"), 20)
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(padded), nil
}

// text validates recovered plaintext for display and, when configured,
// logs how confident the language model is that it is English.
func (r *Runner) text(pt []byte) (string, error) {
	s, err := codec.PrintableText(pt)
	if err != nil {
		return "", err
	}
	if r.verifier != nil {
		c, err := r.verifier.Confidence(pt)
		if err != nil {
			r.Log.WithError(err).Warn("cannot verify plaintext")
		} else if c < english.DefaultThreshold {
			r.Log.WithField("confidence", c).Warn("recovered plaintext does not look like English")
		} else {
			r.Log.WithField("confidence", c).Info("recovered plaintext looks like English")
		}
	}
	return s, nil
}
