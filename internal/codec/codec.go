// Package codec converts between raw bytes and the text encodings challenge
// inputs arrive in, reads input files, and provides the PKCS#7 and AES-ECB
// primitives the cryptanalysis code treats as external.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

func DecodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrap(err, "decoding hex")
	}
	return data, nil
}

func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeBase64 decodes standard base64, ignoring any whitespace such as the
// line breaks of a wrapped file.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64")
	}
	return data, nil
}

func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func HexToBase64(s string) (string, error) {
	data, err := DecodeHex(s)
	if err != nil {
		return "", err
	}
	return EncodeBase64(data), nil
}

// PrintableText returns data as a string if it is valid UTF-8. Recovered
// plaintext can fail this when an attack picked the wrong key.
func PrintableText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.Errorf("recovered text is not valid UTF-8: %q", data)
	}
	return string(data), nil
}
