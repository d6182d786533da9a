package codec

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return data, nil
}

// ReadHexLines decodes each non-blank line of a file as hex.
func ReadHexLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		data, err := DecodeHex(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, n)
		}
		lines = append(lines, data)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return lines, nil
}

// ReadBase64File decodes a whole file as base64. Line breaks are ignored.
func ReadBase64File(path string) ([]byte, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := DecodeBase64(string(text))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return data, nil
}
