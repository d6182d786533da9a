package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jayconrod.com/xorcrack/crypto"
	"jayconrod.com/xorcrack/internal/codec"
	"jayconrod.com/xorcrack/internal/testutil"
)

func runCmd(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	var out, log bytes.Buffer
	err = run(args, &out, &log)
	return out.String(), err
}

func TestUsage(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"single"},
		{"single", "-hex", "00", "extra"},
		{"repeat"},
		{"ecb"},
		{"challenges", "-min", "0"},
		{"challenges", "-nosuchflag"},
	} {
		_, err := runCmd(t, args...)
		if !errors.Is(err, errUsage) {
			t.Errorf("%v: got error %v, want usage error", args, err)
		}
	}
}

func TestSingle(t *testing.T) {
	t.Parallel()
	out, err := runCmd(t, "single", "-hex", "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	require.NoError(t, err)
	assert.Contains(t, out, "key:   0x58\n")
	assert.Contains(t, out, "peak:  0x78\n")

	out, err = runCmd(t, "single", "-hex", "466a6a6e6c6b62254846227625696c6e60256425756a706b61256a63256764666a6b")
	require.NoError(t, err)
	assert.Contains(t, out, "key:   0x05\n")
	assert.Contains(t, out, `text:  "Cooking MC's like a pound of bacon"`)

	out, err = runCmd(t, "single", "-hex", "0080")
	assert.True(t, errors.Is(err, crypto.ErrNoCandidate))
	assert.Equal(t, "no attack succeeded\n", out)
}

func TestRepeat(t *testing.T) {
	t.Parallel()
	pt := testutil.Tale()
	ct := crypto.XORRepeat(nil, pt, []byte("secret key"))
	path := filepath.Join(t.TempDir(), "ct.txt")
	require.NoError(t, os.WriteFile(path, []byte(codec.EncodeBase64(ct)), 0o666))

	out, err := runCmd(t, "repeat", "-file", path, "-v")
	require.NoError(t, err)
	assert.Equal(t, "key: \"secret key\"\n"+string(pt)+"\n", out)
}

func TestECB(t *testing.T) {
	t.Parallel()
	ecb, err := codec.EncryptAESECB([]byte("YELLOW SUBMARINE"), bytes.Repeat([]byte("0123456789abcdef"), 3))
	require.NoError(t, err)
	lines := []string{
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		codec.EncodeHex(ecb),
		"202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f",
	}
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o666))

	out, err := runCmd(t, "ecb", "-file", path)
	require.NoError(t, err)
	assert.Equal(t, "line:    2\nrepeats: 2\n"+lines[1]+"\n", out)
}
