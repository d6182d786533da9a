// xorcrack breaks XOR ciphers and spots ECB-mode ciphertext.
//
// Usage:
//
//	xorcrack challenges [-dir payloads] [-only N] [-min 2] [-max 40] [-verify-english] [-v]
//	xorcrack single -hex HEX
//	xorcrack repeat -file FILE [-min 2] [-max 40] [-v]
//	xorcrack ecb -file FILE
//
// Results are printed to stdout; logs go to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"jayconrod.com/xorcrack/crypto"
	"jayconrod.com/xorcrack/internal/challenge"
	"jayconrod.com/xorcrack/internal/codec"
)

// errUsage marks errors that should exit with status 2.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "xorcrack: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.Wrap(errUsage, "expected a command: challenges, single, repeat or ecb")
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "challenges":
		return runChallenges(args, stdout, stderr)
	case "single":
		return runSingle(args, stdout, stderr)
	case "repeat":
		return runRepeat(args, stdout, stderr)
	case "ecb":
		return runECB(args, stdout, stderr)
	default:
		return errors.Wrapf(errUsage, "unknown command %q", cmd)
	}
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	if fs.NArg() > 0 {
		return errors.Wrapf(errUsage, "unexpected arguments: %v", fs.Args())
	}
	return nil
}

func runChallenges(args []string, stdout, stderr io.Writer) error {
	cfg := challenge.DefaultConfig()
	if dir := os.Getenv("XORCRACK_PAYLOADS"); dir != "" {
		cfg.Dir = dir
	}
	fs := flag.NewFlagSet("challenges", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory holding challenge payload files")
	fs.IntVar(&cfg.Only, "only", cfg.Only, "run only this challenge")
	fs.IntVar(&cfg.MinKeySize, "min", cfg.MinKeySize, "smallest repeating key size to try")
	fs.IntVar(&cfg.MaxKeySize, "max", cfg.MaxKeySize, "largest repeating key size to try")
	fs.BoolVar(&cfg.VerifyEnglish, "verify-english", cfg.VerifyEnglish, "check recovered plaintext with a language model")
	verbose := fs.Bool("v", false, "log debug detail")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	return challenge.NewRunner(cfg, newLogger(stderr, *verbose), stdout).Run()
}

func runSingle(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("single", flag.ContinueOnError)
	fs.SetOutput(stderr)
	hexCT := fs.String("hex", "", "hex-encoded ciphertext")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *hexCT == "" {
		return errors.Wrap(errUsage, "-hex is required")
	}
	ct, err := codec.DecodeHex(*hexCT)
	if err != nil {
		return err
	}
	c, ok := crypto.CrackXORByte(ct)
	if !ok {
		fmt.Fprintln(stdout, "no attack succeeded")
		return crypto.ErrNoCandidate
	}
	fmt.Fprintf(stdout, "key:   0x%02x\nscore: %d\npeak:  0x%02x\n", c.Key, c.Score, crypto.PeakByte(ct))
	fmt.Fprintf(stdout, "text:  %q\n", c.Plaintext)
	return nil
}

func runRepeat(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("repeat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("file", "", "base64-encoded ciphertext file")
	minKeySize := fs.Int("min", 2, "smallest key size to try")
	maxKeySize := fs.Int("max", 40, "largest key size to try")
	verbose := fs.Bool("v", false, "log the distance measured for every key size")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *path == "" {
		return errors.Wrap(errUsage, "-file is required")
	}
	log := newLogger(stderr, *verbose)

	ct, err := codec.ReadBase64File(*path)
	if err != nil {
		return err
	}
	max := *maxKeySize
	if m := crypto.MaxKeySize(len(ct)); m < max {
		log.WithField("max", m).Info("lowering maximum key size to fit ciphertext")
		max = m
	}
	if *minKeySize < 1 || max < *minKeySize {
		return errors.Errorf("%s: %d bytes cannot be searched for key sizes %d to %d", *path, len(ct), *minKeySize, *maxKeySize)
	}
	for _, s := range crypto.KeySizeDistances(ct, *minKeySize, max, crypto.KeySizeSamples) {
		log.WithFields(logrus.Fields{"key_size": s.Size, "distance": s.Distance}).Debug("key size distance")
	}

	key, pt, err := crypto.CrackXORRepeat(ct, *minKeySize, max)
	if errors.Is(err, crypto.ErrNoCandidate) {
		fmt.Fprintln(stdout, "no attack succeeded")
		return err
	} else if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "key: %q\n", key)
	text, err := codec.PrintableText(pt)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, text)
	return nil
}

func runECB(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ecb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("file", "", "file of hex-encoded ciphertexts, one per line")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *path == "" {
		return errors.Wrap(errUsage, "-file is required")
	}
	lines, err := codec.ReadHexLines(*path)
	if err != nil {
		return err
	}
	i := crypto.DetectECB(lines)
	if i < 0 {
		return errors.Errorf("%s: no ciphertexts", *path)
	}
	fmt.Fprintf(stdout, "line:    %d\nrepeats: %d\n%s\n", i+1, crypto.RepeatedBlocks(lines[i]), codec.EncodeHex(lines[i]))
	return nil
}
