// Package challenge sequences the cryptanalysis primitives over the
// cryptopals set 1 challenges (and the padding challenge that opens set 2)
// and prints one result per challenge.
package challenge

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"jayconrod.com/xorcrack/crypto"
	"jayconrod.com/xorcrack/internal/english"
)

// Runner solves challenges and writes their results to Out. Progress and
// failures are logged to Log.
type Runner struct {
	Config Config
	Log    logrus.FieldLogger
	Out    io.Writer

	verifier *english.Verifier
}

func NewRunner(cfg Config, log logrus.FieldLogger, out io.Writer) *Runner {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	r := &Runner{Config: cfg, Log: log, Out: out}
	if cfg.VerifyEnglish {
		r.verifier = english.NewVerifier()
	}
	return r
}

// Solve runs challenge num and returns its result.
func (r *Runner) Solve(num int) (string, error) {
	c := lookup(num)
	if c == nil {
		return "", errors.Errorf("unknown challenge %d", num)
	}
	return c.solve(r)
}

// Run solves the configured challenges in order, printing a header for each
// set. A failed challenge is reported in the output and the run continues;
// the returned error counts the failures.
func (r *Runner) Run() error {
	if err := r.Config.Validate(); err != nil {
		return err
	}

	failed := 0
	set := 0
	for _, c := range challenges {
		if r.Config.Only != 0 && c.num != r.Config.Only {
			continue
		}
		if c.set != set {
			set = c.set
			fmt.Fprintf(r.Out, "=== Set %d\n", set)
		}

		log := r.Log.WithField("challenge", c.num)
		start := time.Now()
		result, err := c.solve(r)
		log = log.WithField("elapsed", time.Since(start))
		switch {
		case errors.Is(err, crypto.ErrNoCandidate):
			failed++
			log.WithError(err).Warn("no attack succeeded")
			fmt.Fprintf(r.Out, "\tno attack succeeded\n")
		case err != nil:
			failed++
			log.WithError(err).Error("challenge failed")
			fmt.Fprintf(r.Out, "\terror: %v\n", err)
		default:
			log.Info("solved")
			fmt.Fprintf(r.Out, "\t%s\n", strings.ReplaceAll(result, "\n", ""))
		}
	}
	fmt.Fprintf(r.Out, "=== Finished\n")

	if failed > 0 {
		return errors.Errorf("%d challenges failed", failed)
	}
	return nil
}
