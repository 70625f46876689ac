// Package aligner invokes an external multiple-sequence-alignment program
// (MAFFT or MUSCLE) on unaligned FASTA input and returns the aligned FASTA
// output. It owns the temp-file and process lifecycle; callers just pass
// bytes in and get bytes back.
package aligner

import (
	"context"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/errors"
	"v.io/x/lib/envvar"
	"v.io/x/lib/lookpath"
)

// Supported alignment tools.
const (
	Mafft  = "mafft"
	Muscle = "muscle"
)

// Opts configures an external alignment run.
type Opts struct {
	// Tool is the alignment program to run, Mafft or Muscle.
	Tool string
	// Timeout bounds the external process runtime; <= 0 means no limit.
	Timeout time.Duration
}

// DefaultOpts sets the default values of Opts.
var DefaultOpts = Opts{
	Tool:    Mafft,
	Timeout: 5 * time.Minute,
}

// NotInstalledError indicates that the requested alignment tool is not on
// PATH.
type NotInstalledError struct {
	Tool string
}

func (e *NotInstalledError) Error() string {
	return e.Tool + " not found on PATH; please install it first"
}

// Align writes the given FASTA data to a temp file, runs the configured
// tool over it, and returns the tool's aligned FASTA output. The context
// bounds the process; on timeout the returned error wraps
// context.DeadlineExceeded.
func Align(ctx context.Context, fastaIn []byte, opts Opts) ([]byte, error) {
	var run func(ctx context.Context, toolPath, inPath string) ([]byte, error)
	switch opts.Tool {
	case Mafft:
		run = runMafft
	case Muscle:
		run = runMuscle
	default:
		return nil, errors.Errorf("unknown alignment tool: %q", opts.Tool)
	}
	toolPath, err := lookpath.Look(envvar.SliceToMap(os.Environ()), opts.Tool)
	if err != nil {
		return nil, &NotInstalledError{Tool: opts.Tool}
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	in, err := ioutil.TempFile("", "msa-*.fasta")
	if err != nil {
		return nil, errors.Wrap(err, "couldn't create temp input file")
	}
	defer os.Remove(in.Name()) // nolint: errcheck
	if _, err := in.Write(fastaIn); err != nil {
		in.Close() // nolint: errcheck
		return nil, errors.Wrap(err, "couldn't write temp input file")
	}
	if err := in.Close(); err != nil {
		return nil, errors.Wrap(err, "couldn't write temp input file")
	}
	return run(ctx, toolPath, in.Name())
}

// timeoutErr rewraps a process failure as a timeout when the context
// deadline is what killed it.
func timeoutErr(ctx context.Context, tool string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return errors.Wrapf(context.DeadlineExceeded,
			"%s timed out; try fewer or shorter sequences", tool)
	}
	return err
}
