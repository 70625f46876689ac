package aligner

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// runMuscle aligns the sequences in inPath with MUSCLE, writing the result
// to a sibling temp file. MUSCLE v5 and v3 take different flags; v5 is
// tried first and v3 is the fallback, matching whichever version is
// installed.
func runMuscle(ctx context.Context, toolPath, inPath string) ([]byte, error) {
	outPath := inPath + ".aligned"
	defer os.Remove(outPath) // nolint: errcheck

	run := func(args ...string) error {
		cmd := exec.CommandContext(ctx, toolPath, args...)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		log.Debug.Printf("aligner: running %s", strings.Join(cmd.Args, " "))
		if err := cmd.Run(); err != nil {
			return errors.Wrapf(err, "muscle failed: %s", strings.TrimSpace(stderr.String()))
		}
		return nil
	}
	if err := run("-align", inPath, "-output", outPath); err != nil {
		if ctx.Err() != nil {
			return nil, timeoutErr(ctx, Muscle, err)
		}
		log.Debug.Printf("aligner: muscle v5 syntax failed (%v), retrying v3 syntax", err)
		if err := run("-in", inPath, "-out", outPath); err != nil {
			return nil, timeoutErr(ctx, Muscle, err)
		}
	}
	out, err := ioutil.ReadFile(outPath)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't read muscle output")
	}
	return out, nil
}
