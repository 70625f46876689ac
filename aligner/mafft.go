package aligner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// runMafft aligns the sequences in inPath with MAFFT. MAFFT writes the
// aligned FASTA to stdout; --auto picks a strategy, --thread -1 uses all
// cores.
func runMafft(ctx context.Context, toolPath, inPath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, toolPath, "--auto", "--thread", "-1", inPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	log.Debug.Printf("aligner: running %s", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		err = errors.Wrapf(err, "mafft failed: %s", strings.TrimSpace(stderr.String()))
		return nil, timeoutErr(ctx, Mafft, err)
	}
	return stdout.Bytes(), nil
}
