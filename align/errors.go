package align

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyAlignment is returned by Validate when the alignment holds no
// sequences.
var ErrEmptyAlignment = errors.New("alignment contains no sequences")

// ErrInsufficientSequences is returned by callers invoking pairwise
// comparison with fewer than two sequences. There is nothing to compare.
var ErrInsufficientSequences = errors.New("at least two sequences are required for pairwise comparison")

// MalformedAlignmentError reports a sequence whose length disagrees with the
// first sequence in the alignment, i.e. the input is not rectangular. The
// classification and distance engines assume rectangularity and do not check
// it; Validate must be run first.
type MalformedAlignmentError struct {
	Name     string // offending sequence
	Columns  int    // its length
	Expected int    // length of the first sequence
}

func (e *MalformedAlignmentError) Error() string {
	return fmt.Sprintf("sequence %s has %d columns, want %d: sequences are not aligned",
		e.Name, e.Columns, e.Expected)
}
