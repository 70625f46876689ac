// Package align implements comparison of nucleotide multiple-sequence
// alignments: per-column classification of variation (gap / ambiguous /
// variant) and pairwise SNP distances between all sequence pairs.
//
// The package operates on an already-computed rectangular alignment; it
// never aligns sequences itself. Inputs come from encoding/fasta (or any
// other provider that produces an Alignment), outputs feed the render
// package.
package align

import (
	"github.com/pkg/errors"
)

// Sequence is one named row of an alignment. Bases is a string over the
// nucleotide alphabet plus the gap character '-' and IUPAC ambiguity codes,
// in either case.
type Sequence struct {
	Name  string
	Bases string
}

// Alignment is an ordered list of equal-length sequences. The order is part
// of the contract: pairwise enumeration and all rendered output follow it.
// An Alignment is immutable once handed to Classify or Distances.
type Alignment []Sequence

// Len returns the number of sequences.
func (a Alignment) Len() int { return len(a) }

// NumColumns returns the alignment length L, i.e. the number of columns.
// Zero for an empty alignment.
func (a Alignment) NumColumns() int {
	if len(a) == 0 {
		return 0
	}
	return len(a[0].Bases)
}

// Names returns the sequence names in alignment order.
func (a Alignment) Names() []string {
	names := make([]string, len(a))
	for i, s := range a {
		names[i] = s.Name
	}
	return names
}

// Validate checks the preconditions that Classify and Distances themselves
// do not: at least one sequence, unique non-empty names, and equal sequence
// lengths. It returns ErrEmptyAlignment or *MalformedAlignmentError.
// Callers that will invoke Distances must additionally check Len() >= 2 and
// report ErrInsufficientSequences.
func (a Alignment) Validate() error {
	if len(a) == 0 {
		return ErrEmptyAlignment
	}
	seen := make(map[string]bool, len(a))
	want := len(a[0].Bases)
	for _, s := range a {
		if s.Name == "" {
			return errors.New("alignment contains a sequence with an empty name")
		}
		if seen[s.Name] {
			return errors.Errorf("duplicate sequence name: %s", s.Name)
		}
		seen[s.Name] = true
		if len(s.Bases) != want {
			return &MalformedAlignmentError{
				Name:     s.Name,
				Columns:  len(s.Bases),
				Expected: want,
			}
		}
	}
	return nil
}
