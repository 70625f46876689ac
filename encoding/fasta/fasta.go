// Package fasta reads and writes FASTA files for alignment comparison.
// FASTA files consist of a number of named sequences that may be
// interrupted by newlines.  For example:
//
// >sample1
// ACGTAC
// GAGGAC
// GCG
// >sample2
// ACGT
//
// Note: the full header text after '>' (surrounding whitespace trimmed) is
// the sequence name.  Headers double as display names in rendered reports,
// so, unlike reference-genome tooling, nothing after the first space is
// discarded.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/msa/align"
	"github.com/pkg/errors"
)

const (
	maxLineSize = 1024 * 1024 * 64 // 64 MB

	// lineWidth is the column at which Write wraps sequence data.
	lineWidth = 80
)

// Set holds the sequences of one FASTA file in input order. Names are not
// required to be unique or equal-length here; those invariants belong to
// Alignment().
type Set struct {
	seqs  []align.Sequence
	index map[string]int // name -> first occurrence in seqs
}

// New reads all FASTA data from the given reader into memory.
func New(r io.Reader) (*Set, error) {
	f := &Set{index: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)
	var name string
	var started bool
	var seq strings.Builder
	flush := func() {
		if _, ok := f.index[name]; !ok {
			f.index[name] = len(f.seqs)
		}
		f.seqs = append(f.seqs, align.Sequence{Name: name, Bases: seq.String()})
		seq.Reset()
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			if started {
				flush()
			}
			name = strings.TrimSpace(line[1:])
			started = true
		} else {
			if !started {
				return nil, errors.New("malformed FASTA file: sequence data before first header")
			}
			seq.WriteString(line)
		}
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	if started {
		flush()
	}
	return f, nil
}

// SeqNames returns the sequence names in order of appearance.
func (f *Set) SeqNames() []string {
	names := make([]string, len(f.seqs))
	for i, s := range f.seqs {
		names[i] = s.Name
	}
	return names
}

// NumSeqs returns the number of sequences read, counting duplicates.
func (f *Set) NumSeqs() int { return len(f.seqs) }

// Get returns the full sequence with the given name. When a name occurs
// more than once, the first occurrence wins.
func (f *Set) Get(name string) (string, error) {
	i, ok := f.index[name]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", name)
	}
	return f.seqs[i].Bases, nil
}

// Aligned reports whether the set forms a rectangular alignment, i.e. all
// sequences have the same length. An empty set is not aligned; a single
// sequence trivially is.
func (f *Set) Aligned() bool {
	if len(f.seqs) == 0 {
		return false
	}
	want := len(f.seqs[0].Bases)
	for _, s := range f.seqs[1:] {
		if len(s.Bases) != want {
			return false
		}
	}
	return true
}

// Alignment validates the set and returns it as an alignment in input
// order. The error is align.ErrEmptyAlignment, *align.MalformedAlignmentError,
// or a name-uniqueness error; see align.Alignment.Validate.
func (f *Set) Alignment() (align.Alignment, error) {
	a := align.Alignment(f.seqs)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Write serializes the alignment as FASTA, wrapping sequence data at 80
// columns. Used to hand sequences to external alignment tools and to save
// their output.
func Write(w io.Writer, a align.Alignment) error {
	bw := bufio.NewWriter(w)
	for _, s := range a {
		if _, err := bw.WriteString(">" + s.Name + "\n"); err != nil {
			return errors.Wrap(err, "couldn't write FASTA data")
		}
		for start := 0; start < len(s.Bases); start += lineWidth {
			end := start + lineWidth
			if end > len(s.Bases) {
				end = len(s.Bases)
			}
			if _, err := bw.WriteString(s.Bases[start:end] + "\n"); err != nil {
				return errors.Wrap(err, "couldn't write FASTA data")
			}
		}
	}
	return bw.Flush()
}
