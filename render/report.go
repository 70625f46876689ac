// Package render turns analyzed alignments into human- and
// machine-readable output: a self-contained HTML report and TSV tables.
// It consumes the align package's data structures and performs no
// computation of its own beyond presentation.
package render

import (
	"github.com/grailbio/msa/align"
)

// Report bundles everything the output formats need: the alignment itself,
// its column classification, the pairwise records in their deterministic
// order, the symmetric SNP matrix, and the summary statistics.
type Report struct {
	Alignment align.Alignment
	Class     align.Classification
	Pairs     []align.PairDistance
	Matrix    align.DistanceMatrix
	Stats     align.Stats
}

// NewReport classifies the alignment and computes all pairwise distances.
//
// REQUIRES: a has passed Validate and has at least two sequences.
func NewReport(a align.Alignment, opts align.Opts) Report {
	c := align.Classify(a)
	pairs, matrix := align.Distances(a, opts)
	return Report{
		Alignment: a,
		Class:     c,
		Pairs:     pairs,
		Matrix:    matrix,
		Stats:     align.NewStats(a, c, pairs),
	}
}
