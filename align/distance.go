package align

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// PairDistance holds the comparison result for one unordered sequence pair.
type PairDistance struct {
	// A and B are the sequence names, in alignment order (A precedes B).
	A, B string
	// SNPs is the number of usable columns where the two bases differ.
	SNPs int
	// Usable is the number of columns where neither sequence has a gap or
	// an ambiguity code.
	Usable int
	// Identity is 100*(1-SNPs/Usable), or 0 when Usable == 0. The zero for
	// a fully gapped/ambiguous pair is deliberate; it is displayed as-is
	// rather than treated as an error.
	Identity float64
}

// DistanceMatrix maps (name, name) to the pairwise SNP count. Both
// orientations of every pair are present; the diagonal is absent.
type DistanceMatrix map[string]map[string]int

// Get returns the SNP count for the pair (a, b) in either orientation.
func (m DistanceMatrix) Get(a, b string) (int, bool) {
	row, ok := m[a]
	if !ok {
		return 0, false
	}
	n, ok := row[b]
	return n, ok
}

// Opts controls the pairwise distance computation.
type Opts struct {
	// Parallelism is the number of concurrent jobs pairs are sharded over.
	// Values <= 1 compute serially. The emitted pair order is the same
	// either way.
	Parallelism int
}

// DefaultOpts sets the default values of Opts.
var DefaultOpts = Opts{
	Parallelism: 1,
}

// pairCode returns the per-column comparison codes for a sequence: 0 for a
// gap or ambiguity code, the upper-cased base otherwise. Precomputing these
// once per sequence turns the O(n^2 * L) pairwise inner loop into plain
// byte compares.
func pairCode(bases string) []byte {
	codes := make([]byte, len(bases))
	for i := 0; i < len(bases); i++ {
		b := upper[bases[i]]
		if byteClass[b] == classBase {
			codes[i] = b
		}
	}
	return codes
}

func comparePairCodes(a, b Sequence, ca, cb []byte) PairDistance {
	d := PairDistance{A: a.Name, B: b.Name}
	for i := 0; i < len(ca); i++ {
		x, y := ca[i], cb[i]
		if x == 0 || y == 0 {
			continue // gapped or ambiguous in at least one of the two
		}
		d.Usable++
		if x != y {
			d.SNPs++
		}
	}
	if d.Usable > 0 {
		d.Identity = 100 * (1 - float64(d.SNPs)/float64(d.Usable))
	}
	return d
}

// ComparePair compares two equal-length sequences, skipping columns where
// either has a gap or an IUPAC ambiguity code.
//
// REQUIRES: len(a.Bases) == len(b.Bases).
func ComparePair(a, b Sequence) PairDistance {
	return comparePairCodes(a, b, pairCode(a.Bases), pairCode(b.Bases))
}

// Distances compares every unordered sequence pair of the alignment and
// returns one PairDistance per pair plus the symmetric SNP distance matrix
// derived from them. Pairs appear in forward double-iteration order over
// the alignment: (0,1), (0,2), ..., (1,2), ... — downstream rendering
// depends on this order, and it is independent of opts.Parallelism.
//
// REQUIRES: a is rectangular with at least two sequences (the caller
// validates and reports ErrInsufficientSequences otherwise). The engine
// performs no internal length checks.
func Distances(a Alignment, opts Opts) ([]PairDistance, DistanceMatrix) {
	n := len(a)
	codes := make([][]byte, n)
	for i, s := range a {
		codes[i] = pairCode(s.Bases)
	}

	type pairIdx struct{ i, j int }
	pairs := make([]pairIdx, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pairIdx{i, j})
		}
	}

	// Each result is written to its pre-assigned slot, so the output order
	// never depends on job scheduling.
	results := make([]PairDistance, len(pairs))
	compute := func(k int) {
		p := pairs[k]
		results[k] = comparePairCodes(a[p.i], a[p.j], codes[p.i], codes[p.j])
	}
	if opts.Parallelism > 1 && len(pairs) > 1 {
		jobs := opts.Parallelism
		if jobs > len(pairs) {
			jobs = len(pairs)
		}
		err := traverse.Each(jobs, func(jobIdx int) error {
			start := jobIdx * len(pairs) / jobs
			end := (jobIdx + 1) * len(pairs) / jobs
			for k := start; k < end; k++ {
				compute(k)
			}
			return nil
		})
		if err != nil {
			// The closures never fail; traverse reports nothing else.
			log.Panicf("distances: %v", err)
		}
	} else {
		for k := range pairs {
			compute(k)
		}
	}

	matrix := make(DistanceMatrix, n)
	for _, s := range a {
		matrix[s.Name] = make(map[string]int, n-1)
	}
	for _, d := range results {
		matrix[d.A][d.B] = d.SNPs
		matrix[d.B][d.A] = d.SNPs
	}
	return results, matrix
}
