package align

// Stats summarizes an analyzed alignment for display.
type Stats struct {
	Sequences        int
	Columns          int
	GapColumns       int
	AmbiguousColumns int
	UsableColumns    int
	VariantColumns   int
	// MinSNPs and MaxSNPs are the extremes over all pairwise SNP counts;
	// both are zero when there are no pairs.
	MinSNPs int
	MaxSNPs int
}

// NewStats derives summary statistics from an alignment, its column
// classification, and its pairwise distances.
func NewStats(a Alignment, c Classification, pairs []PairDistance) Stats {
	s := Stats{
		Sequences:        a.Len(),
		Columns:          a.NumColumns(),
		GapColumns:       len(c.GapColumns),
		AmbiguousColumns: len(c.AmbiguousColumns),
		VariantColumns:   len(c.VariantColumns),
	}
	s.UsableColumns = c.UsableColumns(s.Columns)
	for k, d := range pairs {
		if k == 0 || d.SNPs < s.MinSNPs {
			s.MinSNPs = d.SNPs
		}
		if d.SNPs > s.MaxSNPs {
			s.MaxSNPs = d.SNPs
		}
	}
	return s
}
