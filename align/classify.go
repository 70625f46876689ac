package align

// Gap is the alignment gap character.
const Gap = '-'

// AmbiguityCodes lists the IUPAC nucleotide ambiguity codes. A column
// containing any of these (in either case) in any sequence is excluded from
// SNP counting.
const AmbiguityCodes = "RYSWKMBDHVN"

// Per-cell class codes. Everything that is neither a gap nor an ambiguity
// code is a candidate for matching, including 'U' and unexpected symbols.
const (
	classBase = iota
	classGap
	classAmbiguous
)

var (
	// byteClass maps an input byte to its class, case-insensitively.
	byteClass [256]uint8
	// upper maps an input byte to its upper-case form.
	upper [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		upper[i] = byte(i)
		if i >= 'a' && i <= 'z' {
			upper[i] = byte(i - 'a' + 'A')
		}
	}
	byteClass[Gap] = classGap
	for i := 0; i < len(AmbiguityCodes); i++ {
		c := AmbiguityCodes[i]
		byteClass[c] = classAmbiguous
		byteClass[c-'A'+'a'] = classAmbiguous
	}
}

// Classification partitions the column indexes [0, L) of an alignment into
// three disjoint sets. Columns in none of the sets are invariant matches.
// Indexes are zero-based and ascending within each slice.
type Classification struct {
	// GapColumns holds columns where any sequence has a gap. Gap
	// classification takes priority over the other two.
	GapColumns []int
	// AmbiguousColumns holds gap-free columns where any sequence has an
	// IUPAC ambiguity code.
	AmbiguousColumns []int
	// VariantColumns holds gap-free, unambiguous columns whose bases are not
	// all identical (case-insensitively).
	VariantColumns []int
}

// UsableColumns returns the number of columns with neither a gap nor an
// ambiguity code, given the total column count.
func (c Classification) UsableColumns(numColumns int) int {
	return numColumns - len(c.GapColumns) - len(c.AmbiguousColumns)
}

// Classify scans the alignment column by column and labels each column as
// gapped, ambiguous, or variant; invariant columns are not recorded.
//
// REQUIRES: a is rectangular (Validate has passed). Classify reads the
// alignment but never mutates it; the result is deterministic. O(n*L).
func Classify(a Alignment) Classification {
	var c Classification
	numCols := a.NumColumns()
	for p := 0; p < numCols; p++ {
		var hasGap, hasAmbiguity, variant bool
		first := byte(0)
		for _, s := range a {
			b := upper[s.Bases[p]]
			switch byteClass[b] {
			case classGap:
				hasGap = true
			case classAmbiguous:
				hasAmbiguity = true
			default:
				if first == 0 {
					first = b
				} else if b != first {
					variant = true
				}
			}
			if hasGap {
				break // gap wins regardless of the rest of the column
			}
		}
		switch {
		case hasGap:
			c.GapColumns = append(c.GapColumns, p)
		case hasAmbiguity:
			c.AmbiguousColumns = append(c.AmbiguousColumns, p)
		case variant:
			c.VariantColumns = append(c.VariantColumns, p)
		}
	}
	return c
}
