package render

import (
	"io"

	"github.com/grailbio/base/tsv"
)

// WritePairsTSV writes one row per sequence pair, in the engine's
// deterministic pair order:
//
//	#SEQ1  SEQ2  SNPS  USABLE_POSITIONS  IDENTITY
func WritePairsTSV(w io.Writer, r Report) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("#SEQ1")
	tw.WriteString("SEQ2")
	tw.WriteString("SNPS")
	tw.WriteString("USABLE_POSITIONS")
	tw.WriteString("IDENTITY")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for _, d := range r.Pairs {
		tw.WriteString(d.A)
		tw.WriteString(d.B)
		tw.WriteInt64(int64(d.SNPs))
		tw.WriteInt64(int64(d.Usable))
		tw.WriteFloat64(d.Identity, 'f', 2)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteColumnsTSV writes one row per classified column (gapped, ambiguous,
// or variant), ascending by position; invariant columns are omitted.
// Positions are 1-based in text output:
//
//	#POS  CLASS
func WriteColumnsTSV(w io.Writer, r Report) error {
	classes := make(map[int]string,
		len(r.Class.GapColumns)+len(r.Class.AmbiguousColumns)+len(r.Class.VariantColumns))
	for _, p := range r.Class.GapColumns {
		classes[p] = "gap"
	}
	for _, p := range r.Class.AmbiguousColumns {
		classes[p] = "ambiguous"
	}
	for _, p := range r.Class.VariantColumns {
		classes[p] = "variant"
	}

	tw := tsv.NewWriter(w)
	tw.WriteString("#POS")
	tw.WriteString("CLASS")
	if err := tw.EndLine(); err != nil {
		return err
	}
	numCols := r.Alignment.NumColumns()
	for p := 0; p < numCols; p++ {
		class, ok := classes[p]
		if !ok {
			continue
		}
		tw.WriteUint32(uint32(p + 1))
		tw.WriteString(class)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}
