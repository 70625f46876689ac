package align_test

import (
	"testing"

	"github.com/grailbio/msa/align"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		a         align.Alignment
		gap       []int
		ambiguous []int
		variant   []int
	}{
		{
			name: "mixed gap ambiguity variant",
			a: align.Alignment{
				{Name: "s1", Bases: "ACGT-N"},
				{Name: "s2", Bases: "ACTTAN"},
			},
			gap:       []int{4},
			ambiguous: []int{5},
			variant:   []int{2},
		},
		{
			name: "gap beats ambiguity and variation",
			a: align.Alignment{
				{Name: "s1", Bases: "-N"},
				{Name: "s2", Bases: "AR"},
				{Name: "s3", Bases: "G-"},
			},
			gap: []int{0, 1},
		},
		{
			name: "case insensitive match",
			a: align.Alignment{
				{Name: "s1", Bases: "acgt"},
				{Name: "s2", Bases: "ACGT"},
			},
		},
		{
			name: "lower case ambiguity and variant",
			a: align.Alignment{
				{Name: "s1", Bases: "nCa"},
				{Name: "s2", Bases: "NCt"},
			},
			ambiguous: []int{0},
			variant:   []int{2},
		},
		{
			name: "single sequence is never variant",
			a: align.Alignment{
				{Name: "only", Bases: "AC-GN"},
			},
			gap:       []int{2},
			ambiguous: []int{4},
		},
		{
			name: "empty alignment",
			a:    align.Alignment{},
		},
	}
	for _, tt := range tests {
		c := align.Classify(tt.a)
		expect.EQ(t, c.GapColumns, tt.gap, tt.name)
		expect.EQ(t, c.AmbiguousColumns, tt.ambiguous, tt.name)
		expect.EQ(t, c.VariantColumns, tt.variant, tt.name)
	}
}

func TestClassifyDisjoint(t *testing.T) {
	a := align.Alignment{
		{Name: "s1", Bases: "ACGT-NRA-ca"},
		{Name: "s2", Bases: "ACTTANNAG-t"},
		{Name: "s3", Bases: "ACTAANRAGGW"},
	}
	c := align.Classify(a)
	seen := map[int]string{}
	for _, p := range c.GapColumns {
		seen[p] = "gap"
	}
	for _, p := range c.AmbiguousColumns {
		expect.EQ(t, seen[p], "", "column %d in two sets", p)
		seen[p] = "ambiguous"
	}
	for _, p := range c.VariantColumns {
		expect.EQ(t, seen[p], "", "column %d in two sets", p)
		seen[p] = "variant"
	}
	for p := range seen {
		expect.True(t, p >= 0 && p < a.NumColumns())
	}
	expect.EQ(t, c.UsableColumns(a.NumColumns()),
		a.NumColumns()-len(c.GapColumns)-len(c.AmbiguousColumns))
}

func TestValidate(t *testing.T) {
	expect.EQ(t, align.Alignment{}.Validate(), align.ErrEmptyAlignment)

	ok := align.Alignment{
		{Name: "s1", Bases: "ACGT"},
		{Name: "s2", Bases: "AC-T"},
	}
	expect.NoError(t, ok.Validate())

	ragged := align.Alignment{
		{Name: "s1", Bases: "ACGT"},
		{Name: "s2", Bases: "ACG"},
	}
	err := ragged.Validate()
	expect.NotNil(t, err)
	malformed, isMalformed := err.(*align.MalformedAlignmentError)
	expect.True(t, isMalformed)
	expect.EQ(t, malformed.Name, "s2")
	expect.EQ(t, malformed.Columns, 3)
	expect.EQ(t, malformed.Expected, 4)

	dup := align.Alignment{
		{Name: "s1", Bases: "ACGT"},
		{Name: "s1", Bases: "ACGT"},
	}
	assert.HasSubstr(t, dup.Validate(), "duplicate")

	unnamed := align.Alignment{{Name: "", Bases: "ACGT"}}
	assert.HasSubstr(t, unnamed.Validate(), "empty name")
}
