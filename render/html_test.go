package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/msa/align"
	"github.com/grailbio/msa/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSeqReport(t *testing.T) render.Report {
	a := align.Alignment{
		{Name: "s1", Bases: "ACGT-N"},
		{Name: "s2", Bases: "ACTTAN"},
	}
	require.NoError(t, a.Validate())
	return render.NewReport(a, align.DefaultOpts)
}

func TestNewReport(t *testing.T) {
	r := twoSeqReport(t)
	require.Len(t, r.Pairs, 1)
	assert.Equal(t, 1, r.Pairs[0].SNPs)
	assert.Equal(t, 4, r.Pairs[0].Usable)
	assert.Equal(t, 75.0, r.Pairs[0].Identity)
	assert.Equal(t, []int{4}, r.Class.GapColumns)
	assert.Equal(t, []int{5}, r.Class.AmbiguousColumns)
	assert.Equal(t, []int{2}, r.Class.VariantColumns)
	n, ok := r.Matrix.Get("s2", "s1")
	require.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestHTML(t *testing.T) {
	r := twoSeqReport(t)
	var buf bytes.Buffer
	require.NoError(t, render.HTML(&buf, r))
	html := buf.String()

	assert.Contains(t, html, "<strong>Number of sequences:</strong> 2")
	assert.Contains(t, html, "<strong>Alignment length:</strong> 6 bp")
	assert.Contains(t, html, "<strong>Usable positions:</strong> 4")
	assert.Contains(t, html, "<strong>Pairwise SNPs:</strong> 1")
	assert.Contains(t, html, "<strong>Identity:</strong> 75.00%")
	// Two sequences: detailed table yes, SNP range no.
	assert.Contains(t, html, "Detailed Pairwise Comparisons")
	assert.NotContains(t, html, "Pairwise SNP range")
	// The variant column renders highlighted, the gap dimmed.
	assert.Contains(t, html, `<span class="diff">`)
	assert.Contains(t, html, `<span class="gap">`)
	assert.Contains(t, html, `<span class="ambig">`)
	assert.Contains(t, html, "Position 1-6")
}

func TestHTMLEscapesNames(t *testing.T) {
	a := align.Alignment{
		{Name: "s1 <script>alert(1)</script>", Bases: "ACGT"},
		{Name: "s2", Bases: "ACGT"},
	}
	var buf bytes.Buffer
	require.NoError(t, render.HTML(&buf, render.NewReport(a, align.DefaultOpts)))
	assert.NotContains(t, buf.String(), "<script>alert")
}

func TestHTMLManySequences(t *testing.T) {
	a := align.Alignment{
		{Name: strings.Repeat("verylongname", 10), Bases: "ACGTACGTAC"},
		{Name: "s2", Bases: "ACGTACGTAC"},
		{Name: "s3", Bases: "TCGTACGTAT"},
	}
	var buf bytes.Buffer
	require.NoError(t, render.HTML(&buf, render.NewReport(a, align.DefaultOpts)))
	html := buf.String()
	assert.Contains(t, html, "Pairwise SNP range:")
	assert.NotContains(t, html, "Pairwise SNPs:")
	// Long names are truncated for display but kept in the title attribute.
	assert.Contains(t, html, "verylongnameverylong...")
	assert.Contains(t, html, `title="`+strings.Repeat("verylongname", 10)+`"`)
	// Diagonal cells present, one per sequence.
	assert.Equal(t, 3, strings.Count(html, `class="diagonal heatmap-cell"`))
}

func TestHTMLChunking(t *testing.T) {
	bases := strings.Repeat("A", 150)
	a := align.Alignment{
		{Name: "s1", Bases: bases},
		{Name: "s2", Bases: bases},
	}
	var buf bytes.Buffer
	require.NoError(t, render.HTML(&buf, render.NewReport(a, align.DefaultOpts)))
	html := buf.String()
	assert.Contains(t, html, "Position 1-100")
	assert.Contains(t, html, "Position 101-150")
}
