package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/msa/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePairsTSV(t *testing.T) {
	r := twoSeqReport(t)
	var buf bytes.Buffer
	require.NoError(t, render.WritePairsTSV(&buf, r))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "#SEQ1\tSEQ2\tSNPS\tUSABLE_POSITIONS\tIDENTITY", lines[0])
	assert.Equal(t, "s1\ts2\t1\t4\t75.00", lines[1])
}

func TestWriteColumnsTSV(t *testing.T) {
	r := twoSeqReport(t)
	var buf bytes.Buffer
	require.NoError(t, render.WriteColumnsTSV(&buf, r))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"#POS\tCLASS",
		"3\tvariant",
		"5\tgap",
		"6\tambiguous",
	}, lines)
}
