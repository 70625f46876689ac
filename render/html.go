package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/grailbio/msa/align"
	"github.com/pkg/errors"
)

// chunkSize is the number of alignment columns per rendered block.
const chunkSize = 100

// Display-name truncation widths.
const (
	heatColWidth = 20
	heatRowWidth = 30
	seqLineWidth = 50
)

// HTML writes a single self-contained HTML document: summary statistics,
// the pairwise SNP heatmap, the detailed pairwise table, and the colored
// position-by-position alignment view.
func HTML(w io.Writer, r Report) error {
	if err := htmlTmpl.Execute(w, newHTMLModel(r)); err != nil {
		return errors.Wrap(err, "couldn't render HTML report")
	}
	return nil
}

type htmlModel struct {
	Stats     align.Stats
	TwoSeqs   *align.PairDistance // set when the alignment has exactly two sequences
	ShowRange bool                // more than two sequences: show the SNP range line
	Heat      heatmap
	Pairs     []pairRow
	Chunks    []chunk
}

type heatmap struct {
	Cols []displayName
	Rows []heatRow
}

type displayName struct{ Full, Short string }

type heatRow struct {
	Name  displayName
	Cells []heatCell
}

type heatCell struct {
	Diagonal bool
	SNPs     string
	Title    string
	Style    template.CSS
}

type pairRow struct {
	A, B         string
	SNPs, Usable string
	Identity     string
}

type chunk struct {
	Label string
	Lines []seqLine
}

type seqLine struct {
	Name  displayName
	Spans []span
}

type span struct {
	Class string
	Text  string
}

func newHTMLModel(r Report) htmlModel {
	m := htmlModel{Stats: r.Stats}
	if len(r.Pairs) == 1 && r.Alignment.Len() == 2 {
		m.TwoSeqs = &r.Pairs[0]
	}
	m.ShowRange = r.Alignment.Len() > 2 && len(r.Pairs) > 0
	m.Heat = newHeatmap(r)
	for _, d := range r.Pairs {
		m.Pairs = append(m.Pairs, pairRow{
			A:        d.A,
			B:        d.B,
			SNPs:     comma(d.SNPs),
			Usable:   comma(d.Usable),
			Identity: fmt.Sprintf("%.2f%%", d.Identity),
		})
	}
	m.Chunks = newChunks(r)
	return m
}

func truncate(name string, width int) displayName {
	d := displayName{Full: name, Short: name}
	if len(name) > width {
		d.Short = name[:width] + "..."
	}
	return d
}

// comma formats n with thousands separators, e.g. 1234567 -> "1,234,567".
func comma(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + comma(-n)
	}
	if len(s) <= 3 {
		return s
	}
	return comma(n/1000) + "," + s[len(s)-3:]
}

// heatStyle returns the inline style of a heatmap cell. The scale runs
// blue (fewest SNPs) through white to red (most), with light text once the
// cell is dark enough.
func heatStyle(snps, min, max int) template.CSS {
	ratio := 0.0
	if max > min {
		ratio = float64(snps-min) / float64(max-min)
	}
	var r, g, b int
	if ratio < 0.5 {
		r = 240 + int((255-240)*ratio*2)
		g = 248 + int((255-248)*ratio*2)
		b = 255
	} else {
		r = 255
		g = 255 - int((255-180)*(ratio-0.5)*2)
		b = 255 - int((255-180)*(ratio-0.5)*2)
	}
	fg := "#000"
	if ratio >= 0.7 {
		fg = "#fff"
	}
	return template.CSS(fmt.Sprintf("background-color: rgb(%d,%d,%d); color: %s", r, g, b, fg))
}

func newHeatmap(r Report) heatmap {
	var h heatmap
	for _, name := range r.Alignment.Names() {
		h.Cols = append(h.Cols, truncate(name, heatColWidth))
	}
	for i, a := range r.Alignment {
		row := heatRow{Name: truncate(a.Name, heatRowWidth)}
		for j, b := range r.Alignment {
			if i == j {
				row.Cells = append(row.Cells, heatCell{Diagonal: true})
				continue
			}
			snps, _ := r.Matrix.Get(a.Name, b.Name)
			row.Cells = append(row.Cells, heatCell{
				SNPs:  comma(snps),
				Title: fmt.Sprintf("%s vs %s: %s SNPs", a.Name, b.Name, comma(snps)),
				Style: heatStyle(snps, r.Stats.MinSNPs, r.Stats.MaxSNPs),
			})
		}
		h.Rows = append(h.Rows, row)
	}
	return h
}

func newChunks(r Report) []chunk {
	ambiguous := make(map[int]bool, len(r.Class.AmbiguousColumns))
	for _, p := range r.Class.AmbiguousColumns {
		ambiguous[p] = true
	}
	variant := make(map[int]bool, len(r.Class.VariantColumns))
	for _, p := range r.Class.VariantColumns {
		variant[p] = true
	}
	baseClass := func(pos int, base byte) string {
		switch {
		case ambiguous[pos]:
			return "ambig"
		case variant[pos]:
			return "diff"
		case base == align.Gap:
			return "gap"
		default:
			return "match"
		}
	}

	numCols := r.Alignment.NumColumns()
	var chunks []chunk
	for start := 0; start < numCols; start += chunkSize {
		end := start + chunkSize
		if end > numCols {
			end = numCols
		}
		c := chunk{Label: fmt.Sprintf("Position %d-%d", start+1, end)}
		for _, s := range r.Alignment {
			line := seqLine{Name: truncate(s.Name, seqLineWidth)}
			// Consecutive bases with the same class share one span.
			runStart := start
			for pos := start; pos <= end; pos++ {
				if pos == end || (pos > runStart && baseClass(pos, s.Bases[pos]) != baseClass(runStart, s.Bases[runStart])) {
					line.Spans = append(line.Spans, span{
						Class: baseClass(runStart, s.Bases[runStart]),
						Text:  s.Bases[runStart:pos],
					})
					runStart = pos
				}
			}
			c.Lines = append(c.Lines, line)
		}
		chunks = append(chunks, c)
	}
	return chunks
}

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"comma": comma,
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Alignment Viewer</title>
    <style>
        body {
            font-family: 'Courier New', monospace;
            margin: 0;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .stats {
            background-color: white;
            padding: 15px;
            margin-bottom: 20px;
            border-radius: 5px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .heatmap-container {
            overflow-x: auto;
            margin-top: 15px;
        }
        .heatmap-table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .heatmap-table th,
        .heatmap-table td {
            border: 1px solid #ddd;
            padding: 8px;
            text-align: center;
            min-width: 80px;
            font-size: 11px;
        }
        .heatmap-table th {
            background-color: #34495e;
            color: white;
            font-weight: bold;
            writing-mode: vertical-rl;
            text-orientation: mixed;
            max-width: 30px;
            padding: 8px 4px;
        }
        .heatmap-table td.row-header {
            background-color: #34495e;
            color: white;
            font-weight: bold;
            text-align: left;
            writing-mode: horizontal-tb;
            max-width: 200px;
            overflow: hidden;
            text-overflow: ellipsis;
            white-space: nowrap;
        }
        .heatmap-table td.heatmap-cell {
            font-weight: bold;
            cursor: help;
        }
        .heatmap-table td.diagonal {
            background-color: #95a5a6;
            color: #7f8c8d;
        }
        .pairwise-table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 15px;
        }
        .pairwise-table th,
        .pairwise-table td {
            border: 1px solid #ddd;
            padding: 8px;
            text-align: left;
        }
        .pairwise-table th {
            background-color: #34495e;
            color: white;
            font-weight: bold;
        }
        .pairwise-table tr:nth-child(even) {
            background-color: #f2f2f2;
        }
        .alignment {
            background-color: white;
            padding: 15px;
            border-radius: 5px;
            overflow-x: auto;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .seq-name {
            display: inline-block;
            width: 300px;
            font-weight: bold;
            background-color: #ecf0f1;
            padding: 2px 5px;
            margin: 2px 0;
            white-space: nowrap;
            overflow: hidden;
            text-overflow: ellipsis;
        }
        .seq-line {
            margin: 2px 0;
            white-space: nowrap;
            display: flex;
            align-items: center;
        }
        .seq-sequence {
            flex-shrink: 0;
            white-space: nowrap;
        }
        .match { color: #27ae60; }
        .diff {
            background-color: #e74c3c;
            color: white;
            font-weight: bold;
            padding: 0 2px;
        }
        .gap { color: #95a5a6; }
        .ambig {
            background-color: #f39c12;
            color: white;
            font-weight: bold;
            padding: 0 2px;
        }
        .position-marker {
            color: #7f8c8d;
            font-size: 10px;
            margin-top: 15px;
        }
        .legend {
            color: #7f8c8d;
            margin-bottom: 15px;
        }
        .snp-range {
            font-size: 12px;
            color: #7f8c8d;
            margin-top: 5px;
        }
    </style>
</head>
<body>
    <div class="stats">
        <h2>Summary Statistics</h2>
        <p><strong>Number of sequences:</strong> {{.Stats.Sequences}}</p>
        <p><strong>Alignment length:</strong> {{comma .Stats.Columns}} bp</p>
        <p><strong>Positions with gaps:</strong> {{comma .Stats.GapColumns}}</p>
        <p><strong>Positions with ambiguity codes:</strong> {{comma .Stats.AmbiguousColumns}}</p>
        <p><strong>Usable positions:</strong> {{comma .Stats.UsableColumns}}</p>
        <p><strong>Variable sites (any variation):</strong> {{comma .Stats.VariantColumns}}</p>
{{- if .ShowRange}}
        <p><strong>Pairwise SNP range:</strong> {{comma .Stats.MinSNPs}} - {{comma .Stats.MaxSNPs}}</p>
{{- end}}
{{- with .TwoSeqs}}
        <p><strong>Pairwise SNPs:</strong> {{comma .SNPs}}</p>
        <p><strong>Identity:</strong> {{printf "%.2f" .Identity}}%</p>
{{- end}}
{{- if .Pairs}}
        <h3>Pairwise SNP Distance Matrix (Heatmap)</h3>
        <p class="snp-range">Color scale: Blue (fewer SNPs) &rarr; Red (more SNPs)</p>
        <div class="heatmap-container">
            <table class="heatmap-table">
                <thead>
                    <tr>
                        <th></th>
{{- range .Heat.Cols}}
                        <th title="{{.Full}}">{{.Short}}</th>
{{- end}}
                    </tr>
                </thead>
                <tbody>
{{- range .Heat.Rows}}
                    <tr>
                        <td class="row-header" title="{{.Name.Full}}">{{.Name.Short}}</td>
{{- range .Cells}}
{{- if .Diagonal}}
                        <td class="diagonal heatmap-cell">-</td>
{{- else}}
                        <td class="heatmap-cell" style="{{.Style}}" title="{{.Title}}">{{.SNPs}}</td>
{{- end}}
{{- end}}
                    </tr>
{{- end}}
                </tbody>
            </table>
        </div>
        <h3>Detailed Pairwise Comparisons</h3>
        <table class="pairwise-table">
            <thead>
                <tr>
                    <th>Sequence 1</th>
                    <th>Sequence 2</th>
                    <th>SNPs</th>
                    <th>Usable Positions</th>
                    <th>Identity (%)</th>
                </tr>
            </thead>
            <tbody>
{{- range .Pairs}}
                <tr>
                    <td>{{.A}}</td>
                    <td>{{.B}}</td>
                    <td>{{.SNPs}}</td>
                    <td>{{.Usable}}</td>
                    <td>{{.Identity}}</td>
                </tr>
{{- end}}
            </tbody>
        </table>
{{- end}}
    </div>
    <div class="alignment">
        <h2>Alignment Visualization</h2>
        <div class="legend">
            Legend: <span class="match">Match</span> |
            <span class="diff">SNP</span> |
            <span class="gap">Gap</span> |
            <span class="ambig">Ambiguous</span>
        </div>
        <div class="alignment-content">
{{- range .Chunks}}
        <div style="margin: 20px 0;">
        <div class="position-marker">{{.Label}}</div>
{{- range .Lines}}
        <div class="seq-line">
            <span class="seq-name" title="{{.Name.Full}}">{{.Name.Short}}</span>
            <span class="seq-sequence">{{range .Spans}}<span class="{{.Class}}">{{.Text}}</span>{{end}}</span>
        </div>
{{- end}}
        </div>
{{- end}}
        </div>
    </div>
</body>
</html>
`))
