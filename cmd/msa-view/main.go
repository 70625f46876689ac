package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/msa/align"
	"github.com/grailbio/msa/aligner"
	"github.com/grailbio/msa/encoding/fasta"
	"github.com/grailbio/msa/render"
)

var (
	outPrefix   = flag.String("out", "msa-view", "Output path prefix")
	format      = flag.String("format", "html", "Output format; 'html', 'tsv', or 'both'")
	alignTool   = flag.String("aligner", aligner.DefaultOpts.Tool, "External alignment tool for unaligned input; 'mafft' or 'muscle'")
	autoAlign   = flag.Bool("auto-align", false, "Align the input with -aligner when the sequences are not already aligned")
	timeout     = flag.Duration("timeout", aligner.DefaultOpts.Timeout, "Time limit for the external alignment tool; 0 disables")
	parallelism = flag.Int("parallelism", align.DefaultOpts.Parallelism, "Number of simultaneous pairwise comparison jobs; <= 1 compares serially")
)

func msaViewUsage() {
	fmt.Printf("Usage: %s [OPTIONS] fastapath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = msaViewUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Exactly one positional argument (fastapath) expected, got %d; see -help", flag.NArg())
	}
	switch *format {
	case "html", "tsv", "both":
	default:
		log.Fatalf("Invalid -format %q; 'html', 'tsv', or 'both' expected", *format)
	}
	ctx := vcontext.Background()

	data := readInput(ctx, flag.Arg(0))
	set, err := fasta.New(bytes.NewReader(data))
	if err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
	if set.NumSeqs() < 2 {
		log.Fatalf("%s: %v", flag.Arg(0), align.ErrInsufficientSequences)
	}
	if !set.Aligned() {
		if !*autoAlign {
			_, err := set.Alignment()
			log.Fatalf("%s: %v (pass -auto-align to align with %s)", flag.Arg(0), err, *alignTool)
		}
		set = runAligner(ctx, data)
	}

	a, err := set.Alignment()
	if err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
	report := render.NewReport(a, align.Opts{Parallelism: *parallelism})
	log.Printf("compared %d sequences over %d columns (%d pairs)",
		report.Stats.Sequences, report.Stats.Columns, len(report.Pairs))

	if *format == "html" || *format == "both" {
		writeOutput(ctx, *outPrefix+".html", func(w io.Writer) error {
			return render.HTML(w, report)
		})
	}
	if *format == "tsv" || *format == "both" {
		writeOutput(ctx, *outPrefix+".pairs.tsv", func(w io.Writer) error {
			return render.WritePairsTSV(w, report)
		})
		writeOutput(ctx, *outPrefix+".columns.tsv", func(w io.Writer) error {
			return render.WriteColumnsTSV(w, report)
		})
	}
}

func readInput(ctx context.Context, path string) []byte {
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer in.Close(ctx) // nolint: errcheck
	data, err := ioutil.ReadAll(in.Reader(ctx))
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	return data
}

// runAligner aligns the raw input with the configured external tool, saves
// the aligned FASTA next to the other outputs, and re-parses it.
func runAligner(ctx context.Context, data []byte) *fasta.Set {
	log.Printf("input sequences are not aligned; running %s", *alignTool)
	aligned, err := aligner.Align(ctx, data, aligner.Opts{Tool: *alignTool, Timeout: *timeout})
	if err != nil {
		log.Fatalf("%v", err)
	}
	alignedPath := *outPrefix + ".aligned.fasta"
	writeOutput(ctx, alignedPath, func(w io.Writer) error {
		_, err := w.Write(aligned)
		return err
	})
	log.Printf("alignment complete, wrote %s", alignedPath)
	set, err := fasta.New(bytes.NewReader(aligned))
	if err != nil {
		log.Fatalf("%s output: %v", *alignTool, err)
	}
	return set
}

func writeOutput(ctx context.Context, path string, write func(io.Writer) error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	if err := write(out.Writer(ctx)); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	if err := out.Close(ctx); err != nil {
		log.Fatalf("close %s: %v", path, err)
	}
	log.Debug.Printf("wrote %s", path)
}
