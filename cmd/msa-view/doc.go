// msa-view compares the sequences of a multiple-sequence alignment and
// renders the result as an HTML report and/or TSV tables: per-column
// variation (gap / ambiguous / variant columns) and pairwise SNP distances
// with identity percentages for every sequence pair.
//
// The input is a FASTA file. When the sequences are not already aligned
// (unequal lengths) and -auto-align is set, an external alignment tool
// (MAFFT or MUSCLE, whichever -aligner selects) is run first and the
// aligned FASTA is saved next to the report.
package main
