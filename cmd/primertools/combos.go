package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/primerScan/contig"
	"github.com/dasnellings/primerScan/motif"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"os"
)

func combosUsage(combosFlags *flag.FlagSet) {
	fmt.Print(
		"combos - count matches for each forward/reverse complement orientation of the primers and probe\n\n" +
			"Usage:\n" +
			"  primertools combos [options] -i input.fasta -p1 FORWARD -p2 REVERSE [-probe PROBE] > combos.tsv\n\n" +
			"Options:\n")
	combosFlags.PrintDefaults()
}

func runCombos(args []string) {
	var err error
	combosFlags := flag.NewFlagSet("combos", flag.ExitOnError)

	input := combosFlags.String("i", "", "Input fasta file. May be gzipped.")
	p1 := combosFlags.String("p1", "", "Primer 1 sequence.")
	p2 := combosFlags.String("p2", "", "Primer 2 sequence.")
	probe := combosFlags.String("probe", "", "Optional probe sequence.")
	threads := combosFlags.Int("threads", 1, "Number of orientation combinations evaluated in parallel.")

	err = combosFlags.Parse(args)
	exception.PanicOnErr(err)
	combosFlags.Usage = func() { combosUsage(combosFlags) }

	if *input == "" || *p1 == "" || *p2 == "" {
		combosFlags.Usage()
		errExit("\nERROR: must input a fasta file with -i and primers with -p1 and -p2")
	}

	contigs, err := contig.Read(*input)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	res, err := motif.Select(contigs, motif.Set{*p1, *p2, *probe}, *threads)
	for i := range res.Rejected {
		fmt.Fprintln(os.Stderr, res.Rejected[i])
	}
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	writeCombos(os.Stdout, res)
}

// writeCombos writes one tsv line per evaluated combination, marking the selected one.
func writeCombos(out io.Writer, res motif.Result) {
	var err error
	_, err = fmt.Fprintln(out, "index\tprimer1\tprimer2\tprobe\tprimer1Matches\tprimer2Matches\tprobeMatches\ttotal\tselected")
	exception.PanicOnErr(err)
	var c motif.Combination
	for _, t := range res.Trials {
		c = t.Combination
		_, err = fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%t\n",
			c.Index, c.Motifs[motif.Primer1], c.Motifs[motif.Primer2], c.Motifs[motif.Probe],
			t.Counter[motif.Primer1], t.Counter[motif.Primer2], t.Counter[motif.Probe], t.Total,
			c.Index == res.Best.Index)
		exception.PanicOnErr(err)
	}
}
