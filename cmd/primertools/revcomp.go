package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/primerScan/motif"
	"github.com/vertgenlab/gonomics/exception"
)

func revcompUsage(revcompFlags *flag.FlagSet) {
	fmt.Print(
		"revcomp - print the reverse complement of each sequence given as an argument\n\n" +
			"Usage:\n" +
			"  primertools revcomp SEQ [SEQ...]\n\n")
	revcompFlags.PrintDefaults()
}

func runRevcomp(args []string) {
	var err error
	revcompFlags := flag.NewFlagSet("revcomp", flag.ExitOnError)
	err = revcompFlags.Parse(args)
	exception.PanicOnErr(err)
	revcompFlags.Usage = func() { revcompUsage(revcompFlags) }

	if revcompFlags.NArg() == 0 {
		revcompFlags.Usage()
		errExit("\nERROR: must input at least one sequence")
	}

	var rc string
	for _, seq := range revcompFlags.Args() {
		rc, err = motif.ReverseComplement(seq)
		if err != nil {
			errExit("ERROR: " + err.Error())
		}
		fmt.Println(rc)
	}
}
