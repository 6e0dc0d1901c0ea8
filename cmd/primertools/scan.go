package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/dasnellings/primerScan/contig"
	"github.com/dasnellings/primerScan/motif"
	"github.com/dasnellings/primerScan/report"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"log"
	"os"
	"time"
)

type scanSettings struct {
	Input        string
	Motifs       motif.Set
	OutDir       string
	BedFile      string
	AmpliconFile string
	PlotFile     string
	Bins         int
	Threads      int
	Verbose      int
}

func scanUsage(scanFlags *flag.FlagSet) {
	fmt.Print(
		"scan - try every forward/reverse complement orientation of two primers and a probe,\n" +
			"\tkeep the orientation with the most matches and highlight them in an html report\n\n" +
			"Usage:\n" +
			"  primertools scan [options] -i input.fasta -p1 FORWARD -p2 REVERSE [-probe PROBE]\n\n" +
			"Options:\n")
	scanFlags.PrintDefaults()
}

func runScan(args []string) {
	var err error
	scanFlags := flag.NewFlagSet("scan", flag.ExitOnError)

	input := scanFlags.String("i", "", "Input fasta file. May be gzipped.")
	p1 := scanFlags.String("p1", "", "Primer 1 sequence (A, C, G, T only).")
	p2 := scanFlags.String("p2", "", "Primer 2 sequence (A, C, G, T only).")
	probe := scanFlags.String("probe", "", "Optional probe sequence.")
	outdir := scanFlags.String("o", "results", "Output directory for the html report.")
	bedfile := scanFlags.String("bed", "", "Output a bed file with one record per match, named by anchor.")
	amplicons := scanFlags.String("amplicons", "", "Output a fasta file with the region spanned by each primer pair.")
	plotfile := scanFlags.String("plot", "", "Output a histogram of primer distances. Format is taken from the extension (png, svg, pdf).")
	bins := scanFlags.Int("bins", 20, "Number of bins in the -plot histogram.")
	threads := scanFlags.Int("threads", 1, "Number of orientation combinations evaluated in parallel.")
	logDir := scanFlags.String("log", "logs", "Directory for the run log. Empty disables the log file.")
	verbose := scanFlags.Int("v", 0, "Verbose output by setting to >0.")

	err = scanFlags.Parse(args)
	exception.PanicOnErr(err)
	scanFlags.Usage = func() { scanUsage(scanFlags) }

	if *input == "" || *p1 == "" || *p2 == "" {
		scanFlags.Usage()
		errExit("\nERROR: must input a fasta file with -i and primers with -p1 and -p2")
	}

	logger, closeLog := newLogger(*logDir)
	s := scanSettings{
		Input:        *input,
		Motifs:       motif.Set{*p1, *p2, *probe},
		OutDir:       *outdir,
		BedFile:      *bedfile,
		AmpliconFile: *amplicons,
		PlotFile:     *plotfile,
		Bins:         *bins,
		Threads:      *threads,
		Verbose:      *verbose,
	}
	_, err = scan(s, logger, os.Stdout)
	if err != nil {
		logger.Printf("[X] Error: %v", err)
		closeLog()
		errExit("ERROR: " + err.Error())
	}
	closeLog()
}

// scan runs the full pipeline described by s, writes the summary to out, and
// returns the path of the html report.
func scan(s scanSettings, logger *log.Logger, out io.Writer) (string, error) {
	start := time.Now()
	logger.Println("[>>>] Processing...")
	logger.Printf("Starting processing for %s", s.Input)

	contigs, err := contig.Read(s.Input)
	if err != nil {
		return "", err
	}
	if s.Verbose > 0 {
		logger.Printf("read %d sequences from %s", len(contigs), s.Input)
	}

	res, err := motif.Select(contigs, s.Motifs, s.Threads)
	for i := range res.Rejected {
		logger.Println(res.Rejected[i])
	}
	if err != nil {
		return "", err
	}

	if s.Verbose > 0 {
		for _, t := range res.Trials {
			logger.Printf("combination %d (%s): %d matches", t.Combination.Index, t.Combination, t.Total)
		}
		if graph := report.TrialGraph(res); graph != "" {
			logger.Printf("\n%s\n", graph)
		}
	}
	logger.Printf("selected combination %d (%s) with %d matches", res.Best.Index, res.Best, res.Total)

	outfile, err := report.OutputPath(s.OutDir, s.Input)
	if err != nil {
		return "", err
	}
	report.WriteHTMLFile(outfile, contigs, res, report.DefaultPalette())

	if s.BedFile != "" {
		n := report.WriteBed(s.BedFile, contigs, res)
		logger.Printf("wrote %d bed records to %s", n, s.BedFile)
	}

	if s.AmpliconFile != "" {
		written, skipped := report.WriteAmplicons(s.AmpliconFile, contigs, res)
		logger.Printf("wrote %d amplicons to %s", written, s.AmpliconFile)
		if skipped > 0 {
			logger.Printf("skipped %d amplicons containing non-nucleotide characters", skipped)
		}
	}

	if s.PlotFile != "" {
		err = report.PlotDistances(s.PlotFile, res.Distances(), s.Bins)
		switch {
		case errors.Is(err, report.ErrNoDistances):
			logger.Println("no primer distances found, skipping plot")
		case err != nil:
			return "", err
		default:
			logger.Printf("wrote distance histogram to %s", s.PlotFile)
		}
	}

	fmt.Fprint(out, report.Summarize(contigs, res))
	logger.Printf("[OK] Processing completed in %d seconds. Output saved to %s", int(time.Since(start).Seconds()), outfile)
	return outfile, nil
}
