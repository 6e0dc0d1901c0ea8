package main

import (
	"bytes"
	"errors"
	"github.com/dasnellings/primerScan/contig"
	"github.com/dasnellings/primerScan/motif"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFasta = ">contig_1 sample\nCCAGTCGATTT\nCCGGACATAC\n>contig_2\nnnnngtcagattt\n"

func TestScan(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sample.fasta")
	if err := os.WriteFile(input, []byte(testFasta), 0644); err != nil {
		t.Fatal(err)
	}

	s := scanSettings{
		Input:        input,
		Motifs:       motif.Set{"GTC", "TTT", "CCGG"},
		OutDir:       filepath.Join(dir, "results"),
		BedFile:      filepath.Join(dir, "matches.bed"),
		AmpliconFile: filepath.Join(dir, "amplicons.fa"),
		PlotFile:     filepath.Join(dir, "hist.svg"),
		Bins:         5,
		Threads:      2,
		Verbose:      1,
	}
	var summary bytes.Buffer
	outfile, err := scan(s, log.New(io.Discard, "", 0), &summary)
	if err != nil {
		t.Fatal(err)
	}
	if outfile != filepath.Join(dir, "results", "sample_highlighted.html") {
		t.Errorf("unexpected report path %s", outfile)
	}

	html, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	for _, anchor := range []string{"pr1_1", "pr1_2", "pr2_1", "pr2_2", "pr3_1"} {
		if !strings.Contains(string(html), `id="`+anchor+`"`) {
			t.Errorf("report is missing anchor %s", anchor)
		}
	}
	for _, file := range []string{s.BedFile, s.AmpliconFile, s.PlotFile} {
		if _, err = os.Stat(file); err != nil {
			t.Errorf("expected output %s: %v", file, err)
		}
	}
	if !strings.Contains(summary.String(), "total\t5\n") || !strings.Contains(summary.String(), "amplicons\t2\n") {
		t.Errorf("unexpected summary:\n%s", summary.String())
	}
}

func TestScanErrors(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(io.Discard, "", 0)

	_, err := scan(scanSettings{Input: filepath.Join(dir, "missing.fasta"), Motifs: motif.Set{"A", "C", ""}}, logger, io.Discard)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a missing file error, got %v", err)
	}

	empty := filepath.Join(dir, "empty.fasta")
	if err = os.WriteFile(empty, []byte(">header only\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = scan(scanSettings{Input: empty, Motifs: motif.Set{"A", "C", ""}}, logger, io.Discard)
	if !errors.Is(err, contig.ErrNoSequences) {
		t.Errorf("expected ErrNoSequences, got %v", err)
	}
}

func TestWriteCombos(t *testing.T) {
	contigs := []contig.Contig{{Header: "seq", Seq: "GGCCGATAAGGTTT"}}
	res, err := motif.Select(contigs, motif.Set{"ATCGG", "TTT", ""}, 1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	writeCombos(&buf, res)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != motif.NumCombinations+1 {
		t.Fatalf("expected a header and %d lines, got %d", motif.NumCombinations, len(lines))
	}
	if lines[2] != "1\tCCGAT\tTTT\t\t1\t1\t0\t2\ttrue" {
		t.Errorf("unexpected line for the selected combination: %q", lines[2])
	}
	if !strings.HasSuffix(lines[1], "false") {
		t.Errorf("combination 0 should not be selected: %q", lines[1])
	}
}

func TestFindCommand(t *testing.T) {
	for _, name := range []string{"scan", "combos", "revcomp", "version"} {
		if findCommand(name) == nil {
			t.Errorf("missing command %s", name)
		}
	}
	if findCommand("align") != nil {
		t.Error("unexpected command align")
	}
}
