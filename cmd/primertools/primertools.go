// Command primertools locates two primers and an optional probe in the records
// of a fasta file, trying both orientations of each, and writes an html report
// with the matches highlighted.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.1.0"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands lists every primertools command in the order shown by usage.
var SubCommands = []*subcommand{
	{"scan", runScan, "highlight primer and probe matches in a fasta file"},
	{"combos", runCombos, "report match totals for every primer orientation"},
	{"revcomp", runRevcomp, "print the reverse complement of sequences"},
	{"version", runVersion, "print the primertools version"},
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: primertools (locate primers and probes in fasta files)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\tprimertools <command> [options]\n" +
			"\tprimertools <command> -h for command options\n\n" +
			"Commands:\n")

	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

func findCommand(name string) *subcommand {
	for i := range SubCommands {
		if SubCommands[i].name == name {
			return SubCommands[i]
		}
	}
	return nil
}

func runVersion(args []string) {
	fmt.Printf("primertools %s (gonomics %s)\n", version, gonomicsVersion)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "help" {
		flag.Usage()
		return
	}

	command := findCommand(flag.Arg(0))
	if command == nil {
		flag.Usage()
		errExit(fmt.Sprintf("\nERROR: unknown command '%s'", flag.Arg(0)))
	}
	command.function(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
