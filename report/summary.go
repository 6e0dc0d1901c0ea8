package report

import (
	"fmt"
	"github.com/dasnellings/primerScan/contig"
	"github.com/dasnellings/primerScan/motif"
	"github.com/guptarohit/asciigraph"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"strings"
)

// Summary is a plain text overview of a scan result.
type Summary struct {
	Contigs     int
	Combination string
	Matches     motif.Counter
	Total       int
	Rejected    int
	Spans       int
	Mean        float64
	StdDev      float64
	Median      float64
	Min, Max    int
}

// Summarize collects match counts and distance statistics from res.
func Summarize(contigs []contig.Contig, res motif.Result) Summary {
	ans := Summary{
		Contigs:     len(contigs),
		Combination: res.Best.String(),
		Matches:     res.Counter,
		Total:       res.Total,
		Rejected:    len(res.Rejected),
	}

	d := res.Distances()
	ans.Spans = len(d)
	if len(d) == 0 {
		return ans
	}

	x := make([]float64, len(d))
	for i := range d {
		x[i] = float64(d[i])
	}
	slices.Sort(x)
	ans.Min, ans.Max = int(x[0]), int(x[len(x)-1])
	ans.Mean = stat.Mean(x, nil)
	if len(x) > 1 {
		ans.StdDev = stat.StdDev(x, nil)
	}
	ans.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	return ans
}

// String method for Summary enables easy writing with the fmt package.
func (s Summary) String() string {
	ans := new(strings.Builder)
	fmt.Fprintf(ans, "contigs\t%d\n", s.Contigs)
	fmt.Fprintf(ans, "orientation\t%s\n", s.Combination)
	fmt.Fprintf(ans, "primer1\t%d\n", s.Matches[motif.Primer1])
	fmt.Fprintf(ans, "primer2\t%d\n", s.Matches[motif.Primer2])
	fmt.Fprintf(ans, "probe\t%d\n", s.Matches[motif.Probe])
	fmt.Fprintf(ans, "total\t%d\n", s.Total)
	if s.Rejected > 0 {
		fmt.Fprintf(ans, "rejected combinations\t%d\n", s.Rejected)
	}
	fmt.Fprintf(ans, "amplicons\t%d\n", s.Spans)
	if s.Spans > 0 {
		fmt.Fprintf(ans, "length min/median/max\t%d/%0.1f/%d bp\n", s.Min, s.Median, s.Max)
		fmt.Fprintf(ans, "length mean\t%0.1f +/- %0.1f bp\n", s.Mean, s.StdDev)
	}
	return ans.String()
}

// TrialGraph plots the total number of matches of each evaluated combination
// as an ascii line graph, in enumeration order.
func TrialGraph(res motif.Result) string {
	if len(res.Trials) < 2 {
		return ""
	}
	totals := make([]float64, len(res.Trials))
	for i := range res.Trials {
		totals[i] = float64(res.Trials[i].Total)
	}
	return asciigraph.Plot(totals,
		asciigraph.Height(5),
		asciigraph.Precision(0),
		asciigraph.Caption("matches per orientation combination"))
}
