// Package motif locates literal primer and probe motifs in DNA sequences,
// trying every forward/reverse-complement orientation of the motifs and
// keeping the orientation that yields the most matches.
package motif

import "fmt"

// Class identifies which of the three motifs a match belongs to.
// The order of the constants is the scan priority order.
type Class int

const (
	Primer1 Class = iota
	Primer2
	Probe
)

// NumClasses is the number of motifs in a Set.
const NumClasses = 3

var classNames = [NumClasses]string{"primer1", "primer2", "probe"}

// anchor prefixes used by the navigation overlay of the html report
var anchorPrefix = [NumClasses]string{"pr1_", "pr2_", "pr3_"}

func (c Class) String() string {
	if c < 0 || int(c) >= NumClasses {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return classNames[c]
}

// AnchorPrefix returns the prefix shared by all anchors of class c (e.g. "pr1_").
func (c Class) AnchorPrefix() string {
	return anchorPrefix[c]
}

// Set is the ordered triple of motifs as supplied by the caller: primer1, primer2, probe.
// An empty probe is allowed and never matches.
type Set [NumClasses]string

// Match is a single motif occurrence in a contig.
type Match struct {
	Class  Class
	Contig int // index of the contig in the input
	Start  int // 0-based offset into the original sequence
	Len    int
	Anchor string // unique id across one combination's full run, e.g. "pr1_3"
}

// End returns the exclusive end offset of m.
func (m Match) End() int {
	return m.Start + m.Len
}

// SeqResult holds the output of scanning one contig with one combination.
type SeqResult struct {
	Contig    int
	Header    string
	Primer1   []Match
	Primer2   []Match
	Probe     []Match
	Matches   []Match // all matches of every class in scan order
	Distances []int   // primer1/primer2 spans in bp
}

// ByClass returns the match list for class c.
func (s SeqResult) ByClass(c Class) []Match {
	switch c {
	case Primer1:
		return s.Primer1
	case Primer2:
		return s.Primer2
	default:
		return s.Probe
	}
}

// Count returns the number of matches of all classes.
func (s SeqResult) Count() int {
	return len(s.Matches)
}

// Counter assigns sequential anchor ids per class. The zero value is ready to
// use and is the state at the start of every combination trial.
type Counter [NumClasses]int

// Next increments the counter for class c and returns the new anchor id
// together with the updated Counter.
func (c Counter) Next(class Class) (string, Counter) {
	c[class]++
	return fmt.Sprintf("%s%d", anchorPrefix[class], c[class]), c
}

// Total returns the sum of all class counters.
func (c Counter) Total() int {
	return c[Primer1] + c[Primer2] + c[Probe]
}
