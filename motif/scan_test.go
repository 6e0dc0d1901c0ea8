package motif

import (
	"github.com/dasnellings/primerScan/contig"
	"testing"
)

func forward(set Set) Combination {
	combos, _ := Combinations(set)
	return combos[0]
}

func TestScanExample(t *testing.T) {
	c := contig.Contig{Header: "seq1", Seq: "AAAGTCGATTT"}
	res, counter := Scan(0, c, forward(Set{"GTC", "TTT", ""}), Counter{})

	if len(res.Primer1) != 1 || res.Primer1[0].Start != 3 || res.Primer1[0].Len != 3 {
		t.Errorf("problem with primer1 matches: %v", res.Primer1)
	}
	if len(res.Primer2) != 1 || res.Primer2[0].Start != 8 || res.Primer2[0].Len != 3 {
		t.Errorf("problem with primer2 matches: %v", res.Primer2)
	}
	if len(res.Probe) != 0 {
		t.Errorf("empty probe should never match: %v", res.Probe)
	}
	if len(res.Distances) != 1 || res.Distances[0] != 8 {
		t.Errorf("expected a single 8bp distance, got %v", res.Distances)
	}
	if counter != (Counter{1, 1, 0}) {
		t.Errorf("unexpected counter %v", counter)
	}
	if res.Primer1[0].Anchor != "pr1_1" || res.Primer2[0].Anchor != "pr2_1" {
		t.Errorf("unexpected anchors %s %s", res.Primer1[0].Anchor, res.Primer2[0].Anchor)
	}
}

func TestScanCaseInsensitive(t *testing.T) {
	c := contig.Contig{Header: "seq1", Seq: "ccgtcNNttTacg"}
	res, _ := Scan(0, c, forward(Set{"gtc", "TTT", "ACG"}), Counter{})
	if len(res.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %v", res.Matches)
	}
	if res.Matches[0].Start != 2 || res.Matches[1].Start != 7 || res.Matches[2].Start != 10 {
		t.Errorf("offsets should refer to the original sequence: %v", res.Matches)
	}
	if c.Seq[res.Matches[1].Start:res.Matches[1].End()] != "ttT" {
		t.Errorf("match does not cover original text: %s", c.Seq[res.Matches[1].Start:res.Matches[1].End()])
	}
}

func TestScanPriority(t *testing.T) {
	// primer1 and primer2 both start at offset 0, the probe overlaps both
	c := contig.Contig{Header: "seq1", Seq: "ACGTACGT"}
	res, _ := Scan(0, c, forward(Set{"ACG", "ACGTA", "GTAC"}), Counter{})
	if len(res.Primer2) != 0 {
		t.Errorf("primer2 should lose to primer1 at the same start: %v", res.Primer2)
	}
	if len(res.Primer1) != 2 || res.Primer1[0].Start != 0 || res.Primer1[1].Start != 4 {
		t.Errorf("unexpected primer1 matches: %v", res.Primer1)
	}
	if len(res.Probe) != 0 {
		t.Errorf("probe overlapping primer1 should not be reported: %v", res.Probe)
	}
}

func TestScanNonOverlap(t *testing.T) {
	c := contig.Contig{Header: "seq1", Seq: "AAAAAAAAAATTATTAAAATTTTA"}
	res, _ := Scan(0, c, forward(Set{"AAA", "TTA", "AT"}), Counter{})
	covered := make([]bool, len(c.Seq))
	for _, m := range res.Matches {
		for i := m.Start; i < m.End(); i++ {
			if covered[i] {
				t.Fatalf("position %d covered by more than one match: %v", i, res.Matches)
			}
			covered[i] = true
		}
	}
	// three AAA in the leading run of ten, one more in AAAA
	if len(res.Primer1) != 4 {
		t.Errorf("expected 4 primer1 matches, got %v", res.Primer1)
	}
}

func TestScanCounterCarriesAcrossContigs(t *testing.T) {
	combo := forward(Set{"GTC", "TTT", ""})
	var counter Counter
	var res SeqResult
	res, counter = Scan(0, contig.Contig{Seq: "GTCTTT"}, combo, counter)
	if res.Primer1[0].Anchor != "pr1_1" {
		t.Errorf("unexpected anchor %s", res.Primer1[0].Anchor)
	}
	res, counter = Scan(1, contig.Contig{Seq: "GTCAGTC"}, combo, counter)
	if res.Primer1[0].Anchor != "pr1_2" || res.Primer1[1].Anchor != "pr1_3" {
		t.Errorf("anchors should continue across contigs: %v", res.Primer1)
	}
	if res.Primer1[0].Contig != 1 {
		t.Errorf("match should record contig index 1, got %d", res.Primer1[0].Contig)
	}
	if counter != (Counter{3, 1, 0}) {
		t.Errorf("unexpected counter %v", counter)
	}
	if len(res.Distances) != 0 {
		t.Errorf("no primer2 in second contig so no distances expected, got %v", res.Distances)
	}
}
