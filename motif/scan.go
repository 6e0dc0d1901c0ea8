package motif

import (
	"github.com/dasnellings/primerScan/contig"
	"strings"
)

// Scan locates the motifs of combo in c with a single left to right pass.
// At each position the motifs are tried in class order (primer1, primer2,
// probe) and the first that matches is recorded, after which the scan resumes
// at the end of the match. Matches therefore never overlap, and a lower
// priority motif starting at the same position as a higher priority one is
// never reported. Anchor ids are drawn from counter, and the advanced counter
// is returned so that ids stay unique across the contigs of one trial.
func Scan(idx int, c contig.Contig, combo Combination, counter Counter) (SeqResult, Counter) {
	ans := SeqResult{Contig: idx, Header: c.Header}
	seq := upper(c.Seq)

	var m Match
	var j int
	var matched bool
	for i := 0; i < len(seq); {
		matched = false
		for j = 0; j < NumClasses; j++ {
			if combo.Motifs[j] == "" || !strings.HasPrefix(seq[i:], combo.Motifs[j]) {
				continue
			}
			m = Match{Class: Class(j), Contig: idx, Start: i, Len: len(combo.Motifs[j])}
			m.Anchor, counter = counter.Next(m.Class)
			ans.Matches = append(ans.Matches, m)
			switch m.Class {
			case Primer1:
				ans.Primer1 = append(ans.Primer1, m)
			case Primer2:
				ans.Primer2 = append(ans.Primer2, m)
			case Probe:
				ans.Probe = append(ans.Probe, m)
			}
			i += m.Len
			matched = true
			break
		}
		if !matched {
			i++
		}
	}

	ans.Distances = Distances(starts(ans.Primer1), starts(ans.Primer2), len(combo.Motifs[Primer1]), len(combo.Motifs[Primer2]))
	return ans, counter
}

func starts(m []Match) []int {
	if len(m) == 0 {
		return nil
	}
	ans := make([]int, len(m))
	for i := range m {
		ans[i] = m[i].Start
	}
	return ans
}
