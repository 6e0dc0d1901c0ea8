package report

import (
	"fmt"
	"github.com/dasnellings/primerScan/contig"
	"github.com/dasnellings/primerScan/motif"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
)

// Amplicons returns the region spanned by each primer1/primer2 pair in res as
// a fasta record named <contig>_amplicon_<n>_<length>bp, n counting from 1
// within each contig. Regions containing characters that cannot be stored as
// dna.Base are skipped and counted in skipped.
func Amplicons(contigs []contig.Contig, res motif.Result) (ans []fasta.Fasta, skipped int) {
	var s motif.SeqResult
	var seq, region string
	var start, i int
	for _, s = range res.Sequences {
		seq = contigs[s.Contig].Seq
		for i = range s.Distances {
			start = s.Primer1[i].Start
			if s.Primer2[i].Start < start {
				start = s.Primer2[i].Start
			}
			region = seq[start : start+s.Distances[i]]
			if !representable(region) {
				skipped++
				continue
			}
			ans = append(ans, fasta.Fasta{
				Name: fmt.Sprintf("%s_amplicon_%d_%dbp", contigs[s.Contig].Name(), i+1, s.Distances[i]),
				Seq:  dna.StringToBases(region),
			})
		}
	}
	return ans, skipped
}

// WriteAmplicons writes the amplicons of res to filename.
func WriteAmplicons(filename string, contigs []contig.Contig, res motif.Result) (written, skipped int) {
	records, skipped := Amplicons(contigs, res)
	fasta.Write(filename, records)
	return len(records), skipped
}

func representable(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T', 'N', 'a', 'c', 'g', 't', 'n', '-':
		default:
			return false
		}
	}
	return true
}
