package report

import (
	"github.com/dasnellings/primerScan/contig"
	"github.com/dasnellings/primerScan/motif"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// MatchBeds converts every match in res to a 4 column bed record named by its anchor.
func MatchBeds(contigs []contig.Contig, res motif.Result) []bed.Bed {
	var ans []bed.Bed
	var m motif.Match
	for i := range res.Sequences {
		for _, m = range res.Sequences[i].Matches {
			ans = append(ans, bed.Bed{
				Chrom:             contigs[m.Contig].Name(),
				ChromStart:        m.Start,
				ChromEnd:          m.End(),
				Name:              m.Anchor,
				FieldsInitialized: 4,
			})
		}
	}
	return ans
}

// WriteBed writes the matches in res to filename and returns the number of records written.
func WriteBed(filename string, contigs []contig.Contig, res motif.Result) int {
	out := fileio.EasyCreate(filename)
	beds := MatchBeds(contigs, res)
	for i := range beds {
		bed.WriteBed(out, beds[i])
	}
	err := out.Close()
	exception.PanicOnErr(err)
	return len(beds)
}
