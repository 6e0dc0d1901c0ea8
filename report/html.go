// Package report renders the output of a motif scan: an html page with
// highlighted matches and a navigation overlay, plus bed, fasta, and plot
// exports of the same result.
package report

import (
	"fmt"
	"github.com/dasnellings/primerScan/contig"
	"github.com/dasnellings/primerScan/motif"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/plot/palette"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var buttonLabels = [motif.NumClasses]string{"Primer 1", "Primer 2", "Probe"}

type segment struct {
	Text   string
	Anchor string // empty for unmatched text
	Color  template.CSS
}

type contigBlock struct {
	Header   string
	Segments []segment
}

type contigLengths struct {
	Name      string
	Distances []int
}

type button struct {
	Label  string
	Prefix string
	Max    int
	Color  template.CSS
}

type page struct {
	Title       string
	Contigs     []contigBlock
	Amplicons   int
	Lengths     []contigLengths
	Found       bool
	Combination string
	Buttons     []button
}

// OutputPath returns the report path for input inside outdir and creates
// outdir if it does not exist. The report is named after the input file with
// its extension replaced by "_highlighted.html".
func OutputPath(outdir, input string) (string, error) {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return "", fmt.Errorf("could not create output directory: %w", err)
	}
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outdir, base+"_highlighted.html"), nil
}

// WriteHTMLFile renders the report for res to filename.
func WriteHTMLFile(filename string, contigs []contig.Contig, res motif.Result, pal palette.Palette) {
	out := fileio.EasyCreate(filename)
	err := WriteHTML(out, filepath.Base(filename), contigs, res, pal)
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
}

// WriteHTML renders the report for res to w. res.Sequences must be the
// result of scanning contigs, in the same order.
func WriteHTML(w io.Writer, title string, contigs []contig.Contig, res motif.Result, pal palette.Palette) error {
	if pal == nil {
		pal = DefaultPalette()
	}
	return reportTemplate.Execute(w, buildPage(title, contigs, res, pal))
}

func buildPage(title string, contigs []contig.Contig, res motif.Result, pal palette.Palette) page {
	p := page{
		Title:       title,
		Contigs:     make([]contigBlock, len(res.Sequences)),
		Found:       res.Counter.Total() > 0,
		Combination: res.Best.String(),
	}

	var s motif.SeqResult
	for i := range res.Sequences {
		s = res.Sequences[i]
		p.Contigs[i] = contigBlock{Header: s.Header, Segments: segments(contigs[s.Contig].Seq, s.Matches, pal)}
		if len(s.Distances) > 0 {
			p.Amplicons += len(s.Distances)
			p.Lengths = append(p.Lengths, contigLengths{Name: contigs[s.Contig].Name(), Distances: s.Distances})
		}
	}

	for c := 0; c < motif.NumClasses; c++ {
		if res.Counter[c] == 0 {
			continue
		}
		p.Buttons = append(p.Buttons, button{
			Label:  buttonLabels[c],
			Prefix: motif.Class(c).AnchorPrefix(),
			Max:    res.Counter[c],
			Color:  cssColor(pal, c),
		})
	}
	return p
}

// segments splits seq into alternating plain and highlighted runs. matches
// must be sorted by start and must not overlap, as produced by motif.Scan.
func segments(seq string, matches []motif.Match, pal palette.Palette) []segment {
	ans := make([]segment, 0, 2*len(matches)+1)
	var pos int
	for _, m := range matches {
		if m.Start > pos {
			ans = append(ans, segment{Text: seq[pos:m.Start]})
		}
		ans = append(ans, segment{Text: seq[m.Start:m.End()], Anchor: m.Anchor, Color: cssColor(pal, int(m.Class))})
		pos = m.End()
	}
	if pos < len(seq) {
		ans = append(ans, segment{Text: seq[pos:]})
	}
	return ans
}

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; }
pre { white-space: pre-wrap; word-wrap: break-word; overflow-wrap: break-word; font-size: 16px; width: 100%; }
.primer { font-weight: bold; font-size: 16px; }
#primer-navigation { position: fixed; top: 10px; right: 10px; width: 570px; background: rgba(255, 255, 255, 0.96); padding: 10px; border-radius: 18px; box-shadow: 0px 0px 4px lightblue; z-index: 1; font-size: 14px; }
.styled-button { cursor: pointer; display: inline-block; padding: 0 5px; font-size: 16px; width: 25px; text-align: center; border-radius: 8px; color: white; box-shadow: 1px 1px 1px rgba(0, 140, 255); user-select: none; }
.styled-button:hover { box-shadow: 1px 1px 6px rgba(0, 140, 255); }
.buttons { margin-right: 12px; user-select: none; }
.counter { color: dodgerblue; }
</style>
</head>
<body>
{{range .Contigs}}<br>
<pre><strong>&gt;{{.Header}}</strong>
{{range .Segments}}{{if .Anchor}}<span id="{{.Anchor}}" class="primer" style="background-color: {{.Color}}">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}</pre>
{{end}}
<div id="primer-navigation">
{{if .Lengths}}&#129516; <b>Found:</b> {{.Amplicons}} sequence(s)<br>
&#128295; <b>Length:</b>{{range .Lengths}}<br>{{.Name}}:{{range $i, $d := .Distances}}{{if $i}},{{end}} {{$d}} bp{{end}}{{end}}<br><br>
{{else if .Found}}&#129516; <b>Found:</b><br><br>
{{else}}&#129516; <b>No data found!</b><br>
{{end}}<b>Orientation:</b> {{.Combination}}<br>
{{range .Buttons}}<span class="buttons" data-prefix="{{.Prefix}}" data-max="{{.Max}}">
{{.Label}}
<a class="styled-button up" style="background-color: {{.Color}}">&#11014;</a>
<a class="styled-button down" style="background-color: {{.Color}}">&#11015;</a>
<span class="counter"><span class="count">0</span>/{{.Max}}</span>
</span>
{{end}}</div>
<script>
document.querySelectorAll('#primer-navigation .buttons').forEach(function (group) {
	var prefix = group.dataset.prefix;
	var max = parseInt(group.dataset.max, 10);
	var label = group.querySelector('.count');
	var count = 0;
	var jump = function () {
		label.textContent = count;
		window.location.hash = '';
		window.location.hash = prefix + count;
	};
	group.querySelector('.up').addEventListener('click', function () {
		count = count >= max ? 1 : count + 1;
		jump();
	});
	group.querySelector('.down').addEventListener('click', function () {
		count = count > 1 ? count - 1 : max;
		jump();
	});
});
</script>
</body>
</html>
`
