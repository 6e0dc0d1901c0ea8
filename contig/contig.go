// Package contig reads FASTA records without altering the sequence text.
// Unlike gonomics fasta.Read, case and characters outside the DNA alphabet
// are kept as-is so that they can be copied verbatim into reports.
package contig

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"os"
	"strings"
)

// ErrNoSequences is returned when a FASTA file contains no usable records.
var ErrNoSequences = errors.New("no DNA sequences found")

// Contig is one FASTA record.
type Contig struct {
	Header string // header line without the leading '>'
	Seq    string // raw sequence, newlines removed
}

// Name returns the first word of the header, or the whole header if it has no whitespace.
func (c Contig) Name() string {
	f := strings.Fields(c.Header)
	if len(f) == 0 {
		return c.Header
	}
	return f[0]
}

// Read parses the FASTA file at filename. Records without sequence lines are
// dropped, as are sequence lines that precede the first header.
func Read(filename string) ([]Contig, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("could not open fasta: %w", err)
	}

	file := fileio.EasyOpen(filename)
	var answer []Contig
	var curr Contig
	var seq strings.Builder
	var inRecord bool
	var line string
	var done bool

	flush := func() {
		if inRecord && seq.Len() > 0 {
			curr.Seq = seq.String()
			answer = append(answer, curr)
		}
		seq.Reset()
	}

	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			flush()
			curr = Contig{Header: strings.TrimSpace(line[1:])}
			inRecord = true
			continue
		}
		if inRecord {
			seq.WriteString(line)
		}
	}
	flush()

	err := file.Close()
	exception.PanicOnErr(err)

	if len(answer) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoSequences)
	}
	return answer, nil
}
