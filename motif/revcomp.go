package motif

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
)

// ErrInvalidBase is returned when a motif contains a character outside {A,C,G,T}.
var ErrInvalidBase = errors.New("invalid base")

// ReverseComplement returns the reverse complement of s. Input is upper-cased
// before validation so "acgt" and "ACGT" are treated the same. Any character
// other than A, C, G, or T is rejected with an error wrapping ErrInvalidBase.
func ReverseComplement(s string) (string, error) {
	s = upper(s)
	if err := validate(s); err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}
	bases := dna.StringToBases(s)
	dna.ReverseComplement(bases)
	return dna.BasesToString(bases), nil
}

func validate(s string) error {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("%w '%c' at position %d of %s", ErrInvalidBase, s[i], i, s)
		}
	}
	return nil
}

// upper converts ASCII lowercase letters to uppercase byte-for-byte so that
// offsets into the result are identical to offsets into s.
func upper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
