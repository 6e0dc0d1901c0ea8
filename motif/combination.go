package motif

import (
	"fmt"
	"strings"
)

// Orientation selects whether a motif is searched as given or as its reverse complement.
type Orientation int

const (
	Forward Orientation = iota
	Reverse
)

func (o Orientation) String() string {
	if o == Reverse {
		return "rc"
	}
	return "fwd"
}

// NumCombinations is the number of orientation assignments for a Set.
const NumCombinations = 1 << NumClasses

// Combination is one choice of orientation for each motif of a Set.
type Combination struct {
	Index  int // position in enumeration order, 0 is all forward
	Orient [NumClasses]Orientation
	Motifs [NumClasses]string // upper-cased literal strings to search for
}

func (c Combination) String() string {
	s := new(strings.Builder)
	for i := 0; i < NumClasses; i++ {
		if i > 0 {
			s.WriteByte(' ')
		}
		fmt.Fprintf(s, "%s=%s", Class(i), c.Orient[i])
	}
	return s.String()
}

// Combinations enumerates the orientation assignments of set in binary counting
// order, where bit i set means motif i is reverse complemented. Combinations that
// need the reverse complement of a motif containing an invalid base are not
// returned; an error describing each of them is returned in rejected instead.
func Combinations(set Set) (combos []Combination, rejected []error) {
	var fwd, rev [NumClasses]string
	var revErr [NumClasses]error
	for i := range set {
		fwd[i] = upper(set[i])
		rev[i], revErr[i] = ReverseComplement(set[i])
	}

	var curr Combination
	var i, bit int
	var err error
	for i = 0; i < NumCombinations; i++ {
		curr = Combination{Index: i}
		err = nil
		for bit = 0; bit < NumClasses; bit++ {
			if i&(1<<bit) == 0 {
				curr.Orient[bit] = Forward
				curr.Motifs[bit] = fwd[bit]
				continue
			}
			if revErr[bit] != nil {
				err = fmt.Errorf("combination %d rejected: cannot reverse complement %s: %w", i, Class(bit), revErr[bit])
				break
			}
			curr.Orient[bit] = Reverse
			curr.Motifs[bit] = rev[bit]
		}
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		combos = append(combos, curr)
	}
	return combos, rejected
}
