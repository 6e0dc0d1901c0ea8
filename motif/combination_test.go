package motif

import (
	"errors"
	"testing"
)

func TestCombinations(t *testing.T) {
	combos, rejected := Combinations(Set{"AAAC", "GGTA", "CATC"})
	if len(rejected) != 0 {
		t.Fatalf("unexpected rejections: %v", rejected)
	}
	if len(combos) != NumCombinations {
		t.Fatalf("expected %d combinations, got %d", NumCombinations, len(combos))
	}

	seen := make(map[[NumClasses]Orientation]bool)
	triples := make(map[[NumClasses]string]bool)
	for i, c := range combos {
		if c.Index != i {
			t.Errorf("combination %d has index %d", i, c.Index)
		}
		for bit := 0; bit < NumClasses; bit++ {
			expected := Forward
			if i&(1<<bit) != 0 {
				expected = Reverse
			}
			if c.Orient[bit] != expected {
				t.Errorf("combination %d: %s orientation is %s, expected %s", i, Class(bit), c.Orient[bit], expected)
			}
		}
		seen[c.Orient] = true
		triples[c.Motifs] = true
	}
	if len(seen) != NumCombinations || len(triples) != NumCombinations {
		t.Errorf("combinations are not distinct: %d orientations, %d triples", len(seen), len(triples))
	}

	if combos[0].Motifs != [NumClasses]string{"AAAC", "GGTA", "CATC"} {
		t.Errorf("first combination should be all forward, got %v", combos[0].Motifs)
	}
	if combos[7].Motifs != [NumClasses]string{"GTTT", "TACC", "GATG"} {
		t.Errorf("last combination should be all reverse complement, got %v", combos[7].Motifs)
	}
	if combos[5].String() != "primer1=rc primer2=fwd probe=rc" {
		t.Errorf("unexpected string for combination 5: %s", combos[5])
	}
}

func TestCombinationsDeterministic(t *testing.T) {
	a, _ := Combinations(Set{"acgg", "TTAG", ""})
	b, _ := Combinations(Set{"acgg", "TTAG", ""})
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("combination %d differs between calls: %v %v", i, a[i], b[i])
		}
	}
	if a[0].Motifs[Primer1] != "ACGG" {
		t.Errorf("forward motifs should be upper-cased, got %s", a[0].Motifs[Primer1])
	}
}

func TestCombinationsRejectInvalid(t *testing.T) {
	combos, rejected := Combinations(Set{"ACGN", "TTTG", "CCA"})
	if len(combos) != 4 || len(rejected) != 4 {
		t.Fatalf("expected 4 kept and 4 rejected combinations, got %d and %d", len(combos), len(rejected))
	}
	for _, c := range combos {
		if c.Orient[Primer1] != Forward {
			t.Errorf("combination %d needs an impossible reverse complement", c.Index)
		}
	}
	for _, err := range rejected {
		if !errors.Is(err, ErrInvalidBase) {
			t.Errorf("rejection should wrap ErrInvalidBase: %v", err)
		}
	}
}
