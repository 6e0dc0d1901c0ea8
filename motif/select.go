package motif

import (
	"errors"
	"fmt"
	"github.com/dasnellings/primerScan/contig"
	"sync"
)

// ErrNoCombination is returned by Select when every combination was rejected.
var ErrNoCombination = errors.New("no usable motif combination")

// Trial is the outcome of scanning every contig with one combination.
type Trial struct {
	Combination Combination
	Sequences   []SeqResult
	Counter     Counter // anchor totals at the end of the trial
	Total       int
}

// Result is the outcome of Select.
type Result struct {
	Best      Combination
	Sequences []SeqResult
	Counter   Counter
	Total     int
	Trials    []Trial // every evaluated combination in enumeration order
	Rejected  []error // combinations that could not be built
}

// Distances returns the spans of all contigs, in contig order.
func (r Result) Distances() []int {
	var ans []int
	for i := range r.Sequences {
		ans = append(ans, r.Sequences[i].Distances...)
	}
	return ans
}

// RunTrial scans every contig with combo, starting from a zero Counter.
func RunTrial(contigs []contig.Contig, combo Combination) Trial {
	t := Trial{Combination: combo, Sequences: make([]SeqResult, len(contigs))}
	for i := range contigs {
		t.Sequences[i], t.Counter = Scan(i, contigs[i], combo, t.Counter)
		t.Total += t.Sequences[i].Count()
	}
	return t
}

// Select evaluates every combination of set over contigs and returns the one
// with the greatest total number of matches. Ties go to the combination that
// comes first in enumeration order, regardless of the number of threads used.
// A result with zero matches is not an error.
func Select(contigs []contig.Contig, set Set, threads int) (Result, error) {
	if len(contigs) == 0 {
		return Result{}, contig.ErrNoSequences
	}

	combos, rejected := Combinations(set)
	ans := Result{Rejected: rejected}
	if len(combos) == 0 {
		return ans, fmt.Errorf("%w: %v", ErrNoCombination, errors.Join(rejected...))
	}

	ans.Trials = runTrials(contigs, combos, threads)

	best := 0
	for i := 1; i < len(ans.Trials); i++ {
		if ans.Trials[i].Total > ans.Trials[best].Total {
			best = i
		}
	}

	ans.Best = ans.Trials[best].Combination
	ans.Sequences = ans.Trials[best].Sequences
	ans.Counter = ans.Trials[best].Counter
	ans.Total = ans.Trials[best].Total
	return ans, nil
}

type indexedTrial struct {
	idx int
	Trial
}

func runTrials(contigs []contig.Contig, combos []Combination, threads int) []Trial {
	trials := make([]Trial, len(combos))
	if threads < 2 {
		for i := range combos {
			trials[i] = RunTrial(contigs, combos[i])
		}
		return trials
	}

	jobs := make(chan int, len(combos))
	results := make(chan indexedTrial, len(combos))
	wg := new(sync.WaitGroup)
	for i := 0; i < threads && i < len(combos); i++ {
		wg.Add(1)
		go trialWorker(contigs, combos, jobs, results, wg)
	}
	for i := range combos {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	// results arrive in any order, placing them by index keeps the tie-break stable
	for r := range results {
		trials[r.idx] = r.Trial
	}
	return trials
}

func trialWorker(contigs []contig.Contig, combos []Combination, jobs <-chan int, results chan<- indexedTrial, wg *sync.WaitGroup) {
	for i := range jobs {
		results <- indexedTrial{idx: i, Trial: RunTrial(contigs, combos[i])}
	}
	wg.Done()
}
