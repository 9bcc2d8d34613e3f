package app

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"lattice-ca/internal/lattice"
)

// surveyDensity fills survey grids when the configuration has no density or
// initial file of its own.
const surveyDensity = 0.3

// SurveyResult summarises one run of a survey.
type SurveyResult struct {
	Boundary lattice.Boundary
	Seed     int64
	Rows     int
	Cols     int
	Initial  int
	Final    int
	Peak     int
	// Settled is the first generation whose grid equals the one before it,
	// or 0 when the run never stopped changing.
	Settled int
}

func (r SurveyResult) String() string {
	settled := "-"
	if r.Settled > 0 {
		settled = fmt.Sprint(r.Settled)
	}
	return fmt.Sprintf("border=%-8s seed=%-6d size=%dx%d pop=%d->%d peak=%d settled=%s",
		r.Boundary, r.Seed, r.Rows, r.Cols, r.Initial, r.Final, r.Peak, settled)
}

type surveyJob struct {
	boundary lattice.Boundary
	seed     int64
}

// Survey advances one randomly seeded lattice per boundary and seed for the
// given number of generations, using workers goroutines (NumCPU when
// workers <= 0). Results are sorted by boundary, then seed.
func Survey(base *Config, boundaries []lattice.Boundary, seeds []int64, generations, workers int) ([]SurveyResult, error) {
	if generations < 0 {
		return nil, fmt.Errorf("generations must be non-negative, got %d", generations)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan surveyJob)
	results := make(chan SurveyResult)
	errs := make(chan error, len(boundaries)*len(seeds))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res, err := surveyRun(*base, job, generations)
				if err != nil {
					errs <- err
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, b := range boundaries {
			for _, seed := range seeds {
				jobs <- surveyJob{boundary: b, seed: seed}
			}
		}
		close(jobs)
	}()

	var all []SurveyResult
	for res := range results {
		all = append(all, res)
	}
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Boundary != all[j].Boundary {
			return all[i].Boundary < all[j].Boundary
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}

func surveyRun(cfg Config, job surveyJob, generations int) (SurveyResult, error) {
	cfg.Border = job.boundary.String()
	cfg.Seed = job.seed
	cfg.Population = false
	if cfg.Init == "" && cfg.Density <= 0 {
		cfg.Density = surveyDensity
	}
	l, err := BuildLattice(&cfg)
	if err != nil {
		return SurveyResult{}, fmt.Errorf("survey %s/%d: %w", job.boundary, job.seed, err)
	}

	res := SurveyResult{Boundary: job.boundary, Seed: job.seed}
	res.Initial = l.Population()
	res.Peak = res.Initial
	prev := l.String()
	for gen := 1; gen <= generations; gen++ {
		l.Advance()
		if pop := l.Population(); pop > res.Peak {
			res.Peak = pop
		}
		cur := l.String()
		if res.Settled == 0 && cur == prev {
			res.Settled = gen
		}
		prev = cur
	}
	res.Final = l.Population()
	res.Rows, res.Cols = l.Rows(), l.Cols()
	return res, nil
}
