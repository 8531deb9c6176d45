// Package batch computes splash identifiers for many records concurrently.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-splash/internal/specio"
	"github.com/cwbudde/algo-splash/splash"
)

// Result is the outcome for one record.
type Result struct {
	ID       string
	Source   string
	Line     int
	Splash   string
	Expected string
	Encoded  string
	Err      error
}

// Match reports whether the record carried an expectation that the computed
// identifier satisfies.
func (r Result) Match() bool {
	return r.Err == nil && r.Expected != "" && r.Splash == r.Expected
}

// Mismatch reports whether the record carried an expectation that was not
// met, including records that failed to compute.
func (r Result) Mismatch() bool {
	return r.Expected != "" && !r.Match()
}

// Options tunes a run.
type Options struct {
	// Workers bounds concurrent computations. Values below 1 mean 1.
	Workers int
	// Explain keeps the canonical encoding in Result.Encoded.
	Explain bool
}

// Run computes every record and returns results in input order. Per-record
// failures are reported in Result.Err and do not stop the run. When ctx is
// cancelled, records not yet started get ctx.Err().
func Run(ctx context.Context, records []specio.Record, opts Options) []Result {
	results := make([]Result, len(records))
	workers := max(opts.Workers, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range records {
		rec := &records[i]
		results[i] = Result{ID: rec.ID, Source: rec.Source, Line: rec.Line, Expected: rec.Expected}
		if rec.Err != nil {
			results[i].Err = rec.Err
			continue
		}
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			compute(rec, &results[i], opts.Explain)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func compute(rec *specio.Record, res *Result, explain bool) {
	mz := rec.Ions.MzValues()
	intensity := rec.Ions.IntensityValues()

	e, err := splash.Explain(mz, intensity, len(rec.Ions))
	if err != nil {
		res.Err = err
		return
	}
	res.Splash = e.ID.String()
	if explain {
		res.Encoded = e.Encoded
	}
}

// Summary counts outcomes of a run.
type Summary struct {
	Total      int
	Computed   int
	Failed     int
	Matched    int
	Mismatched int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
		} else {
			s.Computed++
		}
		if r.Match() {
			s.Matched++
		}
		if r.Mismatch() {
			s.Mismatched++
		}
	}
	return s
}

// OK reports whether nothing failed or mismatched.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Mismatched == 0
}
