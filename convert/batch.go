package convert

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ByLCY/cvpress/layout"
)

// Job is one file to convert.
type Job struct {
	In  string
	Out string
}

// JobResult is the outcome of one Job.
type JobResult struct {
	Job    Job
	Report *layout.Report
	Err    error
}

// ConvertAll converts jobs concurrently, at most limit at a time (GOMAXPROCS
// when limit <= 0). Each document gets its own writer. A failing job does
// not stop the others; the failures are joined in the returned error.
// Cancelling ctx stops jobs that have not started yet. With opts.Debug or
// opts.DebugPath set, every job writes its dump to DebugPathFor(job.Out).
func ConvertAll(ctx context.Context, jobs []Job, limit int, opts Options) ([]JobResult, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]JobResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		g.Go(func() error {
			results[i].Job = job
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			o := opts
			o.Name = ""
			o.DebugPath = ""
			o.Debug = opts.Debug || opts.DebugPath != ""
			results[i].Report, results[i].Err = ConvertFile(job.In, job.Out, o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}
