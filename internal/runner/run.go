package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"annostat/internal/aggregate"
	"annostat/internal/chart"
	"annostat/internal/config"
	"annostat/internal/discover"
	"annostat/internal/record"
	"annostat/internal/summary"
)

// RunDependencies allows injecting run ids and clocks.
type RunDependencies struct {
	RunID func() (string, error)
	Now   func() time.Time
}

// RunParams configures a run invocation.
type RunParams struct {
	Workers       int
	Charts        []string
	Verbose       bool
	VerboseWriter io.Writer
	NoColor       bool
	Deps          RunDependencies
}

// Run processes every job of the plan. Corpora are independent, so up to
// Workers of them run at once; results keep plan order. The first failure
// cancels jobs that have not started.
func Run(ctx context.Context, plan discover.Plan, params RunParams) (Results, error) {
	if err := checkOutputCollisions(plan.Jobs); err != nil {
		return Results{}, err
	}
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Results{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	logger := newVerboseLogger(params.Verbose, params.VerboseWriter, params.NoColor)
	workers := params.Workers
	if workers <= 0 {
		workers = config.DefaultWorkers
	}

	results := Results{
		RunID:     runID,
		StartedAt: now().UTC(),
		Skipped:   plan.Skipped,
	}
	for _, skipped := range plan.Skipped {
		logger.logf(styleDefault, "skip %s: not found", skipped)
	}

	corpora := make([]CorpusResult, len(plan.Jobs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, job := range plan.Jobs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := processCorpus(groupCtx, job, params.Charts, logger)
			if err != nil {
				logger.logf(styleError, "corpus %s failed: %v", job.Path, err)
				return err
			}
			corpora[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Results{}, err
	}

	results.Corpora = corpora
	results.FinishedAt = now().UTC()
	return results, nil
}

// checkOutputCollisions rejects plans where two corpora would write the same
// artifacts, such as "a.json" and "a" in one directory.
func checkOutputCollisions(jobs []discover.Job) error {
	owners := make(map[string]string, len(jobs))
	for _, job := range jobs {
		out := NewOutputPaths(job.Path).Summary()
		if owner, ok := owners[out]; ok {
			return fmt.Errorf("corpora %s and %s write the same output %s", owner, job.Path, out)
		}
		owners[out] = job.Path
	}
	return nil
}

func ensureRunID(factory func() (string, error)) (string, error) {
	if factory == nil {
		factory = NewRunID
	}
	runID, err := factory()
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return runID, nil
}

// processCorpus loads one corpus, aggregates it, and writes its summary and charts.
func processCorpus(ctx context.Context, job discover.Job, charts []string, logger *verboseLogger) (CorpusResult, error) {
	logger.logf(styleCorpus, "corpus %s (%s)", job.Path, job.Kinds)
	records, err := record.LoadCorpus(job.Path)
	if err != nil {
		return CorpusResult{}, err
	}

	result := CorpusResult{
		Path:    job.Path,
		Kind:    job.Kinds.String(),
		Records: len(records),
	}
	if job.Kinds.Has(discover.KindEquivalence) {
		counts := aggregate.Equivalence(records)
		result.Equivalence = &counts
		logger.logf(styleCounts, "%s equivalent=%d not_equivalent=%d", result.Name(), counts.Equivalent, counts.NotEquivalent)
	}
	if job.Kinds.Has(discover.KindCompilation) {
		counts := aggregate.Compilation(records)
		result.Compilation = &counts
		logger.logf(styleCounts, "%s compilation=%v", result.Name(), counts.Tuple())
	}

	paths := NewOutputPaths(job.Path)
	for _, format := range charts {
		if result.Equivalence != nil {
			out := paths.EquivalenceChart(format)
			if err := saveChart(ctx, out, format, chart.Equivalence(*result.Equivalence, paths.EquivalenceTitle())); err != nil {
				return CorpusResult{}, err
			}
			result.Outputs = append(result.Outputs, out)
		}
		if result.Compilation != nil {
			out := paths.CompilationChart(format)
			if err := saveChart(ctx, out, format, chart.Compilation(*result.Compilation)); err != nil {
				return CorpusResult{}, err
			}
			result.Outputs = append(result.Outputs, out)
		}
	}

	if err := summary.Write(paths.Summary(), result.Report()); err != nil {
		return CorpusResult{}, err
	}
	result.Outputs = append(result.Outputs, paths.Summary())
	for _, out := range result.Outputs {
		logger.logf(styleDefault, "wrote %s", out)
	}
	return result, nil
}

func saveChart(ctx context.Context, path, format string, c chart.Chart) error {
	switch format {
	case config.ChartPNG:
		return chart.SavePNG(path, c)
	case config.ChartSVG:
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create chart: %w", err)
		}
		if err := chart.WriteSVG(ctx, file, c); err != nil {
			_ = file.Close()
			return err
		}
		return file.Close()
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}
}
