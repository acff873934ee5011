// Package pipeline provides the high-level orchestration for one scoring
// run: cohort selection, consolidation, baseline derivation, trait scoring,
// hierarchical rollup, and result assembly, in that order.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kartika/talent-match-intel/internal/catalog"
	"github.com/kartika/talent-match-intel/internal/cohort"
	"github.com/kartika/talent-match-intel/internal/report"
	"github.com/kartika/talent-match-intel/internal/scoring"
	"github.com/kartika/talent-match-intel/internal/types"
)

// scoreShards bounds the number of concurrent per-employee scoring shards.
const scoreShards = 8

// Source supplies the bulk reads a run consumes. The production
// implementation is internal/db; tests use in-memory fakes.
type Source interface {
	FetchTraitRecords(ctx context.Context) ([]types.TraitRecord, []string, error)
	FetchPerformanceHistory(ctx context.Context) ([]types.PerformanceRecord, error)
	FetchEmployeeAttributes(ctx context.Context) (map[string]types.Employee, error)
}

// RunOptions holds configuration for one scoring run.
type RunOptions struct {
	Role    types.RoleInput
	Catalog *catalog.Catalog
	Source  Source
	// BenchmarkIDs selects the explicit cohort strategy when non-empty;
	// otherwise the top-rating predicate over performance history is used.
	BenchmarkIDs     []string
	ExcludeBenchmark bool
	Verbose          bool
}

// Result is the complete output of one run. All scoring artifacts inside it
// were produced within the run and are not reused across runs.
type Result struct {
	JobVacancyID uuid.UUID
	Rows         []types.ResultRow
	Ranked       []report.RankedEmployee
	Insights     *report.Insights
	Baselines    map[string]types.Baseline
	Cohort       *cohort.Cohort
	// Warnings carries non-fatal degradations (empty cohort, unmapped
	// traits, oversized explicit benchmark).
	Warnings []string
}

// Run executes the full scoring pipeline. It returns an error only for
// input or infrastructure failures; scoring degradations (empty cohort,
// catalog/schema mismatches) produce warnings and a complete, ordered
// result. A cancelled or expired context aborts the run with no partial
// result.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("source is required")
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if err := opts.Catalog.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Role.Validate(); err != nil {
		return nil, fmt.Errorf("invalid role input: %w", err)
	}

	result := &Result{JobVacancyID: uuid.New()}

	// Bulk reads are independent; fetch them concurrently.
	var (
		records []types.TraitRecord
		columns []string
		history []types.PerformanceRecord
		attrs   map[string]types.Employee
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, columns, err = opts.Source.FetchTraitRecords(gCtx)
		return err
	})
	g.Go(func() error {
		// Performance history is only consulted by the predicate
		// strategy; skip the read when the cohort is explicit.
		if len(opts.BenchmarkIDs) > 0 {
			return nil
		}
		var err error
		history, err = opts.Source.FetchPerformanceHistory(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		attrs, err = opts.Source.FetchEmployeeAttributes(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if unmapped := opts.Catalog.UnmappedTraits(columns); len(unmapped) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("catalog traits with no source column (excluded from all aggregates): %v", unmapped))
	}

	// 1. Cohort selection.
	var bench *cohort.Cohort
	if len(opts.BenchmarkIDs) > 0 {
		var err error
		bench, err = cohort.FromIDs(opts.BenchmarkIDs)
		if err != nil {
			return nil, err
		}
		if bench.Size() > cohort.MaxExplicitBenchmark {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("benchmark has %d employees; the vacancy form caps selection at %d", bench.Size(), cohort.MaxExplicitBenchmark))
		}
	} else {
		bench = cohort.FromTopRating(history)
	}
	if bench.Empty() {
		result.Warnings = append(result.Warnings,
			"benchmark cohort is empty; every baseline is absent and all trait match rates degrade to 0")
	}
	result.Cohort = bench

	// 2-3. Consolidate raw records into observations.
	observations := scoring.Consolidate(records, opts.Catalog)

	// 4. Per-trait baselines from the cohort's observations.
	result.Baselines = scoring.ComputeBaselines(observations, bench, opts.Catalog)

	// 5. Trait match scoring, sharded by employee.
	matches, err := scoreParallel(ctx, observations, result.Baselines, opts.Catalog)
	if err != nil {
		return nil, err
	}

	// 6. Hierarchical rollup.
	groups := scoring.RollupGroups(matches, opts.Catalog)
	finals := scoring.RollupFinal(groups, opts.Catalog)

	// 7. Result assembly.
	result.Rows = report.Assemble(report.AssembleOptions{
		JobVacancyID:     result.JobVacancyID,
		Role:             opts.Role,
		Records:          matches,
		Groups:           groups,
		Finals:           finals,
		Attributes:       attrs,
		Benchmark:        bench,
		ExcludeBenchmark: opts.ExcludeBenchmark,
	})
	result.Ranked = report.RankedEmployees(result.Rows)
	result.Insights = report.Summarize(result.Ranked)

	// The rollup is only meaningful over a fully consolidated run; if the
	// budget expired along the way, discard rather than report.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// scoreParallel shards observations by employee and scores the shards
// concurrently. Scoring is pure per observation, so shard boundaries cannot
// change results; the merged output is re-sorted for determinism.
func scoreParallel(ctx context.Context, observations []types.Observation, baselines map[string]types.Baseline, cat *catalog.Catalog) ([]types.MatchRecord, error) {
	byEmployee := make(map[string][]types.Observation)
	for _, obs := range observations {
		byEmployee[obs.EmployeeID] = append(byEmployee[obs.EmployeeID], obs)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(scoreShards)

	var mu sync.Mutex
	matches := make([]types.MatchRecord, 0, len(observations))

	for _, shard := range byEmployee {
		shard := shard
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			scored := scoring.Score(shard, baselines, cat)
			mu.Lock()
			matches = append(matches, scored...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].EmployeeID != matches[j].EmployeeID {
			return matches[i].EmployeeID < matches[j].EmployeeID
		}
		return matches[i].TraitName < matches[j].TraitName
	})

	return matches, nil
}
