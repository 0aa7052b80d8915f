package planner

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/brewlab/mortar/pkg/errors"
)

// outputPlaceholder marks where the run number goes in a batch output
// template, e.g. "plans/run-{}.csv".
const outputPlaceholder = "{}"

// DefaultBatchRuns is the number of runs a batch executes when the caller
// does not say otherwise.
const DefaultBatchRuns = 10

// BatchConfig configures a batch of independent solve runs over one
// ingredient table.
type BatchConfig struct {
	// Input is the path of the ingredient table shared by every run.
	Input string
	// OutputTemplate is the per-run output path; it must contain the
	// "{}" placeholder, replaced by the 1-based run number.
	OutputTemplate string
	// Runs is the number of runs to execute (DefaultBatchRuns when <= 0).
	Runs int
	// Concurrency bounds the number of runs in flight (NumCPU when <= 0).
	Concurrency int
	// FailFast cancels the remaining runs after the first failure. By
	// default runs are independent and a failed sibling does not stop
	// the others.
	FailFast bool
}

// RunResult records the outcome of one run within a batch.
type RunResult struct {
	Run    int     `json:"run" yaml:"run"`
	Output string  `json:"output" yaml:"output"`
	Seed   *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	Chosen int     `json:"chosen" yaml:"chosen"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchReport summarizes a completed batch.
type BatchReport struct {
	BatchID   string      `json:"batch_id" yaml:"batch_id"`
	Runs      []RunResult `json:"runs" yaml:"runs"`
	Succeeded int         `json:"succeeded" yaml:"succeeded"`
	Failed    int         `json:"failed" yaml:"failed"`
}

// MarshalRecords renders the per-run outcomes as CSV records.
func (r *BatchReport) MarshalRecords() ([]string, [][]string, error) {
	header := []string{"Run", "Output", "Seed", "Chosen", "Error"}
	rows := make([][]string, 0, len(r.Runs))
	for _, run := range r.Runs {
		seed := ""
		if run.Seed != nil {
			seed = strconv.FormatUint(*run.Seed, 10)
		}
		rows = append(rows, []string{
			strconv.Itoa(run.Run),
			run.Output,
			seed,
			strconv.Itoa(run.Chosen),
			run.Error,
		})
	}
	return header, rows, nil
}

// ExpandTemplate substitutes the 1-based run number into a batch output
// template.
func ExpandTemplate(template string, run int) string {
	return strings.Replace(template, outputPlaceholder, strconv.Itoa(run), 1)
}

// Batch executes cfg.Runs solve runs over the same input, each writing to
// its own expanded output path. Runs fan out on an errgroup bounded by
// cfg.Concurrency. When the planner carries a seed, run N uses seed+N so
// the runs explore different covers but the whole batch stays reproducible.
//
// Without FailFast every run executes regardless of sibling failures and
// the report records each outcome; the returned error is non-nil only when
// the batch could not start or FailFast tripped.
func (p *Planner) Batch(ctx context.Context, cfg BatchConfig) (*BatchReport, error) {
	if !strings.Contains(cfg.OutputTemplate, outputPlaceholder) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("output template must contain the %q placeholder", outputPlaceholder),
			map[string]any{"template": cfg.OutputTemplate})
	}
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultBatchRuns
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.NumCPU()
	}

	report := &BatchReport{
		BatchID: uuid.NewString(),
		Runs:    make([]RunResult, cfg.Runs),
	}

	p.logger.Info("batch starting",
		"batch_id", report.BatchID,
		"runs", cfg.Runs,
		"concurrency", cfg.Concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	var mu sync.Mutex
	for i := 0; i < cfg.Runs; i++ {
		run := i + 1
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				mu.Lock()
				report.Runs[run-1] = RunResult{Run: run, Error: err.Error()}
				mu.Unlock()
				return nil
			}

			rp := *p
			if p.seed != nil {
				seed := *p.seed + uint64(run)
				rp.seed = &seed
			}

			output := ExpandTemplate(cfg.OutputTemplate, run)
			plan, err := rp.Run(gctx, cfg.Input, output)

			result := RunResult{Run: run, Output: output, Seed: rp.seed}
			if err != nil {
				result.Error = err.Error()
			} else {
				result.Chosen = plan.Chosen
			}
			mu.Lock()
			report.Runs[run-1] = result
			mu.Unlock()

			if err != nil && cfg.FailFast {
				return err
			}
			return nil
		})
	}

	err := g.Wait()

	for _, r := range report.Runs {
		if r.Error == "" {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	p.logger.Info("batch finished",
		"batch_id", report.BatchID,
		"succeeded", report.Succeeded,
		"failed", report.Failed)

	if err != nil {
		return report, err
	}
	return report, nil
}
