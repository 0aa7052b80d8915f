package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brewlab/mortar/pkg/cover"
	"github.com/brewlab/mortar/pkg/lexicon"
	"github.com/brewlab/mortar/pkg/metrics"
	"github.com/brewlab/mortar/pkg/potion"
	"github.com/brewlab/mortar/pkg/serializer"
)

// Planner runs the full pipeline: read the ingredient table, enumerate
// candidate potions, solve the cover, and serialize the plan.
type Planner struct {
	seed      *uint64
	format    serializer.Format
	canonical bool
	logger    *slog.Logger
}

// Option defines a functional option for configuring a Planner.
type Option func(*Planner)

// WithSeed fixes the solver seed so repeated runs over the same input
// produce the same plan.
func WithSeed(seed uint64) Option {
	return func(p *Planner) {
		p.seed = &seed
	}
}

// WithFormat sets the output serialization format.
func WithFormat(format serializer.Format) Option {
	return func(p *Planner) {
		p.format = format
	}
}

// WithCanonicalLabels normalizes input labels to title case before
// interning.
func WithCanonicalLabels() Option {
	return func(p *Planner) {
		p.canonical = true
	}
}

// WithLogger sets the logger used across the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// New creates a Planner. The default format is CSV and the default
// solver source is non-deterministic.
func New(opts ...Option) *Planner {
	p := &Planner{
		format: serializer.FormatCSV,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Run executes one solve over the ingredient table at input and writes the
// resulting plan to output (stdout when output is empty). The output file
// is only created after the solve succeeds, so a failed run never leaves a
// partial plan behind.
func (p *Planner) Run(ctx context.Context, input, output string) (*Plan, error) {
	lex, ingredients, candidates, universe, err := p.load(input)
	if err != nil {
		metrics.RecordRun(false)
		return nil, err
	}

	p.logger.Info("problem loaded",
		"ingredients", len(ingredients),
		"effects", lex.Effects(),
		"candidates", len(candidates),
		"facts", len(universe))
	metrics.RecordProblemSize(len(candidates), len(universe))

	solverOpts := []cover.Option{cover.WithLogger(p.logger)}
	if p.seed != nil {
		solverOpts = append(solverOpts, cover.WithSeed(*p.seed))
	}

	start := time.Now()
	chosen, err := cover.New(solverOpts...).Solve(ctx, universe, candidates)
	if err != nil {
		metrics.RecordRun(false)
		return nil, err
	}
	elapsed := time.Since(start)
	metrics.RecordCover(len(chosen), elapsed)
	metrics.RecordRun(true)

	plan := &Plan{
		RunID:       uuid.NewString(),
		Seed:        p.seed,
		Ingredients: len(ingredients),
		Effects:     lex.Effects(),
		Candidates:  len(candidates),
		Universe:    len(universe),
		Chosen:      len(chosen),
		Duration:    elapsed.String(),
		Potions:     summarize(lex, chosen),
	}

	p.logger.Info("cover solved",
		"run_id", plan.RunID,
		"chosen", plan.Chosen,
		"duration", plan.Duration)

	writer := serializer.NewFileWriterOrStdout(p.format, output)
	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			p.logger.Warn("failed to close plan output", "error", closeErr)
		}
	}()
	if err := writer.Serialize(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// Enumerate reads the ingredient table at input and reports every candidate
// potion without solving a cover.
func (p *Planner) Enumerate(_ context.Context, input string) (*Inventory, error) {
	lex, ingredients, candidates, universe, err := p.load(input)
	if err != nil {
		return nil, err
	}

	return &Inventory{
		Ingredients: len(ingredients),
		Effects:     lex.Effects(),
		Candidates:  len(candidates),
		Universe:    len(universe),
		Potions:     summarize(lex, candidates),
	}, nil
}

// load reads the ingredient table and enumerates the candidate potions and
// the fact universe they span.
func (p *Planner) load(input string) (*lexicon.Lexicon, []potion.Ingredient, []potion.Potion, map[potion.Fact]struct{}, error) {
	var lexOpts []lexicon.Option
	if p.canonical {
		lexOpts = append(lexOpts, lexicon.WithCanonicalLabels())
	}
	lex := lexicon.New(lexOpts...)

	ingredients, err := serializer.ReadIngredients(input, lex)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	candidates := potion.Collect(potion.All(ingredients))
	universe := potion.Universe(candidates)
	return lex, ingredients, candidates, universe, nil
}
