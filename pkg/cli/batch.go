package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/brewlab/mortar/pkg/metrics"
	"github.com/brewlab/mortar/pkg/planner"
	"github.com/brewlab/mortar/pkg/serializer"
)

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "batch",
		EnableShellCompletion: true,
		Usage:                 "Run many independent solves over one ingredient table",
		Description: `Execute a batch of randomized solve runs over the same ingredient table,
each writing its plan to a path derived from the output template. The "{}"
placeholder in the template is replaced with the 1-based run number:

  mortar batch --input ingredients.csv --output-template plans/run-{}.csv

Runs are independent; a failed run is recorded in the batch report without
stopping its siblings unless --fail-fast is set. With --seed, run N uses
seed+N so the batch explores different covers but stays reproducible. The
batch report is written to stdout after all runs finish.`,
		Flags: []cli.Flag{
			inputFlag,
			&cli.StringFlag{
				Name:     "output-template",
				Aliases:  []string{"t"},
				Usage:    `Per-run output path containing the "{}" run-number placeholder`,
				Required: true,
			},
			&cli.IntFlag{
				Name:  "runs",
				Usage: "Number of solve runs to execute",
				Value: planner.DefaultBatchRuns,
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Maximum runs in flight (default: number of CPUs)",
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "Cancel the remaining runs after the first failure",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Expose Prometheus metrics on this address for the duration of the batch (e.g. :9090)",
			},
			formatFlag,
			seedFlag,
			canonicalFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			if addr := cmd.String("metrics-addr"); addr != "" {
				go func() {
					if err := metrics.Serve(ctx, addr); err != nil {
						slog.Error("metrics listener failed", "error", err)
					}
				}()
			}

			p := planner.New(plannerOptions(cmd, format)...)
			report, err := p.Batch(ctx, planner.BatchConfig{
				Input:          cmd.String("input"),
				OutputTemplate: cmd.String("output-template"),
				Runs:           int(cmd.Int("runs")),
				Concurrency:    int(cmd.Int("concurrency")),
				FailFast:       cmd.Bool("fail-fast"),
			})
			if err != nil {
				return err
			}

			writer := serializer.NewStdoutWriter(format)
			if serErr := writer.Serialize(ctx, report); serErr != nil {
				return serErr
			}

			if report.Failed > 0 {
				return fmt.Errorf("%d of %d runs failed", report.Failed, len(report.Runs))
			}
			return nil
		},
	}
}
