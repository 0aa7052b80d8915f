package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/brewlab/mortar/pkg/planner"
)

func planCmd() *cli.Command {
	return &cli.Command{
		Name:                  "plan",
		EnableShellCompletion: true,
		Usage:                 "Solve a potion cover over an ingredient table",
		Description: `Read the ingredient table, enumerate every candidate potion, and greedily
select potions until every (ingredient, effect) pair appears in at least one
chosen potion. The solver breaks ties at random, so repeated unseeded runs
can find different covers; pass --seed for a reproducible plan.

The plan can be output in CSV, JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			inputFlag,
			outputFlag,
			formatFlag,
			seedFlag,
			canonicalFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			p := planner.New(plannerOptions(cmd, format)...)
			plan, err := p.Run(ctx, cmd.String("input"), cmd.String("output"))
			if err != nil {
				return err
			}

			slog.Info("plan complete",
				"run_id", plan.RunID,
				"candidates", plan.Candidates,
				"chosen", plan.Chosen,
				"duration", plan.Duration)
			return nil
		},
	}
}
