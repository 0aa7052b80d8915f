package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/brewlab/mortar/pkg/planner"
	"github.com/brewlab/mortar/pkg/serializer"
)

func potionsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "potions",
		EnableShellCompletion: true,
		Usage:                 "Enumerate every candidate potion without solving",
		Description: `List every potion that two or three ingredients from the table can brew.
A potion only exists when its ingredients share at least one effect; shared
effects are the potion's effects. Useful for inspecting the candidate space
before running a solve.`,
		Flags: []cli.Flag{
			inputFlag,
			outputFlag,
			formatFlag,
			canonicalFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			p := planner.New(plannerOptions(cmd, format)...)
			inv, err := p.Enumerate(ctx, cmd.String("input"))
			if err != nil {
				return err
			}

			writer := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() {
				if err := writer.Close(); err != nil {
					slog.Warn("failed to close output", "error", err)
				}
			}()
			return writer.Serialize(ctx, inv)
		},
	}
}
