package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/brewlab/mortar/pkg/planner"
	"github.com/brewlab/mortar/pkg/serializer"
)

var (
	inputFlag = &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "Path to the ingredient table (CSV with an Ingredient column and EffectN columns)",
		Sources:  cli.EnvVars("MORTAR_INPUT"),
		Required: true,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the result to this path instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name: "format",
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Value: string(serializer.FormatCSV),
	}

	seedFlag = &cli.UintFlag{
		Name:  "seed",
		Usage: "Fix the solver's random seed for a reproducible run",
	}

	canonicalFlag = &cli.BoolFlag{
		Name:  "canonical-labels",
		Usage: "Normalize ingredient and effect labels to title case before matching",
	}
)

// outputFormat parses and validates the --format flag.
func outputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			format, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return format, nil
}

// plannerOptions collects the planner options shared by every command.
func plannerOptions(cmd *cli.Command, format serializer.Format) []planner.Option {
	opts := []planner.Option{planner.WithFormat(format)}
	if cmd.IsSet("seed") {
		opts = append(opts, planner.WithSeed(uint64(cmd.Uint("seed"))))
	}
	if cmd.Bool("canonical-labels") {
		opts = append(opts, planner.WithCanonicalLabels())
	}
	return opts
}
