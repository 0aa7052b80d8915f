package serializer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/brewlab/mortar/pkg/errors"
	"github.com/brewlab/mortar/pkg/lexicon"
	"github.com/brewlab/mortar/pkg/potion"
)

// IngredientColumn is the required identifier column of the input table.
const IngredientColumn = "Ingredient"

// effectColumnPrefix matches the attribute columns (Effect1..EffectN).
const effectColumnPrefix = "Effect"

// ReadIngredients loads the row-oriented ingredient table from a CSV file
// and interns every label through the given lexicon. See ReadIngredientsFrom
// for the table contract.
func ReadIngredients(path string, lex *lexicon.Lexicon) ([]potion.Ingredient, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput,
			fmt.Sprintf("failed to open ingredient table %q", path), err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close ingredient table", "error", closeErr, "path", path)
		}
	}()

	return ReadIngredientsFrom(file, lex)
}

// ReadIngredientsFrom reads the ingredient table from r. The table must have
// a header row containing an Ingredient column and one or more EffectN
// columns (four in the reference domain). Blank effect cells are skipped;
// rows may carry fewer cells than the header. Reading fails with a
// MALFORMED_INPUT error on a missing or blank identifier, a duplicate
// identifier, or a row with no effects at all. Input errors are fatal to
// the run and never partially recovered.
func ReadIngredientsFrom(r io.Reader, lex *lexicon.Lexicon) ([]potion.Ingredient, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may omit trailing empty effect slots
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, "failed to read header row", err)
	}

	ingredientCol := -1
	effectCols := make([]int, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		switch {
		case strings.EqualFold(name, IngredientColumn):
			ingredientCol = i
		case strings.HasPrefix(name, effectColumnPrefix):
			effectCols = append(effectCols, i)
		}
	}
	if ingredientCol < 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput,
			fmt.Sprintf("header is missing the required %q column", IngredientColumn))
	}
	if len(effectCols) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput,
			"header has no effect columns")
	}

	var ingredients []potion.Ingredient
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeMalformedInput,
				"failed to read ingredient row", err, map[string]any{"row": row})
		}

		if ingredientCol >= len(record) || strings.TrimSpace(record[ingredientCol]) == "" {
			return nil, errors.NewWithContext(errors.ErrCodeMalformedInput,
				"ingredient row missing identifier", map[string]any{"row": row})
		}

		id, fresh := lex.AddIngredient(record[ingredientCol])
		if !fresh {
			return nil, errors.NewWithContext(errors.ErrCodeMalformedInput,
				"duplicate ingredient identifier", map[string]any{
					"row":        row,
					"ingredient": lex.IngredientLabel(id),
				})
		}

		effects := make([]potion.EffectID, 0, len(effectCols))
		seen := make(map[potion.EffectID]struct{}, len(effectCols))
		for _, col := range effectCols {
			if col >= len(record) {
				continue
			}
			label := strings.TrimSpace(record[col])
			if label == "" {
				continue
			}
			eff := lex.InternEffect(label)
			if _, dup := seen[eff]; dup {
				continue
			}
			seen[eff] = struct{}{}
			effects = append(effects, eff)
		}
		if len(effects) == 0 {
			return nil, errors.NewWithContext(errors.ErrCodeMalformedInput,
				"ingredient row has no effects", map[string]any{
					"row":        row,
					"ingredient": lex.IngredientLabel(id),
				})
		}
		sort.Slice(effects, func(a, b int) bool { return effects[a] < effects[b] })

		ingredients = append(ingredients, potion.Ingredient{ID: id, Effects: effects})
	}

	if len(ingredients) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "ingredient table has no rows")
	}

	return ingredients, nil
}
