package serializer

import (
	"fmt"
	"sort"
	"strings"
)

// Potion table dimensions in the reference domain: up to 3 member columns
// and up to 6 effect columns (3 members with 4 effects each can share at
// most 6 distinct effects). The effect width grows when a potion somehow
// exceeds it so labels are never truncated.
const (
	potionMemberColumns    = 3
	potionMinEffectColumns = 6
)

// PotionRecords renders chosen potions as a CSV record set: one row per
// potion containing its member labels followed by its revealed effect
// labels, blank-padded to a fixed header. Labels within a row and the rows
// themselves are sorted so repeated runs over the same cover produce
// byte-identical files.
func PotionRecords(members [][]string, effects [][]string) (header []string, rows [][]string, err error) {
	if len(members) != len(effects) {
		return nil, nil, fmt.Errorf("member rows (%d) and effect rows (%d) differ", len(members), len(effects))
	}

	effectColumns := potionMinEffectColumns
	for i := range members {
		if len(members[i]) > potionMemberColumns {
			return nil, nil, fmt.Errorf("potion %d has %d members, want at most %d",
				i, len(members[i]), potionMemberColumns)
		}
		if len(effects[i]) > effectColumns {
			effectColumns = len(effects[i])
		}
	}

	header = make([]string, 0, potionMemberColumns+effectColumns)
	for i := 1; i <= potionMemberColumns; i++ {
		header = append(header, fmt.Sprintf("%s%d", IngredientColumn, i))
	}
	for i := 1; i <= effectColumns; i++ {
		header = append(header, fmt.Sprintf("%s%d", effectColumnPrefix, i))
	}

	rows = make([][]string, 0, len(members))
	for i := range members {
		m := append([]string(nil), members[i]...)
		e := append([]string(nil), effects[i]...)
		sort.Strings(m)
		sort.Strings(e)

		row := make([]string, 0, len(header))
		row = append(row, m...)
		for len(row) < potionMemberColumns {
			row = append(row, "")
		}
		row = append(row, e...)
		for len(row) < potionMemberColumns+effectColumns {
			row = append(row, "")
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(a, b int) bool {
		return strings.Join(rows[a], "\x00") < strings.Join(rows[b], "\x00")
	})

	return header, rows, nil
}
