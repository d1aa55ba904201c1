package dataset

import (
	"fmt"
	"strings"

	"demodash/internal/errors"
)

// columnAliases maps each canonical column to the alternate names seen in
// published demographic exports. The first present alias wins.
var columnAliases = map[string][]string{
	ColumnRegion:         {"Region", "entity", "Entity", "location", "Location"},
	ColumnLifeExpectancy: {"Life expectancy", "life_expectancy", "value"},
}

// Normalize renames recognized alias columns to their canonical names.
// Columns already canonical are left alone.
func Normalize(t *Table) {
	for canonical, aliases := range columnAliases {
		if t.HasColumn(canonical) {
			continue
		}
		for _, alias := range aliases {
			if t.HasColumn(alias) {
				t.Rename(alias, canonical)
				break
			}
		}
	}
}

// Validate checks that the canonical required columns exist after
// normalization. The error lists the actual columns so a user can see what
// the file really contains.
func Validate(t *Table) error {
	var missing []string
	for _, required := range []string{ColumnRegion, ColumnLifeExpectancy} {
		if !t.HasColumn(required) {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return errors.ColumnMissing(fmt.Sprintf(
			"dataset is missing required columns %s (actual columns: %s)",
			strings.Join(missing, ", "),
			strings.Join(t.Headers, ", "),
		))
	}
	return nil
}
