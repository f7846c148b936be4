package pricing

import "mealweek/internal/domain/entities"

// LineKind tags a cart line as plan-bundled meal or à-la-carte snack. All
// snack/meal branching in pricing and totals goes through Classify so the
// rule lives in exactly one place.

type LineKind int

const (
	LineMeal LineKind = iota
	LineSnack
)

func Classify(item entities.MenuItem) LineKind {
	if item.Category == entities.CategorySnack {
		return LineSnack
	}
	return LineMeal
}
