package extract

import (
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/parser"
)

// Warmup collects the rows between the warm-up marker and the main-section
// marker. It returns nil unless both markers exist with the main marker
// strictly below the warm-up marker.
func (r *Rules) Warmup(g *parser.Grid, sec models.Section) []models.TargetedItem {
	warmupRow, mainRow := 0, 0
	for _, row := range g.RowRange(sec.StartRow, sec.EndRow) {
		a := g.Value(row, "A")
		if warmupRow == 0 && r.isWarmupMarker(a) {
			warmupRow = row
		}
		if r.isMainMarker(a) {
			mainRow = row
			break
		}
	}
	if warmupRow == 0 || mainRow == 0 || mainRow <= warmupRow {
		return nil
	}

	var items []models.TargetedItem
	for _, row := range g.RowRange(warmupRow+1, mainRow-1) {
		label, target := g.Value(row, "A"), g.Value(row, "B")
		if label == "" || target == "" {
			continue
		}
		if r.isColumnHeader(label) {
			continue
		}
		items = append(items, models.TargetedItem{Label: label, Target: target})
	}
	return items
}
