package extract

import (
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/parser"
)

// Strength reads exercise rows: name in A, weight in B, reps in C, sets in D.
// Scanning starts below the column header (or one row below the day header
// when there is none) and stops at a cool-down marker or a stray day header.
// Rows without a name or without integer reps and sets are skipped.
func (r *Rules) Strength(g *parser.Grid, sec models.Section) models.StrengthTemplate {
	headerRow := 0
	for _, row := range g.RowRange(sec.StartRow, min(sec.EndRow, sec.StartRow+r.lex.HeaderSearchRows)) {
		if r.isColumnHeader(g.Value(row, "A")) {
			headerRow = row
			break
		}
	}
	if headerRow == 0 {
		headerRow = sec.StartRow + 1
	}

	var exercises []models.Exercise
	for _, row := range g.RowRange(headerRow+1, sec.EndRow) {
		name := g.Value(row, "A")
		if name == "" {
			continue
		}
		if r.isCooldownMarker(name) {
			break
		}
		if _, _, ok := r.ParseDayHeader(name); ok {
			break
		}

		reps, okReps := parser.ParseInt(g.Value(row, "C"))
		sets, okSets := parser.ParseInt(g.Value(row, "D"))
		if !okReps || !okSets {
			continue
		}

		ex := models.Exercise{Name: name, Sets: sets, Reps: reps}
		if w, ok := parser.ParseNumber(g.Value(row, "B")); ok {
			ex.Weight = &w
		}
		exercises = append(exercises, ex)
	}

	return models.StrengthTemplate{
		ID:        Slugify(sec.Title),
		Name:      sec.Title,
		Exercises: exercises,
	}
}
