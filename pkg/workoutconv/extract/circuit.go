package extract

import (
	"strconv"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/parser"
)

// Circuit reads a circuit section. The main-section marker row may carry
// "<n> ROUND" and "<n> sec"; stations are "<n>. <label>" rows with a target
// in column B, numbered as written.
func (r *Rules) Circuit(g *parser.Grid, sec models.Section) models.CircuitTemplate {
	rounds, mainRow := 0, 0
	var rest *int
	for _, row := range g.RowRange(sec.StartRow, sec.EndRow) {
		a := g.Value(row, "A")
		if a == "" || !r.isMainMarker(a) {
			continue
		}
		mainRow = row
		if r.rounds != nil {
			if m := r.rounds.FindStringSubmatch(a); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					rounds = n
				}
			}
		}
		if r.rest != nil {
			if m := r.rest.FindStringSubmatch(a); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					rest = &n
				}
			}
		}
	}
	if rounds == 0 {
		rounds = 1
	}

	t := models.CircuitTemplate{
		ID:                       Slugify(sec.Title),
		Name:                     sec.Title,
		Rounds:                   rounds,
		RestBetweenRoundsSeconds: rest,
		Warmup:                   r.Warmup(g, sec),
	}

	start := mainRow
	if start == 0 {
		start = sec.StartRow
	}
	for _, row := range g.RowRange(start, sec.EndRow) {
		a, b := g.Value(row, "A"), g.Value(row, "B")
		if a == "" || b == "" {
			continue
		}
		m := r.station.FindStringSubmatch(a)
		if m == nil {
			continue
		}
		order, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		t.Stations = append(t.Stations, models.Station{Order: order, Label: parser.CleanText(m[2]), Target: b})
	}
	return t
}
