package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/parser"
)

// ParseDayHeader recognizes "<marker> <n> - <title>" in either language and
// returns the day number with a title rewritten to the canonical marker, so
// "GIORNO 2 - EMOM" and "DAY 2 - EMOM" both give (2, "DAY 2 - EMOM").
func (r *Rules) ParseDayHeader(v string) (int, string, bool) {
	s := parser.CleanText(v)
	if s == "" {
		return 0, "", false
	}
	m := r.dayHeader.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, "", false
	}
	rest := strings.TrimSpace(m[3])
	return day, fmt.Sprintf("%s %d - %s", r.lex.CanonicalDay, day, rest), true
}

// DetectSections scans column A top to bottom. Every day header opens a
// section that runs until the row before the next header, or to the last
// row of the sheet.
func (r *Rules) DetectSections(g *parser.Grid) []models.Section {
	var sections []models.Section
	for _, row := range g.RowRange(1, g.MaxRow()) {
		a := g.Value(row, "A")
		if a == "" {
			continue
		}
		day, title, ok := r.ParseDayHeader(a)
		if !ok {
			continue
		}
		sections = append(sections, models.Section{
			SheetName: g.Name(),
			StartRow:  row,
			DayNumber: day,
			Title:     g.Name() + " - " + title,
		})
	}

	for i := range sections {
		if i+1 < len(sections) {
			sections[i].EndRow = sections[i+1].StartRow - 1
		} else {
			sections[i].EndRow = g.MaxRow()
		}
	}
	return sections
}
