package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/parser"
)

// Interval reads an EMOM section. The first "EMOM <n> MIN" gives the
// duration (1 when absent); rows from the main-section marker on are sorted
// into minute A, minute B and extras by their leading marker.
func (r *Rules) Interval(g *parser.Grid, sec models.Section) models.IntervalTemplate {
	duration, mainRow := 0, 0
	found := false
	for _, row := range g.RowRange(sec.StartRow, sec.EndRow) {
		a := g.Value(row, "A")
		if a == "" {
			continue
		}
		if !found && r.duration != nil {
			if m := r.duration.FindStringSubmatch(a); m != nil {
				duration, _ = strconv.Atoi(m[1])
				found = true
			}
		}
		if r.isMainMarker(a) {
			mainRow = row
		}
	}
	if duration == 0 {
		duration = 1
	}

	t := models.IntervalTemplate{
		ID:              Slugify(sec.Title),
		Name:            sec.Title,
		DurationMinutes: float64(duration),
		Warmup:          r.Warmup(g, sec),
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
		switch {
		case matches(r.minuteA, a):
			t.MinuteA = append(t.MinuteA, models.TargetedItem{Label: stripLabel(a, r.stripA), Target: b})
		case matches(r.minuteB, a):
			t.MinuteB = append(t.MinuteB, models.TargetedItem{Label: stripLabel(a, r.stripB), Target: b})
		case matches(r.extra, a):
			t.Extras = append(t.Extras, models.TargetedItem{Label: stripLabel(a, r.stripX), Target: b})
		}
	}
	return t
}

// stripLabel drops the row marker from a label. Text after the last colon
// wins ("Minuto A (30s on) : Burpees" -> "Burpees"); otherwise the marker
// prefix is cut. The original text is kept if nothing would remain.
func stripLabel(text string, prefix *regexp.Regexp) string {
	s := parser.CleanText(text)
	if i := strings.LastIndex(s, ":"); i >= 0 {
		if after := strings.TrimSpace(s[i+1:]); after != "" {
			return after
		}
		return s
	}
	if prefix == nil {
		return s
	}
	if stripped := strings.TrimSpace(prefix.ReplaceAllString(s, "")); stripped != "" {
		return stripped
	}
	return s
}

func matches(re *regexp.Regexp, s string) bool {
	return re != nil && re.MatchString(s)
}
