package extract

import (
	"testing"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/parser"
)

// sectionOf returns the only section detected in g.
func sectionOf(t *testing.T, r *Rules, g *parser.Grid) models.Section {
	t.Helper()
	sections := r.DetectSections(g)
	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	return sections[0]
}
