package extract

import (
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/parser"
)

// Section classifies sec by its title and runs the matching extractor.
func (r *Rules) Section(g *parser.Grid, sec models.Section) models.Template {
	switch r.Classify(sec.Title) {
	case models.KindInterval:
		return r.Interval(g, sec)
	case models.KindCircuit:
		return r.Circuit(g, sec)
	default:
		return r.Strength(g, sec)
	}
}

// Sheet detects every section of g and extracts one template per section,
// in row order.
func (r *Rules) Sheet(g *parser.Grid) []models.Template {
	sections := r.DetectSections(g)
	templates := make([]models.Template, 0, len(sections))
	for _, sec := range sections {
		templates = append(templates, r.Section(g, sec))
	}
	return templates
}
