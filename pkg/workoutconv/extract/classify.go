package extract

import "github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"

// Classify picks the workout kind for a section title. Rules are tried in
// lexicon order with a case-insensitive substring match; a title matching
// nothing gets the default kind.
func (r *Rules) Classify(title string) models.Kind {
	up := upper(title)
	for _, rule := range r.kinds {
		if containsAny(up, rule.Keywords) {
			return rule.Kind
		}
	}
	return r.lex.DefaultKind
}
