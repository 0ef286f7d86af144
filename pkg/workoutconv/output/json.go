// Package output serializes conversion results.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
)

// ToJSON writes templates as a JSON array. Optional fields that are unset are
// omitted rather than written as null, and non-ASCII text is kept as UTF-8.
// With pretty set the array is indented by two spaces.
func ToJSON(templates []models.Template, pretty bool) ([]byte, error) {
	if templates == nil {
		templates = []models.Template{}
	}
	return encode(templates, pretty)
}

// SectionsToJSON writes detected sections, e.g. for inspection output.
func SectionsToJSON(sections []SectionView, pretty bool) ([]byte, error) {
	if sections == nil {
		sections = []SectionView{}
	}
	return encode(sections, pretty)
}

// SectionView describes one detected section together with its kind and the
// occupied cell range.
type SectionView struct {
	models.Section
	// Kind is the classified workout kind.
	Kind models.Kind `json:"kind"`
	// CellRange is the occupied area in A1 notation (empty for an empty section).
	CellRange string `json:"cell_range,omitempty"`
}

func encode(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
