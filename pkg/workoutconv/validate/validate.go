// Package validate enforces the importer's acceptance rules on a template
// document. It works on the serialized JSON, independent of how the
// templates were produced, and stops at the first violation.
package validate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
)

// Templates validates an in-memory template list as the importer would see it.
func Templates(templates []models.Template) error {
	if templates == nil {
		templates = []models.Template{}
	}
	data, err := json.Marshal(templates)
	if err != nil {
		return err
	}
	_, err = Document(data)
	return err
}

// Document validates a JSON template array and returns the number of
// templates it holds.
func Document(data []byte) (int, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return 0, &Error{Reason: "malformed JSON: " + err.Error()}
	}
	list, ok := doc.([]any)
	if !ok {
		return 0, &Error{Reason: "document must be a JSON array of templates"}
	}

	for i, v := range list {
		t, ok := v.(map[string]any)
		if !ok {
			return 0, templateErr(i, "must be an object")
		}
		if err := checkTemplate(i, t); err != nil {
			return 0, err
		}
	}
	return len(list), nil
}

func checkTemplate(i int, t map[string]any) error {
	if !nonEmptyString(t["id"]) {
		return templateErr(i, `Missing or invalid "id" field`)
	}
	if !nonEmptyString(t["name"]) {
		return templateErr(i, `Missing or invalid "name" field`)
	}

	kind := models.KindStrength
	if raw, ok := t["type"]; ok {
		s, isString := raw.(string)
		if !isString || !models.Kind(s).Valid() {
			return templateErr(i, `Invalid "type"`)
		}
		kind = models.Kind(s)
	}

	switch kind {
	case models.KindInterval:
		return checkInterval(i, t)
	case models.KindCircuit:
		return checkCircuit(i, t)
	default:
		return checkStrength(i, t)
	}
}

func checkStrength(i int, t map[string]any) error {
	exercises, ok := t["exercises"].([]any)
	if !ok || len(exercises) == 0 {
		return templateErr(i, `Missing or empty "exercises" array`)
	}
	for j, v := range exercises {
		ex, ok := v.(map[string]any)
		if !ok {
			return itemErr(i, "Exercise", j, "must be an object")
		}
		if !nonEmptyString(ex["name"]) {
			return itemErr(i, "Exercise", j, `Missing or invalid "name"`)
		}
		if n, ok := asInt(ex["sets"]); !ok || n < 1 {
			return itemErr(i, "Exercise", j, `"sets" must be an int >= 1`)
		}
		if n, ok := asInt(ex["reps"]); !ok || n < 1 {
			return itemErr(i, "Exercise", j, `"reps" must be an int >= 1`)
		}
		if w, present := ex["weight"]; present {
			if f, ok := asNumber(w); !ok || f < 0 {
				return itemErr(i, "Exercise", j, `"weight" must be a number >= 0`)
			}
		}
	}
	return nil
}

func checkInterval(i int, t map[string]any) error {
	if f, ok := asNumber(t["durationMinutes"]); !ok || f <= 0 {
		return templateErr(i, `"durationMinutes" must be a number > 0`)
	}
	if err := checkTargeted(i, t, "warmup", false); err != nil {
		return err
	}
	if err := checkTargeted(i, t, "minuteA", true); err != nil {
		return err
	}
	if err := checkTargeted(i, t, "minuteB", true); err != nil {
		return err
	}
	if err := checkTargeted(i, t, "extras", false); err != nil {
		return err
	}
	return checkExercisesArray(i, t)
}

func checkCircuit(i int, t map[string]any) error {
	if n, ok := asInt(t["rounds"]); !ok || n < 1 {
		return templateErr(i, `"rounds" must be an int >= 1`)
	}
	if rest, present := t["restBetweenRoundsSeconds"]; present && rest != nil {
		if n, ok := asInt(rest); !ok || n < 0 {
			return templateErr(i, `"restBetweenRoundsSeconds" must be an int >= 0`)
		}
	}
	if err := checkTargeted(i, t, "warmup", false); err != nil {
		return err
	}

	stations, ok := t["stations"].([]any)
	if !ok || len(stations) == 0 {
		return templateErr(i, `Missing or empty "stations" array`)
	}
	for j, v := range stations {
		st, ok := v.(map[string]any)
		if !ok {
			return itemErr(i, "Station", j, "must be an object")
		}
		if n, ok := asInt(st["order"]); !ok || n < 1 {
			return itemErr(i, "Station", j, `"order" must be an int >= 1`)
		}
		if !nonEmptyString(st["label"]) {
			return itemErr(i, "Station", j, `Missing or invalid "label"`)
		}
		if !nonEmptyString(st["target"]) {
			return itemErr(i, "Station", j, `Missing or invalid "target"`)
		}
	}
	return checkExercisesArray(i, t)
}

// checkTargeted validates a list of {label, target} items. Optional lists may
// be absent, null or empty; required ones must hold at least one item.
func checkTargeted(i int, t map[string]any, field string, required bool) error {
	raw := t[field]
	if raw == nil {
		if required {
			return templateErr(i, `Invalid or empty %q`, field)
		}
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return templateErr(i, `Invalid %q: must be an array`, field)
	}
	if required && len(items) == 0 {
		return templateErr(i, `Invalid or empty %q`, field)
	}
	for j, v := range items {
		it, ok := v.(map[string]any)
		if !ok {
			return itemErr(i, field, j, "must be an object")
		}
		if !nonEmptyString(it["label"]) {
			return itemErr(i, field, j, `Missing or invalid "label"`)
		}
		if !nonEmptyString(it["target"]) {
			return itemErr(i, field, j, `Missing or invalid "target"`)
		}
	}
	return nil
}

func checkExercisesArray(i int, t map[string]any) error {
	if _, ok := t["exercises"].([]any); !ok {
		return templateErr(i, `"exercises" must be an array (can be empty)`)
	}
	return nil
}

func nonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// asInt accepts JSON integers only; 3.0 and 1e2 are numbers, not ints.
func asInt(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

func asNumber(v any) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}
