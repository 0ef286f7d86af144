package validate

import (
	"errors"
	"testing"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentAccepts(t *testing.T) {
	doc := `[
	  {"id":"s","name":"S","type":"strength","exercises":[{"name":"Squat","sets":3,"reps":10,"weight":0}]},
	  {"id":"legacy","name":"No type","exercises":[{"name":"Row","sets":1,"reps":1}]},
	  {"id":"e","name":"E","type":"emom","exercises":[],"durationMinutes":0.5,
	   "minuteA":[{"label":"A","target":"1"}],"minuteB":[{"label":"B","target":"2"}],"warmup":null},
	  {"id":"c","name":"C","type":"circuit","exercises":[],"rounds":2,"restBetweenRoundsSeconds":null,
	   "stations":[{"order":5,"label":"Push-up","target":"10"}]}
	]`

	n, err := Document([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestDocumentEmptyArray(t *testing.T) {
	n, err := Document([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDocumentRejects(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{"malformed", `[{"id":`, "malformed JSON"},
		{"not an array", `{"id":"x"}`, "document must be a JSON array of templates"},
		{"non-object template", `[1]`, "Template 1: must be an object"},
		{"missing id", `[{"name":"N","exercises":[]}]`, `Template 1: Missing or invalid "id" field`},
		{"blank name", `[{"id":"x","name":"  ","exercises":[]}]`, `Template 1: Missing or invalid "name" field`},
		{"unknown type", `[{"id":"x","name":"N","type":"tabata"}]`, `Template 1: Invalid "type"`},
		{"non-string type", `[{"id":"x","name":"N","type":3}]`, `Template 1: Invalid "type"`},
		{"empty exercises", `[{"id":"x","name":"N","type":"strength","exercises":[]}]`, `Template 1: Missing or empty "exercises" array`},
		{"zero sets", `[{"id":"x","name":"N","exercises":[{"name":"A","sets":0,"reps":5}]}]`, `Template 1, Exercise 1: "sets" must be an int >= 1`},
		{"float reps", `[{"id":"x","name":"N","exercises":[{"name":"A","sets":1,"reps":5.5}]}]`, `Template 1, Exercise 1: "reps" must be an int >= 1`},
		{"bool reps", `[{"id":"x","name":"N","exercises":[{"name":"A","sets":1,"reps":true}]}]`, `Template 1, Exercise 1: "reps" must be an int >= 1`},
		{"negative weight", `[{"id":"x","name":"N","exercises":[{"name":"A","sets":1,"reps":1},{"name":"B","sets":1,"reps":1,"weight":-1}]}]`, `Template 1, Exercise 2: "weight" must be a number >= 0`},
		{"null weight", `[{"id":"x","name":"N","exercises":[{"name":"A","sets":1,"reps":1,"weight":null}]}]`, `Template 1, Exercise 1: "weight" must be a number >= 0`},
		{"zero duration", `[{"id":"x","name":"N","type":"emom","exercises":[],"durationMinutes":0,"minuteA":[{"label":"a","target":"b"}],"minuteB":[{"label":"a","target":"b"}]}]`, `Template 1: "durationMinutes" must be a number > 0`},
		{"empty minuteA", `[{"id":"x","name":"N","type":"emom","exercises":[],"durationMinutes":10,"minuteA":[],"minuteB":[{"label":"a","target":"b"}]}]`, `Template 1: Invalid or empty "minuteA"`},
		{"missing minuteB", `[{"id":"x","name":"N","type":"emom","exercises":[],"durationMinutes":10,"minuteA":[{"label":"a","target":"b"}]}]`, `Template 1: Invalid or empty "minuteB"`},
		{"bad extras item", `[{"id":"x","name":"N","type":"emom","exercises":[],"durationMinutes":10,"minuteA":[{"label":"a","target":"b"}],"minuteB":[{"label":"a","target":"b"}],"extras":[{"label":"a","target":""}]}]`, `Template 1, extras 1: Missing or invalid "target"`},
		{"warmup not array", `[{"id":"x","name":"N","type":"emom","exercises":[],"durationMinutes":10,"warmup":"jog","minuteA":[{"label":"a","target":"b"}],"minuteB":[{"label":"a","target":"b"}]}]`, `Template 1: Invalid "warmup": must be an array`},
		{"interval without exercises", `[{"id":"x","name":"N","type":"emom","durationMinutes":10,"minuteA":[{"label":"a","target":"b"}],"minuteB":[{"label":"a","target":"b"}]}]`, `Template 1: "exercises" must be an array (can be empty)`},
		{"zero rounds", `[{"id":"x","name":"N","type":"circuit","exercises":[],"rounds":0,"stations":[{"order":1,"label":"a","target":"b"}]}]`, `Template 1: "rounds" must be an int >= 1`},
		{"negative rest", `[{"id":"x","name":"N","type":"circuit","exercises":[],"rounds":1,"restBetweenRoundsSeconds":-5,"stations":[{"order":1,"label":"a","target":"b"}]}]`, `Template 1: "restBetweenRoundsSeconds" must be an int >= 0`},
		{"no stations", `[{"id":"x","name":"N","type":"circuit","exercises":[],"rounds":1,"stations":[]}]`, `Template 1: Missing or empty "stations" array`},
		{"station order", `[{"id":"x","name":"N","type":"circuit","exercises":[],"rounds":1,"stations":[{"order":0,"label":"a","target":"b"}]}]`, `Template 1, Station 1: "order" must be an int >= 1`},
		{"station label", `[{"id":"x","name":"N","type":"circuit","exercises":[],"rounds":1,"stations":[{"order":1,"target":"b"}]}]`, `Template 1, Station 1: Missing or invalid "label"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Document([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
			assert.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}

func TestDocumentReportsFirstFailingTemplate(t *testing.T) {
	doc := `[
	  {"id":"ok","name":"OK","exercises":[{"name":"A","sets":1,"reps":1}]},
	  {"id":"bad","name":"Bad","type":"circuit","exercises":[],"rounds":1,"stations":[]},
	  {"id":"","name":"Worse"}
	]`

	_, err := Document([]byte(doc))
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 2, verr.Template)
	assert.Equal(t, "", verr.Item)
	assert.Equal(t, `Template 2: Missing or empty "stations" array`, verr.Error())
}

func TestTemplates(t *testing.T) {
	weight := 20.0

	ok := []models.Template{
		models.StrengthTemplate{ID: "s", Name: "S", Exercises: []models.Exercise{{Name: "Press", Sets: 3, Reps: 8, Weight: &weight}}},
		models.IntervalTemplate{
			ID: "e", Name: "E", DurationMinutes: 10,
			MinuteA: []models.TargetedItem{{Label: "Row", Target: "12 cal"}},
			MinuteB: []models.TargetedItem{{Label: "Burpees", Target: "8"}},
		},
	}
	assert.NoError(t, Templates(ok))
	assert.NoError(t, Templates(nil))

	bad := append(ok, models.IntervalTemplate{ID: "x", Name: "X", DurationMinutes: 10})
	err := Templates(bad)
	require.Error(t, err)
	assert.Equal(t, `Template 3: Invalid or empty "minuteA"`, err.Error())

	empty := []models.Template{models.StrengthTemplate{ID: "s", Name: "Rest day"}}
	err = Templates(empty)
	require.Error(t, err)
	assert.Equal(t, `Template 1: Missing or empty "exercises" array`, err.Error())
}
