package models

import (
	"bytes"
	"encoding/json"
)

// Template is one importable workout. It is a closed sum type: the only
// implementations are StrengthTemplate, IntervalTemplate and CircuitTemplate.
type Template interface {
	// Kind returns the discriminant written to the "type" field.
	Kind() Kind
	// Identity returns the slug id and display name.
	Identity() (id, name string)

	isTemplate()
}

// StrengthTemplate is a list of sets/reps exercises.
type StrengthTemplate struct {
	ID        string
	Name      string
	Exercises []Exercise
}

// IntervalTemplate alternates minute A and minute B blocks.
type IntervalTemplate struct {
	ID              string
	Name            string
	DurationMinutes float64
	Warmup          []TargetedItem
	MinuteA         []TargetedItem
	MinuteB         []TargetedItem
	Extras          []TargetedItem
}

// CircuitTemplate repeats a list of stations for a number of rounds.
type CircuitTemplate struct {
	ID                       string
	Name                     string
	Rounds                   int
	RestBetweenRoundsSeconds *int
	Warmup                   []TargetedItem
	Stations                 []Station
}

func (StrengthTemplate) Kind() Kind { return KindStrength }
func (IntervalTemplate) Kind() Kind { return KindInterval }
func (CircuitTemplate) Kind() Kind  { return KindCircuit }

func (t StrengthTemplate) Identity() (string, string) { return t.ID, t.Name }
func (t IntervalTemplate) Identity() (string, string) { return t.ID, t.Name }
func (t CircuitTemplate) Identity() (string, string)  { return t.ID, t.Name }

func (StrengthTemplate) isTemplate() {}
func (IntervalTemplate) isTemplate() {}
func (CircuitTemplate) isTemplate()  {}

// Wire shapes. Optional lists are nil when empty so omitempty drops them;
// "exercises" is always written as an array.

type strengthWire struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      Kind       `json:"type"`
	Exercises []Exercise `json:"exercises"`
}

type intervalWire struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            Kind           `json:"type"`
	Exercises       []Exercise     `json:"exercises"`
	DurationMinutes float64        `json:"durationMinutes"`
	Warmup          []TargetedItem `json:"warmup,omitempty"`
	MinuteA         []TargetedItem `json:"minuteA"`
	MinuteB         []TargetedItem `json:"minuteB"`
	Extras          []TargetedItem `json:"extras,omitempty"`
}

type circuitWire struct {
	ID                       string         `json:"id"`
	Name                     string         `json:"name"`
	Type                     Kind           `json:"type"`
	Exercises                []Exercise     `json:"exercises"`
	Rounds                   int            `json:"rounds"`
	RestBetweenRoundsSeconds *int           `json:"restBetweenRoundsSeconds,omitempty"`
	Warmup                   []TargetedItem `json:"warmup,omitempty"`
	Stations                 []Station      `json:"stations"`
}

// MarshalJSON writes the importer shape with the "type" discriminant.
func (t StrengthTemplate) MarshalJSON() ([]byte, error) {
	return marshalWire(strengthWire{
		ID:        t.ID,
		Name:      t.Name,
		Type:      KindStrength,
		Exercises: nonNil(t.Exercises),
	})
}

// MarshalJSON writes the importer shape with the "type" discriminant.
func (t IntervalTemplate) MarshalJSON() ([]byte, error) {
	return marshalWire(intervalWire{
		ID:              t.ID,
		Name:            t.Name,
		Type:            KindInterval,
		Exercises:       []Exercise{},
		DurationMinutes: t.DurationMinutes,
		Warmup:          t.Warmup,
		MinuteA:         nonNil(t.MinuteA),
		MinuteB:         nonNil(t.MinuteB),
		Extras:          t.Extras,
	})
}

// MarshalJSON writes the importer shape with the "type" discriminant.
func (t CircuitTemplate) MarshalJSON() ([]byte, error) {
	return marshalWire(circuitWire{
		ID:                       t.ID,
		Name:                     t.Name,
		Type:                     KindCircuit,
		Exercises:                []Exercise{},
		Rounds:                   t.Rounds,
		RestBetweenRoundsSeconds: t.RestBetweenRoundsSeconds,
		Warmup:                   t.Warmup,
		Stations:                 nonNil(t.Stations),
	})
}

// marshalWire encodes without HTML escaping so names like "Push & Pull"
// survive as written.
func marshalWire(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
