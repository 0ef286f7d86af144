// Package models defines data structures for workout workbook conversion.
package models

// Kind identifies the workout variant of a template.
type Kind string

const (
	// KindStrength is a sets/reps workout. It is the default kind.
	KindStrength Kind = "strength"
	// KindInterval is an every-minute-on-the-minute workout.
	KindInterval Kind = "emom"
	// KindCircuit is a round-based station workout.
	KindCircuit Kind = "circuit"
)

// Kinds lists every kind in report order.
var Kinds = []Kind{KindStrength, KindInterval, KindCircuit}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindStrength, KindInterval, KindCircuit:
		return true
	}
	return false
}
