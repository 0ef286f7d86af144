package models

// TargetedItem is an (instruction, prescription) pair used for warm-ups,
// interval minutes and extras.
type TargetedItem struct {
	// Label is the instruction, e.g. the exercise name.
	Label string `json:"label"`
	// Target is the prescription, e.g. "10 reps".
	Target string `json:"target"`
}

// Exercise is a single strength exercise row.
type Exercise struct {
	// Name is the exercise name from the first column.
	Name string `json:"name"`
	// Sets is the number of sets.
	Sets int `json:"sets"`
	// Reps is the number of repetitions per set.
	Reps int `json:"reps"`
	// Weight is the load (nil when the row carries none).
	Weight *float64 `json:"weight,omitempty"`
}

// Station is a numbered circuit station.
type Station struct {
	// Order is the station number exactly as written in the sheet.
	Order int `json:"order"`
	// Label is the station exercise.
	Label string `json:"label"`
	// Target is the station prescription.
	Target string `json:"target"`
}
