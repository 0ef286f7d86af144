package models

// ConversionResult is the outcome of converting one workbook.
type ConversionResult struct {
	// InputFile is the workbook path (empty for in-memory conversions).
	InputFile string
	// Templates holds every template in (sheet, day header) order.
	Templates []Template
	// Counts tallies templates per kind.
	Counts map[Kind]int
}

// NewConversionResult returns an empty result with all counters present.
func NewConversionResult(inputFile string) *ConversionResult {
	counts := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = 0
	}
	return &ConversionResult{InputFile: inputFile, Counts: counts}
}

// Add appends t and bumps its kind counter.
func (r *ConversionResult) Add(t Template) {
	r.Templates = append(r.Templates, t)
	r.Counts[t.Kind()]++
}
