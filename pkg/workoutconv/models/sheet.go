package models

// RawSheet is one worksheet as delivered by the container decoder.
type RawSheet struct {
	// Name is the sheet tab name.
	Name string
	// Markup is the worksheet XML document.
	Markup []byte
}

// Section is a contiguous row range holding one day's workout.
type Section struct {
	// SheetName is the sheet the section belongs to.
	SheetName string `json:"sheet_name"`
	// StartRow is the day-header row (1-based).
	StartRow int `json:"start_row"`
	// EndRow is the last row of the section (inclusive).
	EndRow int `json:"end_row"`
	// DayNumber is the day index parsed from the header.
	DayNumber int `json:"day_number"`
	// Title is "<sheet> - DAY <n> - <rest>".
	Title string `json:"title"`
}

// Workbook is the decoded container: sheets in workbook order plus the
// shared string table their cells may reference.
type Workbook struct {
	// Sheets holds every worksheet in declared order.
	Sheets []RawSheet
	// SharedStrings is the shared string table (nil when the part is absent).
	SharedStrings []string
}
