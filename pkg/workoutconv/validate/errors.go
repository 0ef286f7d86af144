package validate

import (
	"errors"
	"fmt"
)

// ErrInvalidTemplate is wrapped by every *Error.
var ErrInvalidTemplate = errors.New("invalid template")

// Error reports the first schema violation found in a template document.
type Error struct {
	// Template is the 1-based template position (0 for document-level errors).
	Template int
	// Item names the nested list element, e.g. "Exercise", "Station" or "minuteA".
	Item string
	// Index is the 1-based position within Item.
	Index int
	// Reason is a one-line cause.
	Reason string
}

func (e *Error) Error() string {
	switch {
	case e.Template == 0:
		return e.Reason
	case e.Item == "":
		return fmt.Sprintf("Template %d: %s", e.Template, e.Reason)
	default:
		return fmt.Sprintf("Template %d, %s %d: %s", e.Template, e.Item, e.Index, e.Reason)
	}
}

func (e *Error) Unwrap() error {
	return ErrInvalidTemplate
}

func templateErr(i int, format string, args ...any) *Error {
	return &Error{Template: i + 1, Reason: fmt.Sprintf(format, args...)}
}

func itemErr(i int, item string, j int, format string, args ...any) *Error {
	return &Error{Template: i + 1, Item: item, Index: j + 1, Reason: fmt.Sprintf(format, args...)}
}
