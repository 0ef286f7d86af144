// Package workoutconv converts weekly workout workbooks into importer-ready
// template JSON.
package workoutconv

import (
	"fmt"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/extract"
	"github.com/rs/zerolog"
)

// Engine selects how cell text is read from the workbook.
type Engine string

const (
	// EngineOOXML decodes the worksheet markup directly, resolving inline and
	// shared strings.
	EngineOOXML Engine = "ooxml"
	// EngineExcelize reads raw cell values through excelize.
	EngineExcelize Engine = "excelize"
	// EngineTealeg reads stored cell values through tealeg/xlsx.
	EngineTealeg Engine = "tealeg"
)

// Options configures conversion behavior.
type Options struct {
	// Engine specifies the workbook reader (ooxml, excelize, tealeg).
	Engine Engine
	// Parallel extracts sheets concurrently. Output order is unchanged.
	Parallel bool
	// Lexicon holds the keyword tables used for detection and extraction.
	Lexicon extract.Lexicon
	// Logger receives progress and diagnostics. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Engine:  EngineOOXML,
		Lexicon: extract.DefaultLexicon(),
		Logger:  zerolog.Nop(),
	}
}

// ParseEngine maps an engine name to an Engine.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case EngineOOXML, EngineExcelize, EngineTealeg:
		return Engine(s), nil
	case "":
		return EngineOOXML, nil
	default:
		return "", fmt.Errorf("invalid engine: %s (must be ooxml, excelize or tealeg)", s)
	}
}
