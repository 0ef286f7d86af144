package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/validate"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printConversionReport(w io.Writer, result *models.ConversionResult, outputPath string, size int) {
	fmt.Fprintf(w, "%s %d %s | %d %s | %d %s\n",
		labelStyle.Render("Converted:"),
		result.Counts[models.KindStrength], models.KindStrength,
		result.Counts[models.KindInterval], models.KindInterval,
		result.Counts[models.KindCircuit], models.KindCircuit)
	fmt.Fprintf(w, "%s %s (%s)\n", labelStyle.Render("Wrote:"), outputPath, humanize.Bytes(uint64(size)))
	printValidationOK(w, len(result.Templates))
}

func printValidationOK(w io.Writer, n int) {
	fmt.Fprintf(w, "%s %s (%d templates)\n", labelStyle.Render("Import validation:"), okStyle.Render("OK"), n)
}

func printValidationFailure(w io.Writer, err *validate.Error) {
	fmt.Fprintf(w, "%s %s\n", errStyle.Render("Validation error:"), err.Error())
}

func printSections(w io.Writer, sheets []workoutconv.SheetSections) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SHEET", "DAY", "KIND", "ROWS", "RANGE", "TITLE")
	for _, s := range sheets {
		for _, sec := range s.Sections {
			t.Row(
				s.Sheet,
				strconv.Itoa(sec.DayNumber),
				string(sec.Kind),
				fmt.Sprintf("%d-%d", sec.StartRow, sec.EndRow),
				sec.CellRange,
				sec.Title,
			)
		}
	}
	fmt.Fprintln(w, t.Render())
}
