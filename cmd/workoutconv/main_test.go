package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, dir string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Week 1"))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Week 1", cell, &row))
	}

	path := filepath.Join(dir, "plan.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func validRows() [][]any {
	return [][]any{
		{"DAY 1 - FULL BODY STRENGTH"},
		{"Exercise Selection", "Weight", "Reps", "Sets"},
		{"Squat", 60, 10, 3},
		{"GIORNO 2 - CIRCUITO"},
		{"ALLENAMENTO PRINCIPALE - 4 ROUND, 90 sec"},
		{"1. Burpees", "10"},
	}
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestConvertWritesValidJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, validRows())
	out := filepath.Join(dir, "templates.json")

	code, stdout, stderr := execute(t, "convert", input, out)
	require.Equal(t, exitOK, code, stderr)

	assert.Contains(t, stdout, "1 strength | 0 emom | 1 circuit")
	assert.Contains(t, stdout, "Import validation:")
	assert.Contains(t, stdout, "OK (2 templates)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc []map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 2)
	assert.Equal(t, "week-1-day-1-full-body-strength", doc[0]["id"])
	assert.Equal(t, "circuit", doc[1]["type"])
	assert.Equal(t, float64(90), doc[1]["restBetweenRoundsSeconds"])
}

func TestConvertDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, validRows())

	code, _, stderr := execute(t, "convert", input)
	require.Equal(t, exitOK, code, stderr)
	assert.FileExists(t, filepath.Join(dir, "plan.json"))
}

func TestConvertExcelizeEngine(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, validRows())
	ooxmlOut := filepath.Join(dir, "ooxml.json")
	excelOut := filepath.Join(dir, "excelize.json")

	code, _, stderr := execute(t, "convert", input, ooxmlOut)
	require.Equal(t, exitOK, code, stderr)
	code, _, stderr = execute(t, "--engine", "excelize", "--parallel", "convert", input, excelOut)
	require.Equal(t, exitOK, code, stderr)

	a, err := os.ReadFile(ooxmlOut)
	require.NoError(t, err)
	b, err := os.ReadFile(excelOut)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestConvertValidationFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, [][]any{
		{"DAY 1 - Rest day"},
		{"Walk"},
	})
	out := filepath.Join(dir, "templates.json")

	code, stdout, _ := execute(t, "convert", input, out)
	assert.Equal(t, exitValidation, code)
	assert.Contains(t, stdout, `Validation error:`)
	assert.Contains(t, stdout, `Template 1: Missing or empty "exercises" array`)
	assert.NoFileExists(t, out)
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"missing input argument", []string{"convert"}},
		{"too many arguments", []string{"convert", "a.xlsx", "b.json", "c"}},
		{"missing input file", []string{"convert", filepath.Join(dir, "missing.xlsx")}},
		{"unknown command", []string{"explode"}},
		{"unknown flag", []string{"convert", "--nope"}},
		{"invalid engine", []string{"--engine", "xlrd", "sections", writeWorkbook(t, dir, validRows())}},
		{"missing templates file", []string{"validate", filepath.Join(dir, "missing.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(t, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestConvertUnreadableWorkbook(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(input, []byte("not a zip"), 0644))

	code, _, stderr := execute(t, "convert", input)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "conversion failed")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`[{"id":"a","name":"A","exercises":[{"name":"Row","sets":1,"reps":1}]}]`), 0644))
	require.NoError(t, os.WriteFile(bad, []byte(`[{"id":"a","name":"A","type":"emom","exercises":[],"durationMinutes":0}]`), 0644))

	code, stdout, _ := execute(t, "validate", good)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "OK (1 templates)")

	code, stdout, _ = execute(t, "validate", bad)
	assert.Equal(t, exitValidation, code)
	assert.Contains(t, stdout, `Template 1: "durationMinutes" must be a number > 0`)
}

func TestSectionsCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir, validRows())

	code, stdout, stderr := execute(t, "sections", input)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Week 1 - DAY 2 - CIRCUITO")
	assert.Contains(t, stdout, "A1:D3")

	code, stdout, stderr = execute(t, "sections", "--json", input)
	require.Equal(t, exitOK, code, stderr)
	var views []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "strength", views[0]["kind"])
	assert.Equal(t, float64(4), views[1]["start_row"])
	assert.Equal(t, "A4:B6", views[1]["cell_range"])
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "plan.json", defaultOutputPath("plan.xlsx"))
	assert.Equal(t, filepath.Join("dir", "week.1.json"), defaultOutputPath(filepath.Join("dir", "week.1.xlsx")))
	assert.Equal(t, "plan.json", defaultOutputPath("plan"))
}
