package workoutconv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/output"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/parser"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/validate"
	"golang.org/x/sync/errgroup"
)

// Convert reads the workbook at path and extracts one template per day
// section, in sheet order then row order.
func Convert(path string, opts Options) (*models.ConversionResult, error) {
	grids, err := LoadGrids(path, opts)
	if err != nil {
		return nil, err
	}
	result, err := ConvertGrids(grids, opts)
	if err != nil {
		return nil, err
	}
	result.InputFile = path
	return result, nil
}

// LoadGrids opens the workbook with the configured engine and returns one
// grid per sheet in workbook order.
func LoadGrids(path string, opts Options) ([]*parser.Grid, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	switch opts.Engine {
	case EngineExcelize:
		grids, err := parser.ReadGridsExcelize(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return grids, nil
	case EngineTealeg:
		grids, err := parser.ReadGridsTealeg(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return grids, nil
	}

	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return ParseWorkbook(wb, opts)
}

// ParseWorkbook decodes every sheet's markup into a grid.
func ParseWorkbook(wb *models.Workbook, opts Options) ([]*parser.Grid, error) {
	grids := make([]*parser.Grid, len(wb.Sheets))
	err := forEachSheet(len(wb.Sheets), opts.Parallel, func(i int) error {
		sheet := wb.Sheets[i]
		g, err := parser.ParseSheet(sheet.Name, sheet.Markup, wb.SharedStrings)
		if err != nil {
			return NewExtractionError(sheet.Name, "markup", err)
		}
		grids[i] = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grids, nil
}

// ConvertWorkbook converts an already decoded workbook container.
func ConvertWorkbook(wb *models.Workbook, opts Options) (*models.ConversionResult, error) {
	grids, err := ParseWorkbook(wb, opts)
	if err != nil {
		return nil, err
	}
	return ConvertGrids(grids, opts)
}

// ConvertGrids runs section detection, classification and extraction over
// the grids. Templates keep document order even when sheets are processed
// in parallel.
func ConvertGrids(grids []*parser.Grid, opts Options) (*models.ConversionResult, error) {
	rules, err := opts.Lexicon.Compile()
	if err != nil {
		return nil, err
	}
	log := opts.Logger

	perSheet := make([][]models.Template, len(grids))
	err = forEachSheet(len(grids), opts.Parallel, func(i int) error {
		g := grids[i]
		sections := rules.DetectSections(g)
		templates := make([]models.Template, 0, len(sections))
		for _, sec := range sections {
			t := rules.Section(g, sec)
			log.Debug().
				Str("sheet", sec.SheetName).
				Int("start_row", sec.StartRow).
				Int("end_row", sec.EndRow).
				Str("kind", string(t.Kind())).
				Str("title", sec.Title).
				Msg("section extracted")
			templates = append(templates, t)
		}
		log.Info().Str("sheet", g.Name()).Int("rows", g.MaxRow()).Int("sections", len(sections)).Msg("sheet converted")
		perSheet[i] = templates
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := models.NewConversionResult("")
	for _, templates := range perSheet {
		for _, t := range templates {
			result.Add(t)
		}
	}
	return result, nil
}

// Render serializes the templates and checks the document against the
// importer rules. On a violation it returns a *validate.Error and no data.
func Render(result *models.ConversionResult, pretty bool) ([]byte, error) {
	data, err := output.ToJSON(result.Templates, pretty)
	if err != nil {
		return nil, err
	}
	if _, err := validate.Document(data); err != nil {
		return nil, err
	}
	return data, nil
}

// SheetSections lists the sections detected in one sheet.
type SheetSections struct {
	Sheet    string
	Sections []output.SectionView
}

// DescribeSections reports every detected section with its kind and occupied
// cell range, without extracting templates.
func DescribeSections(grids []*parser.Grid, opts Options) ([]SheetSections, error) {
	rules, err := opts.Lexicon.Compile()
	if err != nil {
		return nil, err
	}

	result := make([]SheetSections, 0, len(grids))
	for _, g := range grids {
		ss := SheetSections{Sheet: g.Name()}
		for _, sec := range rules.DetectSections(g) {
			ss.Sections = append(ss.Sections, output.SectionView{
				Section:   sec,
				Kind:      rules.Classify(sec.Title),
				CellRange: g.CellRange(sec.StartRow, sec.EndRow),
			})
		}
		result = append(result, ss)
	}
	return result, nil
}

// forEachSheet calls fn for every index, concurrently when parallel is set.
func forEachSheet(n int, parallel bool, fn func(i int) error) error {
	if !parallel {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}
