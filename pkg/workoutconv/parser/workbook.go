package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"github.com/xuri/excelize/v2"
)

const (
	workbookPart      = "xl/workbook.xml"
	workbookRelsPart  = "xl/_rels/workbook.xml.rels"
	sharedStringsPart = "xl/sharedStrings.xml"
)

// sheetEntry is a <sheet> element of xl/workbook.xml.
type sheetEntry struct {
	name string
	rID  string
}

// OpenWorkbook reads an xlsx package from disk.
func OpenWorkbook(path string) (*models.Workbook, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadWorkbook(&r.Reader)
}

// ReadWorkbookBytes reads an xlsx package held in memory.
func ReadWorkbookBytes(data []byte) (*models.Workbook, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return ReadWorkbook(r)
}

// ReadWorkbook returns every worksheet's markup in workbook order together
// with the shared string table.
func ReadWorkbook(r *zip.Reader) (*models.Workbook, error) {
	workbookXML, err := readZipFile(r, workbookPart)
	if err != nil {
		return nil, err
	}
	relsXML, err := readZipFile(r, workbookRelsPart)
	if err != nil {
		return nil, err
	}

	entries, err := parseWorkbookSheets(workbookXML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", workbookPart, err)
	}
	targets, err := parseWorkbookRels(relsXML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", workbookRelsPart, err)
	}

	wb := &models.Workbook{}
	for _, e := range entries {
		target, ok := targets[e.rID]
		if !ok {
			continue
		}
		markup, err := readZipFile(r, resolveSheetPath(target))
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", e.name, err)
		}
		wb.Sheets = append(wb.Sheets, models.RawSheet{Name: e.name, Markup: markup})
	}

	if hasZipFile(r, sharedStringsPart) {
		data, err := readZipFile(r, sharedStringsPart)
		if err != nil {
			return nil, err
		}
		if wb.SharedStrings, err = ParseSharedStrings(data); err != nil {
			return nil, fmt.Errorf("%s: %w", sharedStringsPart, err)
		}
	}

	return wb, nil
}

// ReadGridsExcelize loads every sheet through excelize instead of decoding the
// markup directly. Cell values are read raw so numbers match the OOXML path.
func ReadGridsExcelize(path string) ([]*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var grids []*Grid
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		grids = append(grids, NewGridFromRows(sheetName, rows))
	}
	return grids, nil
}

// parseWorkbookSheets lists <sheet> elements in declared order.
func parseWorkbookSheets(data []byte) ([]sheetEntry, error) {
	var result []sheetEntry
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result = append(result, sheetEntry{name: name, rID: rID})
			}
		}
	}

	return result, nil
}

// parseWorkbookRels maps relationship ids to their targets.
func parseWorkbookRels(data []byte) (map[string]string, error) {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && target != "" {
				result[rID] = target
			}
		}
	}

	return result, nil
}

// resolveSheetPath turns a relationship target into a package part name.
// Targets are either absolute ("/xl/worksheets/sheet1.xml") or relative to
// xl/ ("worksheets/sheet1.xml").
func resolveSheetPath(target string) string {
	clean := strings.TrimLeft(target, "./")
	if strings.HasPrefix(strings.ToLower(clean), "xl/") {
		return clean
	}
	return "xl/" + clean
}

func hasZipFile(r *zip.Reader, name string) bool {
	for _, f := range r.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}
