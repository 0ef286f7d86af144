package parser

import (
	"github.com/tealeg/xlsx"
)

// ReadGridsTealeg loads every sheet through tealeg/xlsx. Cell values are the
// stored strings, shared strings already resolved, so they line up with the
// other readers.
func ReadGridsTealeg(path string) ([]*Grid, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, err
	}

	grids := make([]*Grid, 0, len(f.Sheets))
	for _, sheet := range f.Sheets {
		rows := make([][]string, len(sheet.Rows))
		for i, row := range sheet.Rows {
			if row == nil {
				continue
			}
			values := make([]string, len(row.Cells))
			for j, cell := range row.Cells {
				if cell != nil {
					values[j] = cell.Value
				}
			}
			rows[i] = values
		}
		grids = append(grids, NewGridFromRows(sheet.Name, trimTrailingRows(rows)))
	}
	return grids, nil
}

// trimTrailingRows drops empty rows at the end so MaxRow matches the last
// populated row, as excelize's GetRows reports it.
func trimTrailingRows(rows [][]string) [][]string {
	for len(rows) > 0 && isBlankRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if CleanText(v) != "" {
			return false
		}
	}
	return true
}
