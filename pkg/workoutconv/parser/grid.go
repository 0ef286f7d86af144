package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRef addresses a cell by row number and column letters.
type CellRef struct {
	Row int
	Col string
}

// Grid is a sparse, read-only cell store for one sheet. Only non-empty
// cleaned values are kept, so a missing key and an empty cell are the same.
type Grid struct {
	name   string
	cells  map[CellRef]string
	maxRow int
}

// NewGrid builds a grid from raw cell values. Values are cleaned and empty
// ones dropped; column letters are upper-cased.
func NewGrid(name string, cells map[CellRef]string, maxRow int) *Grid {
	g := &Grid{name: name, cells: make(map[CellRef]string, len(cells)), maxRow: maxRow}
	for ref, v := range cells {
		if ref.Row < 1 {
			continue
		}
		if v = CleanText(v); v == "" {
			continue
		}
		g.cells[CellRef{Row: ref.Row, Col: strings.ToUpper(ref.Col)}] = v
	}
	return g
}

// NewGridFromRows builds a grid from a dense row slice as returned by
// excelize's GetRows. rows[0] is row 1, rows[i][0] is column A.
func NewGridFromRows(name string, rows [][]string) *Grid {
	cells := make(map[CellRef]string)
	for i, row := range rows {
		for j, v := range row {
			if v == "" {
				continue
			}
			col, err := excelize.ColumnNumberToName(j + 1)
			if err != nil {
				continue
			}
			cells[CellRef{Row: i + 1, Col: col}] = v
		}
	}
	return NewGrid(name, cells, len(rows))
}

// Name returns the sheet name.
func (g *Grid) Name() string { return g.name }

// MaxRow returns the last row number seen in the sheet.
func (g *Grid) MaxRow() int { return g.maxRow }

// Len returns the number of populated cells.
func (g *Grid) Len() int { return len(g.cells) }

// Get returns the cleaned text at (row, col) and whether the cell is populated.
func (g *Grid) Get(row int, col string) (string, bool) {
	v, ok := g.cells[CellRef{Row: row, Col: strings.ToUpper(col)}]
	return v, ok
}

// Value returns the cleaned text at (row, col), or "" when absent.
func (g *Grid) Value(row int, col string) string {
	v, _ := g.Get(row, col)
	return v
}

// RowRange returns the row numbers start..end inclusive, clipped to
// [1, MaxRow]. It is empty when end < start.
func (g *Grid) RowRange(start, end int) []int {
	if start < 1 {
		start = 1
	}
	if end > g.maxRow {
		end = g.maxRow
	}
	if end < start {
		return nil
	}
	rows := make([]int, 0, end-start+1)
	for r := start; r <= end; r++ {
		rows = append(rows, r)
	}
	return rows
}

// Bounds finds the occupied column span within rows start..end.
// Columns are 1-based; ok is false when no cell in the range is populated.
func (g *Grid) Bounds(start, end int) (minCol, maxCol int, ok bool) {
	minCol, maxCol = -1, -1
	for ref := range g.cells {
		if ref.Row < start || ref.Row > end {
			continue
		}
		n, err := excelize.ColumnNameToNumber(ref.Col)
		if err != nil {
			continue
		}
		if minCol < 0 || n < minCol {
			minCol = n
		}
		if maxCol < 0 || n > maxCol {
			maxCol = n
		}
	}
	return minCol, maxCol, minCol > 0
}

// CellRange renders the occupied area of rows start..end in A1 notation,
// e.g. "A3:D12". It returns "" for an empty range.
func (g *Grid) CellRange(start, end int) string {
	minCol, maxCol, ok := g.Bounds(start, end)
	if !ok {
		return ""
	}
	from, err := excelize.CoordinatesToCellName(minCol, start)
	if err != nil {
		return ""
	}
	to, err := excelize.CoordinatesToCellName(maxCol, end)
	if err != nil {
		return ""
	}
	return from + ":" + to
}
