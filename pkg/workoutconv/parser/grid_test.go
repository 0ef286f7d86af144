package parser

import (
	"reflect"
	"testing"
)

func TestNewGridDropsEmptyCells(t *testing.T) {
	g := NewGrid("Week 1", map[CellRef]string{
		{Row: 1, Col: "A"}: "DAY 1 - PUSH",
		{Row: 1, Col: "b"}: " 60 ",
		{Row: 2, Col: "A"}: "   ",
		{Row: 3, Col: "A"}: " ",
		{Row: 0, Col: "A"}: "ignored",
	}, 5)

	if g.Len() != 2 {
		t.Fatalf("Expected 2 cells, got %d", g.Len())
	}
	if v, ok := g.Get(1, "B"); !ok || v != "60" {
		t.Errorf("Get(1, B) = (%q, %v), expected (\"60\", true)", v, ok)
	}
	if v := g.Value(1, "a"); v != "DAY 1 - PUSH" {
		t.Errorf("Value(1, a) = %q", v)
	}
	if _, ok := g.Get(2, "A"); ok {
		t.Error("Expected whitespace-only cell to be absent")
	}
	if g.Name() != "Week 1" || g.MaxRow() != 5 {
		t.Errorf("Unexpected grid header: %q / %d", g.Name(), g.MaxRow())
	}
}

func TestRowRange(t *testing.T) {
	g := NewGrid("S", nil, 5)

	tests := []struct {
		start, end int
		expected   []int
	}{
		{1, 3, []int{1, 2, 3}},
		{0, 2, []int{1, 2}},
		{4, 10, []int{4, 5}},
		{3, 3, []int{3}},
		{3, 2, nil},
		{6, 8, nil},
	}

	for _, tt := range tests {
		got := g.RowRange(tt.start, tt.end)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("RowRange(%d, %d) = %v, expected %v", tt.start, tt.end, got, tt.expected)
		}
	}
}

func TestNewGridFromRows(t *testing.T) {
	g := NewGridFromRows("Week 2", [][]string{
		{"DAY 1 - A"},
		{},
		{"Squat", "60", "10", "3"},
	})

	if g.MaxRow() != 3 {
		t.Errorf("Expected max row 3, got %d", g.MaxRow())
	}
	if v := g.Value(3, "D"); v != "3" {
		t.Errorf("Value(3, D) = %q, expected \"3\"", v)
	}
	if g.Len() != 5 {
		t.Errorf("Expected 5 cells, got %d", g.Len())
	}
}

func TestCellRange(t *testing.T) {
	g := NewGridFromRows("S", [][]string{
		{"DAY 1 - A"},
		{"", "x"},
		{"Squat", "60", "10", "3"},
		{"DAY 2 - B"},
	})

	if got := g.CellRange(1, 3); got != "A1:D3" {
		t.Errorf("CellRange(1, 3) = %q, expected A1:D3", got)
	}
	if got := g.CellRange(2, 2); got != "B2:B2" {
		t.Errorf("CellRange(2, 2) = %q, expected B2:B2", got)
	}
	if got := g.CellRange(5, 9); got != "" {
		t.Errorf("CellRange(5, 9) = %q, expected empty", got)
	}
}
