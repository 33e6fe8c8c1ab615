package table_test

import (
	"math"
	"testing"

	"github.com/paperstack/reportkit/table"
)

type row struct{ a, b, c string }

func flexCols(n int) []table.Column[row] {
	cols := make([]table.Column[row], n)
	for i := range cols {
		cols[i] = table.Column[row]{Key: "k", Header: "H", Value: func(row) string { return "" }}
	}
	return cols
}

func sum(ws []float64) float64 {
	s := 0.0
	for _, w := range ws {
		s += w
	}
	return s
}

func TestResolveWidthsFlexSharesEvenly(t *testing.T) {
	ws := table.ResolveWidths(flexCols(3), 300)
	for i, w := range ws {
		if w != 100 {
			t.Errorf("column %d width %g, want 100", i, w)
		}
	}
}

func TestResolveWidthsMinimumFloor(t *testing.T) {
	// Two flex columns at exactly twice the floor: no slack to spread.
	ws := table.ResolveWidths(flexCols(2), 72)
	if ws[0] != 36 || ws[1] != 36 {
		t.Errorf("widths %v, want [36 36]", ws)
	}
}

func TestResolveWidthsScalesDownWhenOverConstrained(t *testing.T) {
	cols := []table.Column[row]{
		{Key: "a", MinWidth: 24},
		{Key: "b", MinWidth: 24},
		{Key: "c", MinWidth: 24},
	}
	ws := table.ResolveWidths(cols, 40)

	if got := sum(ws); math.Abs(got-40) > 1e-9 {
		t.Errorf("widths sum to %g, want 40", got)
	}
	for i, w := range ws {
		if w >= 24 {
			t.Errorf("column %d width %g not scaled below its 24pt minimum", i, w)
		}
		if math.Abs(w-40.0/3) > 1e-9 {
			t.Errorf("column %d width %g, want proportional share %g", i, w, 40.0/3)
		}
	}
}

func TestResolveWidthsFixedGrowsInDeclarationOrder(t *testing.T) {
	cols := []table.Column[row]{
		{Key: "a", Mode: table.WidthFixed, Width: 100},
		{Key: "b", Mode: table.WidthFixed, Width: 100},
	}
	// 150pt: the first fixed column is satisfied in full, the second gets
	// whatever slack is left.
	ws := table.ResolveWidths(cols, 150)
	if ws[0] != 100 || ws[1] != 50 {
		t.Errorf("widths %v, want [100 50]", ws)
	}
}

func TestResolveWidthsMixedFixedAndFlex(t *testing.T) {
	cols := []table.Column[row]{
		{Key: "a", Width: 120}, // positive Width implies fixed
		{Key: "b"},
	}
	ws := table.ResolveWidths(cols, 300)
	if ws[0] != 120 || ws[1] != 180 {
		t.Errorf("widths %v, want [120 180]", ws)
	}
}

func TestResolveWidthsAlwaysSumToAvailable(t *testing.T) {
	cases := []struct {
		name      string
		cols      []table.Column[row]
		available float64
	}{
		{"flex odd split", flexCols(3), 200},
		{"seven flex", flexCols(7), 531.7},
		{"over-constrained", []table.Column[row]{{MinWidth: 90}, {MinWidth: 90}}, 100},
		{"fixed larger than page", []table.Column[row]{{Mode: table.WidthFixed, Width: 900}, {}}, 300},
	}
	for _, tc := range cases {
		ws := table.ResolveWidths(tc.cols, tc.available)
		if got := sum(ws); math.Abs(got-tc.available) > 1e-9 {
			t.Errorf("%s: widths sum to %g, want %g", tc.name, got, tc.available)
		}
	}
}

func TestResolveWidthsEmpty(t *testing.T) {
	if ws := table.ResolveWidths[row](nil, 300); ws != nil {
		t.Errorf("expected nil for zero columns, got %v", ws)
	}
}
