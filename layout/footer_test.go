package layout_test

import (
	"fmt"
	"testing"

	"github.com/paperstack/reportkit/layout"
)

func TestFinalizeFootersStampsEveryPage(t *testing.T) {
	ctx, canvas := newTestContext()
	ctx.AddPage()
	ctx.AddPage()

	ctx.FinalizeFooters(layout.Footer{Label: "ref-001", Brand: "Paperstack"})

	for i := 0; i < 3; i++ {
		page := canvas.Page(i)

		bandOK := false
		for _, r := range page.Rects {
			if r.Filled && r.Color.R == 8 && r.X == 0 && r.Y == 0 && r.W == 400 && r.H == 30 {
				bandOK = true
			}
		}
		if !bandOK {
			t.Errorf("page %d: footer band missing", i+1)
		}

		if _, ok := page.TextAt("ref-001"); !ok {
			t.Errorf("page %d: footer label missing", i+1)
		}

		counter := fmt.Sprintf("Page %d of 3", i+1)
		op, ok := page.TextAt(counter)
		if !ok {
			t.Fatalf("page %d: counter %q missing", i+1, counter)
		}
		// Right-aligned against maxX at small size, 4pt per rune.
		wantX := 350 - float64(len(counter))*4
		if op.X != wantX {
			t.Errorf("page %d: counter at x=%g, want %g", i+1, op.X, wantX)
		}
	}
}

func TestFinalizeFootersCentersPoweredBy(t *testing.T) {
	ctx, canvas := newTestContext()

	ctx.FinalizeFooters(layout.Footer{Brand: "Paperstack"})

	op, ok := canvas.Page(0).TextAt("Powered by Paperstack")
	if !ok {
		t.Fatal("powered-by group missing")
	}
	// 21 runes at 4pt each, centered on the 400pt page.
	if want := (400.0 - 84.0) / 2; op.X != want {
		t.Errorf("powered-by at x=%g, want %g", op.X, want)
	}
	if op.Color.R != 3 {
		t.Errorf("powered-by color %+v, want the subtle palette color", op.Color)
	}
}

func TestFinalizeFootersOmitsEmptyParts(t *testing.T) {
	ctx, canvas := newTestContext()

	ctx.FinalizeFooters(layout.Footer{})

	page := canvas.Page(0)
	if _, ok := page.TextAt("Page 1 of 1"); !ok {
		t.Error("counter should always be stamped")
	}
	for _, op := range page.Texts {
		if op.Text != "Page 1 of 1" {
			t.Errorf("unexpected footer text %q", op.Text)
		}
	}
}
