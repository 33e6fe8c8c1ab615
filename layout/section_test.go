package layout_test

import (
	"strings"
	"testing"

	"github.com/paperstack/reportkit/internal/fakecanvas"
	"github.com/paperstack/reportkit/layout"
)

func TestDrawSectionGeometry(t *testing.T) {
	ctx, canvas := newTestContext()

	ctx.DrawSection("Findings", "")

	page := canvas.Page(0)
	if _, ok := page.TextAt("Findings"); !ok {
		t.Fatal("section label not drawn")
	}

	// Accent tick beside the label.
	foundTick := false
	for _, r := range page.Rects {
		if r.Filled && r.W == 3 && r.Color.R == 9 {
			foundTick = true
		}
	}
	if !foundTick {
		t.Error("accent tick not drawn")
	}

	// One heading line (21pt), underline 4pt below, gutter after.
	// 450 - 21 - 4 - 10 = 415.
	if got := ctx.Y(); got != 415 {
		t.Errorf("cursor at %g after section, want 415", got)
	}
	if len(page.Lines) != 1 {
		t.Fatalf("expected 1 underline rule, got %d lines", len(page.Lines))
	}
	if page.Lines[0].Y1 != 425 {
		t.Errorf("rule at %g, want 425", page.Lines[0].Y1)
	}
}

func TestDrawSectionBreaksToAvoidStrandedHeading(t *testing.T) {
	ctx, canvas := newTestContext()

	// Leave 70pt: less than the heading plus three protected body lines.
	ctx.Advance(330)
	ctx.DrawSection("Findings", "")

	if canvas.PageCount() != 2 {
		t.Fatalf("expected widow break to page 2, got %d pages", canvas.PageCount())
	}
	if _, ok := canvas.Page(1).TextAt("Findings"); !ok {
		t.Error("section label should be on the fresh page")
	}
	if len(canvas.Page(0).Texts) != 0 {
		t.Error("nothing should be drawn on the abandoned page")
	}
}

func TestDrawSectionAtPageTopNeverBreaks(t *testing.T) {
	ctx, canvas := newTestContext()

	ctx.DrawSection("First", "")
	if canvas.PageCount() != 1 {
		t.Errorf("section at page top must not break, got %d pages", canvas.PageCount())
	}
}

func TestDrawParagraphFlowsAcrossPages(t *testing.T) {
	ctx, canvas := newTestContext()

	// 30 one-word lines at a 25pt wrap width; 26 lines fit on page one.
	text := strings.TrimSpace(strings.Repeat("word ", 30))
	ctx.DrawParagraphWidth(text, 25)

	if canvas.PageCount() != 2 {
		t.Fatalf("expected paragraph to flow onto page 2, got %d pages", canvas.PageCount())
	}
	if n := len(canvas.Page(0).Texts); n != 26 {
		t.Errorf("page 1 has %d lines, want 26", n)
	}
	if n := len(canvas.Page(1).Texts); n != 4 {
		t.Errorf("page 2 has %d lines, want 4", n)
	}
	for _, op := range canvas.Page(0).Texts {
		if op.Y < ctx.MinY() {
			t.Errorf("baseline %g below content bottom %g", op.Y, ctx.MinY())
		}
	}
}

func TestDrawParagraphWidowBreak(t *testing.T) {
	ctx, canvas := newTestContext()

	// 40pt left: fewer than the three protected lines (45pt).
	ctx.Advance(360)
	ctx.DrawParagraphWidth("word word word word word", 25)

	if canvas.PageCount() != 2 {
		t.Fatalf("expected widow break, got %d pages", canvas.PageCount())
	}
	if len(canvas.Page(0).Texts) != 0 {
		t.Error("no paragraph lines should remain on the abandoned page")
	}
}

func TestDrawParagraphZeroWidowMinFlowsInPlace(t *testing.T) {
	f := testFormat()
	f.Layout.WidowOrphanMinLines = 0
	canvas := fakecanvas.New()
	ctx := layout.NewContext(canvas, fakecanvas.NewMeasurer(), f)

	// With protection disabled the paragraph starts in the 40pt that
	// remain and flows, rather than breaking the whole block to a fresh
	// page.
	ctx.Advance(360)
	ctx.DrawParagraphWidth("word word word word word", 25)

	if n := len(canvas.Page(0).Texts); n != 2 {
		t.Errorf("page 1 has %d lines, want 2 drawn before the flow break", n)
	}
	if canvas.PageCount() != 2 {
		t.Errorf("%d pages, want 2", canvas.PageCount())
	}
}

func TestDrawParagraphShortBlockOutweighsWidowRule(t *testing.T) {
	ctx, canvas := newTestContext()

	// A one-line paragraph only protects itself, so 40pt is enough.
	ctx.Advance(360)
	ctx.DrawParagraphWidth("word", 300)

	if canvas.PageCount() != 1 {
		t.Errorf("single line should not force a break, got %d pages", canvas.PageCount())
	}
}

func TestDrawKeyValueRowHeight(t *testing.T) {
	ctx, canvas := newTestContext()

	ctx.DrawKeyValue("Key", "Value")

	// Single-line value at body size: 15pt row plus 4pt spacing.
	if got := ctx.Y(); got != 431 {
		t.Errorf("cursor at %g, want 431", got)
	}

	page := canvas.Page(0)
	label, ok := page.TextAt("Key")
	if !ok {
		t.Fatal("label not drawn")
	}
	if label.X != 50 || label.Size != 8 {
		t.Errorf("label at x=%g size=%g, want x=50 size=8", label.X, label.Size)
	}
	value, ok := page.TextAt("Value")
	if !ok {
		t.Fatal("value not drawn")
	}
	if value.X != 150 {
		t.Errorf("value at x=%g, want 150 (label column width)", value.X)
	}
}

func TestDrawKeyValueTallSideWins(t *testing.T) {
	ctx, _ := newTestContext()

	// Value wraps to 2 body lines (30pt) against a 1-line label.
	long := strings.TrimSpace(strings.Repeat("valuevalue ", 4)) // 43 runes > 200pt/5
	ctx.DrawKeyValueWidth("K", long, 100)

	if got := ctx.Y(); got != 416 { // 450 - (30 + 4)
		t.Errorf("cursor at %g, want 416", got)
	}
}
