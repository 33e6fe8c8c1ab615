package layout_test

import (
	"testing"
)

func TestNewContextOpensFirstPage(t *testing.T) {
	ctx, canvas := newTestContext()

	if canvas.PageCount() != 1 {
		t.Fatalf("expected 1 page after NewContext, got %d", canvas.PageCount())
	}
	if got := ctx.Y(); got != 450 {
		t.Errorf("cursor at %g, want 450 (page top)", got)
	}
	if got := ctx.RemainingHeight(); got != 400 {
		t.Errorf("remaining height %g, want 400", got)
	}
	if got := ctx.ContentWidth(); got != 300 {
		t.Errorf("content width %g, want 300", got)
	}
	if ctx.MinX() != 50 || ctx.MaxX() != 350 || ctx.MinY() != 50 {
		t.Errorf("content bounds minX=%g maxX=%g minY=%g, want 50/350/50",
			ctx.MinX(), ctx.MaxX(), ctx.MinY())
	}
}

func TestAdvanceMovesCursorDown(t *testing.T) {
	ctx, _ := newTestContext()

	ctx.Advance(100)
	if got := ctx.Y(); got != 350 {
		t.Errorf("cursor at %g after Advance(100), want 350", got)
	}
	if got := ctx.RemainingHeight(); got != 300 {
		t.Errorf("remaining height %g, want 300", got)
	}
}

func TestEnsureSpaceKeepsPageWhenContentFits(t *testing.T) {
	ctx, canvas := newTestContext()

	ctx.Advance(100)
	ctx.EnsureSpace(300) // exactly the remaining height
	if canvas.PageCount() != 1 {
		t.Errorf("expected no page break, got %d pages", canvas.PageCount())
	}
	if got := ctx.Y(); got != 350 {
		t.Errorf("cursor moved to %g by EnsureSpace, want 350", got)
	}
}

func TestEnsureSpaceBreaksWhenContentDoesNotFit(t *testing.T) {
	ctx, canvas := newTestContext()

	ctx.Advance(100)
	ctx.EnsureSpace(301)
	if canvas.PageCount() != 2 {
		t.Fatalf("expected page break, got %d pages", canvas.PageCount())
	}
	if got := ctx.Y(); got != 450 {
		t.Errorf("cursor at %g after break, want 450 (fresh page top)", got)
	}
}

func TestEnsureSpaceOversizeAddsExactlyOnePage(t *testing.T) {
	ctx, canvas := newTestContext()

	// Taller than an entire fresh page: one break, never a cascade.
	ctx.EnsureSpace(10000)
	if canvas.PageCount() != 2 {
		t.Errorf("expected exactly 2 pages for oversize request, got %d", canvas.PageCount())
	}
	if got := ctx.RemainingHeight(); got != 400 {
		t.Errorf("remaining height %g after oversize break, want 400", got)
	}
}

func TestAddPageResetsCursor(t *testing.T) {
	ctx, canvas := newTestContext()

	ctx.Advance(321)
	ctx.AddPage()
	if canvas.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", canvas.PageCount())
	}
	if got := ctx.Y(); got != 450 {
		t.Errorf("cursor at %g on new page, want 450", got)
	}
}
