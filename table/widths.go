package table

// minColumnWidth is the floor for columns that do not declare a MinWidth.
const minColumnWidth = 36.0

// ResolveWidths computes the final column widths for the given available
// width. It is a pure function of the column specs:
//
//  1. Every column starts at its minimum width (MinWidth or the package
//     floor).
//  2. If the minimums alone exceed the available width, all columns are
//     scaled down proportionally: the table is too dense for the page,
//     but no column collapses to zero and nothing overflows.
//  3. Otherwise fixed columns grow toward their requested Width, in
//     declaration order, until the slack runs out.
//  4. Remaining slack is spread evenly across flexible columns.
//  5. Any rounding remainder lands on the last column.
//
// For a non-empty column set the resolved widths always sum exactly to
// available.
func ResolveWidths[Row any](cols []Column[Row], available float64) []float64 {
	if len(cols) == 0 {
		return nil
	}

	widths := make([]float64, len(cols))
	minTotal := 0.0
	for i, col := range cols {
		min := col.MinWidth
		if min <= 0 {
			min = minColumnWidth
		}
		widths[i] = min
		minTotal += min
	}

	if minTotal > available {
		scale := available / minTotal
		for i := range widths {
			widths[i] *= scale
		}
		return exact(widths, available)
	}

	slack := available - minTotal
	for i, col := range cols {
		if slack <= 0 {
			break
		}
		if !col.fixed() || col.Width <= widths[i] {
			continue
		}
		grow := col.Width - widths[i]
		if grow > slack {
			grow = slack
		}
		widths[i] += grow
		slack -= grow
	}

	if slack > 0 {
		flex := 0
		for _, col := range cols {
			if !col.fixed() {
				flex++
			}
		}
		if flex > 0 {
			share := slack / float64(flex)
			for i, col := range cols {
				if !col.fixed() {
					widths[i] += share
				}
			}
		}
	}

	return exact(widths, available)
}

// exact absorbs floating-point drift into the last column so the widths sum
// to available exactly.
func exact(widths []float64, available float64) []float64 {
	sum := 0.0
	for _, w := range widths[:len(widths)-1] {
		sum += w
	}
	widths[len(widths)-1] = available - sum
	return widths
}
