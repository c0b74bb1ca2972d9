package grid

// ArrangeSequential assigns grid anchors with a single deterministic pass
// over the widget list, preserving list order as reading order.
//
// The cursor starts at (0,0). A multi-column widget that arrives mid-row
// flushes the row first - the remaining cell is sacrificed, not backfilled -
// then anchors at column 0 and advances the cursor by its row span. A
// single-column widget fills the current cell and moves the cursor one
// column right, wrapping to the next row after column 1.
//
// # Inherited limitation
//
// The column wrap advances by exactly one row regardless of the row spans in
// the row being closed: a medium widget at column 0 paired with a small one
// at column 1 still advances the cursor by one row, so the next pair can
// visually overlap the medium widget's second row. Existing layouts depend
// on these anchors; the Smart packer is the strategy that accounts for
// heterogeneous row spans.
func ArrangeSequential(l Layout) Layout {
	out := l.clone()
	row, col := 0, 0

	for i := range out.Widgets {
		w := &out.Widgets[i]
		if w.Size.ColumnSpan() > 1 {
			if col != 0 {
				row++
				col = 0
			}
			w.Row, w.Column = row, 0
			row += w.Size.RowSpan()
			continue
		}

		w.Row, w.Column = row, col
		col++
		if col >= Columns {
			col = 0
			row++
		}
	}
	return out
}
