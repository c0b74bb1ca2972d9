package grid

import "slices"

// ArrangeSmart assigns grid anchors with a priority-sorted greedy
// bin-packer. It produces denser grids than the sequential walk at the cost
// of reordering: assigned positions follow size rank, not list order.
//
// # Algorithm
//
//  1. Resolve every SizeAuto widget via the heuristic resolver.
//  2. Stable-sort the list so multi-column widgets precede single-column
//     ones; within each partition, descending row span. Ties keep their
//     original list order (the sort is stable, which makes the packer
//     deterministic).
//  3. Walk the sorted list with a row cursor and a FIFO buffer of pending
//     single-column widgets. Single-column widgets pair up: once two are
//     buffered they anchor side by side and the cursor advances by the
//     taller of the pair. A multi-column widget first drains the buffer -
//     pairs first, an odd leftover anchors alone with column 1 left empty -
//     then anchors at column 0 spanning the full width.
//  4. After the walk the remaining buffer drains the same way.
//
// Unlike the sequential walk, pairs advance the cursor by the taller row
// span, so smart-packed grids never overlap.
func ArrangeSmart(l Layout) Layout {
	out := l.clone()
	out.Widgets = resolveAutoSizes(out.Widgets)

	slices.SortStableFunc(out.Widgets, func(a, b Widget) int {
		if d := b.Size.ColumnSpan() - a.Size.ColumnSpan(); d != 0 {
			return d
		}
		return b.Size.RowSpan() - a.Size.RowSpan()
	})

	cursor := 0
	var pending []int // indexes into out.Widgets awaiting a row partner

	placePending := func() {
		for len(pending) >= 2 {
			a, b := &out.Widgets[pending[0]], &out.Widgets[pending[1]]
			a.Row, a.Column = cursor, 0
			b.Row, b.Column = cursor, 1
			cursor += max(a.Size.RowSpan(), b.Size.RowSpan())
			pending = pending[2:]
		}
		if len(pending) == 1 {
			w := &out.Widgets[pending[0]]
			w.Row, w.Column = cursor, 0
			cursor += w.Size.RowSpan()
			pending = pending[:0]
		}
	}

	for i := range out.Widgets {
		w := &out.Widgets[i]
		if w.Size.ColumnSpan() > 1 {
			placePending()
			w.Row, w.Column = cursor, 0
			cursor += w.Size.RowSpan()
			continue
		}

		pending = append(pending, i)
		if len(pending) == 2 {
			placePending()
		}
	}
	placePending()

	return out
}
