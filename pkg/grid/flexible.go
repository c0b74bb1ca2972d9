package grid

// ArrangeFlexible resolves every auto-sized widget to its optimal concrete
// size, then places widgets in list order with the sequential cursor walk.
//
// The placement rule dates from when the grid knew only two sizes: any
// multi-column widget is treated as a full-row item - flush the current row
// if mid-row, anchor spanning both columns, advance by its row span. The
// resolved sizes are written back to the widgets, so a layout arranged this
// way contains no SizeAuto entries afterwards.
func ArrangeFlexible(l Layout) Layout {
	out := l.clone()
	out.Widgets = resolveAutoSizes(out.Widgets)
	return ArrangeSequential(out)
}
