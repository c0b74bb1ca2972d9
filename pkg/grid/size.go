package grid

// Columns is the fixed width of the widget grid.
const Columns = 2

// Size is a widget's size class. Each class maps to a fixed footprint of
// grid cells; the dynamic SizeAuto class is resolved to a concrete class
// before packing and behaves as a 1x1 cell until then.
type Size string

// Size classes.
const (
	SizeSmall     Size = "small"     // 1x1
	SizeMedium    Size = "medium"    // 1 column, 2 rows
	SizeWide      Size = "wide"      // 2 columns, 1 row
	SizeLarge     Size = "large"     // 2x2
	SizeTall      Size = "tall"      // 1 column, 3 rows
	SizeExtraWide Size = "extrawide" // 2 columns, 3 rows
	SizeAuto      Size = "auto"      // resolved before packing, 1x1 until then
)

// concreteSizes lists the concrete size classes in ascending capacity scan
// order. MinimumSizeForContent depends on this exact order.
var concreteSizes = [...]Size{SizeSmall, SizeMedium, SizeWide, SizeLarge, SizeTall, SizeExtraWide}

// Valid reports whether s is a known size class (including auto).
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeWide, SizeLarge, SizeTall, SizeExtraWide, SizeAuto:
		return true
	}
	return false
}

// ColumnSpan returns the number of grid columns the size occupies.
// SizeAuto reports 1 until resolved.
func (s Size) ColumnSpan() int {
	switch s {
	case SizeWide, SizeLarge, SizeExtraWide:
		return 2
	default:
		return 1
	}
}

// RowSpan returns the number of grid rows the size occupies.
// SizeAuto reports 1 until resolved.
func (s Size) RowSpan() int {
	switch s {
	case SizeMedium, SizeLarge:
		return 2
	case SizeTall, SizeExtraWide:
		return 3
	default:
		return 1
	}
}
