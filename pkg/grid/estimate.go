package grid

import "math"

// Capacity-based content estimator.
//
// This is one of two independent sizing computations in the engine. It maps
// a metric selection to an estimated number of content lines and checks that
// estimate against per-size capacity thresholds. It is used for validation
// and for "minimum size for content" - never for resolving auto sizes, which
// is the heuristic resolver's job (see resolve.go). The two paths can
// disagree; see the package documentation.

// EstimateContentLines returns the number of text lines a widget will show:
// one title line plus one line per selected metric. The formula is identical
// for every service kind.
func EstimateContentLines(metrics MetricSelection) int {
	return 1 + metrics.Count()
}

// MaxLinesForSize returns the number of content lines a size class can hold.
// SizeAuto is unbounded: its real capacity is unknown until resolved.
func MaxLinesForSize(size Size) int {
	switch size {
	case SizeSmall:
		return 4
	case SizeMedium:
		return 7
	case SizeWide:
		return 4
	case SizeLarge:
		return 9
	case SizeTall:
		return 12
	case SizeExtraWide:
		return 15
	default: // SizeAuto
		return math.MaxInt
	}
}

// capacityThreshold returns the line budget for size. With tolerance the
// budget is stretched by one line for small widgets and two for everything
// else; small tiles clip too visibly to allow more overflow.
func capacityThreshold(size Size, tolerance bool) int {
	max := MaxLinesForSize(size)
	if !tolerance || max == math.MaxInt {
		return max
	}
	if size == SizeSmall {
		return max + 1
	}
	return max + 2
}

// ValidateWidgetSize reports whether the metric selection fits the size
// class. With tolerance, a small overflow is accepted per
// capacityThreshold; without it, the exact capacity is the limit.
func ValidateWidgetSize(size Size, metrics MetricSelection, tolerance bool) bool {
	return EstimateContentLines(metrics) <= capacityThreshold(size, tolerance)
}

// MinimumSizeForContent returns the first size class, scanning small,
// medium, wide, large, tall, extraWide, whose capacity fits the estimated
// content lines. With strict the exact capacity is used; otherwise the
// tolerant threshold. The scan never fails: content that exceeds every
// threshold degrades to SizeExtraWide.
//
// Note that the scan order is by size-class rank, not by capacity: wide
// (4 lines) is checked after medium (7 lines), so the returned class is the
// smallest footprint that fits, not the tightest capacity.
func MinimumSizeForContent(metrics MetricSelection, strict bool) Size {
	lines := EstimateContentLines(metrics)
	for _, size := range concreteSizes {
		if lines <= capacityThreshold(size, !strict) {
			return size
		}
	}
	return SizeExtraWide
}
