package grid

import "github.com/matzehuels/homedeck/pkg/service"

// Heuristic auto-size resolver.
//
// This is the second of the two independent sizing computations. It resolves
// the dynamic SizeAuto class to a concrete class using per-kind rules over
// the metric count and the presence of "detailed" metrics - metrics whose
// rendering takes noticeably more room than a single gauge line. It never
// consults the capacity estimator, so a resolved widget is not guaranteed to
// pass ValidateWidgetSize for the same selection. Keep it that way: the
// resolver's output determines the sizes of generated and auto-arranged
// layouts that users already have persisted.

// detailedMetrics lists, per kind, the metrics that count as "detailed" for
// the resolver's rules.
var detailedMetrics = map[service.Kind][]string{
	service.KindVMHost:    {string(service.VMHostStorage), string(service.VMHostVMs), string(service.VMHostContainers)},
	service.KindMedia:     {string(service.MediaNowPlaying), string(service.MediaTranscoding)},
	service.KindTorrent:   {string(service.TorrentActive), string(service.TorrentRatio)},
	service.KindDNSFilter: {string(service.DNSClients), string(service.DNSUpstreams)},
}

// hasDetailedMetric reports whether the selection includes any metric that
// its kind considers detailed.
func hasDetailedMetric(metrics MetricSelection) bool {
	for _, name := range detailedMetrics[metrics.Kind] {
		if metrics.Contains(name) {
			return true
		}
	}
	return false
}

// OptimalSizeForWidget resolves the best concrete size class for a widget of
// the given kind showing the given metrics. Each kind has its own
// thresholds; the fallthrough for every kind is SizeSmall.
func OptimalSizeForWidget(kind service.Kind, metrics MetricSelection) Size {
	n := metrics.Count()
	detailed := hasDetailedMetric(metrics)

	switch kind {
	case service.KindVMHost:
		switch {
		case n > 5:
			return SizeExtraWide
		case n > 3 || detailed:
			return SizeLarge
		case n > 1:
			return SizeMedium
		}
	case service.KindMedia:
		switch {
		case n > 4:
			return SizeLarge
		case n > 2 || detailed:
			return SizeWide
		case n > 1:
			return SizeMedium
		}
	case service.KindTorrent:
		switch {
		case n > 4:
			return SizeTall
		case n > 2 || detailed:
			return SizeMedium
		}
	case service.KindDNSFilter:
		switch {
		case n > 5:
			return SizeLarge
		case n > 3:
			return SizeWide
		case n > 1 || detailed:
			return SizeMedium
		}
	}
	return SizeSmall
}

// resolveAutoSizes returns the widget list with every SizeAuto widget
// resolved to its optimal concrete size. Widgets with concrete sizes are
// returned unchanged. The input slice is not modified.
func resolveAutoSizes(widgets []Widget) []Widget {
	out := make([]Widget, len(widgets))
	for i, w := range widgets {
		if w.Size == SizeAuto {
			w.Size = OptimalSizeForWidget(w.Metrics.Kind, w.Metrics)
		}
		out[i] = w
	}
	return out
}
