package grid

import (
	"slices"

	"github.com/matzehuels/homedeck/pkg/service"
)

// Layout mutators. Every mutation is a pure function returning a new Layout
// and every mutation ends in a re-pack, so a mutated layout is always
// well-formed. "Not found" is a silent no-op: the UI calls these on every
// interaction and wants the surviving layout, not an error. A
// caller that needs to distinguish "not found" from "mutated" diffs the
// layout before and after.

// AddWidget appends the widget and re-packs.
func AddWidget(l Layout, w Widget) Layout {
	out := l.clone()
	out.Widgets = append(out.Widgets, w)
	return ArrangeSequential(out)
}

// RemoveWidget removes every widget with the given id (at most one in a
// well-formed layout) and re-packs. Removing an absent id still re-packs.
func RemoveWidget(l Layout, id string) Layout {
	out := l.clone()
	out.Widgets = slices.DeleteFunc(out.Widgets, func(w Widget) bool { return w.ID == id })
	return ArrangeSequential(out)
}

// UpdateWidget replaces the widget with a matching id in place and re-packs.
// An unknown id leaves the widget list unchanged.
func UpdateWidget(l Layout, w Widget) Layout {
	out := l.clone()
	if i := out.Index(w.ID); i >= 0 {
		out.Widgets[i] = w
	}
	return ArrangeSequential(out)
}

// MoveWidget reinserts the widget at targetIndex, clamped to the valid
// range, and re-packs. Unknown ids and moves to the current position fall
// through to the re-pack unchanged.
func MoveWidget(l Layout, id string, targetIndex int) Layout {
	out := l.clone()
	from := out.Index(id)
	if from < 0 {
		return ArrangeSequential(out)
	}

	to := targetIndex
	if to < 0 {
		to = 0
	}
	if n := len(out.Widgets) - 1; to > n {
		to = n
	}
	if to == from {
		return ArrangeSequential(out)
	}

	w := out.Widgets[from]
	out.Widgets = slices.Delete(out.Widgets, from, from+1)
	out.Widgets = slices.Insert(out.Widgets, to, w)
	return ArrangeSequential(out)
}

// Normalize restores the structural invariants on every widget - a
// multi-column widget anchors at column 0, columns stay within the grid,
// rows are non-negative - then runs the sequential packer unconditionally.
// Normalize is idempotent.
func Normalize(l Layout) Layout {
	out := l.clone()
	for i := range out.Widgets {
		w := &out.Widgets[i]
		if w.Size.ColumnSpan() > 1 || w.Column < 0 {
			w.Column = 0
		}
		if w.Column >= Columns {
			w.Column = Columns - 1
		}
		if w.Row < 0 {
			w.Row = 0
		}
	}
	return ArrangeSequential(out)
}

// ApplyAutoLayout re-derives the whole home from its services. Every widget
// whose service is still registered gets its size recomputed by the
// heuristic resolver and its metrics reset to the kind's defaults for that
// size; widgets pointing at unregistered services keep their configuration.
// Services in the layout's home that have no widget yet get one synthesized
// at the kind's optimal size. The result is packed with the smart packer.
func ApplyAutoLayout(l Layout, services []service.Service) Layout {
	out := l.clone()

	covered := make(map[string]bool, len(out.Widgets))
	for i := range out.Widgets {
		w := &out.Widgets[i]
		covered[w.ServiceID] = true
		svc := service.ByID(services, w.ServiceID)
		if svc == nil {
			continue
		}
		w.Size = OptimalSizeForWidget(svc.Kind, w.Metrics)
		w.Metrics = DefaultMetricsForSize(svc.Kind, w.Size)
	}

	for _, svc := range service.ForHome(services, out.Home) {
		if covered[svc.ID] {
			continue
		}
		size := OptimalSizeForKind(svc.Kind)
		out.Widgets = append(out.Widgets, NewWidget(svc.ID, size, DefaultMetricsForSize(svc.Kind, size)))
	}

	return ArrangeSmart(out)
}
