// Package grid implements the widget grid layout engine for homedeck.
//
// A dashboard home holds an ordered list of widgets on a fixed two-column
// grid. This package decides where each widget sits: it catalogs the size
// classes and their footprints, estimates how large a widget must be for its
// selected metrics, and re-packs the grid after every mutation.
//
// # Architecture
//
// The engine is layered, leaves first:
//
//   - Size model: the size-class catalog and its (column, row) spans
//   - Content estimator: capacity thresholds per size class, used for
//     validation and "minimum size for content"
//   - Heuristic resolver: per-kind rules that resolve the dynamic auto size
//     before packing (independent of the capacity estimator)
//   - Packers: Sequential, Flexible, and Smart arrangement strategies
//   - Mutators: the CRUD surface, each operation ending in a re-pack
//   - Defaults: initial widget sets generated from service descriptors
//
// # Purity
//
// Every operation is a pure function over a Layout value: it returns a new
// Layout and never blocks, suspends, or performs I/O. Callers own the value
// and serialize concurrent mutations themselves; persistence is handled by a
// separate store collaborator.
//
// # Two sizing heuristics
//
// The capacity estimator and the heuristic resolver answer "what size should
// this widget be" independently and can disagree: a widget auto-sized by the
// resolver is not guaranteed to pass ValidateWidgetSize for the same metric
// selection. Both paths are kept separate on purpose - unifying them would
// change the sizes of existing persisted layouts.
package grid
