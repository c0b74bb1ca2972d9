package grid

import (
	"slices"

	"github.com/google/uuid"
)

// Widget is a single grid tile bound to one service and a metric selection.
//
// Row and Column are anchors assigned by a packer; the widget occupies the
// cell rectangle spanned by its size class from that anchor. In a well-formed
// layout a multi-column widget always anchors at column 0 - Normalize
// enforces this and every packer produces it.
//
// ServiceID is a weak reference: the service may have been removed from the
// registry while the widget survives. Callers filter such orphans before
// display.
type Widget struct {
	ID        string          `json:"id" bson:"id"`
	ServiceID string          `json:"service_id" bson:"service_id"`
	Size      Size            `json:"size" bson:"size"`
	Row       int             `json:"row" bson:"row"`
	Column    int             `json:"column" bson:"column"`
	Title     string          `json:"title,omitempty" bson:"title,omitempty"`
	Metrics   MetricSelection `json:"metrics" bson:"metrics"`

	// RefreshSeconds overrides the service's poll interval when > 0.
	RefreshSeconds int `json:"refresh_seconds,omitempty" bson:"refresh_seconds,omitempty"`
}

// NewWidget creates a widget for the given service with a fresh id.
// Position is left at (0,0); a packer assigns the real anchor.
func NewWidget(serviceID string, size Size, metrics MetricSelection) Widget {
	return Widget{
		ID:        uuid.NewString(),
		ServiceID: serviceID,
		Size:      size,
		Metrics:   metrics,
	}
}

// Layout is one home's ordered widget list.
//
// Widget order is semantically meaningful: it is the input order to the
// Sequential and Smart packers and the display order before packing
// overrides positions.
type Layout struct {
	Home    string   `json:"home" bson:"home"`
	Widgets []Widget `json:"widgets" bson:"widgets"`
}

// NewLayout returns an empty layout for the given home.
func NewLayout(home string) Layout {
	return Layout{Home: home}
}

// Index returns the position of the widget with the given id, or -1.
func (l Layout) Index(id string) int {
	return slices.IndexFunc(l.Widgets, func(w Widget) bool { return w.ID == id })
}

// Widget returns the widget with the given id, or nil if absent.
func (l Layout) Widget(id string) *Widget {
	if i := l.Index(id); i >= 0 {
		return &l.Widgets[i]
	}
	return nil
}

// clone returns a layout with its own widget slice so mutators never alias
// the caller's backing array.
func (l Layout) clone() Layout {
	return Layout{Home: l.Home, Widgets: slices.Clone(l.Widgets)}
}

// Rows returns the number of grid rows the layout occupies (the maximum
// anchor row plus that widget's row span).
func (l Layout) Rows() int {
	rows := 0
	for _, w := range l.Widgets {
		if end := w.Row + w.Size.RowSpan(); end > rows {
			rows = end
		}
	}
	return rows
}
