package grid

import (
	"fmt"
	"testing"
)

// cells expands a widget's anchor into the set of cells it occupies.
func cells(w Widget) map[anchor]bool {
	out := make(map[anchor]bool)
	for r := w.Row; r < w.Row+w.Size.RowSpan(); r++ {
		for c := w.Column; c < w.Column+w.Size.ColumnSpan(); c++ {
			out[anchor{r, c}] = true
		}
	}
	return out
}

// checkNoOverlap asserts that no two widgets share a cell.
func checkNoOverlap(t *testing.T, l Layout) {
	t.Helper()
	occupied := make(map[anchor]string)
	for _, w := range l.Widgets {
		for cell := range cells(w) {
			if other, taken := occupied[cell]; taken {
				t.Errorf("cell (%d,%d) occupied by both %s and %s", cell.row, cell.col, other, w.ID)
			}
			occupied[cell] = w.ID
		}
	}
}

func TestArrangeSmart(t *testing.T) {
	tests := []struct {
		name  string
		sizes []Size
		want  map[string]anchor
	}{
		{
			// Wide sorts ahead of the smalls; the three smalls pair up and
			// the odd one anchors alone.
			name:  "WideThenPairedSmalls",
			sizes: []Size{SizeSmall, SizeSmall, SizeWide, SizeSmall},
			want:  map[string]anchor{"w2": {0, 0}, "w0": {1, 0}, "w1": {1, 1}, "w3": {2, 0}},
		},
		{
			// A medium/small pair advances by the taller span.
			name:  "PairAdvancesByTallerSpan",
			sizes: []Size{SizeMedium, SizeSmall, SizeSmall, SizeSmall},
			want:  map[string]anchor{"w0": {0, 0}, "w1": {0, 1}, "w2": {2, 0}, "w3": {2, 1}},
		},
		{
			// Multi-column widgets sort by descending row span.
			name:  "MultiColumnByRowSpan",
			sizes: []Size{SizeWide, SizeExtraWide, SizeLarge},
			want:  map[string]anchor{"w1": {0, 0}, "w2": {3, 0}, "w0": {5, 0}},
		},
		{
			// A tall widget pairs with a small one; the pair advances the
			// cursor by the tall widget's span.
			name:  "TallPairsWithSmall",
			sizes: []Size{SizeWide, SizeTall, SizeSmall},
			want:  map[string]anchor{"w0": {0, 0}, "w1": {1, 0}, "w2": {1, 1}},
		},
		{
			name:  "SingleWidget",
			sizes: []Size{SizeSmall},
			want:  map[string]anchor{"w0": {0, 0}},
		},
		{
			name:  "Empty",
			sizes: nil,
			want:  map[string]anchor{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArrangeSmart(testLayout(tt.sizes...))
			checkWellFormed(t, got)
			checkNoOverlap(t, got)
			for id, want := range tt.want {
				if a := anchors(got)[id]; a != want {
					t.Errorf("%s anchored at (%d,%d), want (%d,%d)", id, a.row, a.col, want.row, want.col)
				}
			}
		})
	}
}

// Widgets of equal rank must keep their original list order: the sort is
// stable by original index, which keeps the packer deterministic.
func TestSmartStableTieBreak(t *testing.T) {
	l := testLayout(SizeSmall, SizeSmall, SizeSmall, SizeSmall)
	got := ArrangeSmart(l)

	want := map[string]anchor{"w0": {0, 0}, "w1": {0, 1}, "w2": {1, 0}, "w3": {1, 1}}
	for id, a := range want {
		if g := anchors(got)[id]; g != a {
			t.Errorf("%s anchored at (%d,%d), want (%d,%d)", id, g.row, g.col, a.row, a.col)
		}
	}
}

func TestSmartNoOverlapMixedSizes(t *testing.T) {
	// Every size class at once, repeated; the packed grid must be disjoint.
	var sizes []Size
	for i := 0; i < 3; i++ {
		sizes = append(sizes, SizeSmall, SizeMedium, SizeWide, SizeLarge, SizeTall, SizeExtraWide)
	}

	got := ArrangeSmart(testLayout(sizes...))
	checkWellFormed(t, got)
	checkNoOverlap(t, got)

	if len(got.Widgets) != len(sizes) {
		t.Fatalf("widget count changed: %d != %d", len(got.Widgets), len(sizes))
	}
	for i, w := range got.Widgets {
		if w.ID == "" {
			t.Errorf("widget %d lost its id", i)
		}
	}
}

func ExampleArrangeSmart() {
	l := testLayout(SizeSmall, SizeSmall, SizeWide, SizeSmall)
	for _, w := range ArrangeSmart(l).Widgets {
		fmt.Printf("%s %s (%d,%d)\n", w.ID, w.Size, w.Row, w.Column)
	}
	// Output:
	// w2 wide (0,0)
	// w0 small (1,0)
	// w1 small (1,1)
	// w3 small (2,0)
}
