package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoSectionDoc() *Doc {
	return &Doc{
		Gap: 1,
		Sections: []*Section{
			{ID: "hero", Title: "Hero", Body: []string{"a", "b", "c"}},
			{ID: "programs", Title: "Programs", Body: []string{"x", "y"}},
		},
	}
}

func TestExtentsStackWithGap(t *testing.T) {
	t.Parallel()

	d := twoSectionDoc()
	ext := d.Extents()
	require.Equal(t, Extent{Top: 0, Height: 4}, ext["hero"])     // title + 3 body rows
	require.Equal(t, Extent{Top: 5, Height: 3}, ext["programs"]) // after 1-row gap
	require.Equal(t, 8, d.Height())
}

func TestLazySlotChangesExtents(t *testing.T) {
	t.Parallel()

	slot := &LazySlot{
		Placeholder: []string{"(loading…)"},
		Content:     []string{"1", "2", "3", "4"},
	}
	d := &Doc{Sections: []*Section{
		{ID: "gallery", Title: "Gallery", Lazy: slot},
		{ID: "contact", Title: "Contact"},
	}}

	require.Equal(t, 2, d.Extents()["gallery"].Height)
	require.False(t, slot.Loaded())

	slot.Load()
	slot.Load() // idempotent
	require.True(t, slot.Loaded())
	require.Equal(t, 5, d.Extents()["gallery"].Height)
	require.Equal(t, 5, d.Extents()["contact"].Top)
}

func TestVisibleFraction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                                   string
		top, height, viewTop, viewHeight, mgn  int
		want                                   float64
	}{
		{"fully inside", 10, 4, 0, 20, 0, 1},
		{"fully above", 0, 4, 10, 20, 0, 0},
		{"fully below", 40, 4, 0, 20, 0, 0},
		{"half clipped at bottom", 18, 4, 0, 20, 0, 0.5},
		{"half clipped at top", 8, 4, 10, 20, 0, 0.5},
		{"margin pre-triggers", 22, 4, 0, 20, 4, 0.5},
		{"zero height box", 5, 0, 0, 20, 0, 0},
		{"zero viewport", 5, 4, 0, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := VisibleFraction(tc.top, tc.height, tc.viewTop, tc.viewHeight, tc.mgn)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestAnchorAndSectionLookup(t *testing.T) {
	t.Parallel()

	d := twoSectionDoc()
	require.Equal(t, 5, d.Anchor("programs"))
	require.Equal(t, -1, d.Anchor("missing"))
	require.NotNil(t, d.Section("hero"))
	require.Nil(t, d.Section("missing"))
}

func TestWindowClamps(t *testing.T) {
	t.Parallel()

	lines := []string{"0", "1", "2", "3", "4"}
	require.Equal(t, []string{"1", "2"}, Window(lines, 1, 2))
	require.Equal(t, []string{"3", "4"}, Window(lines, 3, 10))
	require.Nil(t, Window(lines, 9, 3))
	require.Equal(t, []string{"0"}, Window(lines, -2, 1))
}

func TestRenderMatchesExtentGeometry(t *testing.T) {
	t.Parallel()

	d := twoSectionDoc()
	lines := d.Render(nil)
	require.Len(t, lines, d.Height())
	ext := d.Extents()["programs"]
	require.Equal(t, "PROGRAMS", lines[ext.Top])
}
