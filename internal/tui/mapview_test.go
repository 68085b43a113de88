package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentimap/internal/geo"
	"sentimap/internal/model"
	"sentimap/internal/palette"
)

func newTestTileMap(t *testing.T) (*TileMap, *geo.Catalog) {
	t.Helper()
	catalog := geo.NewCatalog()
	tm, err := NewTileMap(catalog)
	require.NoError(t, err)
	return tm, catalog
}

func TestNewTileMapCoversCatalog(t *testing.T) {
	tm, catalog := newTestTileMap(t)

	assert.Len(t, tm.Visible(), len(catalog.Places()))
	assert.Empty(t, tm.Focused())
	assert.Equal(t, "North America", tm.Visible()[0].Continent)
}

func TestZoomToFocusesContinent(t *testing.T) {
	tm, _ := newTestTileMap(t)

	require.NoError(t, tm.ZoomTo("FR", true))

	assert.Equal(t, "Europe", tm.Focused())
	assert.Equal(t, "FR", tm.CursorCode())
	for _, p := range tm.Visible() {
		assert.Equal(t, "Europe", p.Continent)
	}
}

func TestZoomToUnknownCode(t *testing.T) {
	tm, _ := newTestTileMap(t)

	assert.Error(t, tm.ZoomTo("ZZ", false))
	assert.Empty(t, tm.Focused())
}

func TestResetViewRestoresWorld(t *testing.T) {
	tm, catalog := newTestTileMap(t)

	require.NoError(t, tm.ZoomTo("JP", false))
	require.NoError(t, tm.ResetView())

	assert.Empty(t, tm.Focused())
	assert.Len(t, tm.Visible(), len(catalog.Places()))
	// The cursor stays on the country it was parked on.
	assert.Equal(t, "JP", tm.CursorCode())
}

func TestDisposeRejectsFurtherCalls(t *testing.T) {
	tm, _ := newTestTileMap(t)

	require.NoError(t, tm.Dispose())

	assert.ErrorIs(t, tm.ZoomTo("FR", false), ErrSurfaceDisposed)
	assert.ErrorIs(t, tm.ResetView(), ErrSurfaceDisposed)
	assert.ErrorIs(t, tm.Dispose(), ErrSurfaceDisposed)
	assert.Empty(t, tm.Render(nil, model.InteractionState{}))
}

func TestMoveClampsAtEnds(t *testing.T) {
	tm, _ := newTestTileMap(t)

	assert.False(t, tm.Move(-1), "already at the first tile")
	assert.True(t, tm.Move(1))
	assert.True(t, tm.Move(-1))

	assert.True(t, tm.Move(len(tm.Visible())*2), "clamps to the last tile")
	assert.Equal(t, tm.Visible()[len(tm.Visible())-1].Code, tm.CursorCode())
	assert.False(t, tm.Move(1))
}

func TestStrideFollowsWidth(t *testing.T) {
	tm, _ := newTestTileMap(t)

	tm.SetWidth(24)
	assert.Equal(t, 4, tm.Stride())

	tm.SetWidth(3)
	assert.Equal(t, 1, tm.Stride())

	tm.SetWidth(1000)
	assert.Equal(t, maxTilesPerRow, tm.Stride())
}

func TestJumpToVisibleOnly(t *testing.T) {
	tm, _ := newTestTileMap(t)

	assert.True(t, tm.JumpTo("JP"))
	assert.Equal(t, "Japan", tm.CursorName())

	require.NoError(t, tm.ZoomTo("FR", false))
	assert.False(t, tm.JumpTo("JP"), "Japan is not in the Europe view")
	assert.Equal(t, "FR", tm.CursorCode())
}

func TestRenderMarksStateAndGroups(t *testing.T) {
	tm, catalog := newTestTileMap(t)

	aggs := map[string]model.CountryAggregate{}
	for _, name := range []string{"France", "Germany"} {
		agg := model.CountryAggregate{}
		agg.Add(model.Positive)
		aggs[name] = agg
	}
	fills := palette.FillsFor(aggs, model.ModeOverall, catalog)

	out := tm.Render(fills, model.InteractionState{Selected: "France", Hovered: "Germany"})

	assert.Contains(t, out, "Europe")
	assert.Contains(t, out, "Oceania")
	assert.Contains(t, out, model.IconSelected+"[FR]")
	assert.Contains(t, out, model.IconHovered+"[DE]")
	// Countries without records carry the no-data marker.
	assert.Contains(t, out, model.IconNoData+"[JP]")
}

func TestRenderWithoutFills(t *testing.T) {
	tm, _ := newTestTileMap(t)

	out := tm.Render(nil, model.InteractionState{})

	assert.Contains(t, out, model.IconNoData+"[US]")
}
