package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sentimap/internal/geo"
	"sentimap/internal/model"
	"sentimap/internal/palette"
)

// ErrSurfaceDisposed is returned by map operations after Dispose.
var ErrSurfaceDisposed = errors.New("tile map disposed")

// RenderError means the tile map could not be built. The rest of the
// dashboard stays usable without the map pane.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "tile map unavailable: " + e.Reason
}

const (
	// One tile renders as marker + "[XX]" plus a trailing space.
	tileCellWidth      = 6
	defaultTilesPerRow = 8
	maxTilesPerRow     = 12
)

// TileMap is the terminal map surface: every country a colored [XX]
// tile, grouped under its continent. It implements control.MapSurface,
// so the controller drives zoom and teardown while the update loop
// drives the cursor.
type TileMap struct {
	catalog *geo.Catalog

	tiles    []geo.Place // visual order for the active view
	cursor   int
	focus    string // continent focus; empty renders the world
	perRow   int
	disposed bool
}

// NewTileMap builds a world-view tile map over the catalog.
func NewTileMap(catalog *geo.Catalog) (*TileMap, error) {
	t := &TileMap{catalog: catalog, perRow: defaultTilesPerRow}
	t.rebuild()
	if len(t.tiles) == 0 {
		return nil, &RenderError{Reason: "no renderable countries"}
	}
	return t, nil
}

// rebuild lays the active view out again, keeping the cursor on the
// same country when it survives the change.
func (t *TileMap) rebuild() {
	keep := t.CursorCode()
	t.tiles = t.tiles[:0]
	continents := geo.Continents
	if t.focus != "" {
		continents = []string{t.focus}
	}
	for _, continent := range continents {
		t.tiles = append(t.tiles, t.catalog.MembersOf(continent)...)
	}
	t.cursor = 0
	if keep != "" {
		t.jump(keep)
	}
}

func (t *TileMap) jump(code string) bool {
	for i, p := range t.tiles {
		if p.Code == code {
			t.cursor = i
			return true
		}
	}
	return false
}

// ZoomTo focuses the map on the continent containing code and puts the
// cursor on that country. Animation has no terminal rendition; the
// flag is accepted and ignored.
func (t *TileMap) ZoomTo(code string, animate bool) error {
	if t.disposed {
		return ErrSurfaceDisposed
	}
	p, ok := t.catalog.ByCode(code)
	if !ok {
		return fmt.Errorf("no tile for code %q", code)
	}
	t.focus = p.Continent
	t.rebuild()
	t.jump(p.Code)
	return nil
}

// ResetView returns to the world layout.
func (t *TileMap) ResetView() error {
	if t.disposed {
		return ErrSurfaceDisposed
	}
	t.focus = ""
	t.rebuild()
	return nil
}

// Dispose marks the map unusable; every later call is rejected.
func (t *TileMap) Dispose() error {
	if t.disposed {
		return ErrSurfaceDisposed
	}
	t.disposed = true
	return nil
}

// Focused returns the continent the view is zoomed to, empty for the
// world layout.
func (t *TileMap) Focused() string {
	return t.focus
}

// Visible lists the countries in the active view in tile order. Callers
// must not mutate the slice.
func (t *TileMap) Visible() []geo.Place {
	return t.tiles
}

// CursorCode returns the country code under the cursor.
func (t *TileMap) CursorCode() string {
	if t.cursor < 0 || t.cursor >= len(t.tiles) {
		return ""
	}
	return t.tiles[t.cursor].Code
}

// CursorName returns the catalog name of the country under the cursor.
func (t *TileMap) CursorName() string {
	if t.cursor < 0 || t.cursor >= len(t.tiles) {
		return ""
	}
	return t.tiles[t.cursor].Name
}

// Move shifts the cursor through the tile order, clamped at both ends.
// Reports whether the cursor landed on a different tile.
func (t *TileMap) Move(delta int) bool {
	if len(t.tiles) == 0 {
		return false
	}
	next := t.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(t.tiles)-1 {
		next = len(t.tiles) - 1
	}
	if next == t.cursor {
		return false
	}
	t.cursor = next
	return true
}

// Stride is the cursor distance of one vertical step.
func (t *TileMap) Stride() int {
	return t.perRow
}

// JumpTo puts the cursor on the given country if it is visible in the
// active view. Reports whether it was found.
func (t *TileMap) JumpTo(code string) bool {
	return t.jump(code)
}

// SetWidth adapts the number of tiles per row to the pane width.
func (t *TileMap) SetWidth(w int) {
	per := w / tileCellWidth
	if per < 1 {
		per = 1
	}
	if per > maxTilesPerRow {
		per = maxTilesPerRow
	}
	t.perRow = per
}

// Render draws the map pane. Fills are resolved by the caller once per
// render pass and passed in; the map never caches or derives them.
func (t *TileMap) Render(fills map[string]palette.Color, st model.InteractionState) string {
	if t.disposed {
		return ""
	}

	selCode, hovCode := "", ""
	if p, ok := t.catalog.ByName(st.Selected); ok {
		selCode = p.Code
	}
	if p, ok := t.catalog.ByName(st.Hovered); ok {
		hovCode = p.Code
	}

	var b strings.Builder
	col := 0
	current := ""
	for i, p := range t.tiles {
		if p.Continent != current {
			if current != "" {
				b.WriteString("\n\n")
			}
			b.WriteString(continentStyle.Render(p.Continent))
			b.WriteString("\n")
			current = p.Continent
			col = 0
		}
		if col == t.perRow {
			b.WriteString("\n")
			col = 0
		}
		b.WriteString(t.renderTile(i, p, fills, selCode, hovCode))
		col++
	}
	return b.String()
}

func (t *TileMap) renderTile(i int, p geo.Place, fills map[string]palette.Color, selCode, hovCode string) string {
	fill, ok := fills[p.Code]
	if !ok {
		fill = palette.NoData
	}

	marker := " "
	switch {
	case p.Code == selCode:
		marker = model.IconSelected
	case p.Code == hovCode:
		marker = model.IconHovered
	case fill == palette.NoData:
		marker = model.IconNoData
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(string(fill)))
	if i == t.cursor {
		style = style.Reverse(true).Bold(true)
	}
	return style.Render(marker+"["+p.Code+"]") + " "
}
