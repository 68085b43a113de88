package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"sentimap/internal/model"
	"sentimap/internal/palette"
	"sentimap/internal/report"
)

// fillEntry is one country's resolved fill for the requested mode. Name
// and continent ride along so the map page can match world-atlas
// features (keyed by display name) and group shapes for continent zoom.
type fillEntry struct {
	Code      string        `json:"code"`
	Name      string        `json:"name"`
	Continent string        `json:"continent"`
	Color     palette.Color `json:"color"`
}

type fillsResponse struct {
	Mode       string      `json:"mode"`
	Generation string      `json:"generation"`
	Fills      []fillEntry `json:"fills"`
}

type summaryResponse struct {
	Generation string          `json:"generation"`
	LoadedAt   time.Time       `json:"loaded_at"`
	Error      string          `json:"error,omitempty"`
	Analysis   report.Analysis `json:"analysis"`
}

type countryResponse struct {
	Name      string                  `json:"name"`
	Code      string                  `json:"code"`
	Continent string                  `json:"continent"`
	Aggregate model.CountryAggregate  `json:"aggregate"`
	Records   []model.SentimentRecord `json:"records"`
}

func (s *Server) handleSummary(c echo.Context) error {
	snap := s.current()
	resp := summaryResponse{
		Generation: snap.generation.String(),
		LoadedAt:   snap.loadedAt,
		Analysis:   report.Build(s.source.String(), snap.records, snap.aggs, s.catalog),
	}
	if snap.loadErr != nil {
		resp.Error = snap.loadErr.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleFills(c echo.Context) error {
	modeParam := c.QueryParam("mode")
	mode := model.ModeOverall
	if modeParam != "" {
		var err error
		mode, err = model.ParseMode(modeParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}

	snap := s.current()
	return c.JSON(http.StatusOK, fillsResponse{
		Mode:       mode.String(),
		Generation: snap.generation.String(),
		Fills:      s.fillEntries(snap, mode),
	})
}

// fillEntries resolves the fill map fresh and flattens it in catalog
// order. Nothing is cached between mode switches or reloads.
func (s *Server) fillEntries(snap *snapshot, mode model.VisualizationMode) []fillEntry {
	fills := palette.FillsFor(snap.aggs, mode, s.catalog)
	entries := make([]fillEntry, 0, len(fills))
	for _, p := range s.catalog.Places() {
		entries = append(entries, fillEntry{
			Code:      p.Code,
			Name:      p.Name,
			Continent: p.Continent,
			Color:     fills[p.Code],
		})
	}
	return entries
}

func (s *Server) handleCountry(c echo.Context) error {
	code := c.Param("code")
	place, ok := s.catalog.ByCode(code)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown country code"})
	}

	snap := s.current()
	resp := countryResponse{
		Name:      place.Name,
		Code:      place.Code,
		Continent: place.Continent,
		Records:   []model.SentimentRecord{},
	}
	for name, agg := range snap.aggs {
		if strings.EqualFold(name, place.Name) {
			resp.Aggregate = agg
			break
		}
	}
	for _, r := range snap.records {
		if strings.EqualFold(r.Country, place.Name) {
			resp.Records = append(resp.Records, r)
		}
	}
	// Known code with no records is a valid empty response, not a 404.
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleReload(c echo.Context) error {
	if err := s.reload(c.Request().Context()); err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	snap := s.current()
	return c.JSON(http.StatusOK, map[string]any{
		"generation": snap.generation.String(),
		"records":    len(snap.records),
		"countries":  len(snap.aggs),
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": model.Version})
}
