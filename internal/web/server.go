// Package web serves the browser dashboard: an interactive D3 world map
// backed by the same dataset, palette, and aggregation rules the
// terminal uses. One process serves one dataset source; reloads swap
// the snapshot atomically under every handler.
package web

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sentimap/internal/dataset"
	"sentimap/internal/geo"
	"sentimap/internal/model"
)

// snapshot is one loaded dataset generation. Handlers take the pointer
// under RLock and read it without further locking; reloads replace the
// whole value, never mutate it.
type snapshot struct {
	generation uuid.UUID
	loadedAt   time.Time
	records    []model.SentimentRecord
	aggs       map[string]model.CountryAggregate
	loadErr    error
}

// Server owns the echo instance and the current dataset snapshot.
type Server struct {
	echo    *echo.Echo
	loader  *dataset.Loader
	catalog *geo.Catalog
	source  dataset.Source
	logger  *zap.Logger

	mu   sync.RWMutex
	snap *snapshot
}

// NewServer wires routes and middleware. Call Run to load and serve.
func NewServer(loader *dataset.Loader, catalog *geo.Catalog, source dataset.Source, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{
		echo:    e,
		loader:  loader,
		catalog: catalog,
		source:  source,
		logger:  logger,
		snap:    &snapshot{},
	}

	e.GET("/", s.handleIndex)
	e.GET("/api/summary", s.handleSummary)
	e.GET("/api/fills", s.handleFills)
	e.GET("/api/country/:code", s.handleCountry)
	e.POST("/api/reload", s.handleReload)
	e.GET("/healthz", s.handleHealth)

	return s
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// reload fetches the source and swaps the snapshot. A failed load still
// swaps, carrying the error, so the dashboard shows a retryable error
// state instead of stale data of unknown age.
func (s *Server) reload(ctx context.Context) error {
	records, err := s.loader.Load(ctx, s.source)
	next := &snapshot{
		generation: uuid.New(),
		loadedAt:   time.Now().UTC(),
	}
	if err != nil {
		next.loadErr = err
		s.logger.Error("dataset load failed",
			zap.String("source", s.source.String()),
			zap.Error(err))
	} else {
		next.records = records
		next.aggs = dataset.Aggregate(records)
		s.logger.Info("dataset ready",
			zap.String("generation", next.generation.String()),
			zap.Int("records", len(records)))
	}

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	return err
}

func (s *Server) current() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Reload refetches the source and swaps the snapshot. File watchers
// call this when the dataset changes on disk.
func (s *Server) Reload(ctx context.Context) error {
	return s.reload(ctx)
}

// Run loads the dataset and serves until ctx is canceled. An initial
// load failure does not stop the server; the error state is served and
// POST /api/reload retries.
func (s *Server) Run(ctx context.Context, addr string) error {
	if err := s.reload(ctx); err != nil {
		s.logger.Warn("starting with failed initial load", zap.Error(err))
	}
	s.logger.Info("dashboard listening", zap.String("addr", addr))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
