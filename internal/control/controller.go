// Package control implements the interaction layer between the rendered
// map and the dataset: selection, debounced hover, mode switching, and
// surface lifecycle. It is UI-agnostic; both the terminal front end and
// tests drive it the same way.
package control

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sentimap/internal/geo"
	"sentimap/internal/model"
	"sentimap/internal/palette"
)

// DefaultHoverDelay is how long the pointer must rest on a country
// before the hover commits. Sweeping across small countries must not
// flicker the detail pane.
const DefaultHoverDelay = 100 * time.Millisecond

// Controller owns the interaction state for one dataset generation.
// It is not safe for concurrent use; the hosting event loop serializes
// calls, and timer callbacks re-enter through Events and CommitHover.
type Controller struct {
	catalog *geo.Catalog
	logger  *zap.Logger
	notify  func(Event)

	records    []model.SentimentRecord
	aggs       map[string]model.CountryAggregate
	generation uuid.UUID

	mode  model.VisualizationMode
	state model.InteractionState

	surface      MapSurface
	hover        Debouncer
	hoverDelay   time.Duration
	pendingHover string
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotify sets the sink for asynchronous events. Without it, timer
// fires are dropped and hovers never commit.
func WithNotify(fn func(Event)) Option {
	return func(c *Controller) { c.notify = fn }
}

// WithHoverDelay overrides the hover debounce delay.
func WithHoverDelay(d time.Duration) Option {
	return func(c *Controller) { c.hoverDelay = d }
}

// New builds a controller over an empty dataset.
func New(catalog *geo.Catalog, logger *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		catalog:    catalog,
		logger:     logger,
		notify:     func(Event) {},
		aggs:       map[string]model.CountryAggregate{},
		hoverDelay: DefaultHoverDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReplaceDataset swaps in a freshly loaded dataset wholesale: new
// generation id, cleared selection and hover, canceled pending timers.
// Aggregates are computed upstream and arrive together with the records
// they summarize.
func (c *Controller) ReplaceDataset(records []model.SentimentRecord, aggs map[string]model.CountryAggregate) {
	c.hover.Cancel()
	c.pendingHover = ""
	c.records = records
	c.aggs = aggs
	c.generation = uuid.New()
	c.state = model.InteractionState{}
	c.logger.Info("dataset replaced",
		zap.String("generation", c.generation.String()),
		zap.Int("records", len(records)),
		zap.Int("countries", len(aggs)))
}

// Generation identifies the current dataset swap. Callbacks captured
// before a swap compare generations to detect staleness.
func (c *Controller) Generation() uuid.UUID {
	return c.generation
}

// Records returns the loaded rows. Callers must not mutate the slice.
func (c *Controller) Records() []model.SentimentRecord {
	return c.records
}

// Aggregates returns the per-country tallies keyed by dataset name.
func (c *Controller) Aggregates() map[string]model.CountryAggregate {
	return c.aggs
}

// AggregateFor returns one country's tally.
func (c *Controller) AggregateFor(country string) (model.CountryAggregate, bool) {
	agg, ok := c.aggs[country]
	return agg, ok
}

// Mode returns the active visualization mode.
func (c *Controller) Mode() model.VisualizationMode {
	return c.mode
}

// SetMode replaces the mode unconditionally, even mid-hover or with a
// selection active. Fills pick up the new mode on the next render.
func (c *Controller) SetMode(m model.VisualizationMode) {
	c.mode = m
}

// State returns the current selection and committed hover.
func (c *Controller) State() model.InteractionState {
	return c.state
}

// Fills resolves the complete fill map for the current aggregates and
// mode. Called once per render pass; never cached.
func (c *Controller) Fills() map[string]palette.Color {
	return palette.FillsFor(c.aggs, c.mode, c.catalog)
}

// Select toggles selection of a country. Selecting an already selected
// country deselects it. A fresh selection asks the surface to zoom to
// the country's continent; zoom failures are logged and swallowed so
// selection state never depends on the camera.
func (c *Controller) Select(country string) {
	if c.state.Selected == country {
		c.state.Selected = ""
		return
	}
	c.state.Selected = country
	if c.surface == nil {
		return
	}
	p, ok := c.catalog.ByName(country)
	if !ok {
		// Aggregated but unrenderable; selectable, nothing to zoom to.
		return
	}
	if err := c.surface.ZoomTo(p.Code, true); err != nil {
		c.logger.Warn("zoom failed",
			zap.String("country", country),
			zap.String("code", p.Code),
			zap.Error(err))
	}
}

// Hover registers a pointer-enter. The hover commits only after the
// debounce delay; entering another country first supersedes it.
// Hovering the already committed country cancels any pending switch.
func (c *Controller) Hover(country string) {
	if country == "" {
		c.HoverOut()
		return
	}
	if c.state.Hovered == country {
		c.hover.Cancel()
		c.pendingHover = ""
		return
	}
	c.pendingHover = country
	c.hover.Schedule(c.hoverDelay, func(token uint64) {
		c.notify(HoverReady{Country: country, Token: token})
	})
}

// CommitHover applies a debounced hover once its token proves current.
// Stale tokens (superseded, canceled, or from before a dataset swap)
// are rejected. Reports whether the hover was applied.
func (c *Controller) CommitHover(country string, token uint64) bool {
	if !c.hover.Current(token) {
		return false
	}
	if c.pendingHover != country {
		return false
	}
	c.state.Hovered = country
	c.pendingHover = ""
	return true
}

// HoverOut clears hover state immediately. Clearing is never debounced;
// only hover-enter is.
func (c *Controller) HoverOut() {
	c.hover.Cancel()
	c.pendingHover = ""
	c.state.Hovered = ""
}

// Reset clears the selection and returns the camera to the world view.
// Hover and mode survive a reset.
func (c *Controller) Reset() {
	c.state.Selected = ""
	if c.surface == nil {
		return
	}
	if err := c.surface.ResetView(); err != nil {
		c.logger.Warn("view reset failed", zap.Error(err))
	}
}

// SetSurface adopts a new map surface, disposing the previous one
// first. Passing nil just releases the current surface.
func (c *Controller) SetSurface(s MapSurface) {
	if c.surface != nil {
		if err := c.surface.Dispose(); err != nil {
			c.logger.Warn("surface dispose failed", zap.Error(err))
		}
	}
	c.surface = s
}

// Dispose cancels pending timers and releases the surface. Safe to call
// more than once.
func (c *Controller) Dispose() {
	c.hover.Cancel()
	c.pendingHover = ""
	if c.surface != nil {
		if err := c.surface.Dispose(); err != nil {
			c.logger.Warn("surface dispose failed", zap.Error(err))
		}
		c.surface = nil
	}
}

// GlobalTotals sums every country's aggregate.
func (c *Controller) GlobalTotals() model.CountryAggregate {
	var total model.CountryAggregate
	for _, agg := range c.aggs {
		total.Merge(agg)
	}
	return total
}

// SelectedRecords returns the raw rows behind the selected country,
// empty when nothing is selected.
func (c *Controller) SelectedRecords() []model.SentimentRecord {
	if c.state.Selected == "" {
		return nil
	}
	var out []model.SentimentRecord
	for _, r := range c.records {
		if r.Country == c.state.Selected {
			out = append(out, r)
		}
	}
	return out
}

// SelectedAggregate re-derives the selected country's tally from its
// raw records rather than reading the precomputed aggregate. The two
// must agree; the detail pane shows this one.
func (c *Controller) SelectedAggregate() (model.CountryAggregate, bool) {
	records := c.SelectedRecords()
	if len(records) == 0 {
		return model.CountryAggregate{}, false
	}
	var agg model.CountryAggregate
	for _, r := range records {
		agg.Add(r.Sentiment)
	}
	return agg, true
}

// HoveredAggregate returns the committed hover country's tally.
func (c *Controller) HoveredAggregate() (model.CountryAggregate, bool) {
	if c.state.Hovered == "" {
		return model.CountryAggregate{}, false
	}
	agg, ok := c.aggs[c.state.Hovered]
	return agg, ok
}
