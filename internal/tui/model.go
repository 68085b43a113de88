package tui

import (
	_ "embed"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"sentimap/internal/control"
	"sentimap/internal/dataset"
	"sentimap/internal/geo"
)

//go:embed help.md
var helpMD string

// eventBuffer sizes the channel asynchronous events arrive on. Posts
// never block; an overflowing event is dropped, which for a hover just
// means it never commits.
const eventBuffer = 16

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Controller *control.Controller
	Loader     *dataset.Loader
	Source     dataset.Source
	Catalog    *geo.Catalog
	Loading    bool
	Err        error
	LoadSeq    int

	// Map pane
	Tiles  *TileMap
	MapErr error

	// UI State
	WindowSize  tea.WindowSizeMsg
	DetailFocus bool
	Events      chan tea.Msg

	// Search State
	InputMode   bool
	InputBuffer textinput.Model

	// Help Overlay
	ShowHelp    bool
	HelpContent string
	HelpScrollY int

	// Components
	Spinner spinner.Model
	Detail  viewport.Model
}

// InitialModel wires the controller, its event channel, and the first
// map surface. The dataset load itself starts from Init.
func InitialModel(catalog *geo.Catalog, loader *dataset.Loader, src dataset.Source, logger *zap.Logger, hoverDelay time.Duration) AppModel {
	events := make(chan tea.Msg, eventBuffer)
	opts := []control.Option{
		control.WithNotify(func(ev control.Event) {
			select {
			case events <- MsgControlEvent{Event: ev}:
			default:
			}
		}),
	}
	if hoverDelay > 0 {
		opts = append(opts, control.WithHoverDelay(hoverDelay))
	}
	ctrl := control.New(catalog, logger, opts...)

	ti := textinput.New()
	ti.Placeholder = "Country name..."
	ti.CharLimit = 40
	ti.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := AppModel{
		Controller:  ctrl,
		Loader:      loader,
		Source:      src,
		Catalog:     catalog,
		Loading:     true,
		Events:      events,
		InputBuffer: ti,
		Spinner:     sp,
		Detail:      viewport.New(40, 20),
		HelpContent: helpMD,
	}

	if r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	); err == nil {
		if rendered, rerr := r.Render(helpMD); rerr == nil {
			m.HelpContent = rendered
		}
	}

	tiles, err := NewTileMap(catalog)
	if err != nil {
		m.MapErr = err
	} else {
		m.Tiles = tiles
		ctrl.SetSurface(tiles)
	}
	return m
}
