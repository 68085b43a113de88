package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sentimap/internal/control"
	"sentimap/internal/dataset"
	"sentimap/internal/model"
)

// MsgDatasetReady indicates that a dataset load has completed.
type MsgDatasetReady struct {
	Seq     int
	Records []model.SentimentRecord
	Aggs    map[string]model.CountryAggregate
}

// MsgLoadFailed indicates that a dataset load failed.
type MsgLoadFailed struct {
	Seq int
	Err error
}

// MsgControlEvent carries an asynchronous controller event into the
// update loop.
type MsgControlEvent struct {
	Event control.Event
}

// MsgDatasetChanged indicates that the watched dataset file settled
// after a change on disk.
type MsgDatasetChanged struct{}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		paneWidth, paneHeight := layout(msg)
		m.Detail.Width = paneWidth - 2
		m.Detail.Height = paneHeight - 2
		if m.Tiles != nil {
			m.Tiles.SetWidth(paneWidth - 2)
		}
		return m, nil

	case MsgDatasetReady:
		if msg.Seq != m.LoadSeq {
			// A newer load superseded this one.
			return m, nil
		}
		m.Loading = false
		m.Err = nil
		m.Controller.ReplaceDataset(msg.Records, msg.Aggs)

		// The surface is rebuilt per dataset; the controller disposes
		// the old one on adoption.
		tiles, err := NewTileMap(m.Catalog)
		if err != nil {
			m.MapErr = err
			m.Tiles = nil
			m.Controller.SetSurface(nil)
		} else {
			m.MapErr = nil
			m.Controller.SetSurface(tiles)
			m.Tiles = tiles
			if m.WindowSize.Width > 0 {
				paneWidth, _ := layout(m.WindowSize)
				m.Tiles.SetWidth(paneWidth - 2)
			}
		}
		m.refreshDetail()
		return m, nil

	case MsgLoadFailed:
		if msg.Seq != m.LoadSeq {
			return m, nil
		}
		m.Loading = false
		m.Err = msg.Err
		return m, nil

	case MsgControlEvent:
		if hover, ok := msg.Event.(control.HoverReady); ok {
			if m.Controller.CommitHover(hover.Country, hover.Token) {
				m.refreshDetail()
			}
		}
		return m, ListenEvents(m.Events)

	case MsgDatasetChanged:
		// Same path as a manual reload; the newest sequence wins if a
		// load is already in flight.
		return m, tea.Batch(m.reload(), ListenEvents(m.Events))

	case spinner.TickMsg:
		if m.Loading {
			m.Spinner, cmd = m.Spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.performSearch()
				m.InputBuffer.SetValue("")
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		if m.ShowHelp {
			switch msg.String() {
			case "up", "k":
				if m.HelpScrollY > 0 {
					m.HelpScrollY--
				}
			case "down", "j":
				m.HelpScrollY++
			case "?", "esc", "q":
				m.ShowHelp = false
				m.HelpScrollY = 0
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Controller.Dispose()
			return m, tea.Quit
		case "?":
			m.ShowHelp = true
			return m, nil
		case "R":
			return m, m.reload()
		case "r":
			if m.Err != nil {
				return m, m.reload()
			}
		}

		if m.Loading || m.Err != nil {
			// Nothing below has anything to drive yet.
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.Controller.Reset()
			m.refreshDetail()
		case "tab":
			m.DetailFocus = !m.DetailFocus
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		case "1":
			m.Controller.SetMode(model.ModeOverall)
		case "2":
			m.Controller.SetMode(model.ModePositive)
		case "3":
			m.Controller.SetMode(model.ModeNegative)
		case "4":
			m.Controller.SetMode(model.ModeNeutral)
		case "m":
			m.Controller.SetMode(m.Controller.Mode().Next())
		case "enter", " ":
			if m.Tiles != nil {
				m.Controller.Select(m.Tiles.CursorName())
				m.refreshDetail()
			}
		case "up", "k", "down", "j", "left", "h", "right", "l":
			if m.DetailFocus {
				m.Detail, cmd = m.Detail.Update(msg)
				return m, cmd
			}
			m.moveCursor(msg.String())
		}
	}

	return m, cmd
}

// reload issues a full fresh load under a new sequence number; results
// from superseded loads are dropped when they arrive.
func (m *AppModel) reload() tea.Cmd {
	m.LoadSeq++
	m.Loading = true
	m.Err = nil
	return tea.Batch(m.Spinner.Tick, LoadDatasetCmd(m.Loader, m.Source, m.LoadSeq))
}

// moveCursor shifts the map cursor. Leaving a tile clears the hover
// immediately; the entered tile hovers through the debounce.
func (m *AppModel) moveCursor(key string) {
	if m.Tiles == nil {
		return
	}
	var moved bool
	switch key {
	case "left", "h":
		moved = m.Tiles.Move(-1)
	case "right", "l":
		moved = m.Tiles.Move(1)
	case "up", "k":
		moved = m.Tiles.Move(-m.Tiles.Stride())
	case "down", "j":
		moved = m.Tiles.Move(m.Tiles.Stride())
	}
	if !moved {
		return
	}
	m.Controller.HoverOut()
	m.Controller.Hover(m.Tiles.CursorName())
	m.refreshDetail()
}

// performSearch moves the cursor to the first country whose name has
// the typed prefix, resetting a zoomed view when the match is outside
// it, then hovers the match.
func (m *AppModel) performSearch() {
	term := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))
	if term == "" || m.Tiles == nil {
		return
	}
	for _, p := range m.Catalog.Places() {
		if !strings.HasPrefix(strings.ToLower(p.Name), term) {
			continue
		}
		if !m.Tiles.JumpTo(p.Code) {
			if err := m.Tiles.ResetView(); err != nil {
				return
			}
			m.Tiles.JumpTo(p.Code)
		}
		m.Controller.HoverOut()
		m.Controller.Hover(p.Name)
		m.refreshDetail()
		return
	}
}

func (m *AppModel) refreshDetail() {
	m.Detail.SetContent(m.detailContent())
}

// LoadDatasetCmd fetches and aggregates the source in the background.
func LoadDatasetCmd(loader *dataset.Loader, src dataset.Source, seq int) tea.Cmd {
	return func() tea.Msg {
		records, err := loader.Load(context.Background(), src)
		if err != nil {
			return MsgLoadFailed{Seq: seq, Err: err}
		}
		return MsgDatasetReady{Seq: seq, Records: records, Aggs: dataset.Aggregate(records)}
	}
}

// ListenEvents pumps one asynchronous event into the program. The
// update loop reissues it after every receipt.
func ListenEvents(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
