package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"sentimap/internal/dataset"
	"sentimap/internal/geo"
	"sentimap/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testHoverDelay = 20 * time.Millisecond

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	catalog := geo.NewCatalog()
	loader := dataset.NewLoader(zap.NewNop())
	m := InitialModel(catalog, loader, dataset.Source{}, zap.NewNop(), testHoverDelay)
	t.Cleanup(m.Controller.Dispose)
	return m
}

// loadDemo runs the load command synchronously and feeds its result
// back, the way the program loop would.
func loadDemo(t *testing.T, m AppModel) AppModel {
	t.Helper()
	msg := LoadDatasetCmd(m.Loader, m.Source, m.LoadSeq)()
	next, _ := m.Update(msg)
	loaded := next.(AppModel)
	require.False(t, loaded.Loading)
	require.NoError(t, loaded.Err)
	return loaded
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m AppModel, keys ...string) (AppModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(AppModel)
	}
	return m, cmd
}

// awaitHover feeds asynchronous events through Update, as ListenEvents
// would, until a hover commits. Events from superseded timers may
// arrive first; their commits are rejected and skipped over.
func awaitHover(t *testing.T, m AppModel) AppModel {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case msg := <-m.Events:
			next, cmd := m.Update(msg)
			require.NotNil(t, cmd, "the event listener must be reissued")
			m = next.(AppModel)
			if m.Controller.State().Hovered != "" {
				return m
			}
		case <-deadline:
			t.Fatal("no hover committed")
			return m
		}
	}
}

func TestInitialModelStartsLoading(t *testing.T) {
	m := newTestModel(t)

	assert.True(t, m.Loading)
	assert.NotNil(t, m.Tiles)
	assert.NotNil(t, m.Init())
}

func TestDatasetReadyPopulatesDashboard(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	totals := m.Controller.GlobalTotals()
	assert.Equal(t, len(m.Controller.Records()), totals.Total)
	assert.Equal(t, totals.Total, totals.Positive+totals.Neutral+totals.Negative)
	assert.NotEmpty(t, m.Controller.Aggregates())
	assert.NoError(t, m.MapErr)
}

func TestStaleLoadResultsIgnored(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(MsgDatasetReady{Seq: 7})
	m = next.(AppModel)
	assert.True(t, m.Loading, "a result from a superseded load must not apply")

	next, _ = m.Update(MsgLoadFailed{Seq: 7, Err: errors.New("stale")})
	m = next.(AppModel)
	assert.True(t, m.Loading)
	assert.NoError(t, m.Err)
}

func TestLoadFailureOffersRetry(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(MsgLoadFailed{Seq: m.LoadSeq, Err: errors.New("connection refused")})
	m = next.(AppModel)
	require.Error(t, m.Err)
	assert.False(t, m.Loading)
	assert.Contains(t, m.View(), "connection refused")
	assert.Contains(t, m.View(), "retry")

	m, cmd := press(m, "r")
	assert.True(t, m.Loading)
	assert.NoError(t, m.Err)
	assert.Equal(t, 1, m.LoadSeq)
	require.NotNil(t, cmd)

	// The fresh load either clears the error state or re-enters it;
	// the demo source succeeds.
	m = loadDemo(t, m)
	assert.NotEmpty(t, m.Controller.Aggregates())
}

func TestLowercaseRetryOnlyInErrorState(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	m, _ = press(m, "r")
	assert.False(t, m.Loading)
	assert.Equal(t, 0, m.LoadSeq)
}

func TestKeysInactiveWhileLoading(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.Loading)

	m, _ = press(m, "enter", "2", "right")
	assert.Empty(t, m.Controller.State().Selected)
	assert.Equal(t, model.ModeOverall, m.Controller.Mode())
}

func TestModeKeys(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	m, _ = press(m, "2")
	assert.Equal(t, model.ModePositive, m.Controller.Mode())

	m, _ = press(m, "4")
	assert.Equal(t, model.ModeNeutral, m.Controller.Mode())

	m, _ = press(m, "m")
	assert.Equal(t, model.ModeOverall, m.Controller.Mode(), "cycling wraps after neutral")

	m, _ = press(m, "3")
	assert.Equal(t, model.ModeNegative, m.Controller.Mode())
}

func TestCursorHoverCommitsThroughDebounce(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	m, _ = press(m, "right")
	assert.Empty(t, m.Controller.State().Hovered, "hover must not commit before the delay")

	m = awaitHover(t, m)
	assert.Equal(t, m.Tiles.CursorName(), m.Controller.State().Hovered)
}

func TestCursorSweepCommitsOnlyTheLastTile(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	m, _ = press(m, "right", "right", "right")
	m = awaitHover(t, m)
	assert.Equal(t, m.Tiles.CursorName(), m.Controller.State().Hovered)

	select {
	case <-m.Events:
		t.Fatal("a superseded hover fired")
	case <-time.After(3 * testHoverDelay):
	}
}

func TestEnterSelectsAndZooms(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	country := m.Tiles.CursorName()
	continent := m.Tiles.Visible()[0].Continent

	m, _ = press(m, "enter")
	assert.Equal(t, country, m.Controller.State().Selected)
	assert.Equal(t, continent, m.Tiles.Focused())
	assert.Equal(t, country, m.Tiles.CursorName(), "zoom keeps the cursor on the selection")

	// Selecting again toggles off without moving the camera.
	m, _ = press(m, "enter")
	assert.Empty(t, m.Controller.State().Selected)
	assert.Equal(t, continent, m.Tiles.Focused())

	m, _ = press(m, "esc")
	assert.Empty(t, m.Tiles.Focused())
}

func TestSearchJumpsToCountry(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	m, _ = press(m, "/")
	require.True(t, m.InputMode)

	m.InputBuffer.SetValue("jap")
	m, _ = press(m, "enter")
	assert.False(t, m.InputMode)
	assert.Equal(t, "JP", m.Tiles.CursorCode())
}

func TestSearchResetsZoomWhenMatchIsElsewhere(t *testing.T) {
	m := loadDemo(t, newTestModel(t))
	require.NoError(t, m.Tiles.ZoomTo("FR", false))

	m, _ = press(m, "/")
	m.InputBuffer.SetValue("braz")
	m, _ = press(m, "enter")

	assert.Empty(t, m.Tiles.Focused())
	assert.Equal(t, "BR", m.Tiles.CursorCode())
}

func TestSearchWithoutMatchKeepsCursor(t *testing.T) {
	m := loadDemo(t, newTestModel(t))
	before := m.Tiles.CursorCode()

	m, _ = press(m, "/")
	m.InputBuffer.SetValue("atlantis")
	m, _ = press(m, "enter")

	assert.Equal(t, before, m.Tiles.CursorCode())
}

func TestReloadReplacesDatasetAndSurface(t *testing.T) {
	m := loadDemo(t, newTestModel(t))
	m, _ = press(m, "enter")
	require.NotEmpty(t, m.Controller.State().Selected)

	old := m.Tiles
	m, cmd := press(m, "R")
	require.NotNil(t, cmd)
	assert.True(t, m.Loading)
	assert.Equal(t, 1, m.LoadSeq)

	m = loadDemo(t, m)
	assert.NotSame(t, old, m.Tiles)
	assert.ErrorIs(t, old.Dispose(), ErrSurfaceDisposed, "the old surface is disposed on adoption")
	assert.Empty(t, m.Controller.State().Selected, "a reload clears the selection")
}

func TestDatasetChangedTriggersReload(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	next, cmd := m.Update(MsgDatasetChanged{})
	m = next.(AppModel)
	assert.True(t, m.Loading)
	assert.Equal(t, 1, m.LoadSeq)
	require.NotNil(t, cmd)
}

func TestHelpOverlayToggle(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	m, _ = press(m, "?")
	assert.True(t, m.ShowHelp)

	// q closes the overlay instead of quitting.
	m, cmd := press(m, "q")
	assert.False(t, m.ShowHelp)
	assert.Nil(t, cmd)
}

func TestQuitDisposes(t *testing.T) {
	m := loadDemo(t, newTestModel(t))

	m, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.Tiles.Dispose(), ErrSurfaceDisposed)
}

func TestWindowSizeResizesPanes(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(AppModel)

	paneWidth, paneHeight := layout(m.WindowSize)
	assert.Equal(t, paneWidth-2, m.Detail.Width)
	assert.Equal(t, paneHeight-2, m.Detail.Height)
	assert.Equal(t, (paneWidth-2)/tileCellWidth, m.Tiles.Stride())
}

func TestViewStates(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Loading dataset")
	assert.Contains(t, m.View(), "embedded demo")

	m = loadDemo(t, m)
	view := m.View()
	assert.Contains(t, view, "sentimap")
	assert.Contains(t, view, "North America")
	assert.Contains(t, view, "records")
}
