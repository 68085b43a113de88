package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sentimap/internal/model"
	"sentimap/internal/palette"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2563EB")).
			Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	continentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	hoverTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	errorTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	errorBorderStyle = lipgloss.NewStyle().
				Padding(1, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("203"))

	activeBorderColor = lipgloss.Color("205")
	idleBorderColor   = lipgloss.Color("63")
)

// layout splits the window into the two side-by-side pane interiors.
func layout(size tea.WindowSizeMsg) (paneWidth, paneHeight int) {
	net := size.Width - 6
	if net < 40 {
		net = 40
	}
	h := size.Height - 8
	if h < 8 {
		h = 8
	}
	return net / 2, h
}

func (m AppModel) View() string {
	if m.Loading {
		return fmt.Sprintf("\n  %s Loading dataset from %s...\n", m.Spinner.View(), m.Source)
	}
	if m.Err != nil {
		return m.renderErrorPanel()
	}
	if m.ShowHelp {
		return m.renderHelpDialog()
	}

	paneWidth, paneHeight := layout(m.WindowSize)
	mode := m.Controller.Mode()

	// Fills are resolved fresh every frame; mode switches recolor the
	// whole map on the next render with no cache to invalidate.
	fills := m.Controller.Fills()
	st := m.Controller.State()

	// LEFT PANEL: tile map
	mapTitle := "World"
	var mapContent string
	switch {
	case m.MapErr != nil:
		mapContent = dimStyle.Render("Map unavailable: "+m.MapErr.Error()) +
			"\n\n" + dimStyle.Render("Totals and details remain usable.")
	case m.Tiles == nil:
		mapContent = dimStyle.Render("Map unavailable.")
	default:
		if f := m.Tiles.Focused(); f != "" {
			mapTitle = f
		}
		mapContent = m.Tiles.Render(fills, st)
	}

	leftBorder := idleBorderColor
	if !m.DetailFocus {
		leftBorder = activeBorderColor
	}
	left := lipgloss.NewStyle().
		Width(paneWidth).
		Height(paneHeight).
		MaxHeight(paneHeight + 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(leftBorder).
		Render(paneTitleStyle.Render(mapTitle) + "\n\n" + mapContent)

	// RIGHT PANEL: detail viewport
	rightBorder := idleBorderColor
	if m.DetailFocus {
		rightBorder = activeBorderColor
	}
	right := lipgloss.NewStyle().
		Width(paneWidth).
		Height(paneHeight).
		MaxHeight(paneHeight + 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(rightBorder).
		Render(paneTitleStyle.Render("Details") + "\n" + m.Detail.View())

	header := titleStyle.Render("sentimap") + "  " +
		modeStyle.Render(mode.Label()) +
		dimStyle.Render("  •  "+m.Source.String())

	help := "←↓↑→: Move • Enter: Select • 1-4/m: Mode • /: Search • R: Reload • Tab: Details • ?: Help • q: Quit"
	if m.DetailFocus {
		help = "↑/↓: Scroll details • Tab: Back to map • ?: Help • q: Quit"
	}
	footer := dimStyle.Render(help)
	if m.InputMode {
		footer = "Search: " + m.InputBuffer.View()
	}

	return header + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" +
		m.renderTotals() + "   " + renderLegend(mode) + "\n" +
		footer
}

func (m AppModel) renderTotals() string {
	totals := m.Controller.GlobalTotals()
	return fmt.Sprintf("%d records, %d countries  %s %s %s",
		totals.Total,
		len(m.Controller.Aggregates()),
		swatchText(palette.PositiveStrong, fmt.Sprintf("%s%d", model.IconPositive, totals.Positive)),
		swatchText(palette.NeutralStrong, fmt.Sprintf("%s%d", model.IconNeutral, totals.Neutral)),
		swatchText(palette.NegativeStrong, fmt.Sprintf("%s%d", model.IconNegative, totals.Negative)))
}

type legendEntry struct {
	color palette.Color
	label string
}

func legendEntries(mode model.VisualizationMode) []legendEntry {
	switch mode {
	case model.ModePositive:
		return []legendEntry{
			{palette.PositiveStrong, "strongly positive"},
			{palette.PositiveWeak, "leaning positive"},
			{palette.Mixed, "mixed"},
			{palette.NoData, "no data"},
		}
	case model.ModeNegative:
		return []legendEntry{
			{palette.NegativeStrong, "strongly negative"},
			{palette.NegativeWeak, "leaning negative"},
			{palette.Mixed, "mixed"},
			{palette.NoData, "no data"},
		}
	case model.ModeNeutral:
		return []legendEntry{
			{palette.NeutralStrong, "strongly neutral"},
			{palette.NeutralWeak, "leaning neutral"},
			{palette.Mixed, "mixed"},
			{palette.NoData, "no data"},
		}
	default:
		return []legendEntry{
			{palette.PositiveStrong, "positive"},
			{palette.NeutralStrong, "neutral"},
			{palette.NegativeStrong, "negative"},
			{palette.NoData, "no data"},
		}
	}
}

func renderLegend(mode model.VisualizationMode) string {
	parts := make([]string, 0, 4)
	for _, e := range legendEntries(mode) {
		parts = append(parts, swatchText(e.color, "■")+" "+e.label)
	}
	return strings.Join(parts, "  ")
}

func swatchText(c palette.Color, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))).Render(s)
}

// detailContent builds the detail pane text from the committed hover
// and the selection. The selected aggregate is re-derived from the raw
// rows, not read back from the precomputed tallies.
func (m AppModel) detailContent() string {
	st := m.Controller.State()
	var b strings.Builder

	if st.Selected != "" {
		b.WriteString(selectedTitleStyle.Render(model.IconSelected + " " + st.Selected))
		b.WriteString("\n")
		if agg, ok := m.Controller.SelectedAggregate(); ok {
			writeTallies(&b, agg)
			b.WriteString("\nRegions:\n")
			for _, r := range m.Controller.SelectedRecords() {
				line := fmt.Sprintf("  %-18s %s", r.Region, r.Label)
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(r.DisplayColor)).
					Render(line))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(dimStyle.Render("No records for this country."))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if st.Hovered != "" && st.Hovered != st.Selected {
		b.WriteString(hoverTitleStyle.Render(model.IconHovered + " " + st.Hovered))
		b.WriteString("\n")
		if agg, ok := m.Controller.HoveredAggregate(); ok {
			writeTallies(&b, agg)
		} else {
			b.WriteString(dimStyle.Render("No records."))
			b.WriteString("\n")
		}
	}

	if b.Len() == 0 {
		return dimStyle.Render("Move the cursor over a country.\nEnter selects it and zooms to its continent.")
	}
	return b.String()
}

func writeTallies(b *strings.Builder, agg model.CountryAggregate) {
	fmt.Fprintf(b, "  %s%d  %s%d  %s%d  (%d records)\n",
		swatchText(palette.PositiveStrong, model.IconPositive), agg.Positive,
		swatchText(palette.NeutralStrong, model.IconNeutral), agg.Neutral,
		swatchText(palette.NegativeStrong, model.IconNegative), agg.Negative,
		agg.Total)
	fmt.Fprintf(b, "  overall score %.2f\n", agg.Score())
}

func (m AppModel) renderErrorPanel() string {
	body := errorTitleStyle.Render("Dataset unavailable") + "\n\n" +
		m.Err.Error() + "\n\n" +
		dimStyle.Render("r: retry • q: quit")
	dialog := errorBorderStyle.Render(body)
	if m.WindowSize.Width > 0 && m.WindowSize.Height > 0 {
		return lipgloss.Place(m.WindowSize.Width, m.WindowSize.Height,
			lipgloss.Center, lipgloss.Center,
			dialog,
		)
	}
	return "\n" + dialog + "\n"
}

func (m *AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}

	helpWidth := w * 80 / 100
	if helpWidth < 40 {
		helpWidth = 40
	}
	if helpWidth > w-4 {
		helpWidth = w - 4
	}
	helpHeight := h - 6
	if helpHeight < 5 {
		helpHeight = 5
	}

	lines := strings.Split(m.HelpContent, "\n")
	contentHeight := helpHeight - 2

	startY := m.HelpScrollY
	if startY > len(lines)-contentHeight {
		startY = len(lines) - contentHeight
	}
	if startY < 0 {
		startY = 0
	}
	m.HelpScrollY = startY

	endY := startY + contentHeight
	if endY > len(lines) {
		endY = len(lines)
	}

	visibleLines := lines[startY:endY]
	content := strings.Join(visibleLines, "\n")

	dialog := lipgloss.NewStyle().
		Width(helpWidth).
		Height(helpHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(content)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		LoadDatasetCmd(m.Loader, m.Source, m.LoadSeq),
		ListenEvents(m.Events),
	)
}
