package report

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"sentimap/internal/palette"
)

// chartTopN caps how many countries the chart shows; past that the bars
// stop being readable.
const chartTopN = 12

// WriteChart renders a grouped bar chart of the leading countries to a
// PNG (format follows the file extension).
func WriteChart(path string, a Analysis) error {
	countries := a.Countries
	if len(countries) > chartTopN {
		countries = countries[:chartTopN]
	}
	if len(countries) == 0 {
		return fmt.Errorf("no countries to chart")
	}

	names := make([]string, len(countries))
	pos := make(plotter.Values, len(countries))
	neu := make(plotter.Values, len(countries))
	neg := make(plotter.Values, len(countries))
	for i, c := range countries {
		names[i] = c.Name
		pos[i] = float64(c.Aggregate.Positive)
		neu[i] = float64(c.Aggregate.Neutral)
		neg[i] = float64(c.Aggregate.Negative)
	}

	p := plot.New()
	p.Title.Text = "Sentiment by country"
	p.Y.Label.Text = "Records"

	width := vg.Points(8)
	posBars, err := plotter.NewBarChart(pos, width)
	if err != nil {
		return err
	}
	neuBars, err := plotter.NewBarChart(neu, width)
	if err != nil {
		return err
	}
	negBars, err := plotter.NewBarChart(neg, width)
	if err != nil {
		return err
	}

	posBars.Color = rgba(palette.PositiveStrong)
	neuBars.Color = rgba(palette.NeutralStrong)
	negBars.Color = rgba(palette.NegativeStrong)
	posBars.Offset = -width
	negBars.Offset = width

	p.Add(posBars, neuBars, negBars)
	p.Legend.Add("positive", posBars)
	p.Legend.Add("neutral", neuBars)
	p.Legend.Add("negative", negBars)
	p.Legend.Top = true
	p.NominalX(names...)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// rgba parses a #rrggbb palette color. The palette is static, so a bad
// constant is a programming error and falls back to black.
func rgba(c palette.Color) color.Color {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return color.Black
	}
	r, err1 := strconv.ParseUint(s[1:3], 16, 8)
	g, err2 := strconv.ParseUint(s[3:5], 16, 8)
	b, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
