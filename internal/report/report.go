package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"sentimap/internal/model"
)

// Options control text report rendering.
type Options struct {
	Verbose bool
	Color   bool
}

// Generate renders the analysis as a terminal report.
func Generate(a Analysis, opts Options) string {
	var buf bytes.Buffer

	title := "Geographic Sentiment Report"
	if opts.Color {
		title = color.New(color.Bold).Sprint(title)
	}
	fmt.Fprintf(&buf, "%s\n%s\n\n", title, strings.Repeat("=", len("Geographic Sentiment Report")))
	fmt.Fprintf(&buf, "Source:    %s\n", a.Source)
	fmt.Fprintf(&buf, "Generated: %s\n", a.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&buf, "Records:   %d accepted across %d countries\n\n", a.Records, len(a.Countries))

	fmt.Fprintf(&buf, "Totals: %s %d  %s %d  %s %d\n\n",
		label("positive", opts.Color), a.Totals.Positive,
		label("neutral", opts.Color), a.Totals.Neutral,
		label("negative", opts.Color), a.Totals.Negative)

	table := tablewriter.NewTable(&buf,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders:  tw.BorderNone,
			Settings: tw.Settings{Separators: tw.Separators{ShowHeader: tw.Off}},
		}),
	)
	table.Header([]string{"Country", "Code", "Pos", "Neu", "Neg", "Total", "Score", "Trend"})

	rows := make([][]string, 0, len(a.Countries))
	for _, c := range a.Countries {
		code := c.Code
		if code == "" {
			code = model.IconUnmapped
		}
		rows = append(rows, []string{
			c.Name,
			code,
			fmt.Sprintf("%d", c.Aggregate.Positive),
			fmt.Sprintf("%d", c.Aggregate.Neutral),
			fmt.Sprintf("%d", c.Aggregate.Negative),
			fmt.Sprintf("%d", c.Aggregate.Total),
			fmt.Sprintf("%.2f", c.Score),
			trend(c, opts.Color),
		})
	}
	table.Bulk(rows)
	table.Render()

	if len(a.Unmapped) > 0 {
		fmt.Fprintf(&buf, "\n%s not on the map: %s\n",
			label("negative", opts.Color), strings.Join(a.Unmapped, ", "))
	}

	if opts.Verbose {
		for _, c := range a.Countries {
			fmt.Fprintf(&buf, "\n%s\n", c.Name)
			for _, r := range c.Regions {
				fmt.Fprintf(&buf, "  %-24s %s\n", r.Region, label(strings.ToLower(r.Label), opts.Color))
			}
		}
	}

	return buf.String()
}

func trend(c CountrySummary, useColor bool) string {
	t := c.Trend()
	icon := model.IconNeutral
	switch t {
	case "positive":
		icon = model.IconPositive
	case "negative":
		icon = model.IconNegative
	}
	return fmt.Sprintf("%s %s", icon, label(t, useColor))
}

func label(name string, useColor bool) string {
	if !useColor {
		return name
	}
	switch name {
	case "positive":
		return color.GreenString(name)
	case "negative":
		return color.RedString(name)
	case "neutral":
		return color.BlueString(name)
	default:
		return name
	}
}
