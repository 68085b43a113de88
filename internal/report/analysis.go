// Package report derives exportable summaries from a loaded dataset:
// a text report for the terminal, a JSON snapshot, a bar chart PNG, and
// a PDF summary. All exporters consume the same Analysis value.
package report

import (
	"sort"
	"time"

	"sentimap/internal/geo"
	"sentimap/internal/model"
	"sentimap/internal/palette"
)

// RegionEntry is one raw row in a country's detail listing.
type RegionEntry struct {
	Region    string          `json:"region"`
	Sentiment model.Sentiment `json:"sentiment"`
	Label     string          `json:"label"`
}

// CountrySummary is one country's aggregate plus its catalog identity.
// Code and Continent are empty for dataset countries the map cannot
// place; they still count and still appear in every export.
type CountrySummary struct {
	Name         string                 `json:"name"`
	Code         string                 `json:"code,omitempty"`
	Continent    string                 `json:"continent,omitempty"`
	Aggregate    model.CountryAggregate `json:"aggregate"`
	Score        float64                `json:"score"`
	OverallColor palette.Color          `json:"overall_color"`
	Regions      []RegionEntry          `json:"regions,omitempty"`
}

// Trend names the overall classification behind OverallColor.
func (s CountrySummary) Trend() string {
	switch s.OverallColor {
	case palette.PositiveStrong:
		return "positive"
	case palette.NegativeStrong:
		return "negative"
	default:
		return "neutral"
	}
}

// Analysis is the complete derived snapshot of one dataset load.
type Analysis struct {
	Source      string                 `json:"source"`
	GeneratedAt time.Time              `json:"generated_at"`
	Records     int                    `json:"records"`
	Countries   []CountrySummary       `json:"countries"`
	Totals      model.CountryAggregate `json:"totals"`
	Unmapped    []string               `json:"unmapped,omitempty"`
}

// Build assembles the analysis. Countries sort by total descending,
// ties by name, so the biggest contributors lead every export.
func Build(source string, records []model.SentimentRecord, aggs map[string]model.CountryAggregate, cat *geo.Catalog) Analysis {
	regions := make(map[string][]RegionEntry, len(aggs))
	for _, r := range records {
		regions[r.Country] = append(regions[r.Country], RegionEntry{
			Region:    r.Region,
			Sentiment: r.Sentiment,
			Label:     r.Label,
		})
	}

	var totals model.CountryAggregate
	countries := make([]CountrySummary, 0, len(aggs))
	var unmapped []string
	for name, agg := range aggs {
		totals.Merge(agg)
		summary := CountrySummary{
			Name:         name,
			Aggregate:    agg,
			Score:        agg.Score(),
			OverallColor: palette.ColorFor(agg, model.ModeOverall),
			Regions:      regions[name],
		}
		if p, ok := cat.ByName(name); ok {
			summary.Code = p.Code
			summary.Continent = p.Continent
		} else {
			unmapped = append(unmapped, name)
		}
		countries = append(countries, summary)
	}

	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Aggregate.Total != countries[j].Aggregate.Total {
			return countries[i].Aggregate.Total > countries[j].Aggregate.Total
		}
		return countries[i].Name < countries[j].Name
	})
	sort.Strings(unmapped)

	return Analysis{
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Records:     len(records),
		Countries:   countries,
		Totals:      totals,
		Unmapped:    unmapped,
	}
}
