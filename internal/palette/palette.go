// Package palette owns every color decision: the fixed color set, the
// record-level lookup, and the aggregate-to-fill policy. Resolution is
// pure; fills are computed fresh each render pass and handed to the
// renderer, never cached inside it.
package palette

import "sentimap/internal/model"

// Color is a hex color string usable by both the terminal styles and
// the web map.
type Color string

const (
	PositiveStrong Color = "#1a9850"
	PositiveWeak   Color = "#91cf60"
	NegativeStrong Color = "#d73027"
	NegativeWeak   Color = "#fc8d59"
	NeutralStrong  Color = "#4575b4"
	NeutralWeak    Color = "#91bfdb"

	// Mixed marks countries whose focus-mode ratio clears no threshold.
	Mixed Color = "#9e9e9e"
	// NoData marks catalog countries absent from the dataset. Distinct
	// from Mixed so "no records" never reads as "weak signal".
	NoData Color = "#d4d4d4"
)

// ForSentiment is the record-level display color. Unknown codes get the
// neutral gray.
func ForSentiment(s model.Sentiment) Color {
	switch s {
	case model.Positive:
		return PositiveStrong
	case model.Negative:
		return NegativeStrong
	case model.Neutral:
		return NeutralStrong
	default:
		return Mixed
	}
}
