package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconPositive = "+" // Positive tally marker
	IconNegative = "-" // Negative tally marker
	IconNeutral  = "~" // Neutral tally marker
	IconSelected = "◆" // Diamond for the selected country
	IconHovered  = "›" // Chevron for the hovered country
	IconNoData   = "·" // Middle dot for countries without records
	IconUnmapped = "✗" // Thin X for dataset countries missing from the map
)
