package model

import (
	"fmt"
	"strings"
)

// VisualizationMode selects how aggregates resolve to country fills.
type VisualizationMode int

const (
	ModeOverall VisualizationMode = iota
	ModePositive
	ModeNegative
	ModeNeutral
)

var modeNames = [...]string{"overall", "positive", "negative", "neutral"}

var modeLabels = [...]string{"Overall", "Positive focus", "Negative focus", "Neutral focus"}

// Valid reports whether m is a defined mode.
func (m VisualizationMode) Valid() bool {
	return m >= ModeOverall && m <= ModeNeutral
}

// String is the wire name used by flags and query parameters.
func (m VisualizationMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Label is the human-readable name shown in headers and legends.
func (m VisualizationMode) Label() string {
	if !m.Valid() {
		return "Unknown"
	}
	return modeLabels[m]
}

// Next cycles to the following mode, wrapping after neutral focus.
func (m VisualizationMode) Next() VisualizationMode {
	return (m + 1) % VisualizationMode(len(modeNames))
}

// Modes lists every mode in display order.
func Modes() []VisualizationMode {
	return []VisualizationMode{ModeOverall, ModePositive, ModeNegative, ModeNeutral}
}

// ParseMode resolves a wire name to its mode.
func ParseMode(name string) (VisualizationMode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(name, n) {
			return VisualizationMode(i), nil
		}
	}
	return ModeOverall, fmt.Errorf("unknown visualization mode %q", name)
}
