package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentiment is the integer sentiment code carried by each dataset row.
// The wire encoding is 0..2; anything else is preserved but rendered
// as Unknown.
type Sentiment int

const (
	Negative Sentiment = 0
	Neutral  Sentiment = 1
	Positive Sentiment = 2
)

// Valid reports whether s is one of the three known codes.
func (s Sentiment) Valid() bool {
	return s >= Negative && s <= Positive
}

// Label returns the display label for the code. Out-of-range codes
// label as "Unknown" rather than failing the row.
func (s Sentiment) Label() string {
	switch s {
	case Negative:
		return "Negative"
	case Neutral:
		return "Neutral"
	case Positive:
		return "Positive"
	default:
		return "Unknown"
	}
}

func (s Sentiment) String() string {
	return s.Label()
}

// ParseSentiment parses a raw CSV cell into a sentiment code.
// Empty and non-numeric cells are row defects and return an error.
func ParseSentiment(raw string) (Sentiment, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("empty sentiment value")
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("non-numeric sentiment value %q", raw)
	}
	return Sentiment(n), nil
}

// SentimentRecord is one accepted dataset row. Label and DisplayColor
// are derived once at load so downstream consumers never re-map codes.
type SentimentRecord struct {
	Country      string    `json:"country"`
	Region       string    `json:"region"`
	Sentiment    Sentiment `json:"sentiment"`
	Label        string    `json:"label"`
	DisplayColor string    `json:"display_color"`
}
