package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateAdd(t *testing.T) {
	var agg CountryAggregate
	agg.Add(Positive)
	agg.Add(Positive)
	agg.Add(Neutral)
	agg.Add(Negative)

	assert.Equal(t, CountryAggregate{Positive: 2, Neutral: 1, Negative: 1, Total: 4}, agg)
}

func TestAggregateAddUnknownCountsAsNeutral(t *testing.T) {
	var agg CountryAggregate
	agg.Add(Sentiment(9))
	agg.Add(Sentiment(-2))
	agg.Add(Positive)

	assert.Equal(t, 2, agg.Neutral)
	assert.Equal(t, 1, agg.Positive)
	assert.Equal(t, 3, agg.Total)
	assert.Equal(t, agg.Total, agg.Positive+agg.Neutral+agg.Negative)
}

func TestAggregateMerge(t *testing.T) {
	a := CountryAggregate{Positive: 1, Neutral: 2, Negative: 3, Total: 6}
	b := CountryAggregate{Positive: 4, Neutral: 0, Negative: 1, Total: 5}
	a.Merge(b)

	assert.Equal(t, CountryAggregate{Positive: 5, Neutral: 2, Negative: 4, Total: 11}, a)
}

func TestAggregateScore(t *testing.T) {
	tests := []struct {
		name string
		agg  CountryAggregate
		want float64
	}{
		{name: "empty", agg: CountryAggregate{}, want: 0},
		{name: "all positive", agg: CountryAggregate{Positive: 4, Total: 4}, want: 2},
		{name: "all negative", agg: CountryAggregate{Negative: 3, Total: 3}, want: 0},
		{name: "all neutral", agg: CountryAggregate{Neutral: 5, Total: 5}, want: 1},
		{name: "mixed", agg: CountryAggregate{Positive: 2, Neutral: 1, Negative: 1, Total: 4}, want: 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.agg.Score(), 1e-9)
		})
	}
}

func TestAggregateRatios(t *testing.T) {
	agg := CountryAggregate{Positive: 3, Neutral: 1, Negative: 1, Total: 5}
	assert.InDelta(t, 0.6, agg.PositiveRatio(), 1e-9)
	assert.InDelta(t, 0.2, agg.NeutralRatio(), 1e-9)
	assert.InDelta(t, 0.2, agg.NegativeRatio(), 1e-9)

	var empty CountryAggregate
	assert.Zero(t, empty.PositiveRatio())
	assert.Zero(t, empty.NeutralRatio())
	assert.Zero(t, empty.NegativeRatio())
}

func TestModeCycle(t *testing.T) {
	m := ModeOverall
	seen := map[VisualizationMode]bool{}
	for range Modes() {
		seen[m] = true
		m = m.Next()
	}
	assert.Equal(t, ModeOverall, m)
	assert.Len(t, seen, 4)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("negative")
	assert.NoError(t, err)
	assert.Equal(t, ModeNegative, m)

	m, err = ParseMode("OVERALL")
	assert.NoError(t, err)
	assert.Equal(t, ModeOverall, m)

	_, err = ParseMode("vibes")
	assert.Error(t, err)
}
