package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Sentiment
		wantErr bool
	}{
		{name: "negative", raw: "0", want: Negative},
		{name: "neutral", raw: "1", want: Neutral},
		{name: "positive", raw: "2", want: Positive},
		{name: "padded", raw: " 2 ", want: Positive},
		{name: "out of range kept", raw: "7", want: Sentiment(7)},
		{name: "negative code kept", raw: "-3", want: Sentiment(-3)},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "non-numeric", raw: "high", wantErr: true},
		{name: "float", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSentiment(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSentimentLabel(t *testing.T) {
	assert.Equal(t, "Negative", Negative.Label())
	assert.Equal(t, "Neutral", Neutral.Label())
	assert.Equal(t, "Positive", Positive.Label())
	assert.Equal(t, "Unknown", Sentiment(7).Label())
	assert.Equal(t, "Unknown", Sentiment(-1).Label())
}

func TestSentimentValid(t *testing.T) {
	assert.True(t, Negative.Valid())
	assert.True(t, Neutral.Valid())
	assert.True(t, Positive.Valid())
	assert.False(t, Sentiment(3).Valid())
	assert.False(t, Sentiment(-1).Valid())
}
