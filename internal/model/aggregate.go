package model

// CountryAggregate is the per-country sentiment tally. Counts only,
// never derived colors; color resolution happens at render time.
type CountryAggregate struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
	Total    int `json:"total"`
}

// Add tallies one record into the aggregate. Unknown codes count as
// neutral so Total always equals the number of records tallied.
func (a *CountryAggregate) Add(s Sentiment) {
	switch s {
	case Positive:
		a.Positive++
	case Negative:
		a.Negative++
	default:
		a.Neutral++
	}
	a.Total++
}

// Merge folds another aggregate's counts into a.
func (a *CountryAggregate) Merge(other CountryAggregate) {
	a.Positive += other.Positive
	a.Neutral += other.Neutral
	a.Negative += other.Negative
	a.Total += other.Total
}

// Score is the weighted overall sentiment, (2*positive + neutral) / total,
// ranging 0 (all negative) to 2 (all positive). Zero totals score 0.
func (a CountryAggregate) Score() float64 {
	if a.Total == 0 {
		return 0
	}
	return (2*float64(a.Positive) + float64(a.Neutral)) / float64(a.Total)
}

// PositiveRatio is the positive share of the total, 0 when empty.
func (a CountryAggregate) PositiveRatio() float64 {
	return ratio(a.Positive, a.Total)
}

// NegativeRatio is the negative share of the total, 0 when empty.
func (a CountryAggregate) NegativeRatio() float64 {
	return ratio(a.Negative, a.Total)
}

// NeutralRatio is the neutral share of the total, 0 when empty.
func (a CountryAggregate) NeutralRatio() float64 {
	return ratio(a.Neutral, a.Total)
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
