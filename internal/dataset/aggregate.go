package dataset

import "sentimap/internal/model"

// Aggregate reduces records to per-country tallies in one pass. Counts
// commute, so input order never changes the result.
func Aggregate(records []model.SentimentRecord) map[string]model.CountryAggregate {
	aggs := make(map[string]model.CountryAggregate)
	for _, r := range records {
		agg := aggs[r.Country]
		agg.Add(r.Sentiment)
		aggs[r.Country] = agg
	}
	return aggs
}

// GlobalTotals folds every country's aggregate into one world tally.
func GlobalTotals(aggs map[string]model.CountryAggregate) model.CountryAggregate {
	var total model.CountryAggregate
	for _, agg := range aggs {
		total.Merge(agg)
	}
	return total
}
