package palette

import (
	"sentimap/internal/geo"
	"sentimap/internal/model"
)

// Focus-mode ratio thresholds and overall score cuts. The overall score
// ranges 0..2 (see model.CountryAggregate.Score).
const (
	strongRatio = 0.7
	weakRatio   = 0.4
	positiveCut = 1.5
	negativeCut = 0.5
)

// ColorFor resolves one aggregate to its fill under the given mode.
// Callers handle the no-data case via FillsFor; aggregates reaching
// here have a nonzero Total.
func ColorFor(agg model.CountryAggregate, mode model.VisualizationMode) Color {
	switch mode {
	case model.ModePositive:
		return focusColor(agg.PositiveRatio(), PositiveStrong, PositiveWeak)
	case model.ModeNegative:
		return focusColor(agg.NegativeRatio(), NegativeStrong, NegativeWeak)
	case model.ModeNeutral:
		return focusColor(agg.NeutralRatio(), NeutralStrong, NeutralWeak)
	default:
		switch score := agg.Score(); {
		case score >= positiveCut:
			return PositiveStrong
		case score >= negativeCut:
			return NeutralStrong
		default:
			return NegativeStrong
		}
	}
}

func focusColor(ratio float64, strong, weak Color) Color {
	switch {
	case ratio >= strongRatio:
		return strong
	case ratio >= weakRatio:
		return weak
	default:
		return Mixed
	}
}

// FillsFor computes the complete per-country fill map for one render
// pass. Every catalog country gets an entry: NoData when absent from
// the aggregates, the policy color otherwise. Dataset countries the
// catalog cannot place are skipped here; they still aggregate and
// appear in reports, they just have no shape to paint.
func FillsFor(aggs map[string]model.CountryAggregate, mode model.VisualizationMode, cat *geo.Catalog) map[string]Color {
	fills := make(map[string]Color, len(aggs))
	for _, p := range cat.Places() {
		fills[p.Code] = NoData
	}
	for name, agg := range aggs {
		p, ok := cat.ByName(name)
		if !ok {
			continue
		}
		fills[p.Code] = ColorFor(agg, mode)
	}
	return fills
}
