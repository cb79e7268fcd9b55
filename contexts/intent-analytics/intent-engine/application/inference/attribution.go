package inference

import (
	"sort"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	"istari/contexts/intent-analytics/intent-engine/domain/signals"
)

// AttributionCalculator re-derives credit shares for a state directly from
// the signal extractors, using a fixed state-to-signal mapping. This view is
// deliberately independent of the rule-contribution attributions the engine
// attaches during scoring; the two can disagree for the same state.
type AttributionCalculator struct {
	Dwell      signals.DwellExtractor
	Navigation signals.NavigationExtractor
	Comparison signals.ComparisonExtractor
	Friction   signals.FrictionExtractor
	Price      signals.PriceExtractor
}

// Calculate maps the relevant signals for the state type into attribution
// shares normalized to sum to one when any credit exists.
func (a AttributionCalculator) Calculate(state entities.IntentState, session *entities.Session) map[string]float64 {
	timeline := session.Timeline()
	attributions := map[string]float64{}

	switch state.StateType {
	case entities.StateBrowsing:
		nav := a.Navigation.Extract(timeline)
		dwell := a.Dwell.Extract(timeline)
		attributions["navigation"] = Clamp(float64(nav.UniquePages)/5.0, 0, 1)
		attributions["dwell"] = Clamp(dwell.AvgDwellSeconds/30.0, 0, 1)

	case entities.StateEvaluatingOptions:
		comp := a.Comparison.Extract(timeline)
		nav := a.Navigation.Extract(timeline)
		attributions["comparison"] = comp.ComparisonScore
		attributions["navigation"] = Clamp(float64(nav.UniquePages)/5.0, 0, 1)

	case entities.StatePriceSensitive:
		price := a.Price.Extract(timeline)
		comp := a.Comparison.Extract(timeline)
		attributions["price"] = price.SensitivityScore
		attributions["comparison"] = comp.ComparisonScore

	case entities.StateTrustSeeking:
		dwell := a.Dwell.Extract(timeline)
		nav := a.Navigation.Extract(timeline)
		attributions["dwell"] = Clamp(dwell.AvgDwellSeconds/60.0, 0, 1)
		attributions["navigation"] = Clamp(float64(nav.UniquePages)/3.0, 0, 1)

	case entities.StatePurchaseReady:
		nav := a.Navigation.Extract(timeline)
		friction := a.Friction.Extract(timeline)
		if nav.UniquePages >= 2 {
			attributions["navigation"] = 1.0
		} else {
			attributions["navigation"] = 0.5
		}
		attributions["friction"] = 1.0 - friction.FrictionScore

	case entities.StateAbandonmentRisk:
		friction := a.Friction.Extract(timeline)
		dwell := a.Dwell.Extract(timeline)
		attributions["friction"] = friction.FrictionScore
		attributions["dwell"] = Clamp(dwell.MaxDwellSeconds/120.0, 0, 1)
	}

	total := 0.0
	for _, value := range attributions {
		total += value
	}
	if total > 0 {
		for name, value := range attributions {
			attributions[name] = value / total
		}
	}
	return attributions
}

// AttributionShare pairs a signal name with its normalized credit.
type AttributionShare struct {
	Signal string
	Score  float64
}

// TopAttributions returns the n highest shares sorted descending, with the
// signal name as a stable secondary order.
func TopAttributions(attributions map[string]float64, n int) []AttributionShare {
	shares := make([]AttributionShare, 0, len(attributions))
	for signal, score := range attributions {
		shares = append(shares, AttributionShare{Signal: signal, Score: score})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Score != shares[j].Score {
			return shares[i].Score > shares[j].Score
		}
		return shares[i].Signal < shares[j].Signal
	})
	if n < len(shares) {
		shares = shares[:n]
	}
	return shares
}
