package inference

import (
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

// ConfidenceCalculator refines a state's confidence after the fact from the
// strength of its evidence and the shape of its attributions. It is
// independent of the scoring engine and never mutates the state.
type ConfidenceCalculator struct{}

func (c ConfidenceCalculator) Calculate(state entities.IntentState) float64 {
	refined := state.Confidence * c.evidenceFactor(state) * c.attributionFactor(state)
	return Clamp(refined, 0.0, 1.0)
}

// evidenceFactor steps from 0.7 with no evidence up to 1.0 at three items.
func (ConfidenceCalculator) evidenceFactor(state entities.IntentState) float64 {
	switch {
	case len(state.Evidence) >= 3:
		return 1.0
	case len(state.Evidence) == 2:
		return 0.9
	case len(state.Evidence) == 1:
		return 0.8
	default:
		return 0.7
	}
}

// attributionFactor rewards a single dominant signal over diffuse credit.
func (ConfidenceCalculator) attributionFactor(state entities.IntentState) float64 {
	if len(state.Attributions) == 0 {
		return 0.8
	}

	var max, total float64
	for _, value := range state.Attributions {
		if value > max {
			max = value
		}
		total += value
	}
	if total == 0 {
		return 0.8
	}
	return 0.7 + (max/total)*0.3
}
