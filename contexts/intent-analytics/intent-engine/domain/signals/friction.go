package signals

import (
	"strings"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

const longPauseThresholdSeconds = 60.0

type FrictionMetrics struct {
	FormAbandonment bool
	CartAbandonment bool
	LongPauses      int
	BackNavigation  int
	ErrorEvents     int
	FrictionScore   float64
}

// FrictionExtractor surfaces hesitation and obstacle indicators.
type FrictionExtractor struct{}

func (FrictionExtractor) Extract(timeline *entities.Timeline) FrictionMetrics {
	formStarts := len(timeline.EventsByType("form_start"))
	formSubmits := len(timeline.EventsByType("form_submit"))
	addToCart := len(timeline.EventsByType("add_to_cart"))
	checkoutStarted := len(timeline.EventsByType("checkout_started"))

	longPauses := 0
	for _, gap := range timeline.TimeGaps() {
		if gap.Seconds() > longPauseThresholdSeconds {
			longPauses++
		}
	}

	errorEvents := 0
	for _, event := range timeline.Events() {
		if strings.Contains(strings.ToLower(event.EventType), "error") {
			errorEvents++
		}
	}

	metrics := FrictionMetrics{
		FormAbandonment: formStarts > formSubmits,
		CartAbandonment: addToCart > 0 && checkoutStarted == 0,
		LongPauses:      longPauses,
		BackNavigation:  countPageRevisits(timeline),
		ErrorEvents:     errorEvents,
	}
	metrics.FrictionScore = frictionScore(metrics)
	return metrics
}

// countPageRevisits counts page views whose page was seen at any earlier
// point. Unlike the navigation extractor this has no lookback window.
func countPageRevisits(timeline *entities.Timeline) int {
	pageViews := timeline.EventsByType("page_view")
	if len(pageViews) < 2 {
		return 0
	}
	seen := make(map[string]struct{}, len(pageViews))
	revisits := 0
	for _, event := range pageViews {
		page := event.StringProperty("page", "unknown")
		if _, ok := seen[page]; ok {
			revisits++
		}
		seen[page] = struct{}{}
	}
	return revisits
}

func frictionScore(m FrictionMetrics) float64 {
	score := 0.0
	if m.FormAbandonment {
		score += 0.3
	}
	if m.CartAbandonment {
		score += 0.3
	}
	if m.LongPauses > 0 {
		score += minFloat(0.2, float64(m.LongPauses)*0.05)
	}
	if m.BackNavigation > 0 {
		score += minFloat(0.15, float64(m.BackNavigation)*0.05)
	}
	if m.ErrorEvents > 0 {
		score += minFloat(0.15, float64(m.ErrorEvents)*0.1)
	}
	return minFloat(1.0, score)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
