// Package signals holds the pure extractors that turn a timeline into
// numeric behavioral metrics. Extractors keep no state between calls, so
// re-running them on growing prefixes of the same timeline is safe.
package signals

import (
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

const defaultMinDwellSeconds = 5.0

type DwellMetrics struct {
	TotalDwellSeconds float64
	AvgDwellSeconds   float64
	MaxDwellSeconds   float64
	LongDwellCount    int
}

// DwellExtractor measures how long the user lingers between events.
type DwellExtractor struct {
	// MinDwellSeconds is the threshold above which a gap counts as a long
	// dwell. Zero means the 5 second default.
	MinDwellSeconds float64
}

func (d DwellExtractor) threshold() float64 {
	if d.MinDwellSeconds <= 0 {
		return defaultMinDwellSeconds
	}
	return d.MinDwellSeconds
}

func (d DwellExtractor) Extract(timeline *entities.Timeline) DwellMetrics {
	gaps := timeline.TimeGaps()
	if len(gaps) == 0 {
		return DwellMetrics{}
	}

	var total, max float64
	longCount := 0
	for _, gap := range gaps {
		seconds := gap.Seconds()
		total += seconds
		if seconds > max {
			max = seconds
		}
		if seconds >= d.threshold() {
			longCount++
		}
	}

	return DwellMetrics{
		TotalDwellSeconds: total,
		AvgDwellSeconds:   total / float64(len(gaps)),
		MaxDwellSeconds:   max,
		LongDwellCount:    longCount,
	}
}

// PageDwellTimes accumulates dwell seconds per page across page_view events.
// The final page dwells until the last event of the timeline.
func (d DwellExtractor) PageDwellTimes(timeline *entities.Timeline) map[string]float64 {
	events := timeline.Events()
	pageViews := timeline.EventsByType("page_view")
	dwells := make(map[string]float64, len(pageViews))

	for i, view := range pageViews {
		page := view.StringProperty("page", "unknown")

		var dwell float64
		if i < len(pageViews)-1 {
			dwell = pageViews[i+1].Timestamp.Sub(view.Timestamp).Seconds()
		} else if len(events) > 0 {
			dwell = events[len(events)-1].Timestamp.Sub(view.Timestamp).Seconds()
		}
		dwells[page] += dwell
	}
	return dwells
}
