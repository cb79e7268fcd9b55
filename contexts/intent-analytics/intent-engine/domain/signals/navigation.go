package signals

import (
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

type NavigationMetrics struct {
	UniquePages         int
	TotalPageViews      int
	NavigationDepth     int
	LoopsDetected       int
	BackNavigationCount int
	PageSequence        []string
}

// NavigationExtractor derives page-flow structure from page_view events.
type NavigationExtractor struct{}

func (NavigationExtractor) Extract(timeline *entities.Timeline) NavigationMetrics {
	pageViews := timeline.EventsByType("page_view")

	unique := make(map[string]struct{}, len(pageViews))
	sequence := make([]string, 0, len(pageViews))
	for _, event := range pageViews {
		page := event.StringProperty("page", "unknown")
		unique[page] = struct{}{}
		sequence = append(sequence, page)
	}

	return NavigationMetrics{
		UniquePages:         len(unique),
		TotalPageViews:      len(pageViews),
		NavigationDepth:     len(unique),
		LoopsDetected:       detectLoops(sequence),
		BackNavigationCount: countBackNavigation(sequence),
		PageSequence:        sequence,
	}
}

// detectLoops counts visits to pages already seen anywhere in the session.
func detectLoops(sequence []string) int {
	visited := make(map[string]struct{}, len(sequence))
	loops := 0
	for _, page := range sequence {
		if _, seen := visited[page]; seen {
			loops++
		}
		visited[page] = struct{}{}
	}
	return loops
}

// countBackNavigation counts revisits within a three page lookback window,
// which approximates browser back-button usage.
func countBackNavigation(sequence []string) int {
	if len(sequence) < 2 {
		return 0
	}
	backNav := 0
	for i := 1; i < len(sequence); i++ {
		start := i - 3
		if start < 0 {
			start = 0
		}
		for _, recent := range sequence[start:i] {
			if recent == sequence[i] {
				backNav++
				break
			}
		}
	}
	return backNav
}
