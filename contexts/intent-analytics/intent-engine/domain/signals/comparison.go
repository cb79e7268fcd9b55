package signals

import (
	"fmt"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

type ComparisonMetrics struct {
	UniqueProductsViewed   int
	UniqueCategoriesViewed int
	IsComparing            bool
	RapidSwitching         bool
	ComparisonScore        float64
}

// ComparisonExtractor detects product comparison behavior across
// product_view events.
type ComparisonExtractor struct{}

func (ComparisonExtractor) Extract(timeline *entities.Timeline) ComparisonMetrics {
	productViews := timeline.EventsByType("product_view")

	products := make(map[string]struct{})
	categories := make(map[string]struct{})
	for _, event := range productViews {
		if id, ok := productID(event); ok {
			products[id] = struct{}{}
		}
		if category := event.Property("category"); category != nil {
			categories[fmt.Sprintf("%v", category)] = struct{}{}
		}
	}

	rapid := detectRapidSwitching(productViews)
	metrics := ComparisonMetrics{
		UniqueProductsViewed:   len(products),
		UniqueCategoriesViewed: len(categories),
		IsComparing:            len(products) > 1 || len(categories) > 1,
		RapidSwitching:         rapid,
	}
	metrics.ComparisonScore = comparisonScore(len(products), len(categories), rapid)
	return metrics
}

// productID accepts both snake_case and camelCase property keys since vendor
// schemas disagree.
func productID(event entities.Event) (string, bool) {
	for _, key := range []string{"product_id", "productId"} {
		if value := event.Property(key); value != nil {
			return fmt.Sprintf("%v", value), true
		}
	}
	return "", false
}

// detectRapidSwitching reports two or more distinct products among the last
// five product views.
func detectRapidSwitching(productViews []entities.Event) bool {
	if len(productViews) < 2 {
		return false
	}
	start := len(productViews) - 5
	if start < 0 {
		start = 0
	}
	recent := make(map[string]struct{})
	for _, event := range productViews[start:] {
		if id, ok := productID(event); ok {
			recent[id] = struct{}{}
		}
	}
	return len(recent) >= 2
}

func comparisonScore(uniqueProducts int, uniqueCategories int, rapidSwitching bool) float64 {
	score := 0.0
	switch {
	case uniqueProducts >= 3:
		score += 0.5
	case uniqueProducts >= 2:
		score += 0.3
	}
	if uniqueCategories >= 2 {
		score += 0.3
	}
	if rapidSwitching {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
