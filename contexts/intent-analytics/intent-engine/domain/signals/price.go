package signals

import (
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

type PriceMetrics struct {
	PricesViewed         []float64
	PriceRange           float64
	HasPriceRange        bool
	PriceComparison      bool
	LowerPricePreference bool
	RemovedFromCart      bool
	SensitivityScore     float64
}

// PriceExtractor measures how strongly pricing drives behavior.
type PriceExtractor struct{}

func (PriceExtractor) Extract(timeline *entities.Timeline) PriceMetrics {
	viewed := collectPrices(timeline.EventsByType("product_view"))
	cart := collectPrices(timeline.EventsByType("add_to_cart"))
	removed := collectPrices(timeline.EventsByType("remove_from_cart"))

	metrics := PriceMetrics{
		PricesViewed:    viewed,
		PriceComparison: len(viewed) > 1,
		RemovedFromCart: len(removed) > 0,
	}
	if len(viewed) > 0 {
		min, max := viewed[0], viewed[0]
		for _, price := range viewed[1:] {
			if price < min {
				min = price
			}
			if price > max {
				max = price
			}
		}
		metrics.PriceRange = max - min
		metrics.HasPriceRange = true
	}
	if len(viewed) > 0 && len(cart) > 0 {
		metrics.LowerPricePreference = mean(cart) < mean(viewed)
	}
	metrics.SensitivityScore = sensitivityScore(metrics)
	return metrics
}

// collectPrices pulls the first parseable price-like property from each
// event, trying price, amount, value and cost in that order.
func collectPrices(events []entities.Event) []float64 {
	var prices []float64
	for _, event := range events {
		for _, key := range []string{"price", "amount", "value", "cost"} {
			if price, ok := event.FloatProperty(key); ok {
				prices = append(prices, price)
				break
			}
		}
	}
	return prices
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sensitivityScore(m PriceMetrics) float64 {
	score := 0.0
	if m.PriceComparison {
		score += 0.3
	}
	if m.LowerPricePreference {
		score += 0.3
	}
	if m.RemovedFromCart {
		score += 0.2
	}
	if m.HasPriceRange && m.PriceRange > 100 {
		score += 0.2
	}
	return minFloat(1.0, score)
}
