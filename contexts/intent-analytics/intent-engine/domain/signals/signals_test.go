package signals

import (
	"math"
	"testing"
	"time"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

var signalBase = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func event(t *testing.T, eventType string, offset time.Duration, properties map[string]any) entities.Event {
	t.Helper()
	e, err := entities.NewEvent(eventType, signalBase.Add(offset), "user-1", "session-1", properties)
	if err != nil {
		t.Fatalf("new event failed: %v", err)
	}
	return e
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestDwellExtractorGaps(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "page_view", 0, map[string]any{"page": "home"}),
		event(t, "page_view", 10*time.Second, map[string]any{"page": "products"}),
		event(t, "click", 12*time.Second, nil),
	)

	metrics := DwellExtractor{}.Extract(timeline)
	if !approx(metrics.TotalDwellSeconds, 12) {
		t.Fatalf("total dwell: got %v", metrics.TotalDwellSeconds)
	}
	if !approx(metrics.AvgDwellSeconds, 6) {
		t.Fatalf("avg dwell: got %v", metrics.AvgDwellSeconds)
	}
	if !approx(metrics.MaxDwellSeconds, 10) {
		t.Fatalf("max dwell: got %v", metrics.MaxDwellSeconds)
	}
	if metrics.LongDwellCount != 1 {
		t.Fatalf("long dwell count with default threshold: got %d", metrics.LongDwellCount)
	}
}

func TestDwellExtractorEmptyTimeline(t *testing.T) {
	metrics := DwellExtractor{}.Extract(entities.NewTimeline())
	if metrics.TotalDwellSeconds != 0 || metrics.LongDwellCount != 0 {
		t.Fatalf("empty timeline should yield zero metrics: %+v", metrics)
	}
}

func TestPageDwellTimes(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "page_view", 0, map[string]any{"page": "home"}),
		event(t, "page_view", 10*time.Second, map[string]any{"page": "pricing"}),
		event(t, "click", 25*time.Second, nil),
	)

	dwells := DwellExtractor{}.PageDwellTimes(timeline)
	if !approx(dwells["home"], 10) {
		t.Fatalf("home dwell: got %v", dwells["home"])
	}
	// Final page dwells until the last event of the timeline.
	if !approx(dwells["pricing"], 15) {
		t.Fatalf("pricing dwell: got %v", dwells["pricing"])
	}
}

func TestNavigationExtractorLoopsAndBackNav(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "page_view", 0, map[string]any{"page": "home"}),
		event(t, "page_view", 5*time.Second, map[string]any{"page": "products"}),
		event(t, "page_view", 10*time.Second, map[string]any{"page": "home"}),
		event(t, "page_view", 15*time.Second, map[string]any{"page": "products"}),
	)

	metrics := NavigationExtractor{}.Extract(timeline)
	if metrics.UniquePages != 2 || metrics.TotalPageViews != 4 {
		t.Fatalf("page counts wrong: %+v", metrics)
	}
	if metrics.LoopsDetected != 2 {
		t.Fatalf("expected 2 loops, got %d", metrics.LoopsDetected)
	}
	if metrics.BackNavigationCount != 2 {
		t.Fatalf("expected 2 back navigations, got %d", metrics.BackNavigationCount)
	}
	if len(metrics.PageSequence) != 4 || metrics.PageSequence[0] != "home" {
		t.Fatalf("unexpected sequence: %v", metrics.PageSequence)
	}
}

func TestComparisonExtractorScores(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "product_view", 0, map[string]any{"product_id": "p1", "category": "shoes"}),
		event(t, "product_view", 5*time.Second, map[string]any{"productId": "p2", "category": "shoes"}),
		event(t, "product_view", 10*time.Second, map[string]any{"product_id": "p3", "category": "bags"}),
	)

	metrics := ComparisonExtractor{}.Extract(timeline)
	if metrics.UniqueProductsViewed != 3 || metrics.UniqueCategoriesViewed != 2 {
		t.Fatalf("unique counts wrong: %+v", metrics)
	}
	if !metrics.IsComparing || !metrics.RapidSwitching {
		t.Fatalf("comparison flags wrong: %+v", metrics)
	}
	// 0.5 for three products, 0.3 for two categories, 0.2 for rapid switching, capped at 1.
	if !approx(metrics.ComparisonScore, 1.0) {
		t.Fatalf("comparison score: got %v", metrics.ComparisonScore)
	}
}

func TestComparisonExtractorSingleProduct(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "product_view", 0, map[string]any{"product_id": "p1"}),
	)
	metrics := ComparisonExtractor{}.Extract(timeline)
	if metrics.IsComparing || metrics.RapidSwitching || metrics.ComparisonScore != 0 {
		t.Fatalf("single product should not look like comparison: %+v", metrics)
	}
}

func TestFrictionExtractorScore(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "form_start", 0, nil),
		event(t, "add_to_cart", 10*time.Second, nil),
		event(t, "page_view", 100*time.Second, map[string]any{"page": "cart"}),
	)

	metrics := FrictionExtractor{}.Extract(timeline)
	if !metrics.FormAbandonment || !metrics.CartAbandonment {
		t.Fatalf("abandonment flags wrong: %+v", metrics)
	}
	if metrics.LongPauses != 1 {
		t.Fatalf("expected 1 long pause, got %d", metrics.LongPauses)
	}
	// 0.3 form + 0.3 cart + 0.05 for one long pause.
	if !approx(metrics.FrictionScore, 0.65) {
		t.Fatalf("friction score: got %v", metrics.FrictionScore)
	}
}

func TestFrictionExtractorCartAbandonmentOnly(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "add_to_cart", 0, nil),
	)

	metrics := FrictionExtractor{}.Extract(timeline)
	if metrics.FormAbandonment || !metrics.CartAbandonment {
		t.Fatalf("abandonment flags wrong: %+v", metrics)
	}
	// Cart abandonment alone contributes exactly its 0.3 weight.
	if !approx(metrics.FrictionScore, 0.3) {
		t.Fatalf("friction score: got %v", metrics.FrictionScore)
	}
}

func TestFrictionExtractorErrorEvents(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "payment_error", 0, nil),
		event(t, "Error_Shown", 5*time.Second, nil),
	)
	metrics := FrictionExtractor{}.Extract(timeline)
	if metrics.ErrorEvents != 2 {
		t.Fatalf("expected 2 error events, got %d", metrics.ErrorEvents)
	}
}

func TestPriceExtractorSensitivity(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "product_view", 0, map[string]any{"price": 50.0}),
		event(t, "product_view", 5*time.Second, map[string]any{"amount": 200.0}),
		event(t, "add_to_cart", 10*time.Second, map[string]any{"price": 50.0}),
		event(t, "remove_from_cart", 20*time.Second, map[string]any{"price": 50.0}),
	)

	metrics := PriceExtractor{}.Extract(timeline)
	if !metrics.PriceComparison || !metrics.LowerPricePreference || !metrics.RemovedFromCart {
		t.Fatalf("price flags wrong: %+v", metrics)
	}
	if !approx(metrics.PriceRange, 150) {
		t.Fatalf("price range: got %v", metrics.PriceRange)
	}
	// 0.3 comparison + 0.3 lower preference + 0.2 removal + 0.2 wide range.
	if !approx(metrics.SensitivityScore, 1.0) {
		t.Fatalf("sensitivity score: got %v", metrics.SensitivityScore)
	}
}

func TestPriceExtractorNoPrices(t *testing.T) {
	timeline := entities.NewTimeline(
		event(t, "page_view", 0, map[string]any{"page": "home"}),
	)
	metrics := PriceExtractor{}.Extract(timeline)
	if metrics.HasPriceRange || metrics.SensitivityScore != 0 {
		t.Fatalf("no-price timeline should score zero: %+v", metrics)
	}
}
