package rules

import (
	"testing"
	"time"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

var ruleBase = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func sessionWith(t *testing.T, specs ...[2]any) *entities.Session {
	t.Helper()
	session := entities.NewSession("session-1", "user-1", ruleBase)
	for _, spec := range specs {
		eventType := spec[0].(string)
		offset := spec[1].(time.Duration)
		event, err := entities.NewEvent(eventType, ruleBase.Add(offset), "user-1", "session-1", nil)
		if err != nil {
			t.Fatalf("new event failed: %v", err)
		}
		if err := session.AppendEvent(event); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	return session
}

func TestBrowsingRuleThresholds(t *testing.T) {
	rule := BrowsingRule{}
	if !rule.Matches(entities.StateBrowsing, nil) || rule.Matches(entities.StatePurchaseReady, nil) {
		t.Fatalf("browsing rule matches wrong states")
	}

	if got := rule.Evaluate(sessionWith(t)); got != 0.2 {
		t.Fatalf("no page views: got %v", got)
	}
	if got := rule.Evaluate(sessionWith(t, [2]any{"page_view", time.Duration(0)})); got != 0.5 {
		t.Fatalf("one page view: got %v", got)
	}
	three := sessionWith(t,
		[2]any{"page_view", time.Duration(0)},
		[2]any{"page_view", 5 * time.Second},
		[2]any{"page_view", 10 * time.Second},
	)
	if got := rule.Evaluate(three); got != 0.8 {
		t.Fatalf("three page views: got %v", got)
	}
}

func TestPurchaseReadyRuleFunnel(t *testing.T) {
	rule := PurchaseReadyRule{}
	if rule.Weight() != 1.5 {
		t.Fatalf("purchase ready weight: got %v", rule.Weight())
	}

	if got := rule.Evaluate(sessionWith(t)); got != 0.1 {
		t.Fatalf("empty session: got %v", got)
	}
	if got := rule.Evaluate(sessionWith(t, [2]any{"add_to_cart", time.Duration(0)})); got != 0.7 {
		t.Fatalf("add to cart: got %v", got)
	}
	if got := rule.Evaluate(sessionWith(t, [2]any{"checkout_started", time.Duration(0)})); got != 0.9 {
		t.Fatalf("checkout: got %v", got)
	}
}

func TestAbandonmentRiskRuleSignals(t *testing.T) {
	rule := AbandonmentRiskRule{}

	if got := rule.Evaluate(sessionWith(t, [2]any{"remove_from_cart", time.Duration(0)})); got != 0.8 {
		t.Fatalf("cart removal: got %v", got)
	}

	cartThenGap := sessionWith(t,
		[2]any{"add_to_cart", time.Duration(0)},
		[2]any{"page_view", 400 * time.Second},
	)
	if got := rule.Evaluate(cartThenGap); got != 0.7 {
		t.Fatalf("cart plus long gap: got %v", got)
	}

	gapOnly := sessionWith(t,
		[2]any{"page_view", time.Duration(0)},
		[2]any{"page_view", 400 * time.Second},
	)
	if got := rule.Evaluate(gapOnly); got != 0.5 {
		t.Fatalf("gap only: got %v", got)
	}

	if got := rule.Evaluate(sessionWith(t)); got != 0.2 {
		t.Fatalf("quiet session: got %v", got)
	}
}

func TestDefaultsContainsAllRules(t *testing.T) {
	defaults := Defaults()
	if len(defaults) != 3 {
		t.Fatalf("expected 3 default rules, got %d", len(defaults))
	}
	names := map[string]bool{}
	for _, rule := range defaults {
		names[rule.Name()] = true
	}
	for _, name := range []string{"browsing_rule", "purchase_ready_rule", "abandonment_risk_rule"} {
		if !names[name] {
			t.Fatalf("missing default rule %s", name)
		}
	}
}
