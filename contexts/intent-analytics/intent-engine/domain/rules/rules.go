// Package rules defines the weighted heuristics that score candidate intent
// states. Rules combine by weighted sum, so the order they are registered in
// never changes a score.
package rules

import (
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

// Rule scores one candidate state from session behavior. Evaluate must stay
// within [0,1]; Matches gates which candidate types the rule contributes to.
type Rule interface {
	Name() string
	Weight() float64
	Matches(stateType entities.StateType, session *entities.Session) bool
	Evaluate(session *entities.Session) float64
}

// BrowsingRule scores casual browsing from page view volume.
type BrowsingRule struct{}

func (BrowsingRule) Name() string    { return "browsing_rule" }
func (BrowsingRule) Weight() float64 { return 1.0 }

func (BrowsingRule) Matches(stateType entities.StateType, _ *entities.Session) bool {
	return stateType == entities.StateBrowsing
}

func (BrowsingRule) Evaluate(session *entities.Session) float64 {
	pageViews := len(session.Timeline().EventsByType("page_view"))
	switch {
	case pageViews >= 3:
		return 0.8
	case pageViews >= 1:
		return 0.5
	default:
		return 0.2
	}
}

// PurchaseReadyRule scores purchase readiness from checkout funnel progress.
type PurchaseReadyRule struct{}

func (PurchaseReadyRule) Name() string    { return "purchase_ready_rule" }
func (PurchaseReadyRule) Weight() float64 { return 1.5 }

func (PurchaseReadyRule) Matches(stateType entities.StateType, _ *entities.Session) bool {
	return stateType == entities.StatePurchaseReady
}

func (PurchaseReadyRule) Evaluate(session *entities.Session) float64 {
	timeline := session.Timeline()
	hasCheckout := len(timeline.EventsByType("checkout_started")) > 0 ||
		len(timeline.EventsByType("checkout_completed")) > 0
	hasAddToCart := len(timeline.EventsByType("add_to_cart")) > 0

	switch {
	case hasCheckout:
		return 0.9
	case hasAddToCart:
		return 0.7
	default:
		return 0.1
	}
}

// AbandonmentRiskRule scores abandonment risk from cart removals and long
// idle gaps.
type AbandonmentRiskRule struct{}

func (AbandonmentRiskRule) Name() string    { return "abandonment_risk_rule" }
func (AbandonmentRiskRule) Weight() float64 { return 1.2 }

func (AbandonmentRiskRule) Matches(stateType entities.StateType, _ *entities.Session) bool {
	return stateType == entities.StateAbandonmentRisk
}

func (AbandonmentRiskRule) Evaluate(session *entities.Session) float64 {
	timeline := session.Timeline()
	hasAddToCart := len(timeline.EventsByType("add_to_cart")) > 0
	hasRemoveFromCart := len(timeline.EventsByType("remove_from_cart")) > 0

	hasLongGap := false
	for _, gap := range timeline.TimeGaps() {
		if gap.Seconds() > 300 {
			hasLongGap = true
			break
		}
	}

	switch {
	case hasRemoveFromCart:
		return 0.8
	case hasAddToCart && hasLongGap:
		return 0.7
	case hasLongGap:
		return 0.5
	default:
		return 0.2
	}
}

// Defaults returns the built-in rule set.
func Defaults() []Rule {
	return []Rule{
		BrowsingRule{},
		PurchaseReadyRule{},
		AbandonmentRiskRule{},
	}
}
