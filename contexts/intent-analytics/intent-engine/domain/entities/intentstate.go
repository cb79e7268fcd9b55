package entities

import (
	"time"

	domainerrors "istari/contexts/intent-analytics/intent-engine/domain/errors"
)

// StateType names a purchase-intent hypothesis. The set is closed: scoring
// iterates AllStateTypes in declaration order and the tie-break between
// equal confidences follows that order, so new types must be appended, never
// inserted.
type StateType string

const (
	StateBrowsing          StateType = "browsing"
	StateEvaluatingOptions StateType = "evaluating_options"
	StatePriceSensitive    StateType = "price_sensitive"
	StateTrustSeeking      StateType = "trust_seeking"
	StatePurchaseReady     StateType = "purchase_ready"
	StateAbandonmentRisk   StateType = "abandonment_risk"
	StateExploring         StateType = "exploring"
	StateComparing         StateType = "comparing"
	StateHesitating        StateType = "hesitating"
	StateReadyToAct        StateType = "ready_to_act"
)

// AllStateTypes lists every candidate state type in declaration order.
func AllStateTypes() []StateType {
	return []StateType{
		StateBrowsing,
		StateEvaluatingOptions,
		StatePriceSensitive,
		StateTrustSeeking,
		StatePurchaseReady,
		StateAbandonmentRisk,
		StateExploring,
		StateComparing,
		StateHesitating,
		StateReadyToAct,
	}
}

// IntentState is one inferred hypothesis at a moment in time. States are
// immutable: a changed inference produces a new instance, never an edit.
type IntentState struct {
	StateType    StateType
	Timestamp    time.Time
	Confidence   float64
	Attributions map[string]float64
	Evidence     []string
	Metadata     map[string]any
	Properties   map[string]any
}

func NewIntentState(
	stateType StateType,
	timestamp time.Time,
	confidence float64,
	attributions map[string]float64,
	evidence []string,
) (IntentState, error) {
	if confidence < 0.0 || confidence > 1.0 {
		return IntentState{}, domainerrors.ErrConfidenceOutOfRange
	}
	if attributions == nil {
		attributions = map[string]float64{}
	}
	return IntentState{
		StateType:    stateType,
		Timestamp:    timestamp,
		Confidence:   confidence,
		Attributions: attributions,
		Evidence:     evidence,
		Metadata:     map[string]any{},
		Properties:   map[string]any{},
	}, nil
}

// IsHighConfidence reports whether confidence meets the given threshold.
func (s IntentState) IsHighConfidence(threshold float64) bool {
	return s.Confidence >= threshold
}
