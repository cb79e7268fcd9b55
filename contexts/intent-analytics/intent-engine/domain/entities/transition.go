package entities

import (
	"time"

	domainerrors "istari/contexts/intent-analytics/intent-engine/domain/errors"
)

type TransitionType string

const (
	TransitionNormal  TransitionType = "normal"
	TransitionAbrupt  TransitionType = "abrupt"
	TransitionGradual TransitionType = "gradual"
)

// Transition captures the change between two adjacent trajectory states.
type Transition struct {
	FromState      IntentState
	ToState        IntentState
	Timestamp      time.Time
	TransitionType TransitionType
	Confidence     float64
}

func NewTransition(from IntentState, to IntentState, timestamp time.Time) (Transition, error) {
	if from.Timestamp.After(to.Timestamp) {
		return Transition{}, domainerrors.ErrTransitionOrder
	}
	return Transition{
		FromState:      from,
		ToState:        to,
		Timestamp:      timestamp,
		TransitionType: TransitionNormal,
		Confidence:     1.0,
	}, nil
}

// Duration is the time between the two states in seconds.
func (t Transition) Duration() float64 {
	return t.ToState.Timestamp.Sub(t.FromState.Timestamp).Seconds()
}

// IsStateChange reports whether the state type actually changed.
func (t Transition) IsStateChange() bool {
	return t.FromState.StateType != t.ToState.StateType
}
