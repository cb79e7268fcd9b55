package inference

import (
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

// significantEventTypes are the only event types that trigger re-inference
// while replaying a session. Everything else still contributes to signals
// through the prefix, it just never opens a new inference step.
var significantEventTypes = map[string]struct{}{
	"page_view":          {},
	"add_to_cart":        {},
	"remove_from_cart":   {},
	"checkout_started":   {},
	"checkout_completed": {},
	"purchase":           {},
}

// StateMachine reconstructs the intent trajectory of a completed session by
// re-running inference on growing event prefixes and gating each proposed
// state change against the optional adjacency rules.
//
// Each step re-scans its prefix from scratch, so the cost is quadratic in
// the significant-event count. Sessions are small enough that this has not
// mattered; an incremental rescoring would be the fix if it ever does.
type StateMachine struct {
	engine          *Engine
	transitionRules map[entities.StateType][]entities.StateType
}

func NewStateMachine(engine *Engine) *StateMachine {
	return &StateMachine{
		engine:          engine,
		transitionRules: map[entities.StateType][]entities.StateType{},
	}
}

// AddTransitionRule restricts which states may follow from. States without
// an entry stay unrestricted.
func (m *StateMachine) AddTransitionRule(from entities.StateType, to []entities.StateType) {
	m.transitionRules[from] = append([]entities.StateType(nil), to...)
}

// InferTrajectory returns the accepted intent states in chronological order.
// A proposed change to a disallowed state is absorbed silently: the engine
// still computes a refreshed state under the held label, but it is discarded
// and the held state stands.
func (m *StateMachine) InferTrajectory(session *entities.Session) []entities.IntentState {
	events := session.Timeline().Events()
	if len(events) == 0 {
		return nil
	}

	var trajectory []entities.IntentState
	var current *entities.IntentState

	for _, event := range events {
		if _, significant := significantEventTypes[event.EventType]; !significant {
			continue
		}

		prefix := entities.NewSession(session.SessionID, session.UserID, session.StartedAt)
		for _, e := range events {
			if !e.Timestamp.After(event.Timestamp) {
				// Prefix events come from the owning session, so the id
				// check cannot fail here.
				_ = prefix.AppendEvent(e)
			}
		}

		newState := m.engine.Infer(prefix)
		if current != nil && newState.StateType == current.StateType {
			continue
		}

		if current != nil && !m.isValidTransition(current.StateType, newState.StateType) {
			m.absorb(current.StateType, newState)
			continue
		}

		trajectory = append(trajectory, newState)
		held := newState
		current = &held
	}
	return trajectory
}

// absorb handles a rejected transition: the proposed state is recomputed
// under the held label and dropped, leaving the held state untouched.
func (m *StateMachine) absorb(held entities.StateType, proposed entities.IntentState) {
	_, _ = entities.NewIntentState(
		held,
		proposed.Timestamp,
		proposed.Confidence,
		proposed.Attributions,
		proposed.Evidence,
	)
}

func (m *StateMachine) isValidTransition(from, to entities.StateType) bool {
	if from == to {
		return true
	}
	allowed, restricted := m.transitionRules[from]
	if !restricted {
		return true
	}
	for _, candidate := range allowed {
		if candidate == to {
			return true
		}
	}
	return false
}

// DeriveTransitions builds one transition per consecutive trajectory pair.
// Transition dynamics are not inferred from timing: every derived transition
// is "normal" with confidence 1.
func (m *StateMachine) DeriveTransitions(states []entities.IntentState) []entities.Transition {
	if len(states) < 2 {
		return nil
	}
	transitions := make([]entities.Transition, 0, len(states)-1)
	for i := 1; i < len(states); i++ {
		transition, err := entities.NewTransition(states[i-1], states[i], states[i].Timestamp)
		if err != nil {
			// Trajectory states are appended in chronological order, so
			// ordering violations cannot occur for machine-built input.
			continue
		}
		transitions = append(transitions, transition)
	}
	return transitions
}
