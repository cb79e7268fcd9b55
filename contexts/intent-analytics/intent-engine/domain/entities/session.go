package entities

import (
	"sort"
	"time"

	domainerrors "istari/contexts/intent-analytics/intent-engine/domain/errors"
)

// Session owns one timeline plus the inferred trajectory and its transitions.
// Mutation happens only through the append methods, which keep both slices
// sorted by timestamp. A session must not be evaluated concurrently by two
// callers; different sessions are independent.
type Session struct {
	SessionID string
	UserID    string
	StartedAt time.Time
	Metadata  map[string]any

	timeline    *Timeline
	states      []IntentState
	transitions []Transition
}

func NewSession(sessionID string, userID string, startedAt time.Time) *Session {
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}
	return &Session{
		SessionID: sessionID,
		UserID:    userID,
		StartedAt: startedAt,
		Metadata:  map[string]any{},
		timeline:  NewTimeline(),
	}
}

// AppendEvent adds an event after checking it belongs to this session.
func (s *Session) AppendEvent(event Event) error {
	if event.SessionID != s.SessionID || event.UserID != s.UserID {
		return domainerrors.ErrSessionMismatch
	}
	s.timeline.AddEvent(event)
	return nil
}

func (s *Session) AppendEvents(events []Event) error {
	for _, event := range events {
		if err := s.AppendEvent(event); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) AppendIntentState(state IntentState) {
	s.states = append(s.states, state)
	sort.SliceStable(s.states, func(i, j int) bool {
		return s.states[i].Timestamp.Before(s.states[j].Timestamp)
	})
}

func (s *Session) AppendTransition(transition Transition) {
	s.transitions = append(s.transitions, transition)
	sort.SliceStable(s.transitions, func(i, j int) bool {
		return s.transitions[i].Timestamp.Before(s.transitions[j].Timestamp)
	})
}

// ReplaceTrajectory swaps the full trajectory and its transitions, used when
// late events invalidate the previously accepted states.
func (s *Session) ReplaceTrajectory(states []IntentState, transitions []Transition) {
	s.states = append([]IntentState(nil), states...)
	s.transitions = append([]Transition(nil), transitions...)
}

func (s *Session) Timeline() *Timeline {
	return s.timeline
}

// CurrentIntentState returns the most recent state and false when the
// trajectory is empty.
func (s *Session) CurrentIntentState() (IntentState, bool) {
	if len(s.states) == 0 {
		return IntentState{}, false
	}
	return s.states[len(s.states)-1], true
}

// IntentTrajectory returns the chronological trajectory as a copy.
func (s *Session) IntentTrajectory() []IntentState {
	out := make([]IntentState, len(s.states))
	copy(out, s.states)
	return out
}

func (s *Session) Transitions() []Transition {
	out := make([]Transition, len(s.transitions))
	copy(out, s.transitions)
	return out
}

// Duration measures from session start to the last event, zero when the
// timeline is empty.
func (s *Session) Duration() time.Duration {
	events := s.timeline.Events()
	if len(events) == 0 {
		return 0
	}
	return events[len(events)-1].Timestamp.Sub(s.StartedAt)
}

func (s *Session) EventCount() int {
	return s.timeline.EventCount()
}
