package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StartSessionRequest struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	StartedAt string `json:"started_at,omitempty"`
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	StartedAt string `json:"started_at"`
}

type EventPayload struct {
	EventType  string         `json:"event_type"`
	Timestamp  string         `json:"timestamp"`
	UserID     string         `json:"user_id"`
	SessionID  string         `json:"session_id,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Source     string         `json:"source,omitempty"`
}

type TrackEventsRequest struct {
	Events []EventPayload `json:"events"`
}

type IntentStateResponse struct {
	StateType    string             `json:"state_type"`
	Timestamp    string             `json:"timestamp"`
	Confidence   float64            `json:"confidence"`
	Attributions map[string]float64 `json:"attributions,omitempty"`
	Evidence     []string           `json:"evidence,omitempty"`
}

type TransitionResponse struct {
	FromState       string  `json:"from_state"`
	ToState         string  `json:"to_state"`
	Timestamp       string  `json:"timestamp"`
	TransitionType  string  `json:"transition_type"`
	Confidence      float64 `json:"confidence"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type TrackEventsResponse struct {
	SessionID      string               `json:"session_id"`
	EventsAccepted int                  `json:"events_accepted"`
	NewStates      int                  `json:"new_states"`
	NewTransitions int                  `json:"new_transitions"`
	CurrentState   *IntentStateResponse `json:"current_state,omitempty"`
}

type TrajectoryResponse struct {
	SessionID   string                `json:"session_id"`
	States      []IntentStateResponse `json:"states"`
	Transitions []TransitionResponse  `json:"transitions"`
}

type SignalSummaryResponse struct {
	Dwell      map[string]any `json:"dwell"`
	Navigation map[string]any `json:"navigation"`
	Comparison map[string]any `json:"comparison"`
	Friction   map[string]any `json:"friction"`
	Price      map[string]any `json:"price"`
}

type TrajectoryEntryResponse struct {
	State             IntentStateResponse `json:"state"`
	RefinedConfidence float64             `json:"refined_confidence"`
	SignalAttribution map[string]float64  `json:"signal_attribution,omitempty"`
}

type SessionSummaryResponse struct {
	SessionID       string                    `json:"session_id"`
	UserID          string                    `json:"user_id"`
	DurationSeconds float64                   `json:"duration_seconds"`
	EventCount      int                       `json:"event_count"`
	CurrentState    *IntentStateResponse      `json:"current_state,omitempty"`
	Trajectory      []TrajectoryEntryResponse `json:"trajectory"`
	TransitionCount int                       `json:"transition_count"`
	Signals         SignalSummaryResponse     `json:"signals"`
	Insights        []string                  `json:"insights,omitempty"`
	Narrative       string                    `json:"narrative,omitempty"`
}
