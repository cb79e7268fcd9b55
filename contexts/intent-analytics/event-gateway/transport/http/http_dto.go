package httptransport

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ImportEventsRequest struct {
	Schema string           `json:"schema"`
	Events []map[string]any `json:"events"`
}

type ImportIssue struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type NormalizedEvent struct {
	EventType  string         `json:"event_type"`
	Timestamp  string         `json:"timestamp"`
	UserID     string         `json:"user_id"`
	SessionID  string         `json:"session_id"`
	Properties map[string]any `json:"properties,omitempty"`
	Source     string         `json:"source"`
}

type ImportEventsResponse struct {
	Schema     string            `json:"schema"`
	Normalized []NormalizedEvent `json:"normalized"`
	Issues     []ImportIssue     `json:"issues,omitempty"`
}
