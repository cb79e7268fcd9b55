package entities

import (
	"strconv"
	"strings"
	"time"

	domainerrors "istari/contexts/intent-analytics/intent-engine/domain/errors"
)

// Event is the canonical behavioral event record. All vendor payloads are
// normalized into this shape before the engine sees them. Events are
// immutable once constructed.
type Event struct {
	EventType  string
	Timestamp  time.Time
	UserID     string
	SessionID  string
	Properties map[string]any
	Source     string
	RawData    map[string]any
}

func NewEvent(
	eventType string,
	timestamp time.Time,
	userID string,
	sessionID string,
	properties map[string]any,
) (Event, error) {
	if strings.TrimSpace(eventType) == "" {
		return Event{}, domainerrors.ErrEventTypeRequired
	}
	if strings.TrimSpace(userID) == "" {
		return Event{}, domainerrors.ErrUserIDRequired
	}
	if strings.TrimSpace(sessionID) == "" {
		return Event{}, domainerrors.ErrSessionIDRequired
	}
	if properties == nil {
		properties = map[string]any{}
	}
	return Event{
		EventType:  eventType,
		Timestamp:  timestamp,
		UserID:     userID,
		SessionID:  sessionID,
		Properties: properties,
	}, nil
}

// Property returns a named property value, or nil when absent.
func (e Event) Property(key string) any {
	if e.Properties == nil {
		return nil
	}
	return e.Properties[key]
}

// StringProperty returns a property coerced to string, with a fallback when
// the property is absent or not a string.
func (e Event) StringProperty(key string, fallback string) string {
	value, ok := e.Properties[key]
	if !ok {
		return fallback
	}
	s, ok := value.(string)
	if !ok {
		return fallback
	}
	return s
}

// FloatProperty returns a numeric property as float64. JSON decoding yields
// float64 for numbers, but int and string forms appear in hand-built events.
func (e Event) FloatProperty(key string) (float64, bool) {
	value, ok := e.Properties[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
