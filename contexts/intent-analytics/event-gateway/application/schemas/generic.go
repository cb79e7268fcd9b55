package schemas

import (
	"istari/contexts/intent-analytics/event-gateway/ports"
)

// Generic handles payloads that already carry canonical-ish field names.
// It is the fallback when no vendor schema matches.
type Generic struct{}

func (Generic) Name() string { return "generic" }

func (Generic) Normalize(raw map[string]any) (ports.CanonicalEvent, error) {
	eventType, err := extractEventType(raw)
	if err != nil {
		return ports.CanonicalEvent{}, err
	}
	timestamp, err := extractTimestamp(raw)
	if err != nil {
		return ports.CanonicalEvent{}, err
	}
	userID, err := extractUserID(raw)
	if err != nil {
		return ports.CanonicalEvent{}, err
	}
	sessionID, err := extractSessionID(raw)
	if err != nil {
		return ports.CanonicalEvent{}, err
	}

	return ports.CanonicalEvent{
		EventType:  eventType,
		Timestamp:  timestamp,
		UserID:     userID,
		SessionID:  sessionID,
		Properties: extractProperties(raw),
		Source:     "generic",
		RawData:    raw,
	}, nil
}
