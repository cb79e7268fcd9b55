package schemas

import (
	"fmt"

	"istari/contexts/intent-analytics/event-gateway/ports"
)

// Segment maps the segment.com track payload: {type, event, userId,
// anonymousId, timestamp, properties, context}.
type Segment struct{}

func (Segment) Name() string { return "segment" }

func (Segment) Normalize(raw map[string]any) (ports.CanonicalEvent, error) {
	eventType := stringField(raw, "event")
	if eventType == "" {
		eventType = stringField(raw, "type")
	}
	if eventType == "" {
		eventType = "unknown"
	}

	timestamp, err := extractTimestamp(raw)
	if err != nil {
		return ports.CanonicalEvent{}, err
	}
	userID, err := extractUserID(raw)
	if err != nil {
		return ports.CanonicalEvent{}, err
	}

	// Segment rarely sessionizes; anonymousId plus the event time stands in
	// for a session when no explicit id exists.
	sessionID := stringField(raw, "sessionId")
	if sessionID == "" {
		sessionID = stringField(raw, "session_id")
	}
	if sessionID == "" {
		if anonymous := stringField(raw, "anonymousId"); anonymous != "" {
			sessionID = fmt.Sprintf("%s_%d", anonymous, timestamp.Unix())
		}
	}
	if sessionID == "" {
		sessionID, err = extractSessionID(raw)
		if err != nil {
			return ports.CanonicalEvent{}, err
		}
	}

	properties := map[string]any{}
	if nested, ok := raw["properties"].(map[string]any); ok {
		for k, v := range nested {
			properties[k] = v
		}
	}
	if context, ok := raw["context"].(map[string]any); ok {
		for k, v := range context {
			properties[k] = v
		}
	}

	return ports.CanonicalEvent{
		EventType:  eventType,
		Timestamp:  timestamp,
		UserID:     userID,
		SessionID:  sessionID,
		Properties: properties,
		Source:     "segment",
		RawData:    raw,
	}, nil
}

func stringField(raw map[string]any, key string) string {
	value, ok := raw[key]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}
