package schemas

import (
	"istari/contexts/intent-analytics/event-gateway/ports"
)

// Mixpanel maps the export payload: {event, properties: {time, distinct_id,
// $session_id, ...}}. Everything interesting lives inside properties.
type Mixpanel struct{}

func (Mixpanel) Name() string { return "mixpanel" }

func (Mixpanel) Normalize(raw map[string]any) (ports.CanonicalEvent, error) {
	eventType := stringField(raw, "event")
	if eventType == "" {
		eventType = stringField(raw, "event_type")
	}
	if eventType == "" {
		eventType = "unknown"
	}

	properties := map[string]any{}
	if nested, ok := raw["properties"].(map[string]any); ok {
		for k, v := range nested {
			properties[k] = v
		}
	}

	// Timestamp and ids hide inside properties, so probe the merged view.
	merged := make(map[string]any, len(raw)+len(properties))
	for k, v := range raw {
		merged[k] = v
	}
	for k, v := range properties {
		merged[k] = v
	}

	timestamp, err := extractTimestamp(merged)
	if err != nil {
		return ports.CanonicalEvent{}, err
	}

	userID := stringField(properties, "distinct_id")
	if userID == "" {
		userID = stringField(properties, "user_id")
	}
	if userID == "" {
		userID, err = extractUserID(raw)
		if err != nil {
			return ports.CanonicalEvent{}, err
		}
	}

	sessionID := stringField(properties, "session_id")
	if sessionID == "" {
		sessionID = stringField(properties, "$session_id")
	}
	if sessionID == "" {
		sessionID, err = extractSessionID(merged)
		if err != nil {
			return ports.CanonicalEvent{}, err
		}
	}

	return ports.CanonicalEvent{
		EventType:  eventType,
		Timestamp:  timestamp,
		UserID:     userID,
		SessionID:  sessionID,
		Properties: properties,
		Source:     "mixpanel",
		RawData:    raw,
	}, nil
}
