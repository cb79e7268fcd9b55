package schemas

import (
	"istari/contexts/intent-analytics/event-gateway/ports"
)

// Amplitude maps the export payload: {event_type, user_id, time (millis),
// session_id, event_properties, ...}. Leftover top-level fields fold into
// properties so nothing is silently lost.
type Amplitude struct{}

func (Amplitude) Name() string { return "amplitude" }

var amplitudeReserved = map[string]struct{}{
	"event_type": {}, "event": {}, "user_id": {}, "user": {},
	"time": {}, "timestamp": {}, "session_id": {}, "session": {},
	"event_properties": {},
}

func (Amplitude) Normalize(raw map[string]any) (ports.CanonicalEvent, error) {
	eventType := stringField(raw, "event_type")
	if eventType == "" {
		eventType = stringField(raw, "event")
	}
	if eventType == "" {
		eventType = "unknown"
	}

	userID := stringField(raw, "user_id")
	if userID == "" {
		userID = stringField(raw, "user")
	}
	if userID == "" {
		var err error
		userID, err = extractUserID(raw)
		if err != nil {
			return ports.CanonicalEvent{}, err
		}
	}

	timestamp, err := extractTimestamp(raw)
	if err != nil {
		return ports.CanonicalEvent{}, err
	}

	sessionID := stringField(raw, "session_id")
	if sessionID == "" {
		sessionID = stringField(raw, "session")
	}
	if sessionID == "" {
		sessionID, err = extractSessionID(raw)
		if err != nil {
			return ports.CanonicalEvent{}, err
		}
	}

	properties := map[string]any{}
	if nested, ok := raw["event_properties"].(map[string]any); ok {
		for k, v := range nested {
			properties[k] = v
		}
	}
	for key, value := range raw {
		if _, reserved := amplitudeReserved[key]; !reserved {
			properties[key] = value
		}
	}

	return ports.CanonicalEvent{
		EventType:  eventType,
		Timestamp:  timestamp,
		UserID:     userID,
		SessionID:  sessionID,
		Properties: properties,
		Source:     "amplitude",
		RawData:    raw,
	}, nil
}
