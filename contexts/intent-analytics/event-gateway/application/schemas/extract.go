// Package schemas implements the per-platform payload normalizers.
package schemas

import (
	"fmt"
	"strings"
	"time"

	domainerrors "istari/contexts/intent-analytics/event-gateway/domain/errors"
)

var timestampFields = []string{"timestamp", "time", "created_at", "event_time", "ts"}

var standardFields = map[string]struct{}{
	"timestamp": {}, "time": {}, "created_at": {}, "event_time": {}, "ts": {},
	"user_id": {}, "userId": {}, "user": {}, "distinct_id": {},
	"session_id": {}, "sessionId": {}, "session": {},
	"event": {}, "event_type": {}, "eventType": {}, "name": {}, "action": {},
	"properties": {}, "props": {}, "attributes": {}, "data": {}, "context": {},
}

// extractTimestamp tries the common timestamp fields in order. Numeric
// values are unix seconds, with anything above 1e12 treated as milliseconds
// since platforms like amplitude report millis.
func extractTimestamp(raw map[string]any) (time.Time, error) {
	for _, field := range timestampFields {
		value, ok := raw[field]
		if !ok {
			continue
		}
		if ts, ok := parseTimestamp(value); ok {
			return ts, nil
		}
	}
	return time.Time{}, domainerrors.ErrTimestampMissing
}

func parseTimestamp(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case float64:
		return fromUnix(v), true
	case int:
		return fromUnix(float64(v)), true
	case int64:
		return fromUnix(float64(v)), true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
			if ts, err := time.Parse(layout, strings.Replace(v, "Z", "+00:00", 1)); err == nil {
				return ts, true
			}
			if ts, err := time.Parse(layout, v); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}

func fromUnix(value float64) time.Time {
	if value > 1e12 {
		return time.UnixMilli(int64(value)).UTC()
	}
	return time.Unix(int64(value), 0).UTC()
}

func extractUserID(raw map[string]any) (string, error) {
	for _, field := range []string{"user_id", "userId", "user", "distinct_id"} {
		if value, ok := raw[field]; ok && value != nil {
			if s := fmt.Sprintf("%v", value); s != "" {
				return s, nil
			}
		}
	}
	return "", domainerrors.ErrUserIDMissing
}

// extractSessionID falls back to a synthetic user+timestamp id when the
// payload carries no session field, matching how web analytics exports
// often omit sessionization.
func extractSessionID(raw map[string]any) (string, error) {
	for _, field := range []string{"session_id", "sessionId", "session"} {
		if value, ok := raw[field]; ok && value != nil {
			if s := fmt.Sprintf("%v", value); s != "" {
				return s, nil
			}
		}
	}
	userID, err := extractUserID(raw)
	if err != nil {
		return "", err
	}
	ts, err := extractTimestamp(raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%d", userID, ts.Unix()), nil
}

func extractEventType(raw map[string]any) (string, error) {
	for _, field := range []string{"event", "event_type", "eventType", "name", "action"} {
		if value, ok := raw[field]; ok && value != nil {
			if s := fmt.Sprintf("%v", value); s != "" {
				return s, nil
			}
		}
	}
	return "", domainerrors.ErrEventTypeMissing
}

// extractProperties prefers a nested property container and otherwise
// gathers every non-standard top-level field.
func extractProperties(raw map[string]any) map[string]any {
	for _, field := range []string{"properties", "props", "attributes", "data", "context"} {
		if nested, ok := raw[field].(map[string]any); ok {
			out := make(map[string]any, len(nested))
			for k, v := range nested {
				out[k] = v
			}
			return out
		}
	}

	out := map[string]any{}
	for key, value := range raw {
		if _, standard := standardFields[key]; !standard {
			out[key] = value
		}
	}
	return out
}
