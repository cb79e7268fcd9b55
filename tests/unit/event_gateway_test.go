package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	eventgateway "istari/contexts/intent-analytics/event-gateway"
	gatewayerrors "istari/contexts/intent-analytics/event-gateway/domain/errors"
	gatewayhttp "istari/contexts/intent-analytics/event-gateway/transport/http"
	intentengine "istari/contexts/intent-analytics/intent-engine"
	intenthttp "istari/contexts/intent-analytics/intent-engine/transport/http"
)

func TestGatewayNormalizesSegmentBatch(t *testing.T) {
	module := eventgateway.NewModule(nil)

	resp, events, err := module.Handler.NormalizeHandler(gatewayhttp.ImportEventsRequest{
		Schema: "segment",
		Events: []map[string]any{
			{
				"event":     "page_view",
				"userId":    "user-1",
				"sessionId": "session-1",
				"timestamp": "2026-03-01T10:00:00Z",
				"properties": map[string]any{
					"page": "home",
				},
			},
			{
				"event":     "add_to_cart",
				"userId":    "user-1",
				"sessionId": "session-1",
				"timestamp": "2026-03-01T10:00:10Z",
			},
		},
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(resp.Normalized) != 2 || len(events) != 2 {
		t.Fatalf("expected 2 normalized events, got %d/%d", len(resp.Normalized), len(events))
	}
	if resp.Normalized[0].Source != "segment" || resp.Normalized[0].EventType != "page_view" {
		t.Fatalf("unexpected normalized record: %+v", resp.Normalized[0])
	}
	if events[1].SessionID != "session-1" {
		t.Fatalf("session id lost: %+v", events[1])
	}
}

func TestGatewayUnknownSchema(t *testing.T) {
	module := eventgateway.NewModule(nil)
	_, _, err := module.Handler.NormalizeHandler(gatewayhttp.ImportEventsRequest{
		Schema: "doubleclick",
		Events: []map[string]any{{"event": "x"}},
	})
	if !errors.Is(err, gatewayerrors.ErrUnknownSchema) {
		t.Fatalf("expected unknown schema error, got %v", err)
	}
}

func TestGatewayReportsIssuesWithoutAbortingBatch(t *testing.T) {
	module := eventgateway.NewModule(nil)
	resp, events, err := module.Handler.NormalizeHandler(gatewayhttp.ImportEventsRequest{
		Schema: "generic",
		Events: []map[string]any{
			{"event": "page_view", "timestamp": "2026-03-01T10:00:00Z", "user_id": "user-1", "session_id": "s1"},
			{"event": "page_view", "timestamp": "2026-03-01T10:00:05Z"},
		},
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 good event, got %d", len(events))
	}
	if len(resp.Issues) != 1 || resp.Issues[0].Index != 1 {
		t.Fatalf("expected one issue at index 1, got %v", resp.Issues)
	}
}

// Normalized vendor events feed straight into the intent engine, which is the
// flow the import route composes.
func TestGatewayFeedsIntentEngine(t *testing.T) {
	gateway := eventgateway.NewModule(nil)
	intent := intentengine.NewInMemoryModule(nil, nil)

	_, events, err := gateway.Handler.NormalizeHandler(gatewayhttp.ImportEventsRequest{
		Schema: "amplitude",
		Events: []map[string]any{
			{
				"event_type": "page_view",
				"user_id":    "user-9",
				"session_id": "amp-1",
				"time":       float64(1772359200),
				"event_properties": map[string]any{
					"page": "home",
				},
			},
			{
				"event_type": "checkout_started",
				"user_id":    "user-9",
				"session_id": "amp-1",
				"time":       float64(1772359260),
			},
		},
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	req := intenthttp.TrackEventsRequest{}
	for _, event := range events {
		req.Events = append(req.Events, intenthttp.EventPayload{
			EventType:  event.EventType,
			Timestamp:  event.Timestamp.UTC().Format(time.RFC3339),
			UserID:     event.UserID,
			SessionID:  event.SessionID,
			Properties: event.Properties,
			Source:     event.Source,
		})
	}

	tracked, err := intent.Handler.TrackEventsHandler(context.Background(), "amp-1", req)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if tracked.CurrentState == nil || tracked.CurrentState.StateType != "purchase_ready" {
		t.Fatalf("expected purchase_ready from imported funnel, got %+v", tracked.CurrentState)
	}
}
