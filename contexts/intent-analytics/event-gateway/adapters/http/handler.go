package httpadapter

import (
	"log/slog"
	"time"

	"istari/contexts/intent-analytics/event-gateway/application"
	"istari/contexts/intent-analytics/event-gateway/ports"
	httptransport "istari/contexts/intent-analytics/event-gateway/transport/http"
)

type Handler struct {
	Normalizer *application.NormalizeService
	Logger     *slog.Logger
}

// @Summary Normalize vendor events
// @Description Maps a batch of vendor payloads onto the canonical event record.
// @Tags gateway
// @Accept json
// @Produce json
// @Param request body httptransport.ImportEventsRequest true "Raw vendor batch"
// @Success 200 {object} httptransport.ImportEventsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /v1/gateway/normalize [post]
func (h Handler) NormalizeHandler(req httptransport.ImportEventsRequest) (httptransport.ImportEventsResponse, []ports.CanonicalEvent, error) {
	events, issues, err := h.Normalizer.NormalizeBatch(req.Schema, req.Events)
	if err != nil {
		return httptransport.ImportEventsResponse{}, nil, err
	}

	resp := httptransport.ImportEventsResponse{Schema: req.Schema}
	for _, event := range events {
		resp.Normalized = append(resp.Normalized, httptransport.NormalizedEvent{
			EventType:  event.EventType,
			Timestamp:  event.Timestamp.UTC().Format(time.RFC3339),
			UserID:     event.UserID,
			SessionID:  event.SessionID,
			Properties: event.Properties,
			Source:     event.Source,
		})
	}
	for _, issue := range issues {
		resp.Issues = append(resp.Issues, httptransport.ImportIssue{
			Index: issue.Index,
			Error: issue.Err.Error(),
		})
	}
	return resp, events, nil
}
