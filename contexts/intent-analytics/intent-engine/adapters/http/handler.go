package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"istari/contexts/intent-analytics/intent-engine/application/commands"
	"istari/contexts/intent-analytics/intent-engine/application/queries"
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	domainerrors "istari/contexts/intent-analytics/intent-engine/domain/errors"
	httptransport "istari/contexts/intent-analytics/intent-engine/transport/http"
)

type Handler struct {
	Tracker    commands.TrackUseCase
	Summaries  queries.SummaryUseCase
	Narratives queries.NarrativeGenerator
	Logger     *slog.Logger
}

// @Summary Start an intent session
// @Description Creates an empty session; tracking also auto-creates sessions from the first event.
// @Tags intent
// @Accept json
// @Produce json
// @Param request body httptransport.StartSessionRequest true "Session identity"
// @Success 200 {object} httptransport.StartSessionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /v1/intent/sessions [post]
func (h Handler) StartSessionHandler(
	ctx context.Context,
	req httptransport.StartSessionRequest,
) (httptransport.StartSessionResponse, error) {
	var startedAt time.Time
	if req.StartedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartedAt)
		if err != nil {
			return httptransport.StartSessionResponse{},
				fmt.Errorf("%w: bad started_at %q", domainerrors.ErrInvalidRequest, req.StartedAt)
		}
		startedAt = parsed
	}

	session, err := h.Tracker.StartSession(ctx, commands.StartSessionCommand{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		StartedAt: startedAt,
	})
	if err != nil {
		return httptransport.StartSessionResponse{}, err
	}
	return httptransport.StartSessionResponse{
		SessionID: session.SessionID,
		UserID:    session.UserID,
		StartedAt: session.StartedAt.UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Track session events
// @Description Appends canonical events to a session and advances its intent trajectory.
// @Tags intent
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body httptransport.TrackEventsRequest true "Event batch"
// @Success 200 {object} httptransport.TrackEventsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /v1/intent/sessions/{session_id}/events [post]
func (h Handler) TrackEventsHandler(
	ctx context.Context,
	sessionID string,
	req httptransport.TrackEventsRequest,
) (httptransport.TrackEventsResponse, error) {
	inputs := make([]commands.EventInput, 0, len(req.Events))
	for _, payload := range req.Events {
		timestamp, err := time.Parse(time.RFC3339, payload.Timestamp)
		if err != nil {
			return httptransport.TrackEventsResponse{},
				fmt.Errorf("%w: bad timestamp %q", domainerrors.ErrInvalidRequest, payload.Timestamp)
		}
		eventSessionID := payload.SessionID
		if eventSessionID == "" {
			eventSessionID = sessionID
		}
		inputs = append(inputs, commands.EventInput{
			EventType:  payload.EventType,
			Timestamp:  timestamp,
			UserID:     payload.UserID,
			SessionID:  eventSessionID,
			Properties: payload.Properties,
			Source:     payload.Source,
		})
	}

	result, err := h.Tracker.TrackEvents(ctx, commands.TrackEventsCommand{
		SessionID: sessionID,
		Events:    inputs,
	})
	if err != nil {
		return httptransport.TrackEventsResponse{}, err
	}

	resp := httptransport.TrackEventsResponse{
		SessionID:      sessionID,
		EventsAccepted: len(inputs),
		NewStates:      result.NewStates,
		NewTransitions: result.NewTransitions,
	}
	if result.CurrentState != nil {
		state := stateToResponse(*result.CurrentState)
		resp.CurrentState = &state
	}
	return resp, nil
}

// @Summary Get current intent state
// @Tags intent
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} httptransport.IntentStateResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/intent/sessions/{session_id}/state [get]
func (h Handler) CurrentStateHandler(ctx context.Context, sessionID string) (httptransport.IntentStateResponse, error) {
	state, err := h.Summaries.CurrentState(ctx, sessionID)
	if err != nil {
		return httptransport.IntentStateResponse{}, err
	}
	return stateToResponse(state), nil
}

// @Summary Get intent trajectory
// @Tags intent
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} httptransport.TrajectoryResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/intent/sessions/{session_id}/trajectory [get]
func (h Handler) TrajectoryHandler(ctx context.Context, sessionID string) (httptransport.TrajectoryResponse, error) {
	states, transitions, err := h.Summaries.Trajectory(ctx, sessionID)
	if err != nil {
		return httptransport.TrajectoryResponse{}, err
	}

	resp := httptransport.TrajectoryResponse{SessionID: sessionID}
	for _, state := range states {
		resp.States = append(resp.States, stateToResponse(state))
	}
	for _, transition := range transitions {
		resp.Transitions = append(resp.Transitions, httptransport.TransitionResponse{
			FromState:       string(transition.FromState.StateType),
			ToState:         string(transition.ToState.StateType),
			Timestamp:       transition.Timestamp.UTC().Format(time.RFC3339),
			TransitionType:  string(transition.TransitionType),
			Confidence:      transition.Confidence,
			DurationSeconds: transition.Duration(),
		})
	}
	return resp, nil
}

// @Summary Get session summary
// @Description Structured session summary with signal breakdowns, refined confidences and insights.
// @Tags intent
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} httptransport.SessionSummaryResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/intent/sessions/{session_id}/summary [get]
func (h Handler) SummaryHandler(ctx context.Context, sessionID string) (httptransport.SessionSummaryResponse, error) {
	summary, err := h.Summaries.Summarize(ctx, sessionID)
	if err != nil {
		return httptransport.SessionSummaryResponse{}, err
	}
	session, err := h.Summaries.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		return httptransport.SessionSummaryResponse{}, err
	}

	resp := httptransport.SessionSummaryResponse{
		SessionID:       summary.SessionID,
		UserID:          summary.UserID,
		DurationSeconds: summary.DurationSeconds,
		EventCount:      summary.EventCount,
		TransitionCount: summary.TransitionCount,
		Signals:         signalsToResponse(summary.Signals),
		Insights:        summary.Insights,
		Narrative:       h.Narratives.SessionNarrative(session),
	}
	if summary.CurrentState != nil {
		state := stateToResponse(*summary.CurrentState)
		resp.CurrentState = &state
	}
	for _, entry := range summary.Trajectory {
		resp.Trajectory = append(resp.Trajectory, httptransport.TrajectoryEntryResponse{
			State:             stateToResponse(entry.State),
			RefinedConfidence: entry.RefinedConfidence,
			SignalAttribution: entry.SignalAttribution,
		})
	}
	return resp, nil
}

func stateToResponse(state entities.IntentState) httptransport.IntentStateResponse {
	return httptransport.IntentStateResponse{
		StateType:    string(state.StateType),
		Timestamp:    state.Timestamp.UTC().Format(time.RFC3339),
		Confidence:   state.Confidence,
		Attributions: state.Attributions,
		Evidence:     state.Evidence,
	}
}

func signalsToResponse(sig queries.SignalSummary) httptransport.SignalSummaryResponse {
	return httptransport.SignalSummaryResponse{
		Dwell: map[string]any{
			"total_dwell_seconds": sig.Dwell.TotalDwellSeconds,
			"avg_dwell_seconds":   sig.Dwell.AvgDwellSeconds,
			"max_dwell_seconds":   sig.Dwell.MaxDwellSeconds,
			"long_dwell_count":    sig.Dwell.LongDwellCount,
		},
		Navigation: map[string]any{
			"unique_pages":          sig.Navigation.UniquePages,
			"total_page_views":      sig.Navigation.TotalPageViews,
			"navigation_depth":      sig.Navigation.NavigationDepth,
			"loops_detected":        sig.Navigation.LoopsDetected,
			"back_navigation_count": sig.Navigation.BackNavigationCount,
			"page_sequence":         sig.Navigation.PageSequence,
		},
		Comparison: map[string]any{
			"unique_products_viewed":   sig.Comparison.UniqueProductsViewed,
			"unique_categories_viewed": sig.Comparison.UniqueCategoriesViewed,
			"is_comparing":             sig.Comparison.IsComparing,
			"rapid_switching":          sig.Comparison.RapidSwitching,
			"comparison_score":         sig.Comparison.ComparisonScore,
		},
		Friction: map[string]any{
			"form_abandonment": sig.Friction.FormAbandonment,
			"cart_abandonment": sig.Friction.CartAbandonment,
			"long_pauses":      sig.Friction.LongPauses,
			"back_navigation":  sig.Friction.BackNavigation,
			"error_events":     sig.Friction.ErrorEvents,
			"friction_score":   sig.Friction.FrictionScore,
		},
		Price: map[string]any{
			"prices_viewed":          sig.Price.PricesViewed,
			"price_range":            sig.Price.PriceRange,
			"price_comparison":       sig.Price.PriceComparison,
			"lower_price_preference": sig.Price.LowerPricePreference,
			"price_sensitivity":      sig.Price.SensitivityScore,
		},
	}
}
