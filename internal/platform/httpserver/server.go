package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	eventgateway "istari/contexts/intent-analytics/event-gateway"
	gatewayerrors "istari/contexts/intent-analytics/event-gateway/domain/errors"
	"istari/contexts/intent-analytics/event-gateway/ports"
	gatewayhttp "istari/contexts/intent-analytics/event-gateway/transport/http"
	intentengine "istari/contexts/intent-analytics/intent-engine"
	intenterrors "istari/contexts/intent-analytics/intent-engine/domain/errors"
	intenthttp "istari/contexts/intent-analytics/intent-engine/transport/http"
	"istari/internal/platform/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "istari/internal/platform/httpserver/docs"
)

// Options toggles the optional surfaces the server exposes.
type Options struct {
	EnableGateway bool
	EnableSwagger bool
	EnableMetrics bool
}

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	intent  intentengine.Module
	gateway eventgateway.Module
	opts    Options
}

func New(
	intent intentengine.Module,
	gateway eventgateway.Module,
	logger *slog.Logger,
	addr string,
	opts Options,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		intent:  intent,
		gateway: gateway,
		opts:    opts,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, mainly for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	if s.opts.EnableSwagger {
		s.mux.Handle("/swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}
	if s.opts.EnableMetrics {
		s.mux.Handle("GET /metrics", metrics.Handler())
	}

	s.mux.HandleFunc("POST /v1/intent/sessions", s.instrument("intent_start_session", s.handleStartSession))
	s.mux.HandleFunc("POST /v1/intent/sessions/{session_id}/events", s.instrument("intent_track_events", s.handleTrackEvents))
	s.mux.HandleFunc("GET /v1/intent/sessions/{session_id}/state", s.instrument("intent_current_state", s.handleCurrentState))
	s.mux.HandleFunc("GET /v1/intent/sessions/{session_id}/trajectory", s.instrument("intent_trajectory", s.handleTrajectory))
	s.mux.HandleFunc("GET /v1/intent/sessions/{session_id}/summary", s.instrument("intent_summary", s.handleSummary))

	if s.opts.EnableGateway {
		s.mux.HandleFunc("POST /v1/gateway/normalize", s.instrument("gateway_normalize", s.handleGatewayNormalize))
		s.mux.HandleFunc("POST /v1/gateway/import", s.instrument("gateway_import", s.handleGatewayImport))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	if !s.opts.EnableMetrics {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
	}
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req intenthttp.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIntentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.intent.Handler.StartSessionHandler(r.Context(), req)
	if err != nil {
		writeIntentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTrackEvents(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	var req intenthttp.TrackEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIntentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.intent.Handler.TrackEventsHandler(r.Context(), sessionID, req)
	if err != nil {
		writeIntentDomainError(w, err)
		return
	}
	if s.opts.EnableMetrics {
		metrics.EventsIngested.Add(float64(resp.EventsAccepted))
		metrics.TrajectoryStates.Add(float64(resp.NewStates))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCurrentState(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	resp, err := s.intent.Handler.CurrentStateHandler(r.Context(), sessionID)
	if err != nil {
		writeIntentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTrajectory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	resp, err := s.intent.Handler.TrajectoryHandler(r.Context(), sessionID)
	if err != nil {
		writeIntentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	resp, err := s.intent.Handler.SummaryHandler(r.Context(), sessionID)
	if err != nil {
		writeIntentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGatewayNormalize(w http.ResponseWriter, r *http.Request) {
	var req gatewayhttp.ImportEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, events, err := s.gateway.Handler.NormalizeHandler(req)
	if err != nil {
		writeGatewayDomainError(w, err)
		return
	}
	if s.opts.EnableMetrics {
		metrics.NormalizedEvents.WithLabelValues(req.Schema).Add(float64(len(events)))
	}
	writeJSON(w, http.StatusOK, resp)
}

type importSessionResult struct {
	SessionID      string `json:"session_id"`
	EventsAccepted int    `json:"events_accepted"`
	NewStates      int    `json:"new_states"`
	NewTransitions int    `json:"new_transitions"`
	CurrentState   string `json:"current_state,omitempty"`
}

type importResponse struct {
	Normalization gatewayhttp.ImportEventsResponse `json:"normalization"`
	Sessions      []importSessionResult            `json:"sessions"`
}

// handleGatewayImport chains normalization into tracking: vendor payloads go
// through the named schema and the resulting canonical events are appended to
// their sessions in one call.
func (s *Server) handleGatewayImport(w http.ResponseWriter, r *http.Request) {
	var req gatewayhttp.ImportEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeGatewayError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	normalized, events, err := s.gateway.Handler.NormalizeHandler(req)
	if err != nil {
		writeGatewayDomainError(w, err)
		return
	}
	if s.opts.EnableMetrics {
		metrics.NormalizedEvents.WithLabelValues(req.Schema).Add(float64(len(events)))
	}

	resp := importResponse{Normalization: normalized}
	for _, sessionID := range sessionOrder(events) {
		treq := intenthttp.TrackEventsRequest{}
		for _, event := range events {
			if event.SessionID != sessionID {
				continue
			}
			treq.Events = append(treq.Events, intenthttp.EventPayload{
				EventType:  event.EventType,
				Timestamp:  event.Timestamp.UTC().Format(time.RFC3339),
				UserID:     event.UserID,
				SessionID:  event.SessionID,
				Properties: event.Properties,
				Source:     event.Source,
			})
		}

		tracked, err := s.intent.Handler.TrackEventsHandler(r.Context(), sessionID, treq)
		if err != nil {
			writeIntentDomainError(w, err)
			return
		}
		if s.opts.EnableMetrics {
			metrics.EventsIngested.Add(float64(tracked.EventsAccepted))
			metrics.TrajectoryStates.Add(float64(tracked.NewStates))
		}

		result := importSessionResult{
			SessionID:      sessionID,
			EventsAccepted: tracked.EventsAccepted,
			NewStates:      tracked.NewStates,
			NewTransitions: tracked.NewTransitions,
		}
		if tracked.CurrentState != nil {
			result.CurrentState = tracked.CurrentState.StateType
		}
		resp.Sessions = append(resp.Sessions, result)
	}
	writeJSON(w, http.StatusOK, resp)
}

// sessionOrder returns distinct session ids in first-seen order.
func sessionOrder(events []ports.CanonicalEvent) []string {
	seen := map[string]bool{}
	var order []string
	for _, event := range events {
		if !seen[event.SessionID] {
			seen[event.SessionID] = true
			order = append(order, event.SessionID)
		}
	}
	return order
}

func writeIntentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, intenterrors.ErrSessionNotFound):
		writeIntentError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, intenterrors.ErrSessionExists):
		writeIntentError(w, http.StatusConflict, "session_exists", err.Error())
	case errors.Is(err, intenterrors.ErrSessionMismatch):
		writeIntentError(w, http.StatusUnprocessableEntity, "session_mismatch", err.Error())
	case errors.Is(err, intenterrors.ErrInvalidRequest),
		errors.Is(err, intenterrors.ErrEventTypeRequired),
		errors.Is(err, intenterrors.ErrUserIDRequired),
		errors.Is(err, intenterrors.ErrSessionIDRequired),
		errors.Is(err, intenterrors.ErrConfidenceOutOfRange),
		errors.Is(err, intenterrors.ErrTransitionOrder):
		writeIntentError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeIntentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeGatewayDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gatewayerrors.ErrUnknownSchema):
		writeGatewayError(w, http.StatusBadRequest, "unknown_schema", err.Error())
	case errors.Is(err, gatewayerrors.ErrEmptyBatch):
		writeGatewayError(w, http.StatusBadRequest, "empty_batch", err.Error())
	case errors.Is(err, gatewayerrors.ErrSchemaRegistered):
		writeGatewayError(w, http.StatusConflict, "schema_registered", err.Error())
	case errors.Is(err, gatewayerrors.ErrTimestampMissing),
		errors.Is(err, gatewayerrors.ErrUserIDMissing),
		errors.Is(err, gatewayerrors.ErrEventTypeMissing):
		writeGatewayError(w, http.StatusBadRequest, "invalid_payload", err.Error())
	default:
		writeGatewayError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeIntentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, intenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeGatewayError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, gatewayhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
