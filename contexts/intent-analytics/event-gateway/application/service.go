package application

import (
	"log/slog"
	"strings"
	"sync"

	"istari/contexts/intent-analytics/event-gateway/application/schemas"
	domainerrors "istari/contexts/intent-analytics/event-gateway/domain/errors"
	"istari/contexts/intent-analytics/event-gateway/ports"
)

// BatchIssue records one payload that failed normalization. Bad records do
// not abort the batch; the caller decides what to do with the issues.
type BatchIssue struct {
	Index int
	Err   error
}

// NormalizeService resolves a named schema and runs a raw payload batch
// through it.
type NormalizeService struct {
	mu      sync.RWMutex
	schemas map[string]ports.Schema
	logger  *slog.Logger
}

func NewNormalizeService(logger *slog.Logger) *NormalizeService {
	if logger == nil {
		logger = slog.Default()
	}
	service := &NormalizeService{
		schemas: map[string]ports.Schema{},
		logger:  logger,
	}
	for _, schema := range []ports.Schema{
		schemas.Generic{},
		schemas.Segment{},
		schemas.Mixpanel{},
		schemas.Amplitude{},
	} {
		service.schemas[schema.Name()] = schema
	}
	return service
}

func (s *NormalizeService) RegisterSchema(schema ports.Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := strings.ToLower(strings.TrimSpace(schema.Name()))
	if _, exists := s.schemas[name]; exists {
		return domainerrors.ErrSchemaRegistered
	}
	s.schemas[name] = schema
	return nil
}

func (s *NormalizeService) SchemaNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	return names
}

// NormalizeBatch maps every payload through the named schema. Records that
// fail come back as issues while the rest of the batch proceeds; an unknown
// schema or an empty batch fails the whole call.
func (s *NormalizeService) NormalizeBatch(
	schemaName string,
	raws []map[string]any,
) ([]ports.CanonicalEvent, []BatchIssue, error) {
	if len(raws) == 0 {
		return nil, nil, domainerrors.ErrEmptyBatch
	}

	s.mu.RLock()
	schema, ok := s.schemas[strings.ToLower(strings.TrimSpace(schemaName))]
	s.mu.RUnlock()
	if !ok {
		return nil, nil, domainerrors.ErrUnknownSchema
	}

	events := make([]ports.CanonicalEvent, 0, len(raws))
	var issues []BatchIssue
	for i, raw := range raws {
		event, err := schema.Normalize(raw)
		if err != nil {
			issues = append(issues, BatchIssue{Index: i, Err: err})
			s.logger.Warn("event normalization failed",
				"event", "gateway_normalize_failed",
				"module", "intent-analytics/event-gateway",
				"layer", "application",
				"schema", schema.Name(),
				"index", i,
				"error", err.Error(),
			)
			continue
		}
		events = append(events, event)
	}
	return events, issues, nil
}
