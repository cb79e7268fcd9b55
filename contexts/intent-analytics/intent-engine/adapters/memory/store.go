package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	domainerrors "istari/contexts/intent-analytics/intent-engine/domain/errors"

	"github.com/google/uuid"
)

// Store is the in-memory session repository used by tests and single-process
// deployments. Aggregates are shared by pointer, so callers own the
// per-session concurrency rule: one evaluator per session at a time.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entities.Session
}

func NewStore(seed []*entities.Session) *Store {
	sessions := make(map[string]*entities.Session, len(seed))
	for _, session := range seed {
		sessions[session.SessionID] = session
	}
	return &Store{sessions: sessions}
}

func (s *Store) CreateSession(_ context.Context, session *entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := strings.TrimSpace(session.SessionID)
	if _, exists := s.sessions[id]; exists {
		return domainerrors.ErrSessionExists
	}
	s.sessions[id] = session
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (*entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) SaveSession(_ context.Context, session *entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[strings.TrimSpace(session.SessionID)] = session
	return nil
}

// SessionCount is a test helper.
func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
