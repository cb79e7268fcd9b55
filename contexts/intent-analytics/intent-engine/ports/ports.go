package ports

import (
	"context"
	"time"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// SessionRepository stores live session aggregates. Implementations must
// hand back the same aggregate for the same id so append operations
// accumulate; the engine core never talks to storage directly.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *entities.Session) error
	GetSession(ctx context.Context, sessionID string) (*entities.Session, error)
	SaveSession(ctx context.Context, session *entities.Session) error
}

// InferencePlugin extends the engine with externally supplied inference.
// Higher priority plugins are consulted first.
type InferencePlugin interface {
	Name() string
	Priority() int
	SupportedStates() []entities.StateType
	Infer(session *entities.Session) (entities.IntentState, bool)
}
