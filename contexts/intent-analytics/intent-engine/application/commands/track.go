package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"istari/contexts/intent-analytics/intent-engine/application"
	"istari/contexts/intent-analytics/intent-engine/application/inference"
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	domainerrors "istari/contexts/intent-analytics/intent-engine/domain/errors"
	"istari/contexts/intent-analytics/intent-engine/ports"
)

type EventInput struct {
	EventType  string
	Timestamp  time.Time
	UserID     string
	SessionID  string
	Properties map[string]any
	Source     string
}

type StartSessionCommand struct {
	SessionID string
	UserID    string
	StartedAt time.Time
}

type TrackEventsCommand struct {
	SessionID string
	Events    []EventInput
}

type TrackResult struct {
	Session        *entities.Session
	CurrentState   *entities.IntentState
	NewStates      int
	NewTransitions int
}

// TrackUseCase ingests canonical events into a session and keeps its intent
// trajectory current by replaying the state machine after each batch.
type TrackUseCase struct {
	Sessions ports.SessionRepository
	Machine  *inference.StateMachine
	Clock    ports.Clock
	IDs      ports.IDGenerator
	Logger   *slog.Logger
}

func (uc TrackUseCase) StartSession(ctx context.Context, cmd StartSessionCommand) (*entities.Session, error) {
	if cmd.SessionID == "" {
		if uc.IDs == nil {
			return nil, domainerrors.ErrSessionIDRequired
		}
		generated, err := uc.IDs.NewID(ctx)
		if err != nil {
			return nil, err
		}
		cmd.SessionID = generated
	}
	if cmd.UserID == "" {
		return nil, domainerrors.ErrUserIDRequired
	}

	startedAt := cmd.StartedAt
	if startedAt.IsZero() {
		startedAt = uc.now()
	}
	session := entities.NewSession(cmd.SessionID, cmd.UserID, startedAt)
	if err := uc.Sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	application.ResolveLogger(uc.Logger).Info("intent session started",
		"event", "intent_session_started",
		"module", "intent-analytics/intent-engine",
		"layer", "application",
		"session_id", cmd.SessionID,
		"user_id", cmd.UserID,
	)
	return session, nil
}

// TrackEvents appends a batch of events and advances the trajectory. A
// session that does not exist yet is created from the first event, so
// callers can stream without an explicit start call.
func (uc TrackUseCase) TrackEvents(ctx context.Context, cmd TrackEventsCommand) (TrackResult, error) {
	if len(cmd.Events) == 0 {
		return TrackResult{}, domainerrors.ErrInvalidRequest
	}

	session, err := uc.Sessions.GetSession(ctx, cmd.SessionID)
	if errors.Is(err, domainerrors.ErrSessionNotFound) {
		session, err = uc.StartSession(ctx, StartSessionCommand{
			SessionID: cmd.SessionID,
			UserID:    cmd.Events[0].UserID,
			StartedAt: cmd.Events[0].Timestamp,
		})
	}
	if err != nil {
		return TrackResult{}, err
	}

	for _, input := range cmd.Events {
		event, err := entities.NewEvent(input.EventType, input.Timestamp, input.UserID, input.SessionID, input.Properties)
		if err != nil {
			return TrackResult{}, err
		}
		event.Source = input.Source
		if err := session.AppendEvent(event); err != nil {
			return TrackResult{}, err
		}
	}

	newStates, newTransitions := uc.advanceTrajectory(session)
	if err := uc.Sessions.SaveSession(ctx, session); err != nil {
		return TrackResult{}, err
	}

	result := TrackResult{
		Session:        session,
		NewStates:      newStates,
		NewTransitions: newTransitions,
	}
	if current, ok := session.CurrentIntentState(); ok {
		result.CurrentState = &current
	}

	application.ResolveLogger(uc.Logger).Debug("intent trajectory advanced",
		"event", "intent_trajectory_advanced",
		"module", "intent-analytics/intent-engine",
		"layer", "application",
		"session_id", session.SessionID,
		"events", len(cmd.Events),
		"new_states", newStates,
		"new_transitions", newTransitions,
	)
	return result, nil
}

// advanceTrajectory replays the full state machine and appends only states
// and transitions past the ones the session already holds. The timeline
// accepts events in any order, so a late batch can shift the replay; when the
// held trajectory is no longer a prefix of it, both slices are rebuilt from
// the replay instead of appended to.
func (uc TrackUseCase) advanceTrajectory(session *entities.Session) (int, int) {
	replayed := uc.Machine.InferTrajectory(session)
	held := session.IntentTrajectory()

	if !isTrajectoryPrefix(held, replayed) {
		derived := uc.Machine.DeriveTransitions(replayed)
		priorTransitions := len(session.Transitions())
		session.ReplaceTrajectory(replayed, derived)
		return len(replayed) - len(held), len(derived) - priorTransitions
	}

	for i := len(held); i < len(replayed); i++ {
		session.AppendIntentState(replayed[i])
	}
	derived := uc.Machine.DeriveTransitions(session.IntentTrajectory())
	existingTransitions := len(session.Transitions())
	for i := existingTransitions; i < len(derived); i++ {
		session.AppendTransition(derived[i])
	}
	return len(replayed) - len(held), len(derived) - existingTransitions
}

// isTrajectoryPrefix reports whether held matches the leading replay states
// by state type and timestamp.
func isTrajectoryPrefix(held, replayed []entities.IntentState) bool {
	if len(held) > len(replayed) {
		return false
	}
	for i, state := range held {
		if state.StateType != replayed[i].StateType || !state.Timestamp.Equal(replayed[i].Timestamp) {
			return false
		}
	}
	return true
}

func (uc TrackUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
