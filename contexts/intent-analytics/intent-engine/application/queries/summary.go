package queries

import (
	"context"

	"istari/contexts/intent-analytics/intent-engine/application/inference"
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	"istari/contexts/intent-analytics/intent-engine/domain/signals"
	"istari/contexts/intent-analytics/intent-engine/ports"
)

// SignalSummary bundles the output of all five extractors for one session.
type SignalSummary struct {
	Dwell      signals.DwellMetrics
	Navigation signals.NavigationMetrics
	Comparison signals.ComparisonMetrics
	Friction   signals.FrictionMetrics
	Price      signals.PriceMetrics
}

type TrajectoryEntry struct {
	State             entities.IntentState
	RefinedConfidence float64
	SignalAttribution map[string]float64
}

type SessionSummary struct {
	SessionID       string
	UserID          string
	DurationSeconds float64
	EventCount      int
	CurrentState    *entities.IntentState
	Trajectory      []TrajectoryEntry
	TransitionCount int
	Signals         SignalSummary
	Insights        []string
}

// SummaryUseCase assembles read-side views over a session: current state,
// trajectory with post-hoc refinements, signal summaries and insights.
type SummaryUseCase struct {
	Sessions    ports.SessionRepository
	Confidence  inference.ConfidenceCalculator
	Attribution inference.AttributionCalculator
	Dwell       signals.DwellExtractor
	Navigation  signals.NavigationExtractor
	Comparison  signals.ComparisonExtractor
	Friction    signals.FrictionExtractor
	Price       signals.PriceExtractor
}

func (uc SummaryUseCase) CurrentState(ctx context.Context, sessionID string) (entities.IntentState, error) {
	session, err := uc.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		return entities.IntentState{}, err
	}
	state, ok := session.CurrentIntentState()
	if !ok {
		return entities.IntentState{}, nil
	}
	return state, nil
}

func (uc SummaryUseCase) Trajectory(ctx context.Context, sessionID string) ([]entities.IntentState, []entities.Transition, error) {
	session, err := uc.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session.IntentTrajectory(), session.Transitions(), nil
}

func (uc SummaryUseCase) Summarize(ctx context.Context, sessionID string) (SessionSummary, error) {
	session, err := uc.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		return SessionSummary{}, err
	}

	timeline := session.Timeline()
	summary := SessionSummary{
		SessionID:       session.SessionID,
		UserID:          session.UserID,
		DurationSeconds: session.Duration().Seconds(),
		EventCount:      session.EventCount(),
		TransitionCount: len(session.Transitions()),
		Signals: SignalSummary{
			Dwell:      uc.Dwell.Extract(timeline),
			Navigation: uc.Navigation.Extract(timeline),
			Comparison: uc.Comparison.Extract(timeline),
			Friction:   uc.Friction.Extract(timeline),
			Price:      uc.Price.Extract(timeline),
		},
	}

	for _, state := range session.IntentTrajectory() {
		summary.Trajectory = append(summary.Trajectory, TrajectoryEntry{
			State:             state,
			RefinedConfidence: uc.Confidence.Calculate(state),
			SignalAttribution: uc.Attribution.Calculate(state, session),
		})
	}
	if current, ok := session.CurrentIntentState(); ok {
		summary.CurrentState = &current
	}
	summary.Insights = uc.keyInsights(session, summary.Signals)
	return summary, nil
}

// keyInsights reduces the trajectory and signals to operator-facing flags.
func (uc SummaryUseCase) keyInsights(session *entities.Session, sig SignalSummary) []string {
	var insights []string

	if current, ok := session.CurrentIntentState(); ok {
		if current.Confidence < 0.5 {
			insights = append(insights, "Low confidence in current intent state - user behavior is ambiguous")
		}
		switch current.StateType {
		case entities.StateAbandonmentRisk:
			insights = append(insights, "User shows signs of abandonment - intervention may be needed")
		case entities.StatePurchaseReady:
			insights = append(insights, "User appears ready to purchase - conversion opportunity")
		}
	}
	if sig.Friction.FrictionScore > 0.5 {
		insights = append(insights, "High friction detected - user may be experiencing obstacles")
	}
	if len(session.Transitions()) > 3 {
		insights = append(insights, "Multiple state transitions detected - user intent is evolving rapidly")
	}
	return insights
}
