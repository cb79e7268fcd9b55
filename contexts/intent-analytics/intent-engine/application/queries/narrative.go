package queries

import (
	"fmt"
	"strings"
	"time"

	"istari/contexts/intent-analytics/intent-engine/application/inference"
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

// NarrativeGenerator renders human-readable explanations for states,
// transitions and whole sessions. Output is presentation text for dashboards
// and alerts, never parsed back.
type NarrativeGenerator struct{}

func (NarrativeGenerator) StateNarrative(state entities.IntentState, session *entities.Session) string {
	lines := []string{
		fmt.Sprintf("The user is currently in a '%s' state (confidence: %.1f%%).",
			state.StateType, state.Confidence*100),
	}

	if top := inference.TopAttributions(state.Attributions, 2); len(top) > 0 {
		parts := make([]string, 0, len(top))
		for _, share := range top {
			parts = append(parts, fmt.Sprintf("%s (%.1f%%)", share.Signal, share.Score*100))
		}
		lines = append(lines, fmt.Sprintf("This inference is primarily driven by: %s.", strings.Join(parts, ", ")))
	}

	if len(state.Evidence) > 0 {
		lines = append(lines, "", "Supporting evidence:")
		for i, evidence := range state.Evidence {
			if i == 3 {
				break
			}
			lines = append(lines, fmt.Sprintf("  - %s", evidence))
		}
	}

	lines = append(lines, "", fmt.Sprintf("Session context: %d events over %.0f seconds.",
		session.EventCount(), session.Duration().Seconds()))
	return strings.Join(lines, "\n")
}

func (NarrativeGenerator) TransitionNarrative(transition entities.Transition) string {
	duration := transition.Duration()
	lines := []string{
		fmt.Sprintf("User transitioned from '%s' to '%s'.",
			transition.FromState.StateType, transition.ToState.StateType),
	}

	switch {
	case duration < 10:
		lines = append(lines, "This was a rapid transition, suggesting immediate user action.")
	case duration < 60:
		lines = append(lines, "This transition occurred within a minute.")
	default:
		lines = append(lines, fmt.Sprintf("This transition took %.0f seconds, indicating gradual intent change.", duration))
	}

	switch transition.TransitionType {
	case entities.TransitionAbrupt:
		lines = append(lines, "The abrupt nature suggests a significant change in user intent.")
	case entities.TransitionGradual:
		lines = append(lines, "The gradual transition indicates evolving user behavior.")
	}
	return strings.Join(lines, "\n")
}

func (NarrativeGenerator) SessionNarrative(session *entities.Session) string {
	lines := []string{
		fmt.Sprintf("Session %s for user %s", session.SessionID, session.UserID),
		fmt.Sprintf("Duration: %.0f seconds", session.Duration().Seconds()),
		fmt.Sprintf("Events: %d", session.EventCount()),
	}

	if trajectory := session.IntentTrajectory(); len(trajectory) > 0 {
		lines = append(lines, "", "Intent trajectory:")
		for i, state := range trajectory {
			lines = append(lines, fmt.Sprintf("  %d. %s (confidence: %.1f%%, time: %s)",
				i+1, state.StateType, state.Confidence*100, state.Timestamp.Format(time.RFC3339)))
		}
	}

	if transitions := session.Transitions(); len(transitions) > 0 {
		lines = append(lines, "", "State transitions:")
		for i, transition := range transitions {
			lines = append(lines, fmt.Sprintf("  %d. %s -> %s",
				i+1, transition.FromState.StateType, transition.ToState.StateType))
		}
	}
	return strings.Join(lines, "\n")
}
