// Package inference hosts the scoring engine, the trajectory state machine
// and the post-hoc confidence/attribution refinements.
package inference

import (
	"log/slog"
	"strings"

	"istari/contexts/intent-analytics/intent-engine/application"
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	"istari/contexts/intent-analytics/intent-engine/domain/rules"
)

// Engine runs the weighted rule set over every candidate state type and
// picks the best hypothesis. It is a pure function of the session passed to
// Infer; the rule slice is fixed after construction apart from AddRule.
type Engine struct {
	rules  []rules.Rule
	logger *slog.Logger
}

func NewEngine(ruleSet []rules.Rule, logger *slog.Logger) *Engine {
	return &Engine{
		rules:  append([]rules.Rule(nil), ruleSet...),
		logger: application.ResolveLogger(logger),
	}
}

func (e *Engine) AddRule(rule rules.Rule) {
	e.rules = append(e.rules, rule)
}

func (e *Engine) Rules() []rules.Rule {
	return append([]rules.Rule(nil), e.rules...)
}

// ScoreCandidates scores all candidate state types in declaration order.
// With no rules registered every candidate scores zero; that is a valid
// degenerate result, not an error.
func (e *Engine) ScoreCandidates(session *entities.Session) []Score {
	candidates := entities.AllStateTypes()
	scores := make([]Score, 0, len(candidates))

	for _, stateType := range candidates {
		score := Score{StateType: stateType}
		totalWeight := 0.0

		for _, rule := range e.rules {
			if !rule.Matches(stateType, session) {
				continue
			}
			contribution := rule.Evaluate(session)
			score.AddFactor(rule.Name(), contribution)
			score.RawScore += contribution * rule.Weight()
			totalWeight += rule.Weight()
		}

		if totalWeight > 0 {
			score.Confidence = Normalize(score.RawScore/totalWeight, 0.0, 1.0)
		}
		score.Explanation = score.explain()
		scores = append(scores, score)
	}
	return scores
}

// Infer selects the best-scoring candidate and materializes it as an intent
// state stamped at the last event time, or at session start when the
// timeline is empty. Confidence ties resolve to the first-declared type.
func (e *Engine) Infer(session *entities.Session) entities.IntentState {
	scores := e.ScoreCandidates(session)

	best := scores[0]
	for _, score := range scores[1:] {
		if score.Confidence > best.Confidence {
			best = score
		}
	}

	timestamp := session.StartedAt
	if events := session.Timeline().Events(); len(events) > 0 {
		timestamp = events[len(events)-1].Timestamp
	}

	attributions := make(map[string]float64, len(best.Factors))
	for name, contribution := range best.Factors {
		attributions[name] = contribution
	}

	var evidence []string
	if best.Explanation != "" {
		evidence = strings.Split(best.Explanation, ". ")
	}

	state, err := entities.NewIntentState(best.StateType, timestamp, best.Confidence, attributions, evidence)
	if err != nil {
		// Confidence is already clamped, so this only trips on a broken rule.
		e.logger.Error("inference produced invalid state",
			"event", "intent_inference_invalid_state",
			"module", "intent-analytics/intent-engine",
			"layer", "application",
			"state_type", string(best.StateType),
			"confidence", best.Confidence,
			"error", err.Error(),
		)
		state, _ = entities.NewIntentState(best.StateType, timestamp, 0, attributions, evidence)
	}
	return state
}
