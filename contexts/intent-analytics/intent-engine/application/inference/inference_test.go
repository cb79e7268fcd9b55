package inference

import (
	"math"
	"testing"
	"time"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	"istari/contexts/intent-analytics/intent-engine/domain/rules"
)

var inferenceBase = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func buildSession(t *testing.T, events ...entities.Event) *entities.Session {
	t.Helper()
	session := entities.NewSession("session-1", "user-1", inferenceBase)
	for _, event := range events {
		if err := session.AppendEvent(event); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	return session
}

func makeEvent(t *testing.T, eventType string, offset time.Duration, properties map[string]any) entities.Event {
	t.Helper()
	event, err := entities.NewEvent(eventType, inferenceBase.Add(offset), "user-1", "session-1", properties)
	if err != nil {
		t.Fatalf("new event failed: %v", err)
	}
	return event
}

func approxEqual(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestNormalize(t *testing.T) {
	if got := Normalize(0.7, 1, 1); got != 0.5 {
		t.Fatalf("equal bounds should collapse to 0.5, got %v", got)
	}
	if got := Normalize(2, 0, 1); got != 1 {
		t.Fatalf("above max should clamp to 1, got %v", got)
	}
	if got := Normalize(-1, 0, 1); got != 0 {
		t.Fatalf("below min should clamp to 0, got %v", got)
	}
	if Normalize(0.3, 0, 1) >= Normalize(0.6, 0, 1) {
		t.Fatalf("normalize must be monotonic")
	}
}

func TestScoreExplainStableOrder(t *testing.T) {
	score := Score{StateType: entities.StateBrowsing}
	score.AddFactor("b_rule", 0.5)
	score.AddFactor("a_rule", 0.25)

	want := "Inferred browsing based on: a_rule (25.00%), b_rule (50.00%)"
	if got := score.explain(); got != want {
		t.Fatalf("explanation mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestEngineInferPurchaseReady(t *testing.T) {
	engine := NewEngine(rules.Defaults(), nil)
	session := buildSession(t,
		makeEvent(t, "page_view", 0, map[string]any{"page": "home"}),
		makeEvent(t, "page_view", 10*time.Second, map[string]any{"page": "product"}),
		makeEvent(t, "product_view", 20*time.Second, map[string]any{"product_id": "p1"}),
		makeEvent(t, "add_to_cart", 30*time.Second, nil),
		makeEvent(t, "checkout_started", 40*time.Second, nil),
	)

	state := engine.Infer(session)
	if state.StateType != entities.StatePurchaseReady {
		t.Fatalf("expected purchase_ready, got %s", state.StateType)
	}
	if !approxEqual(state.Confidence, 0.9) {
		t.Fatalf("expected checkout confidence 0.9, got %v", state.Confidence)
	}
	if !state.Timestamp.Equal(inferenceBase.Add(40 * time.Second)) {
		t.Fatalf("state must be stamped at the last event, got %v", state.Timestamp)
	}
	if _, ok := state.Attributions["purchase_ready_rule"]; !ok {
		t.Fatalf("expected rule attribution, got %v", state.Attributions)
	}
	if len(state.Evidence) == 0 {
		t.Fatalf("expected evidence strings")
	}
}

func TestEngineNoRulesTieBreaksToFirstDeclared(t *testing.T) {
	engine := NewEngine(nil, nil)
	session := buildSession(t)

	state := engine.Infer(session)
	if state.StateType != entities.StateBrowsing {
		t.Fatalf("zero-rule tie must resolve to first declared type, got %s", state.StateType)
	}
	if state.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", state.Confidence)
	}
	if !state.Timestamp.Equal(inferenceBase) {
		t.Fatalf("empty timeline should stamp session start, got %v", state.Timestamp)
	}
}

func TestScoreCandidatesCoversAllTypes(t *testing.T) {
	engine := NewEngine(rules.Defaults(), nil)
	scores := engine.ScoreCandidates(buildSession(t))
	if len(scores) != len(entities.AllStateTypes()) {
		t.Fatalf("expected one score per candidate, got %d", len(scores))
	}
	if scores[0].StateType != entities.StateBrowsing {
		t.Fatalf("candidates out of declaration order: %v", scores[0].StateType)
	}
}

func TestStateMachineTrajectory(t *testing.T) {
	machine := NewStateMachine(NewEngine(rules.Defaults(), nil))
	session := buildSession(t,
		makeEvent(t, "page_view", 0, map[string]any{"page": "home"}),
		makeEvent(t, "page_view", 10*time.Second, map[string]any{"page": "products"}),
		makeEvent(t, "add_to_cart", 20*time.Second, nil),
		makeEvent(t, "checkout_started", 30*time.Second, nil),
	)

	trajectory := machine.InferTrajectory(session)
	if len(trajectory) != 2 {
		t.Fatalf("expected 2 trajectory states, got %d", len(trajectory))
	}
	if trajectory[0].StateType != entities.StateBrowsing {
		t.Fatalf("expected browsing first, got %s", trajectory[0].StateType)
	}
	if trajectory[1].StateType != entities.StatePurchaseReady {
		t.Fatalf("expected purchase_ready second, got %s", trajectory[1].StateType)
	}
	if !trajectory[1].Timestamp.Equal(inferenceBase.Add(20 * time.Second)) {
		t.Fatalf("state change must stamp the triggering event, got %v", trajectory[1].Timestamp)
	}
}

func TestStateMachineIgnoresInsignificantEvents(t *testing.T) {
	machine := NewStateMachine(NewEngine(rules.Defaults(), nil))
	session := buildSession(t,
		makeEvent(t, "scroll", 0, nil),
		makeEvent(t, "mouse_move", 5*time.Second, nil),
	)
	if trajectory := machine.InferTrajectory(session); trajectory != nil {
		t.Fatalf("insignificant events must not open inference steps, got %d states", len(trajectory))
	}
}

func TestStateMachineGatingAbsorbsRejectedChange(t *testing.T) {
	machine := NewStateMachine(NewEngine(rules.Defaults(), nil))
	machine.AddTransitionRule(entities.StateBrowsing, []entities.StateType{entities.StateEvaluatingOptions})

	session := buildSession(t,
		makeEvent(t, "page_view", 0, map[string]any{"page": "home"}),
		makeEvent(t, "add_to_cart", 10*time.Second, nil),
		makeEvent(t, "checkout_started", 20*time.Second, nil),
	)

	trajectory := machine.InferTrajectory(session)
	if len(trajectory) != 1 {
		t.Fatalf("rejected transitions must be absorbed, got %d states", len(trajectory))
	}
	if trajectory[0].StateType != entities.StateBrowsing {
		t.Fatalf("held state changed: %s", trajectory[0].StateType)
	}
}

func TestDeriveTransitions(t *testing.T) {
	machine := NewStateMachine(NewEngine(nil, nil))

	first, _ := entities.NewIntentState(entities.StateBrowsing, inferenceBase, 0.5, nil, nil)
	second, _ := entities.NewIntentState(entities.StatePurchaseReady, inferenceBase.Add(10*time.Second), 0.9, nil, nil)
	third, _ := entities.NewIntentState(entities.StateAbandonmentRisk, inferenceBase.Add(20*time.Second), 0.7, nil, nil)

	if got := machine.DeriveTransitions([]entities.IntentState{first}); got != nil {
		t.Fatalf("single state should derive nothing")
	}

	transitions := machine.DeriveTransitions([]entities.IntentState{first, second, third})
	if len(transitions) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(transitions))
	}
	if transitions[0].TransitionType != entities.TransitionNormal || transitions[0].Confidence != 1.0 {
		t.Fatalf("derived transition defaults wrong: %+v", transitions[0])
	}
	if !transitions[1].Timestamp.Equal(third.Timestamp) {
		t.Fatalf("transition must stamp the destination state time")
	}
}

func TestConfidenceCalculator(t *testing.T) {
	calc := ConfidenceCalculator{}

	rich, _ := entities.NewIntentState(entities.StatePurchaseReady, inferenceBase, 0.8,
		map[string]float64{"x": 0.6, "y": 0.2},
		[]string{"first", "second"},
	)
	// 0.8 base, 0.9 for two evidence items, 0.7 + (0.6/0.8)*0.3 for dominance.
	if got := calc.Calculate(rich); !approxEqual(got, 0.8*0.9*0.925) {
		t.Fatalf("refined confidence: got %v", got)
	}

	bare, _ := entities.NewIntentState(entities.StateBrowsing, inferenceBase, 0.5, nil, nil)
	if got := calc.Calculate(bare); !approxEqual(got, 0.5*0.7*0.8) {
		t.Fatalf("bare state confidence: got %v", got)
	}
}

func TestAttributionCalculatorNormalizes(t *testing.T) {
	calc := AttributionCalculator{}
	session := buildSession(t,
		makeEvent(t, "page_view", 0, map[string]any{"page": "home"}),
		makeEvent(t, "page_view", 10*time.Second, map[string]any{"page": "products"}),
		makeEvent(t, "checkout_started", 20*time.Second, nil),
	)
	state, _ := entities.NewIntentState(entities.StatePurchaseReady, inferenceBase.Add(20*time.Second), 0.9, nil, nil)

	attributions := calc.Calculate(state, session)
	if len(attributions) != 2 {
		t.Fatalf("expected navigation and friction shares, got %v", attributions)
	}
	if !approxEqual(attributions["navigation"], 0.5) || !approxEqual(attributions["friction"], 0.5) {
		t.Fatalf("shares must normalize to halves: %v", attributions)
	}

	total := 0.0
	for _, share := range attributions {
		total += share
	}
	if !approxEqual(total, 1.0) {
		t.Fatalf("shares must sum to one, got %v", total)
	}
}

func TestTopAttributionsOrdering(t *testing.T) {
	shares := TopAttributions(map[string]float64{"a": 0.5, "b": 0.3, "c": 0.5}, 2)
	if len(shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(shares))
	}
	if shares[0].Signal != "a" || shares[1].Signal != "c" {
		t.Fatalf("equal scores must order by name: %v", shares)
	}
}
