package queries

import (
	"strings"
	"testing"
	"time"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
)

var narrativeBase = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestStateNarrative(t *testing.T) {
	session := entities.NewSession("session-1", "user-1", narrativeBase)
	event, err := entities.NewEvent("page_view", narrativeBase.Add(30*time.Second), "user-1", "session-1", nil)
	if err != nil {
		t.Fatalf("new event failed: %v", err)
	}
	if err := session.AppendEvent(event); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	state, _ := entities.NewIntentState(entities.StatePurchaseReady, narrativeBase.Add(30*time.Second), 0.9,
		map[string]float64{"navigation": 0.7, "friction": 0.3},
		[]string{"checkout started"},
	)

	narrative := NarrativeGenerator{}.StateNarrative(state, session)
	if !strings.Contains(narrative, "'purchase_ready' state (confidence: 90.0%)") {
		t.Fatalf("missing state line:\n%s", narrative)
	}
	if !strings.Contains(narrative, "navigation (70.0%)") {
		t.Fatalf("missing attribution line:\n%s", narrative)
	}
	if !strings.Contains(narrative, "checkout started") {
		t.Fatalf("missing evidence:\n%s", narrative)
	}
	if !strings.Contains(narrative, "1 events over 30 seconds") {
		t.Fatalf("missing session context:\n%s", narrative)
	}
}

func TestTransitionNarrativePacing(t *testing.T) {
	from, _ := entities.NewIntentState(entities.StateBrowsing, narrativeBase, 0.5, nil, nil)

	cases := []struct {
		offset time.Duration
		want   string
	}{
		{5 * time.Second, "rapid transition"},
		{30 * time.Second, "within a minute"},
		{120 * time.Second, "took 120 seconds"},
	}
	for _, tc := range cases {
		to, _ := entities.NewIntentState(entities.StatePurchaseReady, narrativeBase.Add(tc.offset), 0.9, nil, nil)
		transition, err := entities.NewTransition(from, to, to.Timestamp)
		if err != nil {
			t.Fatalf("new transition failed: %v", err)
		}
		narrative := NarrativeGenerator{}.TransitionNarrative(transition)
		if !strings.Contains(narrative, tc.want) {
			t.Fatalf("offset %v: expected %q in:\n%s", tc.offset, tc.want, narrative)
		}
	}
}

func TestSessionNarrativeListsTrajectory(t *testing.T) {
	session := entities.NewSession("session-1", "user-1", narrativeBase)

	first, _ := entities.NewIntentState(entities.StateBrowsing, narrativeBase, 0.5, nil, nil)
	second, _ := entities.NewIntentState(entities.StatePurchaseReady, narrativeBase.Add(time.Minute), 0.9, nil, nil)
	session.AppendIntentState(first)
	session.AppendIntentState(second)
	transition, _ := entities.NewTransition(first, second, second.Timestamp)
	session.AppendTransition(transition)

	narrative := NarrativeGenerator{}.SessionNarrative(session)
	if !strings.Contains(narrative, "Session session-1 for user user-1") {
		t.Fatalf("missing header:\n%s", narrative)
	}
	if !strings.Contains(narrative, "1. browsing") || !strings.Contains(narrative, "2. purchase_ready") {
		t.Fatalf("missing trajectory lines:\n%s", narrative)
	}
	if !strings.Contains(narrative, "browsing -> purchase_ready") {
		t.Fatalf("missing transition line:\n%s", narrative)
	}
}
