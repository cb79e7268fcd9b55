package entities

import (
	"sort"
	"time"
)

// Timeline keeps a chronologically ordered sequence of events. Every
// insertion re-sorts so callers can add events in any order.
type Timeline struct {
	events []Event
}

func NewTimeline(events ...Event) *Timeline {
	t := &Timeline{}
	t.AddEvents(events)
	return t
}

func (t *Timeline) AddEvent(event Event) {
	t.events = append(t.events, event)
	t.sortEvents()
}

func (t *Timeline) AddEvents(events []Event) {
	if len(events) == 0 {
		return
	}
	t.events = append(t.events, events...)
	t.sortEvents()
}

func (t *Timeline) sortEvents() {
	sort.SliceStable(t.events, func(i, j int) bool {
		return t.events[i].Timestamp.Before(t.events[j].Timestamp)
	})
}

// Events returns a copy of all events in chronological order.
func (t *Timeline) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// EventsInRange returns events with start <= timestamp <= end. Zero bounds
// are open ends.
func (t *Timeline) EventsInRange(start, end time.Time) []Event {
	var out []Event
	for _, event := range t.events {
		if !start.IsZero() && event.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && event.Timestamp.After(end) {
			continue
		}
		out = append(out, event)
	}
	return out
}

func (t *Timeline) EventsByType(eventType string) []Event {
	var out []Event
	for _, event := range t.events {
		if event.EventType == eventType {
			out = append(out, event)
		}
	}
	return out
}

// Duration reports the span between first and last event, and false when the
// timeline holds fewer than two events.
func (t *Timeline) Duration() (time.Duration, bool) {
	if len(t.events) < 2 {
		return 0, false
	}
	return t.events[len(t.events)-1].Timestamp.Sub(t.events[0].Timestamp), true
}

// TimeGaps returns the gaps between consecutive events.
func (t *Timeline) TimeGaps() []time.Duration {
	if len(t.events) < 2 {
		return nil
	}
	gaps := make([]time.Duration, 0, len(t.events)-1)
	for i := 1; i < len(t.events); i++ {
		gaps = append(gaps, t.events[i].Timestamp.Sub(t.events[i-1].Timestamp))
	}
	return gaps
}

func (t *Timeline) EventCount() int {
	return len(t.events)
}

func (t *Timeline) IsEmpty() bool {
	return len(t.events) == 0
}
