package ports

import "time"

// CanonicalEvent is the gateway's output record. It mirrors the engine's
// canonical event fields without importing the engine, so the two modules
// stay decoupled; the composition layer converts between them.
type CanonicalEvent struct {
	EventType  string
	Timestamp  time.Time
	UserID     string
	SessionID  string
	Properties map[string]any
	Source     string
	RawData    map[string]any
}

// Schema maps one vendor payload shape onto the canonical record.
type Schema interface {
	Name() string
	Normalize(raw map[string]any) (CanonicalEvent, error)
}
