package errors

import "errors"

var (
	ErrUnknownSchema    = errors.New("unknown event schema")
	ErrTimestampMissing = errors.New("could not extract timestamp from event")
	ErrUserIDMissing    = errors.New("could not extract user_id from event")
	ErrEventTypeMissing = errors.New("could not extract event_type from event")
	ErrEmptyBatch       = errors.New("event batch is empty")
	ErrSchemaRegistered = errors.New("schema is already registered")
)
