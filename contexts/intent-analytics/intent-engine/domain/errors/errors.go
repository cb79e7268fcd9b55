package errors

import "errors"

var (
	ErrEventTypeRequired    = errors.New("event_type cannot be empty")
	ErrUserIDRequired       = errors.New("user_id cannot be empty")
	ErrSessionIDRequired    = errors.New("session_id cannot be empty")
	ErrConfidenceOutOfRange = errors.New("confidence must be between 0.0 and 1.0")
	ErrTransitionOrder      = errors.New("from_state timestamp must not be after to_state timestamp")
	ErrSessionMismatch      = errors.New("event does not belong to this session")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionExists        = errors.New("session already exists")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrPluginRegistered     = errors.New("plugin is already registered")
	ErrPluginNotFound       = errors.New("plugin not found")
)
