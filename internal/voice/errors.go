package voice

import "errors"

// Domain-specific errors for the voice package.
var (
	ErrEmptyUtterance = errors.New("utterance is empty")
	ErrEmptyCommand   = errors.New("command is empty")
	ErrEmptyEventType = errors.New("event type is empty")
	ErrEmptyUserID    = errors.New("user id is empty")
)
