package resolver

import (
	"context"
	"errors"

	"intelligent-voice-backend/internal/pagecontext"
	"intelligent-voice-backend/internal/voice"
)

// Input carries everything a resolver needs for one turn.
type Input struct {
	Utterance   string
	Memory      voice.Memory
	PageContext pagecontext.PageContext
	PageSignals map[string]any
}

// Resolver turns an utterance plus page context into a Resolution.
// The local resolver never returns an error; the remote resolver returns
// ErrRemoteUnavailable (wrapped) whenever its output cannot be trusted,
// signalling the caller to fall back.
type Resolver interface {
	Resolve(ctx context.Context, input Input) (voice.Resolution, error)
}

// ErrRemoteUnavailable is the typed failure signal of the remote stage:
// transport failure, malformed reply, or missing configuration.
var ErrRemoteUnavailable = errors.New("remote resolver unavailable")
