package voice

import "context"

// UseCase defines the business logic interface for the voice domain.
type UseCase interface {
	// ProcessIntent runs one conversational turn: loads memory, analyzes
	// the page context, resolves the utterance to an intent and action,
	// persists updated memory, and emits analytics.
	ProcessIntent(ctx context.Context, input IntentInput) (IntentOutput, error)

	// ProcessCommand handles control commands (stop, repeat, retry)
	// without going through the resolver chain.
	ProcessCommand(ctx context.Context, input CommandInput) (CommandOutput, error)

	// LogEvent ingests a caller-side analytics event.
	LogEvent(ctx context.Context, event Event) error

	// GetMemory returns the user's current memory record.
	GetMemory(ctx context.Context, userID string) (Memory, error)

	// GetAnalytics returns the user's most recent analytics events.
	GetAnalytics(ctx context.Context, userID string, limit int) ([]Event, error)

	// CreateSession records a new voice session.
	CreateSession(ctx context.Context, session Session) (Session, error)
}
