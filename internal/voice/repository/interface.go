package repository

import (
	"context"

	"intelligent-voice-backend/internal/voice"
)

// MemoryRepository persists per-user dialogue memory.
type MemoryRepository interface {
	// Load returns the stored memory for the user, or the default record
	// if none exists. A non-nil error indicates a storage failure; callers
	// are expected to degrade to the default record.
	Load(ctx context.Context, userID string) (voice.Memory, error)

	// Save upserts the user's memory record. The write is atomic per call.
	Save(ctx context.Context, userID string, memory voice.Memory) error
}

// AnalyticsRepository appends and reads analytics events.
type AnalyticsRepository interface {
	// Append writes one analytics event. Events are never mutated.
	Append(ctx context.Context, event voice.Event) error

	// ListByUser returns the user's most recent events, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]voice.Event, error)
}

// SessionRepository records voice sessions.
type SessionRepository interface {
	Create(ctx context.Context, session voice.Session) (voice.Session, error)
}

// InteractionRepository logs conversation exchanges.
type InteractionRepository interface {
	AppendInteraction(ctx context.Context, interaction voice.Interaction) error
}
