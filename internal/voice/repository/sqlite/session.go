package sqlite

import (
	"context"
	"fmt"
	"time"

	"intelligent-voice-backend/internal/voice"
)

// Create inserts a new voice session and returns the stored record.
func (s *Store) Create(ctx context.Context, session voice.Session) (voice.Session, error) {
	now := time.Now().UTC()
	if session.Intent == "" {
		session.Intent = "welcome"
	}
	session.CreatedAt = now
	session.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO voice_sessions (session_uuid, user_id, intent, transcript, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, session.UUID, session.UserID, session.Intent, session.Transcript,
		session.Completed, now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return voice.Session{}, fmt.Errorf("create session: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		session.ID = id
	}

	return session, nil
}
