package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"intelligent-voice-backend/internal/voice"
)

// Load returns the stored memory for the user, or the default record if
// none exists.
func (s *Store) Load(ctx context.Context, userID string) (voice.Memory, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT memory_data FROM voice_memory WHERE user_id = ?`, userID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return voice.DefaultMemory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load memory: %w", err)
	}

	var memory voice.Memory
	if err := json.Unmarshal([]byte(raw), &memory); err != nil {
		// A corrupt record must not break the turn; start over from the default.
		s.l.Warnf(ctx, "corrupt memory record for user %s, resetting: %v", userID, err)
		return voice.DefaultMemory(), nil
	}

	return memory, nil
}

// Save upserts the user's memory record in a single statement, so a
// concurrent save for the same user is last-write-wins but never partial.
func (s *Store) Save(ctx context.Context, userID string, memory voice.Memory) error {
	raw, err := json.Marshal(memory)
	if err != nil {
		return fmt.Errorf("marshal memory: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO voice_memory (user_id, memory_data, last_updated)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			memory_data = excluded.memory_data,
			last_updated = excluded.last_updated
	`, userID, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save memory: %w", err)
	}

	return nil
}
