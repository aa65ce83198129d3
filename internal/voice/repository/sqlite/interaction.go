package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"intelligent-voice-backend/internal/voice"
)

// AppendInteraction logs one conversation exchange.
func (s *Store) AppendInteraction(ctx context.Context, interaction voice.Interaction) error {
	if interaction.ID == "" {
		interaction.ID = ulid.Make().String()
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO voice_interactions (id, user_id, user_message, ai_response, intent, action_taken, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, interaction.ID, interaction.UserID, interaction.UserMessage, interaction.AIResponse,
		interaction.Intent, interaction.ActionTaken, interaction.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append interaction: %w", err)
	}

	return nil
}
