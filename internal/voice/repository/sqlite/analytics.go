package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"intelligent-voice-backend/internal/model"
	"intelligent-voice-backend/internal/voice"
)

// Append writes one analytics event. The event id is assigned here when
// the caller did not provide one.
func (s *Store) Append(ctx context.Context, event voice.Event) error {
	if event.ID == "" {
		event.ID = ulid.Make().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	slots, err := marshalOrNil(event.Slots)
	if err != nil {
		return fmt.Errorf("marshal slots: %w", err)
	}
	snapshot, err := marshalOrNil(event.MemorySnapshot)
	if err != nil {
		return fmt.Errorf("marshal memory snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO voice_analytics (id, user_id, event_type, intent, slots, memory_snapshot, response_text, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, event.ID, event.UserID, string(event.EventType), event.Intent,
		slots, snapshot, event.ResponseText, event.Timestamp.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append analytics event: %w", err)
	}

	return nil
}

// ListByUser returns the user's most recent events, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string, limit int) ([]voice.Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, event_type, intent, slots, memory_snapshot, response_text, timestamp
		FROM voice_analytics
		WHERE user_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list analytics events: %w", err)
	}
	defer rows.Close()

	events := make([]voice.Event, 0, limit)
	for rows.Next() {
		var ev voice.Event
		var eventType, timestamp string
		var intent, responseText, slots, snapshot *string
		if err := rows.Scan(&ev.ID, &ev.UserID, &eventType, &intent, &slots, &snapshot, &responseText, &timestamp); err != nil {
			return nil, fmt.Errorf("scan analytics event: %w", err)
		}

		ev.EventType = model.EventType(eventType)
		if intent != nil {
			ev.Intent = *intent
		}
		if responseText != nil {
			ev.ResponseText = *responseText
		}
		if slots != nil && *slots != "" {
			json.Unmarshal([]byte(*slots), &ev.Slots)
		}
		if snapshot != nil && *snapshot != "" {
			json.Unmarshal([]byte(*snapshot), &ev.MemorySnapshot)
		}
		if ts, err := time.Parse(time.RFC3339, timestamp); err == nil {
			ev.Timestamp = ts
		}

		events = append(events, ev)
	}

	return events, rows.Err()
}

func marshalOrNil(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(raw)
	return &s, nil
}
