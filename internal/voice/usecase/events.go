package usecase

import (
	"context"
	"strings"
	"time"

	"intelligent-voice-backend/internal/model"
	"intelligent-voice-backend/internal/voice"
)

// LogEvent ingests a caller-side analytics event.
func (uc *implUseCase) LogEvent(ctx context.Context, event voice.Event) error {
	if strings.TrimSpace(string(event.EventType)) == "" {
		return voice.ErrEmptyEventType
	}
	if event.UserID == "" {
		event.UserID = model.AnonymousUserID
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := uc.analyticsRepo.Append(ctx, event); err != nil {
		uc.l.Errorf(ctx, "%s: failed to append event: %v", LogPrefixLogEvent, err)
		return err
	}
	return nil
}

// GetAnalytics returns the user's most recent events, newest first.
func (uc *implUseCase) GetAnalytics(ctx context.Context, userID string, limit int) ([]voice.Event, error) {
	if userID == "" {
		return nil, voice.ErrEmptyUserID
	}
	if limit <= 0 {
		limit = DefaultAnalyticsLimit
	}
	if limit > MaxAnalyticsLimit {
		limit = MaxAnalyticsLimit
	}

	events, err := uc.analyticsRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to list events for user %s: %v", LogPrefixGetAnalytics, userID, err)
		return nil, err
	}
	return events, nil
}
