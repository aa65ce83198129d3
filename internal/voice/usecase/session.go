package usecase

import (
	"context"

	"intelligent-voice-backend/internal/model"
	"intelligent-voice-backend/internal/voice"
)

// CreateSession records a new voice session.
func (uc *implUseCase) CreateSession(ctx context.Context, session voice.Session) (voice.Session, error) {
	if session.UserID == "" {
		session.UserID = model.AnonymousUserID
	}

	created, err := uc.sessionRepo.Create(ctx, session)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to create session %s: %v", LogPrefixCreateSession, session.UUID, err)
		return voice.Session{}, err
	}

	uc.l.Infof(ctx, "%s: created session %s for user %s", LogPrefixCreateSession, created.UUID, created.UserID)
	return created, nil
}
