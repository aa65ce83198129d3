package usecase

import (
	"context"

	"intelligent-voice-backend/internal/voice"
)

// GetMemory returns the user's current memory record. Unknown users get
// the default record.
func (uc *implUseCase) GetMemory(ctx context.Context, userID string) (voice.Memory, error) {
	if userID == "" {
		return nil, voice.ErrEmptyUserID
	}

	memory, err := uc.memoryRepo.Load(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to load memory for user %s: %v", LogPrefixGetMemory, userID, err)
		return nil, err
	}
	return memory, nil
}
