package usecase

import (
	"context"
	"encoding/json"

	"intelligent-voice-backend/internal/voice"
)

// emitEvent appends an analytics event. Analytics are best effort and
// never fail the turn.
func (uc *implUseCase) emitEvent(ctx context.Context, event voice.Event) {
	if uc.analyticsRepo == nil {
		return
	}
	if err := uc.analyticsRepo.Append(ctx, event); err != nil {
		uc.l.Warnf(ctx, "%s: failed to append analytics event: %v", LogPrefixProcessIntent, err)
	}
}

// logInteraction records the exchange for debugging. Best effort.
func (uc *implUseCase) logInteraction(ctx context.Context, userID, utterance string, res voice.Resolution, action *voice.Action) {
	if uc.interactRepo == nil {
		return
	}

	actionTaken := ""
	if b, err := json.Marshal(map[string]any{"action": action}); err == nil {
		actionTaken = string(b)
	}

	err := uc.interactRepo.AppendInteraction(ctx, voice.Interaction{
		UserID:      userID,
		UserMessage: utterance,
		AIResponse:  res.ResponseText,
		Intent:      res.Intent,
		ActionTaken: actionTaken,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: failed to log interaction: %v", LogPrefixProcessIntent, err)
	}
}
