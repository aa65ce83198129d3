package usecase

import (
	"context"
	"strings"
	"time"

	"intelligent-voice-backend/internal/model"
	"intelligent-voice-backend/internal/voice"
)

// ProcessCommand handles control commands without touching the
// resolver chain.
func (uc *implUseCase) ProcessCommand(ctx context.Context, input voice.CommandInput) (voice.CommandOutput, error) {
	command := strings.ToLower(strings.TrimSpace(input.Command))
	if command == "" {
		return voice.CommandOutput{}, voice.ErrEmptyCommand
	}

	userID := input.UserID
	if userID == "" {
		userID = model.AnonymousUserID
	}

	uc.l.Infof(ctx, "%s: user=%s command=%s", LogPrefixProcessCommand, userID, command)

	memory := uc.loadMemory(ctx, userID)
	memory = memory.Merge(input.Memory)

	var responseText string
	switch command {
	case voice.CommandStop:
		responseText = ResponseCommandStop
		memory = memory.Merge(voice.Memory{"currentStep": "stopped"})
	case voice.CommandRepeat:
		responseText = ResponseCommandRepeat
		if last, ok := memory["lastResponse"].(string); ok && last != "" {
			responseText = last
		}
	case voice.CommandRetry:
		responseText = ResponseCommandRetry
		memory = memory.Merge(voice.Memory{"currentStep": "welcome"})
	default:
		responseText = ResponseCommandUnknown
	}

	if err := uc.memoryRepo.Save(ctx, userID, memory); err != nil {
		uc.l.Warnf(ctx, "%s: failed to save memory for user %s: %v", LogPrefixProcessCommand, userID, err)
	}

	uc.emitEvent(ctx, voice.Event{
		UserID:         userID,
		EventType:      model.EventCommandProcessed,
		Intent:         command,
		Slots:          map[string]any{"command": command},
		MemorySnapshot: memory,
		ResponseText:   responseText,
		Timestamp:      time.Now().UTC(),
	})

	return voice.CommandOutput{
		Command:      command,
		ResponseText: responseText,
		Memory:       memory,
	}, nil
}
