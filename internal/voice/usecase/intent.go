package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"intelligent-voice-backend/internal/model"
	"intelligent-voice-backend/internal/voice"
	"intelligent-voice-backend/internal/voice/resolver"
)

// ProcessIntent runs one conversational turn.
func (uc *implUseCase) ProcessIntent(ctx context.Context, input voice.IntentInput) (out voice.IntentOutput, err error) {
	if strings.TrimSpace(input.Utterance) == "" {
		return voice.IntentOutput{}, voice.ErrEmptyUtterance
	}

	userID := input.UserID
	if userID == "" {
		userID = model.AnonymousUserID
	}

	// A broken turn still answers. The caller gets an apology and a
	// retry prompt instead of a transport error.
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: recovered from panic: %v", LogPrefixProcessIntent, r)
			out = errorTurnOutput(input.Memory)
			err = nil
		}
	}()

	uc.l.Infof(ctx, "%s: user=%s utterance=%q route=%s", LogPrefixProcessIntent, userID, input.Utterance, input.Route)

	memory := uc.loadMemory(ctx, userID)
	memory = memory.Merge(input.Memory)

	pc := uc.analyzer.Analyze(input.Route, input.PageSignals)

	res := uc.resolve(ctx, resolver.Input{
		Utterance:   input.Utterance,
		Memory:      memory,
		PageContext: pc,
		PageSignals: input.PageSignals,
	})

	merged := memory.Merge(res.MemoryPatch)
	merged["lastResponse"] = res.ResponseText

	action := res.Action
	if action == nil {
		action = defaultActionFor(res.Intent)
	}
	action = enhanceAction(action, pc)

	if err := uc.memoryRepo.Save(ctx, userID, merged); err != nil {
		uc.l.Warnf(ctx, "%s: failed to save memory for user %s: %v", LogPrefixProcessIntent, userID, err)
	}

	uc.emitEvent(ctx, voice.Event{
		UserID:         userID,
		EventType:      model.EventIntentProcessed,
		Intent:         res.Intent,
		Slots:          res.Slots,
		MemorySnapshot: merged,
		ResponseText:   res.ResponseText,
		Timestamp:      time.Now().UTC(),
	})
	uc.logInteraction(ctx, userID, input.Utterance, res, action)

	return voice.IntentOutput{
		Intent:               res.Intent,
		Slots:                res.Slots,
		ResponseText:         res.ResponseText,
		Memory:               merged,
		Action:               action,
		RequiresConfirmation: res.RequiresConfirmation,
	}, nil
}

// resolve tries the remote resolver first and falls back to the
// deterministic one. The fallback is silent from the caller's view.
func (uc *implUseCase) resolve(ctx context.Context, in resolver.Input) voice.Resolution {
	if uc.remote != nil {
		res, err := uc.remote.Resolve(ctx, in)
		if err == nil {
			return res
		}
		if errors.Is(err, resolver.ErrRemoteUnavailable) {
			uc.l.Warnf(ctx, "%s: remote resolver unavailable, falling back: %v", LogPrefixProcessIntent, err)
		} else {
			uc.l.Errorf(ctx, "%s: remote resolver failed, falling back: %v", LogPrefixProcessIntent, err)
		}
	}

	res, err := uc.local.Resolve(ctx, in)
	if err != nil {
		// The deterministic resolver is total; this is a bug guard.
		uc.l.Errorf(ctx, "%s: local resolver failed: %v", LogPrefixProcessIntent, err)
		return voice.Resolution{
			Intent:       voice.IntentError,
			Slots:        map[string]any{},
			ResponseText: ResponseTurnError,
			Action:       &voice.Action{Type: voice.ActionSpeak, Message: ResponseTurnError},
		}
	}
	return res
}

// loadMemory reads the user's stored memory, degrading to the default
// record on storage failure.
func (uc *implUseCase) loadMemory(ctx context.Context, userID string) voice.Memory {
	memory, err := uc.memoryRepo.Load(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: failed to load memory for user %s, using defaults: %v", LogPrefixProcessIntent, userID, err)
		return voice.DefaultMemory()
	}
	return memory
}

// errorTurnOutput is the apologetic response for a turn that blew up.
func errorTurnOutput(memory voice.Memory) voice.IntentOutput {
	if memory == nil {
		memory = voice.Memory{}
	}
	return voice.IntentOutput{
		Intent:       voice.IntentError,
		Slots:        map[string]any{},
		ResponseText: ResponseTurnError,
		Memory:       memory,
		Action:       &voice.Action{Type: voice.ActionSpeak, Message: ResponseTurnError},
	}
}

// defaultActionFor supplies an action for task intents whose resolver
// reply carried none, so the frontend always has something to do.
func defaultActionFor(intent string) *voice.Action {
	switch intent {
	case voice.IntentCreateCourse:
		return &voice.Action{Type: voice.ActionHighlight, Target: "create_course_btn", Message: "Create a new course"}
	case voice.IntentBrowseCourses:
		return &voice.Action{Type: voice.ActionNavigate, Target: "/", Message: "Browse available courses"}
	case voice.IntentCreateAccount:
		return &voice.Action{Type: voice.ActionNavigate, Target: "/signup", Message: "Create your account"}
	default:
		return nil
	}
}
