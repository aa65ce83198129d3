package usecase

import (
	"intelligent-voice-backend/internal/pagecontext"
	"intelligent-voice-backend/internal/voice"
)

// enhanceAction maps abstract element names in highlight and click
// actions onto the page's concrete selectors. Targets without a
// selector entry pass through unchanged, as do all other action types.
func enhanceAction(action *voice.Action, pc pagecontext.PageContext) *voice.Action {
	if action == nil {
		return nil
	}

	out := *action
	if out.Type == voice.ActionHighlight || out.Type == voice.ActionClick {
		if sel, ok := pc.Selectors[out.Target]; ok && out.Target != "" {
			out.Target = sel
		}
	}
	return &out
}
