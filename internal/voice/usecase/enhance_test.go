package usecase

import (
	"testing"

	"intelligent-voice-backend/internal/pagecontext"
	"intelligent-voice-backend/internal/voice"
)

func TestEnhanceAction(t *testing.T) {
	pc := pagecontext.New(nil).Analyze("/", nil)

	t.Run("Nil Action", func(t *testing.T) {
		if got := enhanceAction(nil, pc); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("Highlight Target Remapped", func(t *testing.T) {
		in := &voice.Action{Type: voice.ActionHighlight, Target: "create_course_btn"}
		got := enhanceAction(in, pc)
		if got.Target != "button:contains('Create course')" {
			t.Errorf("expected concrete selector, got %s", got.Target)
		}
		if in.Target != "create_course_btn" {
			t.Error("input action must not be mutated")
		}
	})

	t.Run("Click Target Remapped", func(t *testing.T) {
		in := &voice.Action{Type: voice.ActionClick, Target: "course_cards"}
		got := enhanceAction(in, pc)
		if got.Target == "course_cards" {
			t.Errorf("expected remapped target, got %s", got.Target)
		}
	})

	t.Run("Unknown Target Passes Through", func(t *testing.T) {
		in := &voice.Action{Type: voice.ActionHighlight, Target: "mystery_widget"}
		got := enhanceAction(in, pc)
		if got.Target != "mystery_widget" {
			t.Errorf("expected pass-through, got %s", got.Target)
		}
	})

	t.Run("Navigate Untouched", func(t *testing.T) {
		in := &voice.Action{Type: voice.ActionNavigate, Target: "/signup"}
		got := enhanceAction(in, pc)
		if got.Target != "/signup" {
			t.Errorf("expected untouched target, got %s", got.Target)
		}
	})
}
