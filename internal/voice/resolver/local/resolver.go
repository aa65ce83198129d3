package local

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"intelligent-voice-backend/internal/pagecontext"
	"intelligent-voice-backend/internal/voice"
	"intelligent-voice-backend/internal/voice/resolver"
	"intelligent-voice-backend/pkg/log"
)

// Resolver is the deterministic phrase-pattern resolver. It is the
// system's ultimate fallback: it never fails and touches no network
// resource.
type Resolver struct {
	l log.Logger
}

var _ resolver.Resolver = (*Resolver)(nil)

// New creates a new deterministic resolver.
func New(l log.Logger) *Resolver {
	return &Resolver{l: l}
}

// Resolve classifies the utterance against the ordered phrase families.
// The returned error is always nil.
func (r *Resolver) Resolve(ctx context.Context, input resolver.Input) (voice.Resolution, error) {
	utterance := strings.ToLower(strings.TrimSpace(input.Utterance))
	pc := input.PageContext

	switch {
	case matchesAny(utterance, stopPhrases):
		return r.resolveStop(), nil
	case matchesAny(utterance, helpPhrases):
		return r.resolveHelp(pc), nil
	case matchesAny(utterance, createCoursePhrases):
		return r.resolveCreateCourse(pc), nil
	case matchesAny(utterance, browseCoursePhrases):
		return r.resolveBrowseCourses(pc), nil
	case matchesAny(utterance, createAccountPhrases):
		return r.resolveCreateAccount(pc), nil
	case matchesAny(utterance, readPagePhrases):
		return r.resolveReadPage(pc), nil
	case matchesAny(utterance, findElementPhrases):
		return r.resolveFindElement(utterance, pc), nil
	case matchesAny(utterance, confirmPhrases):
		return r.resolveConfirm(input.Memory, pc), nil
	default:
		return r.resolveDefault(input.Utterance, pc), nil
	}
}

func (r *Resolver) resolveStop() voice.Resolution {
	return voice.Resolution{
		Intent:       voice.IntentStop,
		Slots:        map[string]any{},
		ResponseText: stopResponse,
		MemoryPatch:  voice.Memory{"currentStep": "stopped"},
	}
}

func (r *Resolver) resolveHelp(pc pagecontext.PageContext) voice.Resolution {
	recommended := recommendedOrDefault(pc)
	available := strings.Join(pc.AvailableActions, ", ")

	return voice.Resolution{
		Intent: voice.IntentHelp,
		Slots:  map[string]any{"context": pc.RouteKey},
		ResponseText: fmt.Sprintf("You're on the %s. I recommend you %s. You can also %s.",
			pc.Description, recommended, available),
		MemoryPatch: voice.Memory{"lastContext": pc},
		Action: &voice.Action{
			Type:    voice.ActionSpeak,
			Message: fmt.Sprintf("Here's what you can do on this page: %s", available),
		},
	}
}

func (r *Resolver) resolveCreateCourse(pc pagecontext.PageContext) voice.Resolution {
	var responseText string
	var action *voice.Action

	if pc.RouteKey == pagecontext.RouteHome {
		if pc.PageState == pagecontext.StateNoCourses {
			responseText = "Perfect! This is exactly what you need to get started. Let me highlight the create course button for you."
			action = &voice.Action{
				Type:    voice.ActionHighlight,
				Target:  "create_course_btn",
				Message: "Click this button to create your first course",
			}
		} else {
			responseText = "I'll help you create a new course. Let me show you the create course button."
			action = &voice.Action{
				Type:    voice.ActionHighlight,
				Target:  "create_course_btn",
				Message: "Click here to create a new course",
			}
		}
	} else {
		responseText = "To create a course, let me take you to the home page where you can access the course creation tools."
		action = &voice.Action{
			Type:    voice.ActionNavigate,
			Target:  "/",
			Message: "Navigating to home page for course creation",
		}
	}

	return voice.Resolution{
		Intent:       voice.IntentCreateCourse,
		Slots:        map[string]any{"action": "create_course", "context": pc.RouteKey},
		ResponseText: responseText,
		MemoryPatch:  voice.Memory{"currentStep": "create_course", "lastContext": pc},
		Action:       action,
	}
}

func (r *Resolver) resolveBrowseCourses(pc pagecontext.PageContext) voice.Resolution {
	var responseText string
	var action *voice.Action

	if pc.RouteKey == pagecontext.RouteHome {
		if pc.PageState == pagecontext.StateNoCourses {
			responseText = "It looks like there aren't any courses available yet. Would you like to create your first course instead?"
			action = &voice.Action{
				Type:    voice.ActionHighlight,
				Target:  "create_course_btn",
				Message: "Try creating a course first",
			}
		} else {
			responseText = "Great! I can see the available courses here. Let me highlight them for you."
			action = &voice.Action{
				Type:    voice.ActionHighlight,
				Target:  "course_cards",
				Message: "Here are the available courses",
			}
		}
	} else {
		responseText = "Let me take you to the home page where you can browse and join courses."
		action = &voice.Action{
			Type:    voice.ActionNavigate,
			Target:  "/",
			Message: "Navigating to course browser",
		}
	}

	return voice.Resolution{
		Intent:       voice.IntentBrowseCourses,
		Slots:        map[string]any{"action": "browse_courses", "context": pc.RouteKey},
		ResponseText: responseText,
		MemoryPatch:  voice.Memory{"currentStep": "browse_courses", "lastContext": pc},
		Action:       action,
	}
}

func (r *Resolver) resolveCreateAccount(pc pagecontext.PageContext) voice.Resolution {
	var responseText string
	var action *voice.Action

	if pc.RouteKey == pagecontext.RouteSignup {
		switch pc.PageState {
		case pagecontext.StateFormEmpty:
			responseText = "Perfect! You're on the signup page. Let me guide you through creating your account. First, click on the email field."
			action = &voice.Action{
				Type:    voice.ActionHighlight,
				Target:  "email_field",
				Message: "Start by entering your email address here",
			}
		case pagecontext.StateFormPartial:
			responseText = "I see you've started filling out the form. Let me help you complete the remaining fields."
			action = &voice.Action{
				Type:    voice.ActionHighlight,
				Target:  "password_field",
				Message: "Complete the form by filling this field",
			}
		default:
			responseText = "Your form looks complete! You can now submit it to create your account."
			action = &voice.Action{
				Type:    voice.ActionHighlight,
				Target:  "signup_button",
				Message: "Click here to create your account",
			}
		}
	} else {
		responseText = "I'll take you to the signup page where you can create your account."
		action = &voice.Action{
			Type:    voice.ActionNavigate,
			Target:  "/signup",
			Message: "Navigating to account creation",
		}
	}

	return voice.Resolution{
		Intent:       voice.IntentCreateAccount,
		Slots:        map[string]any{"action": "signup", "context": pc.RouteKey},
		ResponseText: responseText,
		MemoryPatch:  voice.Memory{"currentStep": "create_account", "lastContext": pc},
		Action:       action,
	}
}

func (r *Resolver) resolveReadPage(pc pagecontext.PageContext) voice.Resolution {
	summary := fmt.Sprintf("This is the %s. %s", pc.Description, capitalize(recommendedOrDefault(pc)))

	return voice.Resolution{
		Intent:       voice.IntentReadPage,
		Slots:        map[string]any{"context": pc.RouteKey, "page_state": pc.PageState},
		ResponseText: summary,
		MemoryPatch:  voice.Memory{"lastContext": pc},
		Action:       &voice.Action{Type: voice.ActionSpeak, Message: summary},
	}
}

func (r *Resolver) resolveFindElement(utterance string, pc pagecontext.PageContext) voice.Resolution {
	// Match utterance words against selector names, in sorted order so the
	// outcome is deterministic.
	keys := make([]string, 0, len(pc.Selectors))
	for key := range pc.Selectors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		label := strings.ReplaceAll(key, "_", " ")
		for _, word := range strings.Fields(label) {
			if len(word) > 3 && strings.Contains(utterance, word) {
				// the target stays abstract; the enhancer maps it
				return voice.Resolution{
					Intent:       voice.IntentFindElement,
					Slots:        map[string]any{"element": key, "context": pc.RouteKey},
					ResponseText: fmt.Sprintf("I found the %s for you. Let me highlight it.", label),
					MemoryPatch:  voice.Memory{"lastContext": pc},
					Action: &voice.Action{
						Type:    voice.ActionHighlight,
						Target:  key,
						Message: fmt.Sprintf("Here is the %s", label),
					},
				}
			}
		}
	}

	labels := make([]string, len(keys))
	for i, key := range keys {
		labels[i] = strings.ReplaceAll(key, "_", " ")
	}

	responseText := fmt.Sprintf("On this page you can interact with: %s. Which one do you need?",
		strings.Join(labels, ", "))
	return voice.Resolution{
		Intent:       voice.IntentFindElement,
		Slots:        map[string]any{"context": pc.RouteKey},
		ResponseText: responseText,
		MemoryPatch:  voice.Memory{"lastContext": pc},
		Action:       &voice.Action{Type: voice.ActionSpeak, Message: responseText},
	}
}

func (r *Resolver) resolveConfirm(memory voice.Memory, pc pagecontext.PageContext) voice.Resolution {
	lastAction := recommendedOrDefault(pc)
	if v, ok := memory["lastSuggestedAction"].(string); ok && v != "" {
		lastAction = v
	}

	return voice.Resolution{
		Intent:       voice.IntentConfirm,
		Slots:        map[string]any{"confirmation": true, "context": pc.RouteKey},
		ResponseText: fmt.Sprintf("Great! Let me help you %s.", lastAction),
		MemoryPatch:  voice.Memory{"lastConfirmation": true, "confirmedAction": lastAction},
	}
}

func (r *Resolver) resolveDefault(utterance string, pc pagecontext.PageContext) voice.Resolution {
	recommended := recommendedOrDefault(pc)
	available := pc.AvailableActions

	suggestions := available
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}

	spoken := available
	if len(spoken) > 2 {
		spoken = spoken[:2]
	}

	return voice.Resolution{
		Intent: voice.IntentContextualHelp,
		Slots:  map[string]any{"context": pc.RouteKey, "page_state": pc.PageState},
		ResponseText: fmt.Sprintf("I'm not sure what you want to do with '%s', but based on where you are, I recommend you %s. You can also say: %s.",
			utterance, recommended, strings.Join(suggestions, ", ")),
		MemoryPatch: voice.Memory{"lastContext": pc, "lastUtterance": utterance},
		Action: &voice.Action{
			Type:    voice.ActionSpeak,
			Message: fmt.Sprintf("Try saying: %s", strings.Join(spoken, ", ")),
		},
	}
}

func matchesAny(utterance string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(utterance, phrase) {
			return true
		}
	}
	return false
}

func recommendedOrDefault(pc pagecontext.PageContext) string {
	if pc.RecommendedAction != "" {
		return pc.RecommendedAction
	}
	return fallbackRecommendation
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
