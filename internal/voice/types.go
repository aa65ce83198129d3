package voice

import (
	"time"

	"intelligent-voice-backend/internal/model"
)

// Intent tags produced by the resolvers.
const (
	IntentStop           = "stop"
	IntentHelp           = "help"
	IntentCreateCourse   = "create_course"
	IntentBrowseCourses  = "browse_courses"
	IntentCreateAccount  = "create_account"
	IntentReadPage       = "read_page"
	IntentFindElement    = "find_element"
	IntentConfirm        = "confirm"
	IntentContextualHelp = "contextual_help"
	IntentUnknown        = "unknown"
	IntentError          = "error"
)

// Action types understood by the frontend.
const (
	ActionNavigate  = "navigate"
	ActionHighlight = "highlight"
	ActionClick     = "click"
	ActionFormFill  = "form_fill"
	ActionSpeak     = "speak"
	ActionConfirm   = "confirm"
)

// Commands accepted by the control-command path.
const (
	CommandStop   = "stop"
	CommandRepeat = "repeat"
	CommandRetry  = "retry"
)

// Memory is the per-user dialogue state carried across turns.
type Memory map[string]any

// Merge returns a copy of m with the patch applied on top. Keys not
// present in the patch are preserved; neither input is mutated.
func (m Memory) Merge(patch Memory) Memory {
	merged := make(Memory, len(m)+len(patch))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// DefaultMemory is the fixed initial record for a user with no stored state.
func DefaultMemory() Memory {
	return Memory{
		"currentStep":        "welcome",
		"onboardingProgress": []any{},
		"lastResponse":       DefaultGreeting,
	}
}

// DefaultGreeting is the assistant's canned first response.
const DefaultGreeting = "Hi! I'm your learning assistant. I can help you create an account, join a course, or submit your first task."

// Action is a concrete UI instruction for the caller to execute.
type Action struct {
	Type    string         `json:"type"`
	Target  string         `json:"target,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// Resolution is the output of either resolver. MemoryPatch holds only
// the fields this turn contributes; the orchestrator merges it into the
// stored record.
type Resolution struct {
	Intent               string
	Slots                map[string]any
	ResponseText         string
	MemoryPatch          Memory
	Action               *Action
	RequiresConfirmation bool
}

// Event is one append-only analytics record.
type Event struct {
	ID             string          `json:"id,omitempty"`
	UserID         string          `json:"userId"`
	EventType      model.EventType `json:"eventType"`
	Intent         string          `json:"intent,omitempty"`
	Slots          map[string]any  `json:"slots,omitempty"`
	MemorySnapshot Memory          `json:"memorySnapshot,omitempty"`
	ResponseText   string          `json:"responseText,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// Session is one voice session record.
type Session struct {
	ID         int64     `json:"id,omitempty"`
	UUID       string    `json:"sessionUuid"`
	UserID     string    `json:"userId,omitempty"`
	Intent     string    `json:"intent"`
	Transcript string    `json:"transcript"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// Interaction is one logged conversation exchange.
type Interaction struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"userId"`
	UserMessage string    `json:"userMessage"`
	AIResponse  string    `json:"aiResponse"`
	Intent      string    `json:"intent"`
	ActionTaken string    `json:"actionTaken,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// IntentInput is the caller-facing turn request.
type IntentInput struct {
	UserID      string
	Utterance   string
	Memory      Memory
	Route       string
	PageSignals map[string]any
}

// IntentOutput is the caller-facing turn response.
type IntentOutput struct {
	Intent               string         `json:"intent"`
	Slots                map[string]any `json:"slots"`
	ResponseText         string         `json:"responseText"`
	Memory               Memory         `json:"memory"`
	Action               *Action        `json:"action,omitempty"`
	RequiresConfirmation bool           `json:"requiresConfirmation"`
}

// CommandInput is the control-command request.
type CommandInput struct {
	UserID  string
	Command string
	Memory  Memory
}

// CommandOutput is the control-command response.
type CommandOutput struct {
	Command      string `json:"command"`
	ResponseText string `json:"responseText"`
	Memory       Memory `json:"memory"`
}
