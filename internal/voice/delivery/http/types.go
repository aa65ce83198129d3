package http

import (
	"intelligent-voice-backend/internal/model"
	"intelligent-voice-backend/internal/voice"
)

type intentReq struct {
	UserID       string         `json:"userId"`
	Utterance    string         `json:"utterance"`
	Memory       map[string]any `json:"memory"`
	CurrentRoute string         `json:"currentRoute"`
	PageContext  map[string]any `json:"pageContext"`
}

func (r intentReq) toInput() voice.IntentInput {
	return voice.IntentInput{
		UserID:      r.UserID,
		Utterance:   r.Utterance,
		Memory:      r.Memory,
		Route:       r.CurrentRoute,
		PageSignals: r.PageContext,
	}
}

type commandReq struct {
	UserID  string         `json:"userId"`
	Command string         `json:"command"`
	Memory  map[string]any `json:"memory"`
}

func (r commandReq) toInput() voice.CommandInput {
	return voice.CommandInput{
		UserID:  r.UserID,
		Command: r.Command,
		Memory:  r.Memory,
	}
}

type eventReq struct {
	UserID         string         `json:"userId"`
	EventType      string         `json:"eventType"`
	Intent         string         `json:"intent"`
	Slots          map[string]any `json:"slots"`
	MemorySnapshot map[string]any `json:"memorySnapshot"`
	ResponseText   string         `json:"responseText"`
}

func (r eventReq) toEvent() voice.Event {
	return voice.Event{
		UserID:         r.UserID,
		EventType:      model.EventType(r.EventType),
		Intent:         r.Intent,
		Slots:          r.Slots,
		MemorySnapshot: r.MemorySnapshot,
		ResponseText:   r.ResponseText,
	}
}

type sessionReq struct {
	SessionUUID string `json:"sessionUuid"`
	UserID      string `json:"userId"`
	Intent      string `json:"intent"`
	Transcript  string `json:"transcript"`
}

func (r sessionReq) toSession() voice.Session {
	return voice.Session{
		UUID:       r.SessionUUID,
		UserID:     r.UserID,
		Intent:     r.Intent,
		Transcript: r.Transcript,
	}
}

type sessionResp struct {
	SessionUUID string `json:"sessionUuid"`
	Status      string `json:"status"`
}

type memoryResp struct {
	UserID string       `json:"userId"`
	Memory voice.Memory `json:"memory"`
}

type analyticsResp struct {
	UserID string        `json:"userId"`
	Events []voice.Event `json:"events"`
	Count  int           `json:"count"`
}
