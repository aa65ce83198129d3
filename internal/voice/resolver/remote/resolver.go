package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"intelligent-voice-backend/internal/voice"
	"intelligent-voice-backend/internal/voice/resolver"
	"intelligent-voice-backend/pkg/llmprovider"
	"intelligent-voice-backend/pkg/log"
)

// Generator is the slice of the provider manager the resolver needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Resolver asks an LLM to interpret the utterance against the page
// context and conversation memory. Any failure, from transport errors
// to unparseable replies, surfaces as resolver.ErrRemoteUnavailable so
// the caller can fall back to the deterministic resolver.
type Resolver struct {
	llm Generator
	l   log.Logger
}

var _ resolver.Resolver = (*Resolver)(nil)

func New(llm Generator, l log.Logger) *Resolver {
	return &Resolver{llm: llm, l: l}
}

// llmReply mirrors the JSON object the prompt asks the model for.
type llmReply struct {
	Intent               string         `json:"intent"`
	ResponseText         string         `json:"responseText"`
	Slots                map[string]any `json:"slots"`
	Memory               map[string]any `json:"memory"`
	Action               *llmAction     `json:"action"`
	RequiresConfirmation bool           `json:"requiresConfirmation"`
}

type llmAction struct {
	Type    string         `json:"type"`
	Target  string         `json:"target"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

var validIntents = map[string]struct{}{
	voice.IntentStop:           {},
	voice.IntentHelp:           {},
	voice.IntentCreateCourse:   {},
	voice.IntentBrowseCourses:  {},
	voice.IntentCreateAccount:  {},
	voice.IntentReadPage:       {},
	voice.IntentFindElement:    {},
	voice.IntentConfirm:        {},
	voice.IntentContextualHelp: {},
}

func (r *Resolver) Resolve(ctx context.Context, input resolver.Input) (voice.Resolution, error) {
	pcJSON, err := json.Marshal(input.PageContext)
	if err != nil {
		return voice.Resolution{}, fmt.Errorf("%s: marshal page context: %w", LogPrefixResolve, resolver.ErrRemoteUnavailable)
	}

	memory := input.Memory
	if memory == nil {
		memory = voice.Memory{}
	}
	memJSON, err := json.Marshal(memory)
	if err != nil {
		return voice.Resolution{}, fmt.Errorf("%s: marshal memory: %w", LogPrefixResolve, resolver.ErrRemoteUnavailable)
	}

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Content: PromptSystem},
		Messages: []llmprovider.Message{
			{Role: "user", Content: fmt.Sprintf(PromptUser, pcJSON, memJSON, input.Utterance)},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixResolve, ErrMsgLLMCallFailed, err)
		return voice.Resolution{}, fmt.Errorf("%s: %v: %w", LogPrefixResolve, err, resolver.ErrRemoteUnavailable)
	}

	text := stripCodeFences(resp.Content.Content)
	if text == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixResolve, ErrMsgEmptyResponse)
		return voice.Resolution{}, fmt.Errorf("%s: %s: %w", LogPrefixResolve, ErrMsgEmptyResponse, resolver.ErrRemoteUnavailable)
	}

	var reply llmReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixResolve, ErrMsgJSONParseFailed, err)
		return voice.Resolution{}, fmt.Errorf("%s: %s: %w", LogPrefixResolve, ErrMsgJSONParseFailed, resolver.ErrRemoteUnavailable)
	}

	reply.Intent = strings.TrimSpace(strings.ToLower(reply.Intent))
	if _, ok := validIntents[reply.Intent]; !ok || strings.TrimSpace(reply.ResponseText) == "" {
		r.l.Warnf(ctx, "%s: %s: intent=%q", LogPrefixResolve, ErrMsgInvalidIntent, reply.Intent)
		return voice.Resolution{}, fmt.Errorf("%s: %s: %w", LogPrefixResolve, ErrMsgInvalidIntent, resolver.ErrRemoteUnavailable)
	}

	r.l.Infof(ctx, "%s: resolved intent=%s provider=%s model=%s", LogPrefixResolve, reply.Intent, resp.ProviderName, resp.ModelName)

	patch := voice.Memory{}
	for k, v := range reply.Memory {
		patch[k] = v
	}
	patch["lastRoute"] = input.PageContext.Route
	patch["lastContext"] = input.PageContext
	patch["lastInteraction"] = time.Now().UTC().Format(time.RFC3339)

	res := voice.Resolution{
		Intent:               reply.Intent,
		Slots:                reply.Slots,
		ResponseText:         reply.ResponseText,
		MemoryPatch:          patch,
		RequiresConfirmation: reply.RequiresConfirmation,
	}
	if res.Slots == nil {
		res.Slots = map[string]any{}
	}
	if reply.Action != nil && reply.Action.Type != "" {
		res.Action = &voice.Action{
			Type:    reply.Action.Type,
			Target:  reply.Action.Target,
			Message: reply.Action.Message,
			Data:    reply.Action.Data,
		}
	}
	return res, nil
}

// stripCodeFences removes a surrounding markdown code block, which some
// models add despite being asked for raw JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
