package usecase

import (
	"context"
	"errors"
	"testing"

	"intelligent-voice-backend/internal/model"
	"intelligent-voice-backend/internal/pagecontext"
	"intelligent-voice-backend/internal/voice"
	"intelligent-voice-backend/internal/voice/resolver"
)

type ucFixture struct {
	uc        *implUseCase
	memory    *mockMemoryRepo
	analytics *mockAnalyticsRepo
	sessions  *mockSessionRepo
	interacts *mockInteractionRepo
	remote    *mockResolver
	local     *mockResolver
}

func newFixture(remote *mockResolver) *ucFixture {
	f := &ucFixture{
		memory:    newMockMemoryRepo(),
		analytics: &mockAnalyticsRepo{},
		sessions:  &mockSessionRepo{},
		interacts: &mockInteractionRepo{},
		remote:    remote,
		local: &mockResolver{resolution: voice.Resolution{
			Intent:       voice.IntentContextualHelp,
			Slots:        map[string]any{},
			ResponseText: "You're on the homepage.",
			MemoryPatch:  voice.Memory{"lastUtterance": "hello"},
		}},
	}

	f.uc = New(&mockLogger{}, pagecontext.New(nil), resolverOrNil(f.remote), f.local, f.memory, f.analytics, f.sessions, f.interacts)
	return f
}

func TestProcessIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Utterance", func(t *testing.T) {
		f := newFixture(nil)
		_, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "   "})
		if !errors.Is(err, voice.ErrEmptyUtterance) {
			t.Fatalf("expected ErrEmptyUtterance, got %v", err)
		}
	})

	t.Run("Local Only Turn", func(t *testing.T) {
		f := newFixture(nil)
		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "hello", Route: "/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != voice.IntentContextualHelp {
			t.Errorf("expected contextual_help, got %s", out.Intent)
		}
		if f.local.calls != 1 {
			t.Errorf("expected one local resolve, got %d", f.local.calls)
		}
		if out.Memory["lastResponse"] != "You're on the homepage." {
			t.Errorf("expected lastResponse recorded, got %v", out.Memory["lastResponse"])
		}
	})

	t.Run("Anonymous User Default", func(t *testing.T) {
		f := newFixture(nil)
		_, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := f.memory.records[model.AnonymousUserID]; !ok {
			t.Errorf("expected memory saved under anonymous user, got %v", f.memory.records)
		}
	})

	t.Run("Remote Preferred When Available", func(t *testing.T) {
		remote := &mockResolver{resolution: voice.Resolution{
			Intent:       voice.IntentCreateAccount,
			Slots:        map[string]any{},
			ResponseText: "Taking you to sign up.",
			Action:       &voice.Action{Type: voice.ActionNavigate, Target: "/signup"},
		}}
		f := newFixture(remote)

		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "sign up", Route: "/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != voice.IntentCreateAccount {
			t.Errorf("expected remote result, got %s", out.Intent)
		}
		if f.local.calls != 0 {
			t.Errorf("local resolver should not run, ran %d times", f.local.calls)
		}
	})

	t.Run("Silent Fallback On Remote Failure", func(t *testing.T) {
		remote := &mockResolver{err: errRemoteDown}
		f := newFixture(remote)

		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "hello", Route: "/"})
		if err != nil {
			t.Fatalf("fallback must be silent, got %v", err)
		}
		if out.Intent != voice.IntentContextualHelp {
			t.Errorf("expected local result, got %s", out.Intent)
		}
		if f.remote.calls != 1 || f.local.calls != 1 {
			t.Errorf("expected remote then local, got remote=%d local=%d", f.remote.calls, f.local.calls)
		}
	})

	t.Run("Memory Merged Across Turn", func(t *testing.T) {
		f := newFixture(nil)
		f.memory.records["u1"] = voice.Memory{"currentStep": "signup", "onboardingProgress": []any{"account"}}

		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{
			UserID:    "u1",
			Utterance: "hello",
			Memory:    voice.Memory{"clientFlag": true},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Memory["currentStep"] != "signup" {
			t.Errorf("stored memory lost: %v", out.Memory)
		}
		if out.Memory["clientFlag"] != true {
			t.Errorf("request memory lost: %v", out.Memory)
		}
		if out.Memory["lastUtterance"] != "hello" {
			t.Errorf("resolver patch lost: %v", out.Memory)
		}
		if got := f.memory.records["u1"]; got["lastUtterance"] != "hello" {
			t.Errorf("merged memory not persisted: %v", got)
		}
	})

	t.Run("Default Action For Task Intents", func(t *testing.T) {
		f := newFixture(nil)
		f.local.resolution = voice.Resolution{
			Intent:       voice.IntentCreateAccount,
			Slots:        map[string]any{},
			ResponseText: "Let's create your account.",
		}

		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "sign up", Route: "/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action == nil || out.Action.Type != voice.ActionNavigate || out.Action.Target != "/signup" {
			t.Errorf("expected default navigate action, got %+v", out.Action)
		}
	})

	t.Run("Action Target Enhanced With Selector", func(t *testing.T) {
		f := newFixture(nil)
		f.local.resolution = voice.Resolution{
			Intent:       voice.IntentCreateCourse,
			Slots:        map[string]any{},
			ResponseText: "Let's create a course.",
			Action:       &voice.Action{Type: voice.ActionHighlight, Target: "create_course_btn"},
		}

		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "create course", Route: "/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action == nil || out.Action.Target != "button:contains('Create course')" {
			t.Errorf("expected concrete selector, got %+v", out.Action)
		}
	})

	t.Run("Analytics And Interaction Recorded", func(t *testing.T) {
		f := newFixture(nil)
		_, err := f.uc.ProcessIntent(ctx, voice.IntentInput{UserID: "u1", Utterance: "hello", Route: "/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.analytics.events) != 1 {
			t.Fatalf("expected one analytics event, got %d", len(f.analytics.events))
		}
		ev := f.analytics.events[0]
		if ev.EventType != model.EventIntentProcessed || ev.Intent != voice.IntentContextualHelp {
			t.Errorf("unexpected event: %+v", ev)
		}
		if len(f.interacts.interactions) != 1 {
			t.Fatalf("expected one interaction, got %d", len(f.interacts.interactions))
		}
		if f.interacts.interactions[0].UserMessage != "hello" {
			t.Errorf("unexpected interaction: %+v", f.interacts.interactions[0])
		}
	})

	t.Run("Analytics Failure Does Not Fail Turn", func(t *testing.T) {
		f := newFixture(nil)
		f.analytics.appendErr = errors.New("disk full")

		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "hello", Route: "/"})
		if err != nil {
			t.Fatalf("analytics failure must not fail the turn: %v", err)
		}
		if out.ResponseText == "" {
			t.Error("expected a normal turn response")
		}
	})

	t.Run("Memory Load Failure Degrades To Defaults", func(t *testing.T) {
		f := newFixture(nil)
		f.memory.loadErr = errors.New("db locked")

		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{UserID: "u1", Utterance: "hello", Route: "/"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Memory["currentStep"] != "welcome" {
			t.Errorf("expected default memory, got %v", out.Memory)
		}
	})

	t.Run("Panic Recovered Into Error Turn", func(t *testing.T) {
		f := newFixture(nil)
		f.local.panicMsg = "boom"

		out, err := f.uc.ProcessIntent(ctx, voice.IntentInput{Utterance: "hello", Route: "/"})
		if err != nil {
			t.Fatalf("panic must not surface as error: %v", err)
		}
		if out.Intent != voice.IntentError {
			t.Errorf("expected error intent, got %s", out.Intent)
		}
		if out.Action == nil || out.Action.Type != voice.ActionSpeak {
			t.Errorf("expected apologetic speak action, got %+v", out.Action)
		}
	})
}

// resolverOrNil keeps a nil *mockResolver from turning into a non-nil
// interface value.
func resolverOrNil(m *mockResolver) resolver.Resolver {
	if m == nil {
		return nil
	}
	return m
}
