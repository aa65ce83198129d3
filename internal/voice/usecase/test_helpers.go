package usecase

import (
	"context"
	"fmt"

	"intelligent-voice-backend/internal/voice"
	"intelligent-voice-backend/internal/voice/resolver"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// In-memory memory repository
type mockMemoryRepo struct {
	records map[string]voice.Memory
	loadErr error
	saveErr error
	saves   int
}

func newMockMemoryRepo() *mockMemoryRepo {
	return &mockMemoryRepo{records: map[string]voice.Memory{}}
}

func (m *mockMemoryRepo) Load(ctx context.Context, userID string) (voice.Memory, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if rec, ok := m.records[userID]; ok {
		return rec, nil
	}
	return voice.DefaultMemory(), nil
}

func (m *mockMemoryRepo) Save(ctx context.Context, userID string, memory voice.Memory) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.records[userID] = memory
	return nil
}

// In-memory analytics repository
type mockAnalyticsRepo struct {
	events    []voice.Event
	appendErr error
	listErr   error
}

func (m *mockAnalyticsRepo) Append(ctx context.Context, event voice.Event) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockAnalyticsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]voice.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []voice.Event{}
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		if m.events[i].UserID == userID {
			out = append(out, m.events[i])
		}
	}
	return out, nil
}

// In-memory session repository
type mockSessionRepo struct {
	sessions  []voice.Session
	createErr error
}

func (m *mockSessionRepo) Create(ctx context.Context, session voice.Session) (voice.Session, error) {
	if m.createErr != nil {
		return voice.Session{}, m.createErr
	}
	session.ID = int64(len(m.sessions) + 1)
	m.sessions = append(m.sessions, session)
	return session, nil
}

// In-memory interaction repository
type mockInteractionRepo struct {
	interactions []voice.Interaction
}

func (m *mockInteractionRepo) AppendInteraction(ctx context.Context, interaction voice.Interaction) error {
	m.interactions = append(m.interactions, interaction)
	return nil
}

// Scripted resolver
type mockResolver struct {
	resolution voice.Resolution
	err        error
	panicMsg   string
	calls      int
	lastInput  resolver.Input
}

func (m *mockResolver) Resolve(ctx context.Context, input resolver.Input) (voice.Resolution, error) {
	m.calls++
	m.lastInput = input
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	if m.err != nil {
		return voice.Resolution{}, m.err
	}
	return m.resolution, nil
}

var errRemoteDown = fmt.Errorf("llm timed out: %w", resolver.ErrRemoteUnavailable)
