package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestGenerateContent(t *testing.T) {
	req := &Request{
		Messages: []Message{{Role: "user", Content: "hello"}},
	}

	t.Run("Success With Primary Provider", func(t *testing.T) {
		primary := &mockProvider{
			name:  "primary",
			model: "primary-model",
			response: &Response{
				Content:      Message{Role: "assistant", Content: "hello back"},
				ProviderName: "primary",
				ModelName:    "primary-model",
				Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
			},
		}
		secondary := &mockProvider{name: "secondary", model: "secondary-model"}

		m := NewManager([]Provider{primary, secondary}, &Config{
			FallbackEnabled: true,
			RetryAttempts:   1,
		}, &mockLogger{})

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Content != "hello back" {
			t.Errorf("unexpected content: %q", resp.Content.Content)
		}
		if secondary.callCount != 0 {
			t.Errorf("secondary provider should not be called, got %d calls", secondary.callCount)
		}
	})

	t.Run("Fallback To Secondary Provider", func(t *testing.T) {
		primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
		secondary := &mockProvider{
			name:  "secondary",
			model: "m2",
			response: &Response{
				Content: Message{Role: "assistant", Content: "from secondary"},
				Usage:   &Usage{},
			},
		}

		logger := &mockLogger{}
		m := NewManager([]Provider{primary, secondary}, &Config{
			FallbackEnabled: true,
			RetryAttempts:   1,
		}, logger)

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Content != "from secondary" {
			t.Errorf("unexpected content: %q", resp.Content.Content)
		}
		if len(logger.warnMessages) == 0 {
			t.Errorf("expected a failure warning for the primary provider")
		}
	})

	t.Run("Fallback Disabled Stops After First Provider", func(t *testing.T) {
		primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
		secondary := &mockProvider{name: "secondary", model: "m2"}

		m := NewManager([]Provider{primary, secondary}, &Config{
			FallbackEnabled: false,
			RetryAttempts:   1,
		}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if secondary.callCount != 0 {
			t.Errorf("secondary provider should not be called when fallback disabled")
		}
	})

	t.Run("All Providers Fail", func(t *testing.T) {
		m := NewManager([]Provider{
			&mockProvider{name: "a", model: "m", shouldFail: true},
			&mockProvider{name: "b", model: "m", shouldFail: true},
		}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("No Providers Configured", func(t *testing.T) {
		m := NewManager(nil, &Config{}, &mockLogger{})
		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("Retry Counts Attempts", func(t *testing.T) {
		primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
		m := NewManager([]Provider{primary}, &Config{
			FallbackEnabled: false,
			RetryAttempts:   3,
			RetryDelay:      time.Millisecond,
		}, &mockLogger{})

		_, err := m.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatal("expected error")
		}
		if primary.callCount != 3 {
			t.Errorf("expected 3 attempts, got %d", primary.callCount)
		}
	})
}
