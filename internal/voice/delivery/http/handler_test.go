package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"intelligent-voice-backend/internal/voice"
)

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

type mockUseCase struct {
	intentOut  voice.IntentOutput
	intentErr  error
	commandOut voice.CommandOutput
	commandErr error
	logErr     error
	memory     voice.Memory
	memoryErr  error
	events     []voice.Event
	session    voice.Session
	sessionErr error

	lastIntentInput  voice.IntentInput
	lastCommandInput voice.CommandInput
	lastSession      voice.Session
	lastLimit        int
}

func (m *mockUseCase) ProcessIntent(ctx context.Context, input voice.IntentInput) (voice.IntentOutput, error) {
	m.lastIntentInput = input
	return m.intentOut, m.intentErr
}

func (m *mockUseCase) ProcessCommand(ctx context.Context, input voice.CommandInput) (voice.CommandOutput, error) {
	m.lastCommandInput = input
	return m.commandOut, m.commandErr
}

func (m *mockUseCase) LogEvent(ctx context.Context, event voice.Event) error {
	return m.logErr
}

func (m *mockUseCase) GetMemory(ctx context.Context, userID string) (voice.Memory, error) {
	return m.memory, m.memoryErr
}

func (m *mockUseCase) GetAnalytics(ctx context.Context, userID string, limit int) ([]voice.Event, error) {
	m.lastLimit = limit
	return m.events, nil
}

func (m *mockUseCase) CreateSession(ctx context.Context, session voice.Session) (voice.Session, error) {
	m.lastSession = session
	if m.sessionErr != nil {
		return voice.Session{}, m.sessionErr
	}
	session.ID = 1
	return session, nil
}

func newTestRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)

	api := r.Group("/api")
	voiceGroup := api.Group("/voice")
	voiceGroup.POST("/intent", h.ProcessIntent)
	voiceGroup.POST("/command", h.ProcessCommand)
	voiceGroup.POST("/log", h.LogEvent)
	voiceGroup.POST("/sessions", h.CreateSession)
	voiceGroup.GET("/memory/:user_id", h.GetMemory)
	voiceGroup.GET("/analytics/:user_id", h.GetAnalytics)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProcessIntentHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{intentOut: voice.IntentOutput{
			Intent:       voice.IntentCreateAccount,
			ResponseText: "Taking you to sign up.",
			Memory:       voice.Memory{"currentStep": "signup"},
			Action:       &voice.Action{Type: voice.ActionNavigate, Target: "/signup"},
		}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/voice/intent", map[string]any{
			"userId":       "u1",
			"utterance":    "I want to sign up",
			"currentRoute": "/",
			"pageContext":  map[string]any{"hasCourses": false},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastIntentInput.UserID != "u1" || uc.lastIntentInput.Route != "/" {
			t.Errorf("input not forwarded: %+v", uc.lastIntentInput)
		}
		if !strings.Contains(w.Body.String(), "create_account") {
			t.Errorf("expected intent in body: %s", w.Body.String())
		}
	})

	t.Run("Empty Utterance Is Bad Request", func(t *testing.T) {
		uc := &mockUseCase{intentErr: voice.ErrEmptyUtterance}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/voice/intent", map[string]any{"utterance": ""})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Malformed Body Is Bad Request", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		req := httptest.NewRequest(http.MethodPost, "/api/voice/intent", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProcessCommandHandler(t *testing.T) {
	uc := &mockUseCase{commandOut: voice.CommandOutput{
		Command:      voice.CommandStop,
		ResponseText: "Voice assistant stopped. You can restart anytime.",
		Memory:       voice.Memory{"currentStep": "stopped"},
	}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/voice/command", map[string]any{
		"userId":  "u1",
		"command": "stop",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.lastCommandInput.Command != "stop" {
		t.Errorf("command not forwarded: %+v", uc.lastCommandInput)
	}
}

func TestLogEventHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := doJSON(t, r, http.MethodPost, "/api/voice/log", map[string]any{
			"userId":    "u1",
			"eventType": "intent_processed",
			"intent":    "help",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Missing Event Type", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{logErr: voice.ErrEmptyEventType})
		w := doJSON(t, r, http.MethodPost, "/api/voice/log", map[string]any{"userId": "u1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCreateSessionHandler(t *testing.T) {
	t.Run("Generates UUID When Missing", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/voice/sessions", map[string]any{
			"transcript": "create a course",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastSession.UUID == "" {
			t.Error("expected generated session uuid")
		}
	})

	t.Run("Rejects Invalid UUID", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := doJSON(t, r, http.MethodPost, "/api/voice/sessions", map[string]any{
			"sessionUuid": "not-a-uuid",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGetMemoryHandler(t *testing.T) {
	uc := &mockUseCase{memory: voice.Memory{"currentStep": "welcome"}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/api/voice/memory/u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "welcome") {
		t.Errorf("expected memory in body: %s", w.Body.String())
	}
}

func TestGetAnalyticsHandler(t *testing.T) {
	t.Run("Limit Forwarded", func(t *testing.T) {
		uc := &mockUseCase{events: []voice.Event{{UserID: "u1", Intent: "help"}}}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/api/voice/analytics/u1?limit=5", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastLimit != 5 {
			t.Errorf("expected limit 5, got %d", uc.lastLimit)
		}
	})

	t.Run("Invalid Limit Is Bad Request", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := doJSON(t, r, http.MethodGet, "/api/voice/analytics/u1?limit=abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
