package pagecontext_test

import (
	"testing"

	"intelligent-voice-backend/internal/pagecontext"
)

func TestAnalyzeRouteMatching(t *testing.T) {
	a := pagecontext.New(nil)

	cases := []struct {
		name  string
		route string
		want  string
	}{
		{"Root", "/", pagecontext.RouteHome},
		{"Home Alias", "/home", pagecontext.RouteHome},
		{"Signup", "/signup", pagecontext.RouteSignup},
		{"Signup With Query", "/signup?ref=welcome", pagecontext.RouteSignup},
		{"Login", "/login", pagecontext.RouteLogin},
		{"Course Detail", "/course/42", pagecontext.RouteCourseDetail},
		{"Admin Dashboard", "/school/admin/courses", pagecontext.RouteAdmin},
		{"Empty Route Defaults To Home", "", pagecontext.RouteHome},
		{"Unknown Route Defaults To Home", "/settings/profile", pagecontext.RouteHome},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pc := a.Analyze(tc.route, nil)
			if pc.RouteKey != tc.want {
				t.Errorf("route %q: expected key %q, got %q", tc.route, tc.want, pc.RouteKey)
			}
			if len(pc.Capabilities) == 0 {
				t.Errorf("route %q: expected non-empty capabilities", tc.route)
			}
			if len(pc.AvailableActions) == 0 {
				t.Errorf("route %q: expected non-empty available actions", tc.route)
			}
		})
	}
}

func TestAnalyzeHomeStates(t *testing.T) {
	a := pagecontext.New(nil)

	t.Run("No Courses", func(t *testing.T) {
		pc := a.Analyze("/", map[string]any{"hasCourses": false})
		if pc.PageState != pagecontext.StateNoCourses {
			t.Errorf("expected no_courses, got %s", pc.PageState)
		}
		if pc.RecommendedAction == "" {
			t.Errorf("expected a recommended action")
		}
	})

	t.Run("Teaching And Learning", func(t *testing.T) {
		pc := a.Analyze("/", map[string]any{
			"hasCourses":  true,
			"hasTeaching": true,
			"hasLearning": true,
		})
		if pc.PageState != pagecontext.StateHasBoth {
			t.Errorf("expected has_both, got %s", pc.PageState)
		}
	})

	t.Run("Teaching Only", func(t *testing.T) {
		pc := a.Analyze("/", map[string]any{
			"hasCourses":  true,
			"hasTeaching": true,
		})
		if pc.PageState != pagecontext.StateTeachingMode {
			t.Errorf("expected teaching_mode, got %s", pc.PageState)
		}
	})

	t.Run("Learning Only", func(t *testing.T) {
		pc := a.Analyze("/", map[string]any{"hasCourses": true})
		if pc.PageState != pagecontext.StateLearningMode {
			t.Errorf("expected learning_mode, got %s", pc.PageState)
		}
	})

	t.Run("JSON Decoded Booleans", func(t *testing.T) {
		// signals arriving via encoding/json use float64 for numbers
		pc := a.Analyze("/", map[string]any{"hasCourses": float64(1), "hasTeaching": true})
		if pc.PageState != pagecontext.StateTeachingMode {
			t.Errorf("expected teaching_mode, got %s", pc.PageState)
		}
	})
}

func TestAnalyzeSignupStates(t *testing.T) {
	a := pagecontext.New(nil)

	cases := []struct {
		name       string
		formFilled float64
		want       string
	}{
		{"Empty Form", 0, pagecontext.StateFormEmpty},
		{"Partial Form", 40, pagecontext.StateFormPartial},
		{"Complete Form", 100, pagecontext.StateFormComplete},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pc := a.Analyze("/signup", map[string]any{"formFilled": tc.formFilled})
			if pc.PageState != tc.want {
				t.Errorf("formFilled=%v: expected %s, got %s", tc.formFilled, tc.want, pc.PageState)
			}
		})
	}
}

func TestAnalyzeCourseStates(t *testing.T) {
	a := pagecontext.New(nil)

	t.Run("Not Enrolled", func(t *testing.T) {
		pc := a.Analyze("/course/7", map[string]any{"isEnrolled": false})
		if pc.PageState != pagecontext.StateNotEnrolled {
			t.Errorf("expected not_enrolled, got %s", pc.PageState)
		}
	})

	t.Run("Enrolled With Tasks", func(t *testing.T) {
		pc := a.Analyze("/course/7", map[string]any{"isEnrolled": true, "hasTasks": true})
		if pc.PageState != pagecontext.StateHasTasks {
			t.Errorf("expected has_tasks, got %s", pc.PageState)
		}
	})

	t.Run("Enrolled Without Tasks", func(t *testing.T) {
		pc := a.Analyze("/course/7", map[string]any{"isEnrolled": true})
		if pc.PageState != pagecontext.StateEnrolled {
			t.Errorf("expected enrolled, got %s", pc.PageState)
		}
	})
}

func TestAnalyzeUnknownSignals(t *testing.T) {
	a := pagecontext.New(nil)

	// login has no decision table; state stays unknown, never an error
	pc := a.Analyze("/login", map[string]any{"whatever": 42})
	if pc.PageState != pagecontext.StateUnknown {
		t.Errorf("expected unknown, got %s", pc.PageState)
	}
	if len(pc.Selectors) == 0 {
		t.Errorf("expected selector map for login route")
	}
}

func TestSuggestedNextStep(t *testing.T) {
	a := pagecontext.New(nil)

	pc := a.Analyze("/", map[string]any{"hasCourses": false})
	if got := pc.SuggestedNextStep(); got != "create first course or browse available courses" {
		t.Errorf("unexpected next step: %q", got)
	}

	// state without a table entry falls back to the recommended action
	pc = a.Analyze("/login", nil)
	if got := pc.SuggestedNextStep(); got != pc.RecommendedAction {
		t.Errorf("expected fallback to recommended action, got %q", got)
	}
}
