package pagecontext

// Route keys for the known pages.
const (
	RouteHome         = "home"
	RouteSignup       = "signup"
	RouteLogin        = "login"
	RouteCourseDetail = "course_detail"
	RouteAdmin        = "admin_dashboard"
)

// Page states produced by the per-route decision tables.
const (
	StateUnknown      = "unknown"
	StateNoCourses    = "no_courses"
	StateHasBoth      = "has_both"
	StateTeachingMode = "teaching_mode"
	StateLearningMode = "learning_mode"
	StateFormEmpty    = "form_empty"
	StateFormPartial  = "form_partial"
	StateFormComplete = "form_complete"
	StateNotEnrolled  = "not_enrolled"
	StateHasTasks     = "has_tasks"
	StateEnrolled     = "enrolled"
)

// RouteDescriptor is one entry of the ordered route table. Matching is
// exact against Paths unless Fragment is set, in which case any route
// containing Fragment matches. Descriptors are checked in table order, so
// exact-match routes must precede fragment routes that could overlap.
type RouteDescriptor struct {
	Key          string
	Route        string // canonical route for navigate actions
	Paths        []string
	Fragment     string
	Description  string
	Capabilities []string
	Selectors    map[string]string
	NextSteps    map[string]string // page state -> suggested next step
}

// PageContext is the normalized page-state descriptor for one turn.
type PageContext struct {
	RouteKey          string            `json:"routeKey"`
	Route             string            `json:"route"`
	Description       string            `json:"description"`
	PageState         string            `json:"pageState"`
	AvailableActions  []string          `json:"availableActions"`
	RecommendedAction string            `json:"recommendedAction"`
	Capabilities      []string          `json:"capabilities"`
	Selectors         map[string]string `json:"selectors"`
	NextSteps         map[string]string `json:"nextSteps"`
}

// SuggestedNextStep returns the route's next step for the current page
// state, falling back to the recommended action.
func (pc PageContext) SuggestedNextStep() string {
	if step, ok := pc.NextSteps[pc.PageState]; ok {
		return step
	}
	return pc.RecommendedAction
}
