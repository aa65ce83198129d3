package pagecontext

import "strings"

// Analyzer maps a navigation route plus observable page signals onto a
// normalized PageContext. It is a pure lookup over an immutable route
// table and is safe for concurrent use.
type Analyzer struct {
	routes []RouteDescriptor
}

// New creates an Analyzer over the given ordered route table. An empty
// table falls back to DefaultRoutes().
func New(routes []RouteDescriptor) *Analyzer {
	if len(routes) == 0 {
		routes = DefaultRoutes()
	}
	return &Analyzer{routes: routes}
}

// Analyze resolves the route and refines the page state from signals.
// It is total: any route resolves (unmatched routes map to the first
// table entry) and nil signals are treated as empty.
func (a *Analyzer) Analyze(route string, signals map[string]any) PageContext {
	rd := a.matchRoute(route)

	pc := PageContext{
		RouteKey:     rd.Key,
		Route:        rd.Route,
		Description:  rd.Description,
		PageState:    StateUnknown,
		Capabilities: rd.Capabilities,
		Selectors:    rd.Selectors,
		NextSteps:    rd.NextSteps,
	}

	if len(signals) > 0 {
		a.refineState(&pc, signals)
	}

	if len(pc.AvailableActions) == 0 {
		pc.AvailableActions = rd.Capabilities
	}

	return pc
}

// matchRoute walks the table in order, first match wins. The default is
// the table's first entry (home).
func (a *Analyzer) matchRoute(route string) RouteDescriptor {
	if route != "" {
		for _, rd := range a.routes {
			for _, p := range rd.Paths {
				if route == p {
					return rd
				}
			}
			if rd.Fragment != "" && strings.Contains(route, rd.Fragment) {
				return rd
			}
		}
	}
	return a.routes[0]
}

// refineState applies the per-route decision table over page signals.
// Unlisted signal combinations keep the "unknown" state.
func (a *Analyzer) refineState(pc *PageContext, signals map[string]any) {
	switch pc.RouteKey {
	case RouteHome:
		hasCourses := boolSignal(signals, "hasCourses")
		hasTeaching := boolSignal(signals, "hasTeaching")
		hasLearning := boolSignal(signals, "hasLearning")

		switch {
		case !hasCourses:
			pc.PageState = StateNoCourses
			pc.AvailableActions = []string{"create_course", "browse_courses", "get_help"}
			pc.RecommendedAction = "create your first course to get started"
		case hasTeaching && hasLearning:
			pc.PageState = StateHasBoth
			pc.AvailableActions = []string{"create_course", "view_courses", "manage_courses"}
			pc.RecommendedAction = "manage your existing courses or create a new one"
		case hasTeaching:
			pc.PageState = StateTeachingMode
			pc.AvailableActions = []string{"create_course", "manage_courses", "view_analytics"}
			pc.RecommendedAction = "create a new course or manage existing ones"
		default:
			pc.PageState = StateLearningMode
			pc.AvailableActions = []string{"browse_courses", "join_course", "view_progress"}
			pc.RecommendedAction = "browse and join new courses"
		}

	case RouteSignup:
		formFilled := numberSignal(signals, "formFilled")
		switch {
		case formFilled <= 0:
			pc.PageState = StateFormEmpty
			pc.RecommendedAction = "fill in your email and password to create an account"
		case formFilled < 100:
			pc.PageState = StateFormPartial
			pc.RecommendedAction = "complete the remaining required fields"
		default:
			pc.PageState = StateFormComplete
			pc.RecommendedAction = "submit the form to create your account"
		}

	case RouteCourseDetail:
		isEnrolled := boolSignal(signals, "isEnrolled")
		hasTasks := boolSignal(signals, "hasTasks")

		switch {
		case !isEnrolled:
			pc.PageState = StateNotEnrolled
			pc.RecommendedAction = "join this course to access content and assignments"
		case hasTasks:
			pc.PageState = StateHasTasks
			pc.RecommendedAction = "view and complete your assignments"
		default:
			pc.PageState = StateEnrolled
			pc.RecommendedAction = "explore course content and materials"
		}
	}
}

// boolSignal reads a boolean page signal, tolerating JSON-decoded types.
func boolSignal(signals map[string]any, key string) bool {
	v, ok := signals[key]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return false
}

// numberSignal reads a numeric page signal, tolerating JSON-decoded types.
func numberSignal(signals map[string]any, key string) float64 {
	v, ok := signals[key]
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	}
	return 0
}
