package pagecontext

// DefaultRoutes returns the standard route table for the platform frontend.
// The table is ordered: exact home paths first, then fragment matches.
func DefaultRoutes() []RouteDescriptor {
	return []RouteDescriptor{
		{
			Key:         RouteHome,
			Route:       "/",
			Paths:       []string{"/", "/home"},
			Description: "Home page with course overview",
			Capabilities: []string{
				"create_course", "browse_courses", "switch_tabs", "voice_guide",
			},
			Selectors: map[string]string{
				"create_course_btn": "button:contains('Create course')",
				"course_cards":      "[class*='course']",
				"voice_button":      "button[title*='Voice']",
				"teaching_tab":      "button:contains('Created by you')",
				"learning_tab":      "button:contains('Enrolled courses')",
			},
			NextSteps: map[string]string{
				StateNoCourses:    "create first course or browse available courses",
				StateHasBoth:      "view course details, create new course, or manage existing ones",
				StateTeachingMode: "create new course or manage existing courses",
				StateLearningMode: "browse and join new courses",
			},
		},
		{
			Key:         RouteSignup,
			Route:       "/signup",
			Fragment:    "/signup",
			Description: "Account creation and registration",
			Capabilities: []string{
				"fill_form", "submit_registration", "validate_inputs",
			},
			Selectors: map[string]string{
				"email_field":      "input[type='email']",
				"password_field":   "input[type='password']",
				"confirm_password": "input[name*='confirm']",
				"signup_button":    "button[type='submit']",
				"login_link":       "a[href*='login']",
			},
			NextSteps: map[string]string{
				StateFormEmpty:    "fill in email and password to create account",
				StateFormPartial:  "complete remaining required fields",
				StateFormComplete: "submit registration to create account",
			},
		},
		{
			Key:         RouteLogin,
			Route:       "/login",
			Fragment:    "/login",
			Description: "User authentication and login",
			Capabilities: []string{
				"authenticate", "navigate_to_signup", "reset_password",
			},
			Selectors: map[string]string{
				"email_field":     "input[type='email']",
				"password_field":  "input[type='password']",
				"login_button":    "button[type='submit']",
				"signup_link":     "a[href*='signup']",
				"forgot_password": "a[href*='forgot']",
			},
			NextSteps: map[string]string{
				"not_registered":  "create new account or recover existing account",
				"forgot_password": "use password reset option",
				"ready_to_login":  "enter credentials and sign in",
			},
		},
		{
			Key:         RouteCourseDetail,
			Route:       "/course/",
			Fragment:    "/course/",
			Description: "Individual course page with tasks and content",
			Capabilities: []string{
				"join_course", "view_tasks", "submit_assignments", "navigate_content",
			},
			Selectors: map[string]string{
				"join_button":   "button:contains('Join')",
				"task_list":     "[class*='task']",
				"submit_button": "button:contains('Submit')",
				"course_nav":    "[class*='nav']",
			},
			NextSteps: map[string]string{
				StateNotEnrolled: "join course to access content and assignments",
				StateEnrolled:    "view tasks, submit assignments, or access course materials",
				StateHasTasks:    "complete and submit pending assignments",
			},
		},
		{
			Key:         RouteAdmin,
			Route:       "/school/admin",
			Fragment:    "/school/admin",
			Description: "Administrative dashboard for course management",
			Capabilities: []string{
				"create_course", "manage_courses", "view_analytics", "manage_students",
			},
			Selectors: map[string]string{
				"create_course_btn": "button:contains('Create')",
				"course_list":       "[class*='course']",
				"student_list":      "[class*='student']",
				"analytics":         "[class*='analytics']",
			},
			NextSteps: map[string]string{
				StateNoCourses: "create your first course to get started",
				"has_courses":  "manage existing courses or create new ones",
				"view_analytics": "check course performance and student progress",
			},
		},
	}
}
