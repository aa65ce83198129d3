package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// AnonymousUserID is the shared sentinel for unauthenticated callers.
// Concurrent anonymous sessions share one memory record; callers that need
// isolation should mint a session id and pass it as the user id.
const AnonymousUserID = "anonymous"

// EventType tags an analytics event.
type EventType string

const (
	EventIntentProcessed  EventType = "intent_processed"
	EventCommandProcessed EventType = "command_processed"
)
