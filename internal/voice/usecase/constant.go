package usecase

// Log prefixes
const (
	LogPrefixProcessIntent  = "internal.voice.usecase.ProcessIntent"
	LogPrefixProcessCommand = "internal.voice.usecase.ProcessCommand"
	LogPrefixLogEvent       = "internal.voice.usecase.LogEvent"
	LogPrefixGetMemory      = "internal.voice.usecase.GetMemory"
	LogPrefixGetAnalytics   = "internal.voice.usecase.GetAnalytics"
	LogPrefixCreateSession  = "internal.voice.usecase.CreateSession"
)

// Turn responses
const (
	ResponseTurnError = "I'm sorry, I encountered an error. Please try again."

	ResponseCommandStop    = "Voice assistant stopped. You can restart anytime."
	ResponseCommandRepeat  = "I'm here to help you!"
	ResponseCommandRetry   = "Let's try that again. What would you like to do?"
	ResponseCommandUnknown = "I didn't understand that command. Try 'stop', 'repeat', or 'retry'."
)

// Analytics defaults
const (
	DefaultAnalyticsLimit = 50
	MaxAnalyticsLimit     = 200
)
