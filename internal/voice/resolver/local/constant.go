package local

// Phrase families, evaluated top to bottom. Order is the precedence
// contract: control commands, help, task intents, page reading, element
// finding, confirmations, then the contextual default.
var (
	stopPhrases = []string{"stop", "quit", "cancel", "exit"}

	helpPhrases = []string{"help", "what can i do", "guide me", "what now"}

	createCoursePhrases = []string{"create course", "new course", "make course", "add course"}

	browseCoursePhrases = []string{"join course", "find course", "browse course", "enroll", "courses"}

	createAccountPhrases = []string{"create account", "sign up", "register", "new account", "get started"}

	readPagePhrases = []string{"read this page", "read the page", "what does this page say", "what is on this page", "summarize"}

	findElementPhrases = []string{"where do i click", "where is", "where do i", "find the", "show me where"}

	confirmPhrases = []string{"yes", "yeah", "sure", "okay", "confirm", "do it"}
)

// Canned responses.
const (
	stopResponse = "Voice assistant stopped. You can restart by clicking the microphone button."

	fallbackRecommendation = "explore this page"
)
