package jobs

// WelcomeEmailPayload identifies the account to greet. Kept value-based
// rather than id-based so the worker needs no store access.
type WelcomeEmailPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
