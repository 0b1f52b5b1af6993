package models

// SessionState is the explicit session context handed to the UI layer.
// The zero value is the anonymous state.
type SessionState struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}
