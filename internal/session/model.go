package session

import "time"

// Session represents one bill-splitting gathering. Friends join a session
// with its short share code rather than an account.
type Session struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by,omitempty"` // device ID of the host
	CreatedAt time.Time `json:"created_at"`
}

// Participant represents a person in a session. Participants are plain
// display names scoped to their session; there are no user accounts here.
type Participant struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
