package settlement

import "time"

// Settlement represents a real-world settle-up payment recorded by the
// group. Recording one never mutates bill items; balances always recompute
// from the items themselves.
type Settlement struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"`
	FromParticipant string    `json:"from_participant"`
	ToParticipant   string    `json:"to_participant"`
	Amount          float64   `json:"amount"`
	Method          string    `json:"method,omitempty"` // payment channel label, free-form
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	// Populated from the session roster
	FromName string `json:"from_name,omitempty"`
	ToName   string `json:"to_name,omitempty"`
}
