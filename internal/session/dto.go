package session

// CreateSessionRequest represents the request to create a new session
type CreateSessionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateSessionRequest represents the request to rename a session
type UpdateSessionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// AddParticipantRequest represents the request to add a participant
type AddParticipantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// SessionResponse represents the response for a session
type SessionResponse struct {
	ID           string                 `json:"id"`
	Code         string                 `json:"code"`
	Name         string                 `json:"name"`
	CreatedAt    string                 `json:"created_at"`
	Participants []*ParticipantResponse `json:"participants,omitempty"`
}

// ParticipantResponse represents a participant in a session response
type ParticipantResponse struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a Session model to a SessionResponse DTO
func (s *Session) ToResponse() *SessionResponse {
	return &SessionResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		ID:        p.ID,
		SessionID: p.SessionID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
