package payment

// UpsertProfileRequest represents the request to register a payment handle
type UpsertProfileRequest struct {
	SessionID     string `json:"session_id" validate:"required"`
	ParticipantID string `json:"participant_id" validate:"required"`
	Method        string `json:"method" validate:"required,oneof=TNG BOOST GRABPAY SHOPEEPAY DUITNOW"`
	Handle        string `json:"handle" validate:"required,min=3,max=100"`
}

// ProfileResponse represents the response for a payment profile
type ProfileResponse struct {
	ID            string `json:"id"`
	SessionID     string `json:"session_id"`
	ParticipantID string `json:"participant_id"`
	Method        Method `json:"method"`
	MethodLabel   string `json:"method_label"`
	Handle        string `json:"handle"`
	CreatedAt     string `json:"created_at"`
}

// MethodResponse describes one supported payment channel
type MethodResponse struct {
	Method Method `json:"method"`
	Label  string `json:"label"`
}

// ToResponse converts a Profile model to a ProfileResponse DTO
func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:            p.ID,
		SessionID:     p.SessionID,
		ParticipantID: p.ParticipantID,
		Method:        p.Method,
		MethodLabel:   p.Method.Label(),
		Handle:        p.Handle,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
