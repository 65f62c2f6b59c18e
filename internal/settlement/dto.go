package settlement

// RecordSettlementRequest represents the request to record a settle-up payment
type RecordSettlementRequest struct {
	SessionID       string  `json:"session_id" validate:"required"`
	FromParticipant string  `json:"from_participant" validate:"required"`
	ToParticipant   string  `json:"to_participant" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Method          string  `json:"method,omitempty" validate:"omitempty,max=50"`
	Note            string  `json:"note,omitempty" validate:"omitempty,max=500"`
}

// SettlementResponse represents the response for a recorded settlement
type SettlementResponse struct {
	ID              string  `json:"id"`
	SessionID       string  `json:"session_id"`
	FromParticipant string  `json:"from_participant"`
	FromName        string  `json:"from_name,omitempty"`
	ToParticipant   string  `json:"to_participant"`
	ToName          string  `json:"to_name,omitempty"`
	Amount          float64 `json:"amount"`
	Method          string  `json:"method,omitempty"`
	Note            string  `json:"note,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:              s.ID,
		SessionID:       s.SessionID,
		FromParticipant: s.FromParticipant,
		FromName:        s.FromName,
		ToParticipant:   s.ToParticipant,
		ToName:          s.ToName,
		Amount:          s.Amount,
		Method:          s.Method,
		Note:            s.Note,
		CreatedAt:       s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
