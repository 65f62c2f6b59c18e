package receipt

// ParseRequest represents the request body for parsing receipt text
type ParseRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}
