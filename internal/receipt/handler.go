package receipt

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/azmirfakkri/jomsplit/pkg/response"
	"github.com/azmirfakkri/jomsplit/pkg/validate"
)

// Handler handles HTTP requests for receipt parsing
type Handler struct{}

// NewHandler creates a new receipt handler
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns the router for receipt endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/parse", h.ParseReceipt)

	return r
}

// ParseReceipt handles POST /receipts/parse
// @Summary      Parse receipt text
// @Description  Extract line items and summary amounts from pasted receipt text
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body ParseRequest true "Receipt text to parse"
// @Success      200 {object} response.APIResponse{data=ParseResult}
// @Failure      400 {object} response.APIResponse
// @Router       /receipts/parse [post]
func (h *Handler) ParseReceipt(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	response.JSON(w, http.StatusOK, Parse(req.Text))
}
