package settlement

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/azmirfakkri/jomsplit/pkg/response"
	"github.com/azmirfakkri/jomsplit/pkg/validate"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Record)
	r.Delete("/{id}", h.Delete)

	r.Get("/session/{sessionId}", h.ListBySession)
	r.Get("/session/{sessionId}/plan", h.Plan)

	return r
}

// Plan handles GET /settlements/session/{sessionId}/plan
// @Summary      Get the settle-up plan
// @Description  Compute who should pay whom from current balances, fewest transfers first
// @Tags         settlements
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=bill.SummaryResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/session/{sessionId}/plan [get]
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.Plan(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute settlement plan")
		return
	}

	response.JSON(w, http.StatusOK, plan)
}

// Record handles POST /settlements
// @Summary      Record a settle-up payment
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body RecordSettlementRequest true "Settlement record request"
// @Success      201 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements [post]
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	settlement, err := h.service.Record(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrParticipantNotInSession), errors.Is(err, ErrCannotSettleSelf):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to record settlement")
		}
		return
	}

	response.JSON(w, http.StatusCreated, settlement.ToResponse())
}

// ListBySession handles GET /settlements/session/{sessionId}
// @Summary      List recorded settlements
// @Tags         settlements
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/session/{sessionId} [get]
func (h *Handler) ListBySession(w http.ResponseWriter, r *http.Request) {
	settlements, err := h.service.ListBySession(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list settlements")
		return
	}

	resp := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		resp[i] = s.ToResponse()
	}
	response.JSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /settlements/{id}
// @Summary      Delete a recorded settlement
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Settlement ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrSettlementNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete settlement")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Settlement deleted"})
}
