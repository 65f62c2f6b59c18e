package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/azmirfakkri/jomsplit/pkg/response"
	"github.com/azmirfakkri/jomsplit/pkg/validate"
)

// Handler handles HTTP requests for payment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new payment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for payment endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/methods", h.ListMethods)
	r.Post("/profiles", h.UpsertProfile)
	r.Delete("/profiles/{id}", h.DeleteProfile)

	r.Get("/session/{sessionId}/profiles", h.ListProfiles)
	r.Get("/session/{sessionId}/links", h.SettlementLinks)

	return r
}

// ListMethods handles GET /payments/methods
// @Summary      List supported payment methods
// @Tags         payments
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]MethodResponse}
// @Router       /payments/methods [get]
func (h *Handler) ListMethods(w http.ResponseWriter, r *http.Request) {
	methods := Methods()
	resp := make([]*MethodResponse, len(methods))
	for i, m := range methods {
		resp[i] = &MethodResponse{Method: m, Label: m.Label()}
	}
	response.JSON(w, http.StatusOK, resp)
}

// UpsertProfile handles POST /payments/profiles
// @Summary      Register a payment handle
// @Description  Register or replace a participant's wallet handle for one payment method
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body UpsertProfileRequest true "Profile registration request"
// @Success      201 {object} response.APIResponse{data=ProfileResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /payments/profiles [post]
func (h *Handler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	profile, err := h.service.UpsertProfile(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrParticipantNotInSession), errors.Is(err, ErrUnsupportedMethod):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to register payment profile")
		}
		return
	}

	response.JSON(w, http.StatusCreated, profile.ToResponse())
}

// DeleteProfile handles DELETE /payments/profiles/{id}
// @Summary      Delete a payment profile
// @Tags         payments
// @Produce      json
// @Param        id path string true "Profile ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /payments/profiles/{id} [delete]
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProfile(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete payment profile")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Profile deleted"})
}

// ListProfiles handles GET /payments/session/{sessionId}/profiles
// @Summary      List a session's payment profiles
// @Tags         payments
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]ProfileResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /payments/session/{sessionId}/profiles [get]
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListProfiles(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list payment profiles")
		return
	}

	resp := make([]*ProfileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = p.ToResponse()
	}
	response.JSON(w, http.StatusOK, resp)
}

// SettlementLinks handles GET /payments/session/{sessionId}/links
// @Summary      Get shareable settle-up reminders
// @Description  Turn the settle-up plan into WhatsApp-shareable payment reminders
// @Tags         payments
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]Link}
// @Failure      404 {object} response.APIResponse
// @Router       /payments/session/{sessionId}/links [get]
func (h *Handler) SettlementLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.SettlementLinks(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build settlement links")
		return
	}

	if links == nil {
		links = []*Link{}
	}
	response.JSON(w, http.StatusOK, links)
}
