package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/azmirfakkri/jomsplit/pkg/middleware"
	"github.com/azmirfakkri/jomsplit/pkg/response"
	"github.com/azmirfakkri/jomsplit/pkg/validate"
)

// Handler handles HTTP requests for session operations
type Handler struct {
	service *Service
}

// NewHandler creates a new session handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for session endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Get("/code/{code}", h.GetByCode)
	r.Patch("/{id}", h.Rename)
	r.Delete("/{id}", h.Delete)

	r.Post("/{id}/participants", h.AddParticipant)
	r.Get("/{id}/participants", h.ListParticipants)
	r.Delete("/{id}/participants/{participantId}", h.RemoveParticipant)

	return r
}

// Create handles POST /sessions
// @Summary      Create a session
// @Description  Create a new bill-splitting session with a unique share code
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body CreateSessionRequest true "Session creation request"
// @Success      201 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /sessions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	deviceID, _ := middleware.GetDeviceID(r.Context())
	sess, err := h.service.Create(r.Context(), deviceID, &req)
	if err != nil {
		response.InternalError(w, "Failed to create session")
		return
	}

	response.JSON(w, http.StatusCreated, sess.ToResponse())
}

// GetByID handles GET /sessions/{id}
// @Summary      Get session by ID
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get session")
		return
	}

	h.respondWithParticipants(w, r, sess)
}

// GetByCode handles GET /sessions/code/{code}
// @Summary      Get session by share code
// @Tags         sessions
// @Produce      json
// @Param        code path string true "Share code"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/code/{code} [get]
func (h *Handler) GetByCode(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get session")
		return
	}

	h.respondWithParticipants(w, r, sess)
}

func (h *Handler) respondWithParticipants(w http.ResponseWriter, r *http.Request, sess *Session) {
	participants, err := h.service.ListParticipants(r.Context(), sess.ID)
	if err != nil {
		response.InternalError(w, "Failed to list participants")
		return
	}

	resp := sess.ToResponse()
	resp.Participants = make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		resp.Participants[i] = p.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// Rename handles PATCH /sessions/{id}
// @Summary      Rename a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body UpdateSessionRequest true "New session name"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id} [patch]
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	var req UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	sess, err := h.service.Rename(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update session")
		return
	}

	response.JSON(w, http.StatusOK, sess.ToResponse())
}

// Delete handles DELETE /sessions/{id}
// @Summary      Delete a session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete session")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Session deleted"})
}

// AddParticipant handles POST /sessions/{id}/participants
// @Summary      Add a participant
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body AddParticipantRequest true "Participant name"
// @Success      201 {object} response.APIResponse{data=ParticipantResponse}
// @Failure      409 {object} response.APIResponse
// @Router       /sessions/{id}/participants [post]
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	participant, err := h.service.AddParticipant(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrDuplicateName):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to add participant")
		}
		return
	}

	response.JSON(w, http.StatusCreated, participant.ToResponse())
}

// ListParticipants handles GET /sessions/{id}/participants
// @Summary      List participants
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]ParticipantResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id}/participants [get]
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.service.ListParticipants(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list participants")
		return
	}

	resp := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		resp[i] = p.ToResponse()
	}
	response.JSON(w, http.StatusOK, resp)
}

// RemoveParticipant handles DELETE /sessions/{id}/participants/{participantId}
// @Summary      Remove a participant
// @Description  Remove a participant without rewriting items that reference them
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        participantId path string true "Participant ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{id}/participants/{participantId} [delete]
func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveParticipant(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "participantId"))
	if err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to remove participant")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Participant removed"})
}
