package bill

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/azmirfakkri/jomsplit/pkg/response"
	"github.com/azmirfakkri/jomsplit/pkg/validate"
)

// Handler handles HTTP requests for bill item operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill item endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/quote", h.Quote)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	// Session-scoped listing and calculation
	r.Get("/session/{sessionId}", h.ListBySession)
	r.Get("/session/{sessionId}/summary", h.Summary)

	return r
}

// Create handles POST /items
// @Summary      Create a bill item
// @Description  Add a shared expense line; payer and sharers must be session participants
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body CreateItemRequest true "Item creation request"
// @Success      201 {object} response.APIResponse{data=ItemResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /items [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, item.ToResponse())
}

// GetByID handles GET /items/{id}
// @Summary      Get bill item by ID
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} response.APIResponse{data=ItemResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /items/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetItemByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item.ToResponse())
}

// Update handles PUT /items/{id}
// @Summary      Update a bill item
// @Description  Apply a partial update; derived amounts are recomputed
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body UpdateItemRequest true "Item update request"
// @Success      200 {object} response.APIResponse{data=ItemResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /items/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	item, err := h.service.UpdateItem(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, item.ToResponse())
}

// Delete handles DELETE /items/{id}
// @Summary      Delete a bill item
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /items/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// ListBySession handles GET /items/session/{sessionId}
// @Summary      List bill items by session
// @Tags         items
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=[]ItemResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /items/session/{sessionId} [get]
func (h *Handler) ListBySession(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListBySession(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := make([]*ItemResponse, len(items))
	for i, item := range items {
		resp[i] = item.ToResponse()
	}
	response.JSON(w, http.StatusOK, resp)
}

// Summary handles GET /items/session/{sessionId}/summary
// @Summary      Calculate session balances
// @Description  Run the split engine over the session's current items and return per-participant balances, totals and the settle-up plan
// @Tags         items
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /items/session/{sessionId}/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context(), chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// Quote handles POST /items/quote
// @Summary      Preview a bill total
// @Description  Compute the tax-inclusive total for a list of amounts, including SST, service charge and 5 sen rounding, without creating anything
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body QuoteRequest true "Bill lines to preview"
// @Success      200 {object} response.APIResponse{data=QuoteResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /items/quote [post]
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, validate.Message(err))
		return
	}

	response.JSON(w, http.StatusOK, h.service.Quote(&req))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrSessionNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrPayerNotInSession), errors.Is(err, ErrSharerNotInSession):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, "Bill operation failed")
	}
}
