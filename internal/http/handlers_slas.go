package httpx

import (
	"errors"
	"net/http"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/service"
)

// SLADefinitionHandlers provides HTTP handlers for SLA definition operations.
type SLADefinitionHandlers struct {
	Svc *service.SLADefinitionService
}

const (
	maxSLAListLimit = 100 // Maximum number of SLA definitions that can be requested in one call
)

// Create handles HTTP requests to create a new SLA definition.
func (h *SLADefinitionHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSLADefinitionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteServiceError(w, err, "create_failed")
		return
	}

	definition, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err, "create_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, definition)
}

// GetByID handles HTTP requests to get an SLA definition by ID.
func (h *SLADefinitionHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_path",
				Err:     errors.New("sla definition id is required"),
			},
		)
		return
	}

	definition, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, "get_failed")
		return
	}

	WriteJSON(w, http.StatusOK, definition)
}

// List handles HTTP requests to list SLA definitions with pagination.
func (h *SLADefinitionHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxSLAListLimit)

	definitions, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteServiceError(w, err, "list_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"sla_definitions": definitions,
		"limit":           limit,
		"offset":          offset,
	})
}
