package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/service"
)

// CaseHandlers provides HTTP handlers for repair case operations.
type CaseHandlers struct {
	Svc *service.CaseService
}

const (
	maxCaseListLimit = 100 // Maximum number of cases that can be requested in one call
)

// Create handles HTTP requests to open a new repair case.
func (h *CaseHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCaseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteServiceError(w, err, "create_failed")
		return
	}

	repairCase, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err, "create_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, repairCase)
}

// GetByID handles HTTP requests to get a case by ID.
func (h *CaseHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("case id is required")},
		)
		return
	}

	repairCase, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, "get_failed")
		return
	}

	WriteJSON(w, http.StatusOK, repairCase)
}

// List handles HTTP requests to list cases with an optional status filter.
func (h *CaseHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxCaseListLimit)

	opts := model.CaseListOptions{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("status"); v != "" {
		status := model.CaseStatus(v)
		if !status.IsValid() {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_status",
				Err:     fmt.Errorf("unknown case status %q", v),
			})
			return
		}
		opts.Status = &status
	}

	cases, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteServiceError(w, err, "list_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"cases":  cases,
		"limit":  limit,
		"offset": offset,
	})
}

// UpdateStatus handles HTTP requests to advance a case along its lifecycle.
func (h *CaseHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("case id is required")},
		)
		return
	}

	var req model.UpdateCaseStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	repairCase, err := h.Svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		WriteServiceError(w, err, "update_failed")
		return
	}

	WriteJSON(w, http.StatusOK, repairCase)
}

// AttachSLA handles HTTP requests to bind an SLA definition to a case.
func (h *CaseHandlers) AttachSLA(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("case id is required")},
		)
		return
	}

	var req model.AttachSLADefinitionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteServiceError(w, err, "attach_failed")
		return
	}

	repairCase, err := h.Svc.AttachSLADefinition(r.Context(), id, req.SLADefinitionID)
	if err != nil {
		WriteServiceError(w, err, "attach_failed")
		return
	}

	WriteJSON(w, http.StatusOK, repairCase)
}

// Escalations handles HTTP requests to list the escalations recorded for a case.
func (h *CaseHandlers) Escalations(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("case id is required")},
		)
		return
	}

	escalations, err := h.Svc.Escalations(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, "list_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"escalations": escalations})
}
