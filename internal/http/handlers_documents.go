package httpx

import (
	"errors"
	"net/http"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/service"
)

// DocumentHandlers provides HTTP handlers for case document operations.
type DocumentHandlers struct {
	Svc *service.DocumentService
}

const (
	maxDocumentListLimit = 200 // Maximum number of documents that can be requested in one call
)

// Create handles HTTP requests to attach a document to a case.
func (h *DocumentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDocumentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteServiceError(w, err, "create_failed")
		return
	}

	document, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err, "create_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, document)
}

// GetByID handles HTTP requests to get a document by ID.
func (h *DocumentHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("document id is required")},
		)
		return
	}

	document, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, "get_failed")
		return
	}

	WriteJSON(w, http.StatusOK, document)
}

// ListByCase handles HTTP requests to list a case's documents with pagination.
func (h *DocumentHandlers) ListByCase(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("id")
	if caseID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("case id is required")},
		)
		return
	}

	limit, offset := ParseLimitOffset(r, 50, maxDocumentListLimit)

	documents, err := h.Svc.ListByCase(r.Context(), caseID, limit, offset)
	if err != nil {
		WriteServiceError(w, err, "list_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"documents": documents,
		"limit":     limit,
		"offset":    offset,
	})
}

// Query handles HTTP requests to evaluate a JMESPath expression against the
// metadata of every document attached to a case.
func (h *DocumentHandlers) Query(w http.ResponseWriter, r *http.Request) {
	caseID := r.PathValue("id")
	if caseID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("case id is required")},
		)
		return
	}

	var req model.DocumentQueryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	matches, err := h.Svc.QueryMetadata(r.Context(), caseID, &req)
	if err != nil {
		WriteServiceError(w, err, "query_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"matches": matches,
		"count":   len(matches),
	})
}
