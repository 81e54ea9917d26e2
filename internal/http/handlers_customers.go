// Package httpx provides HTTP handlers and utilities for the device repair management API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/service"
)

// CustomerHandlers provides HTTP handlers for customer-related operations.
type CustomerHandlers struct {
	Svc *service.CustomerService
}

const (
	maxCustomerListLimit = 100 // Maximum number of customers that can be requested in one call
)

// Create handles HTTP requests to register a new customer.
func (h *CustomerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCustomerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteServiceError(w, err, "create_failed")
		return
	}

	customer, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err, "create_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, customer)
}

// GetByID handles HTTP requests to get a customer by ID.
func (h *CustomerHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("customer id is required")},
		)
		return
	}

	customer, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, "get_failed")
		return
	}

	WriteJSON(w, http.StatusOK, customer)
}

// List handles HTTP requests to list customers with pagination.
func (h *CustomerHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxCustomerListLimit)

	customers, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteServiceError(w, err, "list_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"customers": customers,
		"limit":     limit,
		"offset":    offset,
	})
}
