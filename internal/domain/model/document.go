package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// Document represents a file or note attached to a repair case.
// Metadata is free-form JSON (diagnostic reports, intake forms, photos metadata).
type Document struct {
	ID          string          `db:"id"           json:"id"`
	CaseID      string          `db:"case_id"      json:"case_id"`
	Title       string          `db:"title"        json:"title"`
	ContentType string          `db:"content_type" json:"content_type"`
	Metadata    json.RawMessage `db:"metadata"     json:"metadata,omitempty"`
	CreatedAt   time.Time       `db:"created_at"   json:"created_at"`
}

// CreateDocumentRequest carries the fields needed to attach a document to a case.
type CreateDocumentRequest struct {
	CaseID      string          `json:"case_id"`
	Title       string          `json:"title"`
	ContentType string          `json:"content_type"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// Validate checks the request for required and well-formed fields.
func (r *CreateDocumentRequest) Validate() error {
	if err := uuid.Validate(strings.TrimSpace(r.CaseID)); err != nil {
		return apperrors.ValidationField("case_id", "case_id must be a valid UUID")
	}
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ValidationField("title", "title is required and cannot be empty")
	}
	if strings.TrimSpace(r.ContentType) == "" {
		return apperrors.ValidationField("content_type", "content_type is required and cannot be empty")
	}
	if len(r.Metadata) > 0 && !json.Valid(r.Metadata) {
		return apperrors.ValidationField("metadata", "metadata must be valid JSON")
	}
	return nil
}

// DocumentQueryRequest carries a JMESPath expression used to query document metadata.
type DocumentQueryRequest struct {
	Expression string `json:"expression"`
}

// Validate checks that the expression is present.
func (r *DocumentQueryRequest) Validate() error {
	if strings.TrimSpace(r.Expression) == "" {
		return apperrors.ValidationField("expression", "expression is required and cannot be empty")
	}
	return nil
}

// DocumentQueryMatch pairs a document with the value its metadata produced
// for a query expression.
type DocumentQueryMatch struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Value      any    `json:"value"`
}
