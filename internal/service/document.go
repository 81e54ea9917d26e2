package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/core"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// maxQueryDocuments bounds how many documents one metadata query scans.
const maxQueryDocuments = 1000

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return errors.New("expression is empty")
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// DocumentServiceOptions groups dependencies for DocumentService.
type DocumentServiceOptions struct {
	Repo      core.DocumentRepository // Required: document repository
	Cases     core.CaseRepository     // Required: case repository, for existence checks
	Evaluator JMESPathEvaluator       // Optional: defaults to go-jmespath
	Logger    *slog.Logger            // Optional: structured logger
}

// DocumentService encapsulates business logic for case documents, including
// JMESPath querying over document metadata.
type DocumentService struct {
	repo   core.DocumentRepository
	cases  core.CaseRepository
	jems   JMESPathEvaluator
	logger *slog.Logger
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(opts DocumentServiceOptions) (*DocumentService, error) {
	if opts.Repo == nil {
		return nil, errors.New("DocumentRepository is required")
	}
	if opts.Cases == nil {
		return nil, errors.New("CaseRepository is required")
	}

	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "document_service")
	}

	return &DocumentService{repo: opts.Repo, cases: opts.Cases, jems: jems, logger: logger}, nil
}

// Create attaches a document to an existing case.
func (s *DocumentService) Create(ctx context.Context, req *model.CreateDocumentRequest) (*model.Document, error) {
	document, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "document attached",
			"document_id", document.ID,
			"case_id", document.CaseID,
		)
	}
	return document, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*model.Document, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByCase retrieves a case's documents with pagination.
func (s *DocumentService) ListByCase(
	ctx context.Context,
	caseID string,
	limit, offset int,
) ([]*model.Document, error) {
	return s.repo.ListByCase(ctx, caseID, limit, offset)
}

// QueryMetadata evaluates a JMESPath expression against the metadata of every
// document attached to a case and returns the documents whose evaluation
// yields a non-null, non-false value.
func (s *DocumentService) QueryMetadata(
	ctx context.Context,
	caseID string,
	req *model.DocumentQueryRequest,
) ([]model.DocumentQueryMatch, error) {
	if req == nil {
		return nil, apperrors.Validation("query request is required")
	}
	if err := s.jems.Validate(req.Expression); err != nil {
		return nil, apperrors.ValidationField("expression", fmt.Sprintf("invalid jmespath expression: %v", err))
	}

	// Case existence check surfaces a 404 instead of an empty match list.
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, err
	}

	documents, err := s.repo.ListByCase(ctx, caseID, maxQueryDocuments, 0)
	if err != nil {
		return nil, err
	}

	matches := make([]model.DocumentQueryMatch, 0, len(documents))
	for _, doc := range documents {
		var metadata any
		if err := json.Unmarshal(doc.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("decode metadata for document %s: %w", doc.ID, err)
		}

		value, err := s.jems.Evaluate(req.Expression, metadata)
		if err != nil {
			return nil, apperrors.ValidationField("expression", fmt.Sprintf("evaluate expression: %v", err))
		}
		if !matched(value) {
			continue
		}
		matches = append(matches, model.DocumentQueryMatch{
			DocumentID: doc.ID,
			Title:      doc.Title,
			Value:      value,
		})
	}
	return matches, nil
}

// matched treats null and false as misses, everything else as a hit.
func matched(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}
