package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/mocks"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/service"
)

func newDocumentHandlers(t *testing.T) (*mocks.MockDocumentRepository, *mocks.MockCaseRepository, *DocumentHandlers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	documentRepo := mocks.NewMockDocumentRepository(ctrl)
	caseRepo := mocks.NewMockCaseRepository(ctrl)
	svc, err := service.NewDocumentService(service.DocumentServiceOptions{
		Repo:  documentRepo,
		Cases: caseRepo,
	})
	require.NoError(t, err)

	return documentRepo, caseRepo, &DocumentHandlers{Svc: svc}
}

func TestDocumentHandlers_Create(t *testing.T) {
	t.Parallel()
	documentRepo, _, handlers := newDocumentHandlers(t)

	req := model.CreateDocumentRequest{
		CaseID:      testHTTPCaseID,
		Title:       "diagnostic report",
		ContentType: "application/pdf",
		Metadata:    json.RawMessage(`{"pages": 3}`),
	}
	created := &model.Document{ID: "doc-1", CaseID: req.CaseID, Title: req.Title}

	documentRepo.EXPECT().Create(gomock.Any(), &req).Return(created, nil).Times(1)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/documents", bytes.NewReader(body))

	handlers.Create(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response model.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "doc-1", response.ID)
}

func TestDocumentHandlers_Create_InvalidMetadata(t *testing.T) {
	t.Parallel()
	_, _, handlers := newDocumentHandlers(t)

	body := []byte(`{
		"case_id": "` + testHTTPCaseID + `",
		"title": "diagnostic report",
		"content_type": "application/pdf",
		"metadata": {"pages": }
	}`)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/documents", bytes.NewReader(body))

	handlers.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandlers_Query(t *testing.T) {
	t.Parallel()
	documentRepo, caseRepo, handlers := newDocumentHandlers(t)

	documents := []*model.Document{
		{ID: "doc-1", Title: "intake form", Metadata: json.RawMessage(`{"technician": "alice"}`)},
		{ID: "doc-2", Title: "invoice", Metadata: json.RawMessage(`{"total": 120.5}`)},
	}

	caseRepo.EXPECT().GetByID(gomock.Any(), testHTTPCaseID).Return(&model.Case{ID: testHTTPCaseID}, nil).Times(1)
	documentRepo.EXPECT().
		ListByCase(gomock.Any(), testHTTPCaseID, gomock.Any(), 0).
		Return(documents, nil).
		Times(1)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(
		http.MethodPost,
		"/api/cases/"+testHTTPCaseID+"/documents/query",
		bytes.NewReader([]byte(`{"expression": "technician"}`)),
	)
	r.SetPathValue("id", testHTTPCaseID)

	handlers.Query(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.InDelta(t, 1, response["count"], 0)

	matches, ok := response["matches"].([]any)
	require.True(t, ok)
	require.Len(t, matches, 1)

	match := matches[0].(map[string]any)
	assert.Equal(t, "doc-1", match["document_id"])
	assert.Equal(t, "alice", match["value"])
}

func TestDocumentHandlers_Query_InvalidExpression(t *testing.T) {
	t.Parallel()
	_, _, handlers := newDocumentHandlers(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(
		http.MethodPost,
		"/api/cases/"+testHTTPCaseID+"/documents/query",
		bytes.NewReader([]byte(`{"expression": "not a ][ valid expression"}`)),
	)
	r.SetPathValue("id", testHTTPCaseID)

	handlers.Query(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation_failed", response["error"])
}

func TestDocumentHandlers_ListByCase(t *testing.T) {
	t.Parallel()
	documentRepo, _, handlers := newDocumentHandlers(t)

	documents := []*model.Document{
		{ID: "doc-1", CaseID: testHTTPCaseID, Title: "intake form"},
	}
	documentRepo.EXPECT().ListByCase(gomock.Any(), testHTTPCaseID, 50, 0).Return(documents, nil).Times(1)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/cases/"+testHTTPCaseID+"/documents", nil)
	r.SetPathValue("id", testHTTPCaseID)

	handlers.ListByCase(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["documents"], 1)
}
