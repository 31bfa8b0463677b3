package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo_url_checker/internal/domain/models"
	"seo_url_checker/internal/service"
)

func newBulkHandler(client *stubWebClient) *BulkAnalysisHandler {
	logger := log.New()
	runner := service.NewBulkRunner(logger, newAnalyzer(client), 4)
	return NewBulkAnalysisHandler(runner, logger)
}

func decodeBulkResult(t *testing.T, rec *httptest.ResponseRecorder) models.BulkResult {
	t.Helper()
	var result models.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestBulkAnalysisHandler_JSONBody(t *testing.T) {
	good := "https://example.com/good"
	client := &stubWebClient{pages: map[string]*models.FetchResult{good: stubPage(good)}}
	handler := newBulkHandler(client)

	body := `{"urls":["` + good + `","https://down.example"]}`
	req := httptest.NewRequest(http.MethodPost, "/analyze/bulk", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBulkResult(t, rec)
	require.Len(t, result.Reports, 2)
	assert.Equal(t, good, result.Reports[0].RequestedURL)
	assert.Equal(t, "https://down.example", result.Reports[1].RequestedURL)
	assert.Equal(t, 2, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Fail)
}

func TestBulkAnalysisHandler_CSVBody(t *testing.T) {
	good := "https://example.com/good"
	client := &stubWebClient{pages: map[string]*models.FetchResult{good: stubPage(good)}}
	handler := newBulkHandler(client)

	csvBody := "name,url\nhome," + good + "\n"
	req := httptest.NewRequest(http.MethodPost, "/analyze/bulk", strings.NewReader(csvBody))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBulkResult(t, rec)
	require.Len(t, result.Reports, 1)
	assert.Equal(t, good, result.Reports[0].RequestedURL)
}

func TestBulkAnalysisHandler_MultipartUpload(t *testing.T) {
	good := "https://example.com/good"
	client := &stubWebClient{pages: map[string]*models.FetchResult{good: stubPage(good)}}
	handler := newBulkHandler(client)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "urls.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("url\n" + good + "\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze/bulk", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBulkResult(t, rec)
	require.Len(t, result.Reports, 1)
	assert.Equal(t, good, result.Reports[0].RequestedURL)
}

func TestBulkAnalysisHandler_EmptyListIsValid(t *testing.T) {
	handler := newBulkHandler(&stubWebClient{})

	req := httptest.NewRequest(http.MethodPost, "/analyze/bulk", strings.NewReader(`{"urls":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBulkResult(t, rec)
	assert.Empty(t, result.Reports)
	assert.Equal(t, 0, result.Summary.Total)
}

func TestBulkAnalysisHandler_BadInput(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{name: "malformed json", contentType: "application/json", body: `{"urls":`},
		{name: "csv without url column", contentType: "text/csv", body: "name,address\nhome,somewhere\n"},
		{name: "empty csv", contentType: "text/csv", body: ""},
	}

	handler := newBulkHandler(&stubWebClient{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/analyze/bulk", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()
			handler.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestReadyHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewReadyHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
