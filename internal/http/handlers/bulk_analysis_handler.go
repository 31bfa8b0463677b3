package handlers

import (
	"encoding/json"
	"mime"
	"net/http"

	log "github.com/sirupsen/logrus"

	"seo_url_checker/internal/ioformats"
	"seo_url_checker/internal/service"
)

// BulkAnalysisHandler serves bulk analysis requests. It accepts either a
// JSON body with a urls array, a raw text/csv body, or a multipart upload
// with a "file" part; CSV input goes through the url-column discovery in
// ioformats.
type BulkAnalysisHandler struct {
	runner *service.BulkRunner
	log    *log.Logger
}

type BulkAnalysisRequest struct {
	URLs []string `json:"urls"`
}

func NewBulkAnalysisHandler(runner *service.BulkRunner, log *log.Logger) *BulkAnalysisHandler {
	return &BulkAnalysisHandler{
		runner: runner,
		log:    log,
	}
}

func (h *BulkAnalysisHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`bulk analyze handler called`)

	urls, err := h.readURLs(r)
	if err != nil {
		h.log.WithError(err).Error(`failed to read url list`)
		sendError(w, `failed to read url list`, err, http.StatusBadRequest)
		return
	}

	// An empty list is valid input and yields an empty result.
	result := h.runner.Run(r.Context(), urls)

	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.WithError(err).Error(`failed to encode response`)
	}
}

func (h *BulkAnalysisHandler) readURLs(r *http.Request) ([]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(`Content-Type`))

	switch mediaType {
	case `text/csv`:
		return ioformats.ReadURLs(r.Body)

	case `multipart/form-data`:
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, err
		}
		f, _, err := r.FormFile(`file`)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ioformats.ReadURLs(f)

	default:
		var request BulkAnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return nil, err
		}
		return request.URLs, nil
	}
}
