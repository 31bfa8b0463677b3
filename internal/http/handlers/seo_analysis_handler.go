package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"seo_url_checker/internal/pkg/errors"
	"seo_url_checker/internal/service"
)

// SeoAnalysisHandler serves single-URL analysis requests.
type SeoAnalysisHandler struct {
	service *service.Analyzer
	log     *log.Logger
}

type SeoAnalysisRequest struct {
	URL string `json:"url"`
}

func (r *SeoAnalysisRequest) Validate() error {
	// URL validity beyond non-emptiness is the fetcher's concern; a bad URL
	// still yields a well-formed report with a fetch failure finding.
	if r.URL == "" {
		return errors.New("url is empty")
	}
	return nil
}

func NewSeoAnalysisHandler(service *service.Analyzer, log *log.Logger) *SeoAnalysisHandler {
	return &SeoAnalysisHandler{
		service: service,
		log:     log,
	}
}

func (h *SeoAnalysisHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`analyze url handler called`)

	var request SeoAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.WithError(err).Error(`failed to decode request body`)
		sendError(w, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		h.log.WithError(err).Error(`failed to validate request body`)
		sendError(w, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	report := h.service.Analyze(r.Context(), request.URL)

	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		h.log.WithError(err).Error(`failed to encode response`)
	}
}
