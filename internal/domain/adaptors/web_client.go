package adaptors

import (
	"context"

	"seo_url_checker/internal/domain/models"
)

// WebClient fetches a URL and returns its terminal response. Transport-level
// failures come back as *models.FetchError; HTTP error statuses are carried
// in the FetchResult instead.
type WebClient interface {
	Fetch(ctx context.Context, url string) (*models.FetchResult, error)
}
