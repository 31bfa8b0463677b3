package adaptors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"

	"seo_url_checker/internal/domain/models"
	"seo_url_checker/internal/pkg/metrics"
)

const (
	maxRedirects = 10
	// Bodies beyond this are truncated; the signals we extract all live in
	// <head>, well before the cap.
	maxResponseBody = 2 << 20

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var errTooManyRedirects = errors.New("too many redirects")

// WebClient fetches web pages over HTTP with a hard timeout and a bounded
// redirect chain.
type WebClient struct {
	client *http.Client
	log    *log.Logger
}

func NewWebClient(timeout time.Duration, log *log.Logger) *WebClient {
	rTripper := promhttp.InstrumentRoundTripperDuration(
		metrics.HTTPClientRequestDuration,
		promhttp.InstrumentRoundTripperCounter(metrics.HTTPClientRequestsTotal, http.DefaultTransport))

	return &WebClient{
		client: &http.Client{
			Timeout:       timeout,
			Transport:     rTripper,
			CheckRedirect: redirectPolicy,
		},
		log: log,
	}
}

func redirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
	}
	return nil
}

// Fetch performs one GET request chain for the URL. Redirects are followed as
// part of the same fetch. Any terminal status code is a successful fetch; only
// transport-level problems come back as a *models.FetchError.
func (w *WebClient) Fetch(ctx context.Context, rawURL string) (*models.FetchResult, error) {
	target, ferr := prepareURL(rawURL)
	if ferr != nil {
		return nil, ferr
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &models.FetchError{Kind: models.FailureInvalidURL, Message: err.Error(), Cause: err}
	}

	// Set headers to mimic a browser
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.WithError(err).WithField(`url`, target).Debug(`fetch failed`)
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		w.log.WithError(err).Debug(`failed to read response body`)
		return nil, &models.FetchError{Kind: models.FailureConnection, Message: `failed to read response body`, Cause: err}
	}

	return &models.FetchResult{
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
		Body:       decodeBody(data, resp.Header.Get("Content-Type")),
	}, nil
}

// prepareURL validates the URL syntactically before any network I/O. A URL
// with no scheme gets https prepended, matching what a browser address bar
// would do.
func prepareURL(rawURL string) (string, *models.FetchError) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", &models.FetchError{Kind: models.FailureInvalidURL, Message: `url is empty`}
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", &models.FetchError{Kind: models.FailureInvalidURL, Message: err.Error(), Cause: err}
	}
	if u.Host == "" {
		return "", &models.FetchError{Kind: models.FailureInvalidURL, Message: fmt.Sprintf(`url %q has no host`, rawURL)}
	}
	return u.String(), nil
}

func classifyTransportError(err error) *models.FetchError {
	var netErr net.Error
	switch {
	case errors.Is(err, errTooManyRedirects):
		return &models.FetchError{Kind: models.FailureTooManyRedirects, Message: fmt.Sprintf(`gave up after %d redirects`, maxRedirects), Cause: err}
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &models.FetchError{Kind: models.FailureTimeout, Message: `request timed out`, Cause: err}
	default:
		return &models.FetchError{Kind: models.FailureConnection, Message: err.Error(), Cause: err}
	}
}

// decodeBody converts the response bytes to UTF-8 using the declared or
// sniffed charset, keeping the raw bytes when decoding is impossible.
func decodeBody(data []byte, contentType string) string {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil || (!utf8.Valid(decoded) && utf8.Valid(data)) {
		return string(data)
	}
	return string(decoded)
}
