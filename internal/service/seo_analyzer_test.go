package service

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"seo_url_checker/internal/domain/models"
)

// MockWebClient is a mock implementation of the WebClient interface
type MockWebClient struct {
	mock.Mock
}

func (m *MockWebClient) Fetch(ctx context.Context, url string) (*models.FetchResult, error) {
	args := m.Called(ctx, url)
	if res := args.Get(0); res != nil {
		return res.(*models.FetchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

const healthyPage = `<!DOCTYPE html><html><head>
	<title>A Perfectly Reasonable Page Title</title>
	<link rel="canonical" href="https://example.com/page">
	<meta name="description" content="A description that is comfortably long enough to satisfy the default recommended length bounds.">
</head><body></body></html>`

func TestAnalyze_HealthyPage(t *testing.T) {
	logger := log.New()
	mockWebClient := new(MockWebClient)
	analyzer := NewAnalyzer(logger, mockWebClient, DefaultThresholds())

	testURL := "https://example.com/page"
	mockWebClient.On("Fetch", mock.Anything, testURL).Return(&models.FetchResult{
		StatusCode: 200,
		FinalURL:   testURL,
		Body:       healthyPage,
	}, nil)

	report := analyzer.Analyze(context.Background(), testURL)

	require.NotNil(t, report)
	assert.Equal(t, testURL, report.RequestedURL)
	require.NotNil(t, report.FetchStatus)
	assert.Equal(t, 200, *report.FetchStatus)
	assert.Len(t, report.Findings, 5)
	assert.Equal(t, models.SeverityOK, report.Overall)

	mockWebClient.AssertExpectations(t)
}

func TestAnalyze_AllChecksOK(t *testing.T) {
	logger := log.New()
	mockWebClient := new(MockWebClient)
	analyzer := NewAnalyzer(logger, mockWebClient, DefaultThresholds())

	testURL := "https://example.com/page"
	mockWebClient.On("Fetch", mock.Anything, testURL).Return(&models.FetchResult{
		StatusCode: 200,
		FinalURL:   testURL,
		Body:       healthyPage,
	}, nil)

	report := analyzer.Analyze(context.Background(), testURL)

	assert.Equal(t, models.SeverityOK, report.Finding(models.CheckStatus).Severity)
	assert.Equal(t, models.SeverityOK, report.Finding(models.CheckCanonical).Severity)
	assert.Equal(t, models.SeverityOK, report.Finding(models.CheckRobots).Severity)
	assert.Equal(t, models.SeverityOK, report.Finding(models.CheckTitle).Severity)
	assert.Equal(t, models.SeverityOK, report.Finding(models.CheckDescription).Severity)
}

func TestAnalyze_CanonicalTrailingSlashIsSelfReferencing(t *testing.T) {
	logger := log.New()
	mockWebClient := new(MockWebClient)
	analyzer := NewAnalyzer(logger, mockWebClient, DefaultThresholds())

	testURL := "https://example.com/page/"
	mockWebClient.On("Fetch", mock.Anything, testURL).Return(&models.FetchResult{
		StatusCode: 200,
		FinalURL:   testURL,
		Body:       `<html><head><link rel="canonical" href="https://example.com/page"></head></html>`,
	}, nil)

	report := analyzer.Analyze(context.Background(), testURL)

	assert.Equal(t, models.SeverityOK, report.Finding(models.CheckCanonical).Severity)
}

func TestAnalyze_FetchFailure(t *testing.T) {
	logger := log.New()
	mockWebClient := new(MockWebClient)
	analyzer := NewAnalyzer(logger, mockWebClient, DefaultThresholds())

	testURL := "https://unreachable.example"
	mockWebClient.On("Fetch", mock.Anything, testURL).Return(nil, &models.FetchError{
		Kind:    models.FailureTimeout,
		Message: "request timed out",
	})

	report := analyzer.Analyze(context.Background(), testURL)

	require.NotNil(t, report)
	assert.Nil(t, report.FetchStatus)
	assert.Equal(t, models.SeverityFail, report.Overall)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, models.CheckFetch, report.Findings[0].Check)
	assert.Equal(t, models.SeverityFail, report.Findings[0].Severity)
	assert.Contains(t, report.Findings[0].Message, "timed out")
}

func TestAnalyze_HTTPErrorStatusIsStillAnalyzed(t *testing.T) {
	logger := log.New()
	mockWebClient := new(MockWebClient)
	analyzer := NewAnalyzer(logger, mockWebClient, DefaultThresholds())

	testURL := "https://example.com/missing"
	mockWebClient.On("Fetch", mock.Anything, testURL).Return(&models.FetchResult{
		StatusCode: 404,
		FinalURL:   testURL,
		Body:       `<html><head><title>Not Found</title></head></html>`,
	}, nil)

	report := analyzer.Analyze(context.Background(), testURL)

	// An error status is a signal to classify, not a fetch failure: the
	// remaining checks still run.
	require.NotNil(t, report.FetchStatus)
	assert.Equal(t, 404, *report.FetchStatus)
	assert.Len(t, report.Findings, 5)
	assert.Equal(t, models.SeverityFail, report.Overall)
}

func TestAnalyze_Idempotent(t *testing.T) {
	logger := log.New()
	mockWebClient := new(MockWebClient)
	analyzer := NewAnalyzer(logger, mockWebClient, DefaultThresholds())

	testURL := "https://example.com/page"
	mockWebClient.On("Fetch", mock.Anything, testURL).Return(&models.FetchResult{
		StatusCode: 200,
		FinalURL:   testURL,
		Body:       healthyPage,
	}, nil)

	first := analyzer.Analyze(context.Background(), testURL)
	second := analyzer.Analyze(context.Background(), testURL)

	assert.Equal(t, first.Findings, second.Findings)
	assert.Equal(t, first.Overall, second.Overall)
}

func TestWorstSeverity(t *testing.T) {
	assert.Equal(t, models.SeverityOK, models.Worst(nil))
	assert.Equal(t, models.SeverityWarn, models.Worst([]models.Finding{
		{Severity: models.SeverityOK},
		{Severity: models.SeverityWarn},
	}))
	assert.Equal(t, models.SeverityFail, models.Worst([]models.Finding{
		{Severity: models.SeverityFail},
		{Severity: models.SeverityOK},
	}))
}
