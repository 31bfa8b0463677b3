package ioformats

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"seo_url_checker/internal/domain/models"
)

// Candidate header names for the URL column, in priority order. The first
// candidate that matches a header (case-insensitively) wins.
var urlColumnCandidates = []string{"url", "link", "links"}

var (
	ErrEmptyInput  = errors.New("input has no rows")
	ErrNoURLColumn = errors.New("no url column found: expected a header named url, link, or links")
)

// ReadURLs extracts the URL column from CSV input, preserving row order and
// duplicates. Cells are passed through unfiltered apart from empty ones;
// validating individual URLs is the fetcher's job, not the loader's.
func ReadURLs(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	col := urlColumn(rows[0])
	if col == -1 {
		return nil, ErrNoURLColumn
	}

	urls := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if u := strings.TrimSpace(row[col]); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// ReadURLsFromFile is ReadURLs over a file path.
func ReadURLsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadURLs(f)
}

func urlColumn(header []string) int {
	for _, cand := range urlColumnCandidates {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), cand) {
				return i
			}
		}
	}
	return -1
}

var csvHeader = []string{
	"requested_url", "overall", "fetch_status",
	models.CheckStatus, models.CheckCanonical, models.CheckRobots,
	models.CheckTitle, models.CheckDescription,
}

// WriteCSV serializes a bulk result as one row per report: requested URL,
// overall verdict, fetch status, then one "severity: message" cell per check.
func WriteCSV(w io.Writer, result *models.BulkResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range result.Reports {
		if err := cw.Write(reportRow(&result.Reports[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func reportRow(rep *models.Report) []string {
	status := ""
	if rep.FetchStatus != nil {
		status = strconv.Itoa(*rep.FetchStatus)
	}

	cells := make(map[string]string, len(rep.Findings))
	for _, f := range rep.Findings {
		cells[f.Check] = fmt.Sprintf("%s: %s", f.Severity, f.Message)
	}
	// A failed fetch produces no status check; surface it in that column so
	// the row explains itself.
	if cells[models.CheckStatus] == "" {
		cells[models.CheckStatus] = cells[models.CheckFetch]
	}

	return []string{
		rep.RequestedURL,
		string(rep.Overall),
		status,
		cells[models.CheckStatus],
		cells[models.CheckCanonical],
		cells[models.CheckRobots],
		cells[models.CheckTitle],
		cells[models.CheckDescription],
	}
}

// WriteNDJSON streams the reports as one JSON object per line.
func WriteNDJSON(w io.Writer, result *models.BulkResult) error {
	enc := json.NewEncoder(w)
	for i := range result.Reports {
		if err := enc.Encode(&result.Reports[i]); err != nil {
			return err
		}
	}
	return nil
}
