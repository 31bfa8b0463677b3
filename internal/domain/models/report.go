package models

// Severity grades the outcome of a single SEO check.
type Severity string

const (
	SeverityOK   Severity = "ok"
	SeverityWarn Severity = "warn"
	SeverityFail Severity = "fail"
)

var severityRank = map[Severity]int{
	SeverityOK:   0,
	SeverityWarn: 1,
	SeverityFail: 2,
}

// WorseThan reports whether s outranks other (fail > warn > ok).
func (s Severity) WorseThan(other Severity) bool {
	return severityRank[s] > severityRank[other]
}

// Worst returns the highest severity among the findings, or ok when there
// are none.
func Worst(findings []Finding) Severity {
	worst := SeverityOK
	for _, f := range findings {
		if f.Severity.WorseThan(worst) {
			worst = f.Severity
		}
	}
	return worst
}

// Check names as they appear in findings and report columns.
const (
	CheckFetch       = "fetch"
	CheckStatus      = "status"
	CheckCanonical   = "canonical"
	CheckRobots      = "robots"
	CheckTitle       = "title"
	CheckDescription = "description"
)

// Finding is one graded observation about a page.
type Finding struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report holds the outcome of analyzing a single URL. FetchStatus is nil
// when the fetch itself failed; in that case Findings contains exactly one
// fetch finding and Overall is fail.
type Report struct {
	RequestedURL string    `json:"requested_url"`
	FetchStatus  *int      `json:"fetch_status,omitempty"`
	Findings     []Finding `json:"findings"`
	Overall      Severity  `json:"overall"`
}

// Finding returns the finding for the named check, or nil if the report has
// none.
func (r *Report) Finding(check string) *Finding {
	for i := range r.Findings {
		if r.Findings[i].Check == check {
			return &r.Findings[i]
		}
	}
	return nil
}

// Summary counts reports by overall verdict.
type Summary struct {
	Total int `json:"total"`
	OK    int `json:"ok_count"`
	Warn  int `json:"warn_count"`
	Fail  int `json:"fail_count"`
}

// BulkResult aggregates the reports of a bulk run. Reports preserves the
// input URL order, duplicates included.
type BulkResult struct {
	Reports []Report `json:"reports"`
	Summary Summary  `json:"summary"`
}
