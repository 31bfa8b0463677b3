package service

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"seo_url_checker/internal/domain/models"
)

// Thresholds carries the configurable bounds the classifier grades against.
// Lengths are counted in runes.
type Thresholds struct {
	TitleMin       int
	TitleMax       int
	DescriptionMin int
	DescriptionMax int
	// CanonicalExact switches the canonical self-reference comparison from
	// normalized equality to exact string equality.
	CanonicalExact bool
}

// DefaultThresholds returns the standard SEO length recommendations.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TitleMin:       30,
		TitleMax:       60,
		DescriptionMin: 70,
		DescriptionMax: 160,
	}
}

// Classifier grades extracted page signals into findings. It is a pure
// component: no I/O, no state beyond the thresholds it was built with.
type Classifier struct {
	thresholds Thresholds
}

func NewClassifier(thresholds Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Classify runs the five checks in fixed order: status, canonical, robots,
// title, description. Checks are independent; one failing never suppresses
// the others.
func (c *Classifier) Classify(requestedURL, finalURL string, statusCode int, signals models.PageSignals) []models.Finding {
	return []models.Finding{
		c.checkStatus(requestedURL, finalURL, statusCode),
		c.checkCanonical(signals.Canonical, finalURL),
		c.checkRobots(signals),
		c.checkLength(models.CheckTitle, signals.Title, c.thresholds.TitleMin, c.thresholds.TitleMax),
		c.checkLength(models.CheckDescription, signals.Description, c.thresholds.DescriptionMin, c.thresholds.DescriptionMax),
	}
}

func (c *Classifier) checkStatus(requestedURL, finalURL string, statusCode int) models.Finding {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return models.Finding{
			Check:    models.CheckStatus,
			Severity: models.SeverityOK,
			Message:  fmt.Sprintf("status %d", statusCode),
		}
	case statusCode >= 300 && statusCode < 400:
		return models.Finding{
			Check:    models.CheckStatus,
			Severity: models.SeverityWarn,
			Message:  fmt.Sprintf("status %d redirect, resolved to %s", statusCode, finalURL),
		}
	case statusCode == 0:
		return models.Finding{
			Check:    models.CheckStatus,
			Severity: models.SeverityFail,
			Message:  "no status code",
		}
	default:
		return models.Finding{
			Check:    models.CheckStatus,
			Severity: models.SeverityFail,
			Message:  fmt.Sprintf("status %d", statusCode),
		}
	}
}

func (c *Classifier) checkCanonical(canonical *string, finalURL string) models.Finding {
	if canonical == nil {
		return models.Finding{
			Check:    models.CheckCanonical,
			Severity: models.SeverityFail,
			Message:  "canonical tag not found",
		}
	}

	var equal bool
	if c.thresholds.CanonicalExact {
		equal = *canonical == finalURL
	} else {
		equal = canonicalKey(*canonical) == canonicalKey(finalURL)
	}

	if equal {
		return models.Finding{
			Check:    models.CheckCanonical,
			Severity: models.SeverityOK,
			Message:  "self-referencing canonical",
		}
	}
	// A canonical pointing elsewhere is often intentional (paginated or
	// syndicated content), so it warns rather than fails.
	return models.Finding{
		Check:    models.CheckCanonical,
		Severity: models.SeverityWarn,
		Message:  fmt.Sprintf("canonical points elsewhere: %s", *canonical),
	}
}

// canonicalKey normalizes a URL for self-reference comparison: scheme and
// host case-insensitive, trailing slash insignificant, query kept verbatim.
func canonicalKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.TrimRight(raw, "/")
	}
	key := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + strings.TrimRight(u.EscapedPath(), "/")
	if u.RawQuery != "" {
		key += "?" + u.RawQuery
	}
	return key
}

func (c *Classifier) checkRobots(signals models.PageSignals) models.Finding {
	noindex := signals.HasDirective("noindex")
	nofollow := signals.HasDirective("nofollow")

	switch {
	case noindex && nofollow:
		return models.Finding{
			Check:    models.CheckRobots,
			Severity: models.SeverityFail,
			Message:  "noindex, nofollow directives present",
		}
	case noindex:
		return models.Finding{
			Check:    models.CheckRobots,
			Severity: models.SeverityFail,
			Message:  "noindex directive present",
		}
	case nofollow:
		return models.Finding{
			Check:    models.CheckRobots,
			Severity: models.SeverityWarn,
			Message:  "nofollow directive present",
		}
	default:
		return models.Finding{
			Check:    models.CheckRobots,
			Severity: models.SeverityOK,
			Message:  "no blocking robots directives",
		}
	}
}

func (c *Classifier) checkLength(check string, value *string, min, max int) models.Finding {
	if value == nil || strings.TrimSpace(*value) == "" {
		return models.Finding{
			Check:    check,
			Severity: models.SeverityFail,
			Message:  fmt.Sprintf("missing %s", check),
		}
	}

	length := utf8.RuneCountInString(*value)
	switch {
	case length < min:
		return models.Finding{
			Check:    check,
			Severity: models.SeverityWarn,
			Message:  fmt.Sprintf("%s is %d characters, below the recommended minimum of %d", check, length, min),
		}
	case length > max:
		return models.Finding{
			Check:    check,
			Severity: models.SeverityWarn,
			Message:  fmt.Sprintf("%s is %d characters, above the recommended maximum of %d", check, length, max),
		}
	default:
		return models.Finding{
			Check:    check,
			Severity: models.SeverityOK,
			Message:  fmt.Sprintf("%s is %d characters", check, length),
		}
	}
}
