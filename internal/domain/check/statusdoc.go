package check

import (
	"fmt"
	"regexp"

	"github.com/mergegate/mergegate/internal/domain"
)

// Heuristic markers the status document must carry. The date marker looks
// for any ISO-shaped substring, not a parsed date.
var (
	phaseMarker    = regexp.MustCompile(`(?i)current phase`)
	progressMarker = regexp.MustCompile(`(?i)progress`)
	isoDateMarker  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// StatusDoc verifies the project status document exists in the source
// branch and contains the phase, progress, and ISO-date markers. Every
// missing marker is itemized.
func StatusDoc(ctx *Context) (domain.CheckResult, error) {
	result := domain.CheckResult{Name: "StatusDoc"}
	doc := ctx.Rules.StatusDoc

	content, err := ctx.Reader.FileContent(doc, ctx.Source)
	if err != nil {
		return result, err
	}
	if content == "" {
		result.Passed = false
		result.Message = fmt.Sprintf("status document %s missing from %s", doc, ctx.Source)
		result.Details = append(result.Details, fmt.Sprintf("missing file: %s", doc))
		return result, nil
	}

	var issues []string
	if !phaseMarker.MatchString(content) {
		issues = append(issues, "no current-phase marker")
	}
	if !progressMarker.MatchString(content) {
		issues = append(issues, "no progress marker")
	}
	if !isoDateMarker.MatchString(content) {
		issues = append(issues, "no ISO date (YYYY-MM-DD)")
	}

	if len(issues) > 0 {
		result.Passed = false
		result.Message = fmt.Sprintf("%s is missing %d marker(s)", doc, len(issues))
		result.Details = issues
		return result, nil
	}

	result.Passed = true
	result.Message = fmt.Sprintf("%s carries all required markers", doc)
	return result, nil
}
