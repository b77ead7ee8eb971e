package check

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mergegate/mergegate/internal/domain"
)

// DecisionRecords verifies the ADR directory exists in the source branch,
// holds at least one markdown file, and that every required naming pattern
// is matched by at least one file.
func DecisionRecords(ctx *Context) (domain.CheckResult, error) {
	result := domain.CheckResult{Name: "DecisionRecords"}
	dir := ctx.Rules.ADRDir

	exists, err := ctx.Reader.DirectoryExists(dir, ctx.Source)
	if err != nil {
		return result, err
	}
	if !exists {
		result.Passed = false
		result.Message = fmt.Sprintf("decision-record directory %s missing from %s", dir, ctx.Source)
		result.Details = append(result.Details, fmt.Sprintf("missing directory: %s", dir))
		return result, nil
	}

	names, err := ctx.Reader.DirectoryContents(dir, ctx.Source)
	if err != nil {
		return result, err
	}

	var markdown []string
	for _, name := range names {
		if strings.HasSuffix(strings.ToLower(name), ".md") {
			markdown = append(markdown, name)
		}
	}

	if len(markdown) == 0 {
		result.Passed = false
		result.Message = fmt.Sprintf("%s contains no markdown decision records", dir)
		return result, nil
	}

	for _, pattern := range ctx.Rules.ADRPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			result.Details = append(result.Details, fmt.Sprintf("invalid pattern %q: %v", pattern, err))
			continue
		}
		if !matchesAny(re, markdown) {
			result.Details = append(result.Details,
				fmt.Sprintf("no decision record matches %q", pattern))
		}
	}

	if len(result.Details) > 0 {
		result.Passed = false
		result.Message = fmt.Sprintf("%d required decision categories unmatched in %s", len(result.Details), dir)
		return result, nil
	}

	result.Passed = true
	result.Message = fmt.Sprintf("%d decision record(s), all required categories covered", len(markdown))
	return result, nil
}

func matchesAny(re *regexp.Regexp, names []string) bool {
	for _, name := range names {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
