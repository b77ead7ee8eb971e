package check

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/mergegate/mergegate/internal/domain"
)

// ConfigIntegrity structurally parses every present JSON-family config file
// in the source branch. A parse error fails the check naming the exact
// file; an absent candidate only warns. Non-JSON candidates are listed but
// skipped with a warning and can never fail the check.
func ConfigIntegrity(ctx *Context) (domain.CheckResult, error) {
	result := domain.CheckResult{Name: "ConfigIntegrity"}

	parsed := 0
	for _, file := range ctx.Rules.ConfigFiles {
		if !isJSONFamily(file) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: not a JSON file, structural parse skipped", file))
			continue
		}

		content, err := ctx.Reader.FileContent(file, ctx.Source)
		if err != nil {
			return result, err
		}
		if content == "" {
			// Empty means absent per the RefReader contract.
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: not present in %s", file, ctx.Source))
			continue
		}

		var v any
		if err := json.Unmarshal([]byte(content), &v); err != nil {
			result.Details = append(result.Details, fmt.Sprintf("%s: %v", file, err))
			continue
		}
		parsed++
	}

	if len(result.Details) > 0 {
		result.Passed = false
		result.Message = fmt.Sprintf("%d config file(s) failed structural parse", len(result.Details))
		return result, nil
	}

	result.Passed = true
	result.Message = fmt.Sprintf("%d config file(s) parsed cleanly", parsed)
	return result, nil
}

func isJSONFamily(file string) bool {
	return strings.EqualFold(path.Ext(file), ".json")
}
