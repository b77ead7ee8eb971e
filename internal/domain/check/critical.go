package check

import (
	"fmt"

	"github.com/mergegate/mergegate/internal/domain"
)

// CriticalDirectories verifies that every critical directory resolves as a
// non-empty tree in the source branch. All misses are reported, not just
// the first.
func CriticalDirectories(ctx *Context) (domain.CheckResult, error) {
	result := domain.CheckResult{Name: "CriticalDirectories"}

	var missing []string
	for _, dir := range ctx.Rules.CriticalDirectories {
		exists, err := ctx.Reader.DirectoryExists(dir, ctx.Source)
		if err != nil {
			return result, err
		}
		if !exists {
			missing = append(missing, dir)
		}
	}

	if len(missing) > 0 {
		result.Passed = false
		result.Message = fmt.Sprintf("%d of %d critical directories missing from %s",
			len(missing), len(ctx.Rules.CriticalDirectories), ctx.Source)
		for _, dir := range missing {
			result.Details = append(result.Details, fmt.Sprintf("missing directory: %s", dir))
		}
		return result, nil
	}

	result.Passed = true
	result.Message = fmt.Sprintf("all %d critical directories present", len(ctx.Rules.CriticalDirectories))
	return result, nil
}

// CriticalFiles verifies that every critical file exists as a blob in the
// source branch.
func CriticalFiles(ctx *Context) (domain.CheckResult, error) {
	result := domain.CheckResult{Name: "CriticalFiles"}

	var missing []string
	for _, file := range ctx.Rules.CriticalFiles {
		exists, err := ctx.Reader.FileExists(file, ctx.Source)
		if err != nil {
			return result, err
		}
		if !exists {
			missing = append(missing, file)
		}
	}

	if len(missing) > 0 {
		result.Passed = false
		result.Message = fmt.Sprintf("%d of %d critical files missing from %s",
			len(missing), len(ctx.Rules.CriticalFiles), ctx.Source)
		for _, file := range missing {
			result.Details = append(result.Details, fmt.Sprintf("missing file: %s", file))
		}
		return result, nil
	}

	result.Passed = true
	result.Message = fmt.Sprintf("all %d critical files present", len(ctx.Rules.CriticalFiles))
	return result, nil
}
