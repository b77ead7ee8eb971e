package check

import (
	"fmt"
	"math"

	"github.com/mergegate/mergegate/internal/domain"
)

// FileCount compares the tracked-file counts of source and target. Gaining
// files always passes. Losing files fails only past the configured
// thresholds (absolute or relative); a smaller loss passes with a warning.
func FileCount(ctx *Context) (domain.CheckResult, error) {
	result := domain.CheckResult{Name: "FileCount"}

	src, err := ctx.Reader.FileCount(ctx.Source)
	if err != nil {
		return result, err
	}
	tgt, err := ctx.Reader.FileCount(ctx.Target)
	if err != nil {
		return result, err
	}

	delta := src - tgt
	counts := fmt.Sprintf("source %s has %d files, target %s has %d", ctx.Source, src, ctx.Target, tgt)

	if delta >= 0 {
		result.Passed = true
		result.Message = fmt.Sprintf("no file loss (%+d files)", delta)
		result.Details = append(result.Details, counts)
		return result, nil
	}

	var percent float64
	if tgt > 0 {
		percent = float64(delta) / float64(tgt) * 100
	}

	if delta < -ctx.Rules.MaxAbsoluteLoss || math.Abs(percent) > ctx.Rules.MaxPercentLoss {
		result.Passed = false
		result.Message = fmt.Sprintf("major file loss: %d files (%.1f%%)", delta, percent)
		result.Details = append(result.Details, counts,
			fmt.Sprintf("thresholds: %d files absolute, %.1f%% relative",
				ctx.Rules.MaxAbsoluteLoss, ctx.Rules.MaxPercentLoss))
		return result, nil
	}

	result.Passed = true
	result.Message = fmt.Sprintf("minor file loss within thresholds: %d files (%.1f%%)", delta, percent)
	result.Details = append(result.Details, counts)
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("source has %d fewer tracked files than target", -delta))
	return result, nil
}
