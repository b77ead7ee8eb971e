package tui

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/mergegate/mergegate/internal/domain"
)

// RenderValidationReport renders the full six-check report, ending in an
// unambiguous PASS/FAIL banner and, on failure, a remediation checklist.
func RenderValidationReport(report *domain.ValidationReport) string {
	var b strings.Builder

	title := headerStyle.Render("mergegate")
	subtitle := dimStyle.Render(fmt.Sprintf("%s → %s", report.Source, report.Target))

	banner := bannerPass.Render("PASS")
	if !report.Passed() {
		banner = bannerFail.Render("FAIL")
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + banner))
	b.WriteString("\n\n")

	for _, result := range report.Results {
		renderCheck(&b, result)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	if report.Passed() {
		b.WriteString("  " + passStyle.Render("All checks passed. Merge may proceed.") + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render("Remediation") + "\n\n")
	for _, failed := range report.FailedChecks() {
		b.WriteString(fmt.Sprintf("    %s fix %s: %s\n",
			failStyle.Render("●"), DisplayName(failed.Name), failed.Message))
	}
	b.WriteString("    " + dimStyle.Render("then re-run: mergegate validate-merge") + "\n")

	return b.String()
}

// RenderPreMerge renders the pre-merge safety check outcome.
func RenderPreMerge(result *domain.PreMergeResult) string {
	var b strings.Builder

	if result.Allowed {
		b.WriteString("  " + passStyle.Render("✓") + " clear to merge\n")
		return b.String()
	}

	b.WriteString("  " + failStyle.Render("✗") + " merge blocked\n")
	for _, reason := range result.Reasons {
		b.WriteString("    " + failStyle.Render("●") + " " + reason + "\n")
	}
	return b.String()
}

// RenderAudit renders the branch-audit diagnostic line.
func RenderAudit(audit *domain.BranchAudit) string {
	return fmt.Sprintf("  %s  %s tracked files\n",
		titleStyle.Render(audit.Branch),
		passStyle.Render(fmt.Sprintf("%d", audit.FileCount)))
}

func renderCheck(b *strings.Builder, result domain.CheckResult) {
	mark := passStyle.Render("✓")
	if !result.Passed {
		mark = failStyle.Render("✗")
	}

	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		mark, titleStyle.Render(DisplayName(result.Name)), dimStyle.Render(result.Message)))

	for _, detail := range result.Details {
		b.WriteString("      " + failStyle.Render("●") + " " + detail + "\n")
	}
	for _, warn := range result.Warnings {
		b.WriteString("      " + warnStyle.Render("▲") + " " + dimStyle.Render(warn) + "\n")
	}
}

// DisplayName splits a PascalCase check identifier into display words,
// e.g. "FileCount" → "File Count".
func DisplayName(name string) string {
	return strings.Join(camelcase.Split(name), " ")
}
