package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mergegate/mergegate/internal/adapters/outbound/config"
	"github.com/mergegate/mergegate/internal/adapters/outbound/gitcli"
	"github.com/mergegate/mergegate/internal/adapters/outbound/gitinfo"
	"github.com/mergegate/mergegate/internal/application"
	"github.com/mergegate/mergegate/internal/domain"
)

// registerTools registers the mergegate MCP tools on the given server.
func registerTools(s *server.MCPServer, repoPath string) {
	// 1. mergegate_validate_merge
	s.AddTool(
		mcplib.NewTool("mergegate_validate_merge",
			mcplib.WithDescription("Run the full merge validation for a (source, target) branch pair and return the report as JSON"),
			mcplib.WithString("source", mcplib.Description("Source branch (default: current branch)")),
			mcplib.WithString("target", mcplib.Description("Target branch (default: configured trunk)")),
		),
		handleValidateMerge(repoPath),
	)

	// 2. mergegate_pre_merge_check
	s.AddTool(
		mcplib.NewTool("mergegate_pre_merge_check",
			mcplib.WithDescription("Check whether the working tree is safe to merge into: clean, nothing staged, not on a protected branch"),
		),
		handlePreMergeCheck(repoPath),
	)

	// 3. mergegate_branch_audit
	s.AddTool(
		mcplib.NewTool("mergegate_branch_audit",
			mcplib.WithDescription("Return the tracked-file count for a branch"),
			mcplib.WithString("branch", mcplib.Description("Branch to audit (default: current branch)")),
		),
		handleBranchAudit(repoPath),
	)
}

func loadRules(repoPath string) (domain.RuleSet, error) {
	return config.New().Load(repoPath)
}

func handleValidateMerge(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rules, err := loadRules(repoPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading rules: %v", err)), nil
		}

		source := request.GetString("source", "")
		target := request.GetString("target", "")

		svc := application.NewValidateService(gitcli.New(repoPath), rules)
		report, err := svc.ValidateMerge(source, target, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("validation aborted: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handlePreMergeCheck(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rules, err := loadRules(repoPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading rules: %v", err)), nil
		}

		svc := application.NewPreMergeService(gitinfo.New(), rules)
		result, err := svc.Check(repoPath)
		if err != nil {
			return errorResult(fmt.Sprintf("pre-merge check failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleBranchAudit(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		branch := request.GetString("branch", "")

		svc := application.NewAuditService(gitcli.New(repoPath))
		audit, err := svc.Audit(branch)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(audit)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
