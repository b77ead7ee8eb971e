package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mergegate/mergegate/internal/adapters/outbound/config"
	"github.com/mergegate/mergegate/internal/adapters/outbound/gitcli"
	"github.com/mergegate/mergegate/internal/adapters/outbound/tui"
	"github.com/mergegate/mergegate/internal/application"
	"github.com/mergegate/mergegate/internal/domain"
	"github.com/spf13/cobra"
)

func newValidateMergeCmd() *cobra.Command {
	var (
		source     string
		target     string
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate-merge",
		Short: "Run all integrity checks for a (source, target) branch pair",
		Long:  "Compare the source branch against the target branch with the full fixed-order check suite. Source defaults to the current branch, target to the configured trunk.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}

			logger := tui.NewLogger(cmd.OutOrStdout())
			svc := application.NewValidateService(gitcli.New(path), rules)

			observe := func(result domain.CheckResult) {
				name := tui.DisplayName(result.Name)
				switch {
				case !result.Passed:
					logger.Error("%s: %s", name, result.Message)
				case len(result.Warnings) > 0:
					logger.Warn("%s: %s", name, result.Message)
				default:
					logger.Success("%s: %s", name, result.Message)
				}
			}

			logger.Info("resolving branches")
			report, err := svc.ValidateMerge(source, target, observe)
			if err != nil {
				logger.Error("%v", err)
				return fmt.Errorf("validation aborted: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidationReport(report))
			}

			if !report.Passed() {
				return fmt.Errorf("merge validation failed: %d check(s) did not pass", len(report.FailedChecks()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source branch (default: current branch)")
	cmd.Flags().StringVar(&target, "target", "", "Target branch (default: configured trunk)")
	cmd.Flags().StringVar(&path, "path", ".", "Repository path")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}
