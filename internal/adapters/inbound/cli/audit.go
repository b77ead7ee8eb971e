package cli

import (
	"fmt"

	"github.com/mergegate/mergegate/internal/adapters/outbound/gitcli"
	"github.com/mergegate/mergegate/internal/adapters/outbound/tui"
	"github.com/mergegate/mergegate/internal/application"
	"github.com/spf13/cobra"
)

func newBranchAuditCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "branch-audit [branch]",
		Short: "Print the tracked-file count for a branch",
		Long:  "Diagnostic only: prints the tracked-file count for the given branch, defaulting to the current one. Always exits 0.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}

			logger := tui.NewLogger(cmd.OutOrStdout())
			svc := application.NewAuditService(gitcli.New(path))

			audit, err := svc.Audit(branch)
			if err != nil {
				// Diagnostic command: report the problem but never gate.
				logger.Warn("branch audit unavailable: %v", err)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAudit(audit))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Repository path")

	return cmd
}
