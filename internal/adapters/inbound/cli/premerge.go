package cli

import (
	"fmt"

	"github.com/mergegate/mergegate/internal/adapters/outbound/config"
	"github.com/mergegate/mergegate/internal/adapters/outbound/gitinfo"
	"github.com/mergegate/mergegate/internal/adapters/outbound/tui"
	"github.com/mergegate/mergegate/internal/application"
	"github.com/spf13/cobra"
)

func newPreMergeCheckCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "pre-merge-check",
		Short: "Verify the working tree is safe to merge into",
		Long:  "Checks that the working tree is clean, nothing is staged but uncommitted, and the current branch is not protected. Exits 1 with itemized reasons when blocked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}

			svc := application.NewPreMergeService(gitinfo.New(), rules)
			result, err := svc.Check(path)
			if err != nil {
				return fmt.Errorf("pre-merge check: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreMerge(result))

			if !result.Allowed {
				return fmt.Errorf("pre-merge check blocked: %d reason(s)", len(result.Reasons))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Repository path")

	return cmd
}
