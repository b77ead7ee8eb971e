package cli

import (
	"fmt"

	"github.com/mergegate/mergegate/internal/adapters/outbound/config"
	"github.com/mergegate/mergegate/internal/adapters/outbound/hooks"
	"github.com/mergegate/mergegate/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the mergegate git hooks",
		Long:  "Writes the pre-merge-commit, pre-push, and post-merge hook scripts. Idempotent: repeat installs produce byte-identical files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}

			dir, err := hooks.ResolveDir(path)
			if err != nil {
				return fmt.Errorf("locating hooks directory: %w", err)
			}

			if err := hooks.NewInstaller(dir, rules).Install(); err != nil {
				return fmt.Errorf("installing hooks: %w", err)
			}

			tui.NewLogger(cmd.OutOrStdout()).Success("installed %d hooks into %s", len(hooks.Names), dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Repository path")

	return cmd
}

func newUninstallCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the mergegate git hooks",
		Long:  "Removes the three hook scripts if present. A repeat uninstall is a no-op, not an error.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := config.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}

			dir, err := hooks.ResolveDir(path)
			if err != nil {
				return fmt.Errorf("locating hooks directory: %w", err)
			}

			if err := hooks.NewInstaller(dir, rules).Uninstall(); err != nil {
				return fmt.Errorf("uninstalling hooks: %w", err)
			}

			tui.NewLogger(cmd.OutOrStdout()).Success("removed mergegate hooks from %s", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Repository path")

	return cmd
}
