package hooks

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/mergegate/mergegate/internal/adapters/outbound/gitcli"
	"github.com/mergegate/mergegate/internal/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Names lists the managed hook scripts in installation order.
var Names = []string{"pre-merge-commit", "pre-push", "post-merge"}

// Installer writes and removes the mergegate hook scripts. Both operations
// are idempotent: repeat installs produce byte-identical files, repeat
// uninstalls are a no-op.
type Installer struct {
	dir   string
	rules domain.RuleSet
}

// NewInstaller creates an Installer writing into dir.
func NewInstaller(dir string, rules domain.RuleSet) *Installer {
	return &Installer{dir: dir, rules: rules}
}

// ResolveDir returns the hooks directory of the repository at repoPath,
// honoring worktrees and relocated git dirs.
func ResolveDir(repoPath string) (string, error) {
	runner := &gitcli.ExecRunner{Dir: repoPath}
	out, code, err := runner.Run("rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", &domain.ReferenceNotFoundError{}
	}
	dir := strings.TrimSpace(out)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(repoPath, dir)
	}
	return dir, nil
}

// Install ensures the hooks directory exists and writes the three hook
// scripts rendered from the embedded templates.
func (i *Installer) Install() error {
	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return fmt.Errorf("creating hooks directory: %w", err)
	}

	for _, name := range Names {
		content, err := i.render(name)
		if err != nil {
			return err
		}
		path := filepath.Join(i.dir, name)
		if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
			return fmt.Errorf("writing hook %s: %w", name, err)
		}
	}
	return nil
}

// Uninstall removes the three hook scripts. Absent files are skipped, not
// errors.
func (i *Installer) Uninstall() error {
	for _, name := range Names {
		err := os.Remove(filepath.Join(i.dir, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing hook %s: %w", name, err)
		}
	}
	return nil
}

func (i *Installer) render(name string) (string, error) {
	raw, err := templatesFS.ReadFile("templates/" + name + ".sh.tmpl")
	if err != nil {
		return "", fmt.Errorf("reading embedded hook %s: %w", name, err)
	}

	// Hooks with CRLF endings fail under /usr/bin/env sh, so normalize
	// whatever the build host produced.
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing hook template %s: %w", name, err)
	}

	var b strings.Builder
	err = tmpl.Execute(&b, map[string]any{
		"Protected":         strings.Join(i.rules.ProtectedBranches, " "),
		"TargetBranch":      i.rules.TargetBranch,
		"LowFileCountFloor": i.rules.LowFileCountFloor,
	})
	if err != nil {
		return "", fmt.Errorf("rendering hook %s: %w", name, err)
	}
	return b.String(), nil
}
