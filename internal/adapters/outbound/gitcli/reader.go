package gitcli

import (
	"errors"
	"path"
	"strings"

	"github.com/mergegate/mergegate/internal/domain"
)

// Reader implements domain.RefReader by querying the git binary. All
// operations are read-only; the only side effect is spawning git query
// processes.
type Reader struct {
	runner   Runner
	resolved map[string]string
}

// New creates a Reader backed by the real git binary, run in dir (empty
// means the current directory).
func New(dir string) *Reader {
	return &Reader{runner: &ExecRunner{Dir: dir}, resolved: map[string]string{}}
}

// NewWithRunner creates a Reader with a custom runner, used by tests to
// substitute an in-memory fake.
func NewWithRunner(runner Runner) *Reader {
	return &Reader{runner: runner, resolved: map[string]string{}}
}

func (g *Reader) CurrentBranch() (string, error) {
	out, code, err := g.runner.Run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", &domain.ReferenceNotFoundError{}
	}
	return strings.TrimSpace(out), nil
}

// Exists reports whether ref resolves to a commit locally or as
// origin/<ref>. The name that resolved is remembered so that later tree
// and blob queries run against the same ref, keeping remote-tracking-only
// branches queryable.
func (g *Reader) Exists(ref string) bool {
	_, ok := g.resolve(ref)
	return ok
}

func (g *Reader) resolve(ref string) (string, bool) {
	if name, ok := g.resolved[ref]; ok {
		return name, true
	}
	for _, name := range []string{ref, "origin/" + ref} {
		if g.resolves(name) {
			g.resolved[ref] = name
			return name, true
		}
	}
	return ref, false
}

// refName maps ref to the name that resolved it, falling back to the bare
// name for refs that were never probed through Exists.
func (g *Reader) refName(ref string) string {
	name, _ := g.resolve(ref)
	return name
}

func (g *Reader) resolves(ref string) bool {
	_, code, err := g.runner.Run("rev-parse", "--verify", "--quiet", ref+"^{commit}")
	return err == nil && code == 0
}

func (g *Reader) FileCount(ref string) (int, error) {
	lines, err := g.listTree(ref, "")
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (g *Reader) FileExists(filePath, ref string) (bool, error) {
	_, code, err := g.runner.Run("cat-file", "-e", g.refName(ref)+":"+filePath)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}

func (g *Reader) DirectoryExists(dirPath, ref string) (bool, error) {
	lines, err := g.listTree(ref, dirPath)
	if err != nil {
		return false, err
	}
	return len(lines) > 0, nil
}

// FileContent returns the blob content of filePath under ref, or "" when
// the path is absent. Absence is not an error; callers branch on empty.
func (g *Reader) FileContent(filePath, ref string) (string, error) {
	out, code, err := g.runner.Run("show", g.refName(ref)+":"+filePath)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", nil
	}
	return out, nil
}

func (g *Reader) DirectoryContents(dirPath, ref string) ([]string, error) {
	lines, err := g.listTree(ref, dirPath)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, path.Base(line))
	}
	return names, nil
}

// listTree returns the tracked blob paths under ref, optionally restricted
// to treePath. A non-zero exit here is unexpected for a resolvable ref and
// surfaces as a ToolInvocationError.
func (g *Reader) listTree(ref, treePath string) ([]string, error) {
	args := []string{"ls-tree", "-r", "--name-only", g.refName(ref)}
	if treePath != "" {
		args = append(args, "--", treePath)
	}
	out, code, err := g.runner.Run(args...)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, &domain.ToolInvocationError{
			Args:     args,
			ExitCode: code,
			Err:      errors.New("ls-tree exited non-zero for a resolvable ref"),
		}
	}
	return splitLines(out), nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
