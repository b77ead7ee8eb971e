package domain

// RefReader answers read-only queries against the git object store for an
// arbitrary ref. No checkout, no mutation; implementations may spawn git
// query processes but must never write.
type RefReader interface {
	// CurrentBranch returns the checked-out branch name, or a
	// ReferenceNotFoundError when not inside a repository.
	CurrentBranch() (string, error)

	// Exists reports whether ref resolves locally or as a remote-tracking
	// ref on origin.
	Exists(ref string) bool

	// FileCount returns the number of tracked blobs under ref's tree.
	FileCount(ref string) (int, error)

	// FileExists reports whether path is a tracked blob under ref. The
	// error is reserved for fatal invocation failures, never for absence.
	FileExists(path, ref string) (bool, error)

	// DirectoryExists reports whether path has a non-empty tree listing
	// under ref.
	DirectoryExists(path, ref string) (bool, error)

	// FileContent returns the blob content of path under ref, or the empty
	// string when the path is absent. Callers must treat empty as absent
	// explicitly; absence is not an error.
	FileContent(path, ref string) (string, error)

	// DirectoryContents returns the basenames of all blobs under path in
	// ref's tree, recursively.
	DirectoryContents(path, ref string) ([]string, error)
}

// WorktreeInspector reports on the state of the local working tree, used by
// the pre-merge safety check.
type WorktreeInspector interface {
	IsGitRepo(path string) bool
	CurrentBranch(path string) (string, error)

	// Status returns the unstaged and staged file lists for the working
	// tree at path.
	Status(path string) (dirty, staged []string, err error)
}

// RuleLoader loads the rule set for a repository, merging any on-disk
// overrides over the built-in defaults.
type RuleLoader interface {
	Load(repoPath string) (RuleSet, error)
}
