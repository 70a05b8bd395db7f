package driven

import "context"

// PackRef identifies a remote skill pack.
type PackRef struct {
	// Owner is the repository owner (user or organisation).
	Owner string

	// Repo is the repository name.
	Repo string

	// Dir is the subdirectory holding the pack. Empty means the
	// repository root.
	Dir string

	// Ref is the git ref to fetch (branch, tag or SHA). Empty means
	// the repository's default branch.
	Ref string
}

// String renders the ref in "owner/repo/dir@ref" form.
func (r PackRef) String() string {
	s := r.Owner + "/" + r.Repo
	if r.Dir != "" {
		s += "/" + r.Dir
	}
	if r.Ref != "" {
		s += "@" + r.Ref
	}
	return s
}

// FetchResult summarises a completed pack download.
type FetchResult struct {
	// Files lists the written file paths, relative to the destination.
	Files []string

	// Skipped counts remote entries ignored because they are not
	// Markdown documents.
	Skipped int
}

// PackFetcher downloads a remote skill pack into a local directory.
type PackFetcher interface {
	// Fetch downloads every Markdown document under ref into destDir,
	// preserving the pack's relative layout. Existing files are
	// overwritten.
	Fetch(ctx context.Context, ref PackRef, destDir string) (*FetchResult, error)
}
