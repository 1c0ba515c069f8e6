// Package gitlib provides a thin wrapper around libgit2 for repository
// discovery and commit history iteration.
package gitlib

import (
	"errors"
	"fmt"
	"time"

	git2go "github.com/libgit2/git2go/v34"
)

// ErrRepositoryNotFound is returned when no git repository is reachable from
// the starting directory.
var ErrRepositoryNotFound = errors.New("repository not found")

// Repository wraps a libgit2 repository.
type Repository struct {
	repo *git2go.Repository
	path string
}

// OpenRepository opens a git repository at the given path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git2go.OpenRepository(path)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{repo: repo, path: path}, nil
}

// DiscoverRepository walks up from the starting directory until it finds a
// git repository. A missing repository is reported as ErrRepositoryNotFound
// so callers can degrade to an empty commit stream instead of failing.
func DiscoverRepository(start string) (*Repository, error) {
	gitDir, err := git2go.Discover(start, false, nil)
	if err != nil {
		if git2go.IsErrorCode(err, git2go.ErrorCodeNotFound) {
			return nil, fmt.Errorf("%w: no repository above %s", ErrRepositoryNotFound, start)
		}

		return nil, fmt.Errorf("discover repository from %s: %w", start, err)
	}

	return OpenRepository(gitDir)
}

// Path returns the repository path.
func (r *Repository) Path() string {
	return r.path
}

// Free releases the repository resources.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// Head returns the HEAD reference target hash.
func (r *Repository) Head() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("get HEAD: %w", err)
	}
	defer ref.Free()

	return ref.Target().String(), nil
}

// LogOptions configures the commit log iteration.
type LogOptions struct {
	Since       *time.Time // Only include commits after this time.
	FirstParent bool       // Follow only first parent (git log --first-parent).
}

// Log returns a commit iterator starting from HEAD.
func (r *Repository) Log(opts *LogOptions) (*CommitIter, error) {
	walk, err := r.repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}

	headRef, err := r.repo.Head()
	if err != nil {
		walk.Free()

		return nil, fmt.Errorf("get HEAD: %w", err)
	}
	defer headRef.Free()

	err = walk.Push(headRef.Target())
	if err != nil {
		walk.Free()

		return nil, fmt.Errorf("push HEAD to revwalk: %w", err)
	}

	walk.Sorting(git2go.SortTime | git2go.SortTopological)

	if opts != nil && opts.FirstParent {
		walk.SimplifyFirstParent()
	}

	var since *time.Time
	if opts != nil {
		since = opts.Since
	}

	return &CommitIter{walk: walk, repo: r, since: since}, nil
}
