package gitlib

import (
	"errors"
	"io"
	"time"

	git2go "github.com/libgit2/git2go/v34"
)

// Signature represents a git signature (author/committer).
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Commit wraps a libgit2 commit.
type Commit struct {
	commit *git2go.Commit
	repo   *Repository
}

// Hash returns the commit hash as a hex string.
func (c *Commit) Hash() string {
	return c.commit.Id().String()
}

// Author returns the commit author signature.
func (c *Commit) Author() Signature {
	sig := c.commit.Author()

	return Signature{
		Name:  sig.Name,
		Email: sig.Email,
		When:  sig.When,
	}
}

// Committer returns the commit committer signature.
func (c *Commit) Committer() Signature {
	sig := c.commit.Committer()

	return Signature{
		Name:  sig.Name,
		Email: sig.Email,
		When:  sig.When,
	}
}

// Message returns the full commit message.
func (c *Commit) Message() string {
	return c.commit.Message()
}

// Free releases the commit resources.
func (c *Commit) Free() {
	if c.commit != nil {
		c.commit.Free()
		c.commit = nil
	}
}

// CommitIter iterates over commits in revwalk order.
type CommitIter struct {
	walk  *git2go.RevWalk
	repo  *Repository
	since *time.Time
}

// Next returns the next commit, or io.EOF when the walk is exhausted or the
// since cutoff is reached.
func (ci *CommitIter) Next() (*Commit, error) {
	if ci.walk == nil {
		return nil, io.EOF
	}

	for {
		oid := new(git2go.Oid)

		err := ci.walk.Next(oid)
		if err != nil {
			ci.Close()

			return nil, io.EOF
		}

		commit, err := ci.repo.repo.LookupCommit(oid)
		if err != nil {
			continue
		}

		if ci.since != nil && commit.Author().When.Before(*ci.since) {
			commit.Free()
			ci.Close()

			return nil, io.EOF
		}

		return &Commit{commit: commit, repo: ci.repo}, nil
	}
}

// ForEach calls the callback for each commit, freeing it afterwards.
func (ci *CommitIter) ForEach(cb func(*Commit) error) error {
	for {
		commit, err := ci.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		cbErr := cb(commit)
		commit.Free()

		if cbErr != nil {
			return cbErr
		}
	}
}

// Close releases the walker resources.
func (ci *CommitIter) Close() {
	if ci.walk != nil {
		ci.walk.Free()
		ci.walk = nil
	}
}
