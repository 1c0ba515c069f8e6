package gitlib

import (
	"errors"
	"fmt"
	"time"
)

// CommitLoadOptions configures how commits are loaded from a repository.
type CommitLoadOptions struct {
	Limit       int
	FirstParent bool
	Since       string
}

// ErrInvalidTimeFormat is returned when a time string cannot be parsed.
var ErrInvalidTimeFormat = errors.New("cannot parse time")

// ParseTime parses a time string in several formats:
// - Duration relative to now (e.g. "24h")
// - RFC3339 (e.g. "2024-01-01T00:00:00Z")
// - Date only (e.g. "2024-01-01").
func ParseTime(s string) (time.Time, error) {
	d, durationErr := time.ParseDuration(s)
	if durationErr == nil {
		return time.Now().Add(-d), nil
	}

	parsedTime, rfc3339Err := time.Parse(time.RFC3339, s)
	if rfc3339Err == nil {
		return parsedTime, nil
	}

	parsedTime, dateOnlyErr := time.Parse(time.DateOnly, s)
	if dateOnlyErr == nil {
		return parsedTime, nil
	}

	return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimeFormat, s)
}

// ReverseCommits reverses the order of commits (to oldest first).
func ReverseCommits(commits []*Commit) {
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
}

// LoadCommits walks the history from HEAD with the given options and returns
// the commits oldest first.
func LoadCommits(repository *Repository, opts CommitLoadOptions) ([]*Commit, error) {
	logOpts := &LogOptions{
		FirstParent: opts.FirstParent,
	}

	if opts.Since != "" {
		sinceTime, parseErr := ParseTime(opts.Since)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid time format for --since: %w", parseErr)
		}

		logOpts.Since = &sinceTime
	}

	iter, err := repository.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}
	defer iter.Close()

	commits := collectCommits(iter, opts.Limit)
	ReverseCommits(commits)

	return commits, nil
}

func collectCommits(iter *CommitIter, limit int) []*Commit {
	var commits []*Commit

	count := 0

	for {
		commit, err := iter.Next()
		if err != nil {
			break
		}

		if limit > 0 && count >= limit {
			commit.Free()

			break
		}

		commits = append(commits, commit)
		count++
	}

	return commits
}
