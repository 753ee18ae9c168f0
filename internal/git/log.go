package git

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

const commitDateFormat = "2006-01-02 15:04:05 -0700"

// Log returns up to maxCount entries of the commit history starting at HEAD,
// most recent first. A maxCount of zero returns no entries, matching
// `git log --max-count=0`; a negative value means unlimited.
func Log(r *Repository, maxCount int) ([]string, error) {
	if maxCount == 0 {
		return nil, nil
	}

	iter, err := r.repo.Log(&gogit.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read commit log: %w", err)
	}
	defer iter.Close()

	var entries []string
	err = iter.ForEach(func(commit *object.Commit) error {
		if maxCount > 0 && len(entries) >= maxCount {
			return storer.ErrStop
		}
		entries = append(entries, formatCommit(commit))
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("failed to iterate commit log: %w", err)
	}

	return entries, nil
}

func formatCommit(commit *object.Commit) string {
	return fmt.Sprintf("Commit: %s\nAuthor: %s\nDate: %s\nMessage: %s\n",
		commit.Hash,
		commit.Author.String(),
		commit.Author.When.Format(commitDateFormat),
		strings.TrimSpace(commit.Message))
}
