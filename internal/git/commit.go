package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// Commit records the staged changes with the given message. The toolchain
// commits the index atomically; its own empty-index behavior propagates
// unchanged.
func Commit(r *Repository, message string) (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	hash, err := worktree.Commit(message, &gogit.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	return fmt.Sprintf("Changes committed successfully with hash %s", hash), nil
}
