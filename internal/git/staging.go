package git

import (
	"context"
	"fmt"
)

// Add stages the given files.
func Add(r *Repository, files []string) (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	for _, file := range files {
		if _, err := worktree.Add(file); err != nil {
			return "", fmt.Errorf("failed to stage %s: %w", file, err)
		}
	}

	return "Files staged successfully", nil
}

// Reset unstages all staged changes, resetting the index to HEAD.
func Reset(ctx context.Context, r *Repository) (string, error) {
	if _, err := r.runner.Run(ctx, "reset"); err != nil {
		return "", err
	}
	return "All staged changes reset", nil
}
