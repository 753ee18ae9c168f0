package git

import (
	"context"
	"fmt"
)

// Stash saves the current working tree changes to the stash, optionally with
// a message.
func Stash(ctx context.Context, r *Repository, message string) (string, error) {
	if message != "" {
		if _, err := r.runner.Run(ctx, "stash", "push", "-m", message); err != nil {
			return "", err
		}
		return fmt.Sprintf("Stashed changes with message: %s", message), nil
	}

	if _, err := r.runner.Run(ctx, "stash", "push"); err != nil {
		return "", err
	}
	return "Stashed changes", nil
}

// StashPop pops the stash entry at the given index. Index addressing follows
// the toolchain's own stash ordering, most recent first at 0.
func StashPop(ctx context.Context, r *Repository, index int) (string, error) {
	if _, err := r.runner.Run(ctx, "stash", "pop", fmt.Sprintf("stash@{%d}", index)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Popped stash at index %d", index), nil
}
