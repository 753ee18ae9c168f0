package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	gitmcperrors "gitmcp.dev/gitmcp/internal/errors"
)

// Merge merges the named branch into the current branch with a non-fast-forward
// merge. The target is resolved against local branches first, then
// remote-tracking references. A conflicting merge is aborted before the error
// surfaces so the repository is left in its pre-merge state.
func Merge(ctx context.Context, r *Repository, branch string) (string, error) {
	current, err := r.CurrentBranch()
	if err != nil {
		return "", err
	}

	target, err := resolveMergeTarget(r, branch)
	if err != nil {
		return "", err
	}

	if _, err := r.runner.Run(ctx, "merge", "--no-ff", target); err != nil {
		if isMergeConflict(err) {
			// Restore the pre-merge state before surfacing the conflict.
			if _, abortErr := r.runner.Run(ctx, "merge", "--abort"); abortErr != nil {
				return "", fmt.Errorf("merge conflict, and abort failed: %w", abortErr)
			}
			return "", gitmcperrors.NewMergeConflictError("Merge failed due to conflicts. Merge aborted.")
		}
		return "", err
	}

	return fmt.Sprintf("Merged %s into %s", branch, current), nil
}

// resolveMergeTarget resolves a branch name to a ref usable as a merge
// argument, checking local heads first and falling back to remote-tracking
// references.
func resolveMergeTarget(r *Repository, branch string) (string, error) {
	if _, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true); err == nil {
		return branch, nil
	}

	refs, err := r.repo.References()
	if err != nil {
		return "", fmt.Errorf("failed to read references: %w", err)
	}
	defer refs.Close()

	found := false
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsRemote() && ref.Name().Short() == branch {
			found = true
			return errStopIteration
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return "", fmt.Errorf("failed to iterate references: %w", err)
	}
	if !found {
		return "", gitmcperrors.NewBranchNotFoundError(branch)
	}
	return branch, nil
}

var errStopIteration = errors.New("stop iteration")

func isMergeConflict(err error) bool {
	var cmdErr *gitmcperrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	output := cmdErr.Output()
	return strings.Contains(output, "Automatic merge failed") ||
		strings.Contains(output, "CONFLICT")
}
