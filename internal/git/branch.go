package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	gitmcperrors "gitmcp.dev/gitmcp/internal/errors"
)

// CreateBranch creates a new branch pointing at baseBranch, or at the
// currently checked-out branch when baseBranch is empty. The new branch is
// not checked out.
func CreateBranch(r *Repository, branchName, baseBranch string) (string, error) {
	// SetReference overwrites, so an existing branch must be rejected before
	// the ref is written.
	if _, err := r.repo.Reference(plumbing.NewBranchReferenceName(branchName), false); err == nil {
		return "", gitmcperrors.NewBranchExistsError(branchName)
	}

	var baseName string
	var baseHash plumbing.Hash

	if baseBranch != "" {
		ref, err := r.branchReference(baseBranch)
		if err != nil {
			return "", err
		}
		baseName = baseBranch
		baseHash = ref.Hash()
	} else {
		head, err := r.repo.Head()
		if err != nil {
			return "", fmt.Errorf("failed to get HEAD: %w", err)
		}
		baseName = head.Name().Short()
		baseHash = head.Hash()
	}

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(branchName), baseHash)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		return "", fmt.Errorf("failed to create branch %s: %w", branchName, err)
	}

	return fmt.Sprintf("Created branch '%s' from '%s'", branchName, baseName), nil
}

// Checkout switches the working tree to the given branch.
func Checkout(ctx context.Context, r *Repository, branchName string) (string, error) {
	if _, err := r.runner.Run(ctx, "checkout", branchName); err != nil {
		return "", err
	}
	return fmt.Sprintf("Switched to branch '%s'", branchName), nil
}

// CurrentBranch returns the name of the currently checked-out branch.
func CurrentBranch(r *Repository) (string, error) {
	return r.CurrentBranch()
}

// ListBranches returns all local branch names.
func ListBranches(r *Repository) ([]string, error) {
	return r.BranchNames()
}

// DeleteBranch deletes a branch; force deletes even if unmerged.
func DeleteBranch(ctx context.Context, r *Repository, branchName string, force bool) (string, error) {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := r.runner.Run(ctx, "branch", flag, branchName); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted branch %s", branchName), nil
}
