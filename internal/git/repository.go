package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gitmcperrors "gitmcp.dev/gitmcp/internal/errors"
)

// Repository wraps a go-git repository together with a command runner bound to
// its root. Handles are opened per invocation and never cached.
type Repository struct {
	repo   *gogit.Repository
	path   string
	runner *CommandRunner
}

// Open opens the git repository rooted at path. A path that is not a
// repository root fails with an InvalidRepositoryError before any operation
// runs.
func Open(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpen(absPath)
	if err != nil {
		return nil, gitmcperrors.NewInvalidRepositoryError(absPath, err)
	}

	return &Repository{
		repo:   repo,
		path:   absPath,
		runner: NewCommandRunner(absPath),
	}, nil
}

// Root returns the root directory of the repository
func (r *Repository) Root() string {
	return r.path
}

// CurrentBranch returns the name of the currently checked-out branch
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// BranchNames returns all local branch names
func (r *Repository) BranchNames() ([]string, error) {
	branches, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// branchReference resolves a local branch name to its reference.
func (r *Repository) branchReference(name string) (*plumbing.Reference, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		return nil, gitmcperrors.NewBranchNotFoundError(name)
	}
	return ref, nil
}
