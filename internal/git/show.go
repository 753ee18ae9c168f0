package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Show returns the metadata and patch of the given revision. Commits with a
// parent are diffed against their first parent; a root commit is diffed
// against the empty tree so its full file contents are still returned.
func Show(r *Repository, revision string) (string, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", fmt.Errorf("failed to resolve revision %s: %w", revision, err)
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", hash, err)
	}

	var output strings.Builder
	output.WriteString(formatCommit(commit))

	patch, err := commitPatch(commit)
	if err != nil {
		return "", err
	}
	output.WriteString("\n")
	output.WriteString(patch.String())

	return output.String(), nil
}

func commitPatch(commit *object.Commit) (*object.Patch, error) {
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("failed to read parent commit: %w", err)
		}
		patch, err := parent.Patch(commit)
		if err != nil {
			return nil, fmt.Errorf("failed to compute patch: %w", err)
		}
		return patch, nil
	}

	// Root commit: diff against the empty tree.
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read commit tree: %w", err)
	}
	changes, err := object.DiffTree(nil, tree)
	if err != nil {
		return nil, fmt.Errorf("failed to diff against empty tree: %w", err)
	}
	patch, err := changes.Patch()
	if err != nil {
		return nil, fmt.Errorf("failed to compute patch: %w", err)
	}
	return patch, nil
}
