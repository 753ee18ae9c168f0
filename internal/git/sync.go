package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitmcp.dev/gitmcp/internal/config"
	gitmcperrors "gitmcp.dev/gitmcp/internal/errors"
)

// credentialEnv builds the environment injected into push/pull/fetch when the
// remote uses a network transport and credentials are configured. Local and
// ssh remotes never receive credentials.
func credentialEnv(url string, creds config.Credentials) []string {
	if !creds.Present() {
		return nil
	}
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return nil
	}
	return []string{
		"GIT_USERNAME=" + creds.Username,
		"GIT_PASSWORD=" + creds.Token,
	}
}

// Push pushes the given branch (or the configured upstream when branch is
// empty) to the named remote.
func Push(ctx context.Context, r *Repository, remote, branch string, creds config.Credentials) (string, error) {
	url, err := remoteURL(r, remote)
	if err != nil {
		return "", err
	}

	args := []string{"push", remote}
	if branch != "" {
		args = append(args, branch)
	}
	if _, err := r.runner.RunWithEnv(ctx, credentialEnv(url, creds), args...); err != nil {
		return "", err
	}

	if branch != "" {
		return fmt.Sprintf("Pushed changes to %s/%s", remote, branch), nil
	}
	return fmt.Sprintf("Pushed changes to %s", remote), nil
}

// Pull pulls from the named remote, persisting the requested strategy into
// the repository's pull.rebase configuration first. Failures caused by
// unstaged local changes or by a failed automatic merge are classified;
// anything else passes through unchanged.
func Pull(ctx context.Context, r *Repository, remote, branch string, rebase bool, creds config.Credentials) (string, error) {
	url, err := remoteURL(r, remote)
	if err != nil {
		return "", err
	}

	if _, err := r.runner.Run(ctx, "config", "pull.rebase", fmt.Sprintf("%t", rebase)); err != nil {
		return "", err
	}

	args := []string{"pull"}
	if branch != "" {
		args = append(args, remote, branch)
	}
	if _, err := r.runner.RunWithEnv(ctx, credentialEnv(url, creds), args...); err != nil {
		return "", classifyPullError(err)
	}

	strategy := "merged"
	if rebase {
		strategy = "rebased"
	}
	if branch != "" {
		return fmt.Sprintf("Pulled and %s changes from %s/%s", strategy, remote, branch), nil
	}
	return fmt.Sprintf("Pulled and %s changes from %s", strategy, remote), nil
}

// Fetch downloads objects and refs from the named remote without merging.
func Fetch(ctx context.Context, r *Repository, remote string, creds config.Credentials) (string, error) {
	url, err := remoteURL(r, remote)
	if err != nil {
		return "", err
	}

	if _, err := r.runner.RunWithEnv(ctx, credentialEnv(url, creds), "fetch", remote); err != nil {
		return "", err
	}
	return fmt.Sprintf("Fetched changes from %s", remote), nil
}

// classifyPullError distinguishes pulls blocked by local modifications from
// pulls whose automatic merge failed.
func classifyPullError(err error) error {
	var cmdErr *gitmcperrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return err
	}

	output := cmdErr.Output()
	switch {
	case strings.Contains(output, "resolve your current index first"),
		strings.Contains(output, "You have unstaged changes"),
		strings.Contains(output, "Your local changes"):
		return gitmcperrors.NewDirtyWorkingTreeError(
			"Cannot pull: You have unstaged changes. Please commit or stash them first.")
	case strings.Contains(output, "Automatic merge failed"),
		strings.Contains(output, "CONFLICT"):
		return gitmcperrors.NewMergeConflictError(
			"Pull failed: Merge conflicts detected. Please resolve conflicts manually.")
	}
	return err
}
