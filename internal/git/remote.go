package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"

	gitmcperrors "gitmcp.dev/gitmcp/internal/errors"
)

// ListRemotes returns all configured remotes as "name (url)" lines.
func ListRemotes(r *Repository) ([]string, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	var lines []string
	for _, remote := range remotes {
		cfg := remote.Config()
		url := ""
		if len(cfg.URLs) > 0 {
			url = cfg.URLs[0]
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", cfg.Name, url))
	}
	return lines, nil
}

// AddRemote adds a new remote with the given name and URL.
func AddRemote(r *Repository, name, url string) (string, error) {
	_, err := r.repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		return "", fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return fmt.Sprintf("Added remote %s with URL %s", name, url), nil
}

// RemoveRemote removes the named remote. This is destructive and immediate.
func RemoveRemote(r *Repository, name string) (string, error) {
	if _, err := r.repo.Remote(name); err != nil {
		return "", gitmcperrors.NewRemoteNotFoundError(name)
	}
	if err := r.repo.DeleteRemote(name); err != nil {
		return "", fmt.Errorf("failed to remove remote %s: %w", name, err)
	}
	return fmt.Sprintf("Removed remote %s", name), nil
}

// remoteURL returns the fetch URL of the named remote.
func remoteURL(r *Repository, name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", gitmcperrors.NewRemoteNotFoundError(name)
		}
		return "", fmt.Errorf("failed to look up remote %s: %w", name, err)
	}
	cfg := remote.Config()
	if len(cfg.URLs) == 0 {
		return "", nil
	}
	return cfg.URLs[0], nil
}
