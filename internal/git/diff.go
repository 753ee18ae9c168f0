package git

import "context"

// DiffUnstaged returns changes in the working directory that are not yet staged.
func DiffUnstaged(ctx context.Context, r *Repository) (string, error) {
	return r.runner.RunRaw(ctx, "diff")
}

// DiffStaged returns changes that are staged for commit.
func DiffStaged(ctx context.Context, r *Repository) (string, error) {
	return r.runner.RunRaw(ctx, "diff", "--cached")
}

// DiffTarget returns the differences between the working tree and the given
// branch or commit.
func DiffTarget(ctx context.Context, r *Repository, target string) (string, error) {
	return r.runner.RunRaw(ctx, "diff", target)
}
