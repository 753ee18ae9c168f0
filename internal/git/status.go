package git

import "context"

// Status returns the working tree status as reported by the toolchain.
func Status(ctx context.Context, r *Repository) (string, error) {
	return r.runner.Run(ctx, "status")
}
