package tools

import (
	"context"
	"fmt"
	"strings"

	"gitmcp.dev/gitmcp/internal/config"
	gitmcperrors "gitmcp.dev/gitmcp/internal/errors"
	"gitmcp.dev/gitmcp/internal/git"
)

// Dispatcher validates invocations against the catalog and routes them to the
// operation layer. It owns the lifecycle of each invocation; the repository
// handle it opens never outlives the call.
type Dispatcher struct {
	creds config.Credentials
}

// NewDispatcher creates a Dispatcher with the process-wide credential
// configuration.
func NewDispatcher(creds config.Credentials) *Dispatcher {
	return &Dispatcher{creds: creds}
}

// handlerFunc executes one tool against an opened repository with coerced
// arguments and returns the result's text segments.
type handlerFunc func(ctx context.Context, d *Dispatcher, repo *git.Repository, args Args) ([]string, error)

// Dispatch looks up the tool, extracts and validates the target repository,
// coerces the remaining arguments against the schema and invokes the matching
// operation. Failures surface as typed errors, never as empty results.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) ([]string, error) {
	desc, ok := Lookup(name)
	if !ok {
		return nil, gitmcperrors.NewUnknownToolError(name)
	}

	repoPath, ok := raw[RepoPathParam].(string)
	if !ok || repoPath == "" {
		return nil, gitmcperrors.NewMissingArgumentError(RepoPathParam)
	}

	repo, err := git.Open(repoPath)
	if err != nil {
		return nil, err
	}

	args, err := desc.Coerce(raw)
	if err != nil {
		return nil, err
	}

	return handlers[name](ctx, d, repo, args)
}

// handlers binds every catalog identifier to its operation. The catalog and
// this table are checked against each other at process start.
var handlers = map[string]handlerFunc{
	ToolStatus: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, _ Args) ([]string, error) {
		status, err := git.Status(ctx, repo)
		if err != nil {
			return nil, err
		}
		return []string{"Repository status:\n" + status}, nil
	},

	ToolDiffUnstaged: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, _ Args) ([]string, error) {
		diff, err := git.DiffUnstaged(ctx, repo)
		if err != nil {
			return nil, err
		}
		return []string{"Unstaged changes:\n" + diff}, nil
	},

	ToolDiffStaged: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, _ Args) ([]string, error) {
		diff, err := git.DiffStaged(ctx, repo)
		if err != nil {
			return nil, err
		}
		return []string{"Staged changes:\n" + diff}, nil
	},

	ToolDiff: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		target := args.String("target")
		diff, err := git.DiffTarget(ctx, repo, target)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("Diff with %s:\n%s", target, diff)}, nil
	},

	ToolCommit: func(_ context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Commit(repo, args.String("message"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolAdd: func(_ context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Add(repo, args.Strings("files"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolReset: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, _ Args) ([]string, error) {
		result, err := git.Reset(ctx, repo)
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolLog: func(_ context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		entries, err := git.Log(repo, args.Int("max_count"))
		if err != nil {
			return nil, err
		}
		return []string{"Commit history:\n" + strings.Join(entries, "\n")}, nil
	},

	ToolCreateBranch: func(_ context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.CreateBranch(repo, args.String("branch_name"), args.String("base_branch"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolCheckout: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Checkout(ctx, repo, args.String("branch_name"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolShow: func(_ context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Show(repo, args.String("revision"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolPush: func(ctx context.Context, d *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Push(ctx, repo, args.String("remote"), args.String("branch"), d.creds)
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolPull: func(ctx context.Context, d *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Pull(ctx, repo, args.String("remote"), args.String("branch"), args.Bool("rebase"), d.creds)
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolFetch: func(ctx context.Context, d *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Fetch(ctx, repo, args.String("remote"), d.creds)
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolMerge: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Merge(ctx, repo, args.String("branch"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolStash: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.Stash(ctx, repo, args.String("message"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolStashPop: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.StashPop(ctx, repo, args.Int("index"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolGetCurrentBranch: func(_ context.Context, _ *Dispatcher, repo *git.Repository, _ Args) ([]string, error) {
		branch, err := git.CurrentBranch(repo)
		if err != nil {
			return nil, err
		}
		return []string{branch}, nil
	},

	ToolListBranches: func(_ context.Context, _ *Dispatcher, repo *git.Repository, _ Args) ([]string, error) {
		branches, err := git.ListBranches(repo)
		if err != nil {
			return nil, err
		}
		return []string{"Branches:\n" + strings.Join(branches, "\n")}, nil
	},

	ToolDeleteBranch: func(ctx context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.DeleteBranch(ctx, repo, args.String("branch_name"), args.Bool("force"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolListRemotes: func(_ context.Context, _ *Dispatcher, repo *git.Repository, _ Args) ([]string, error) {
		remotes, err := git.ListRemotes(repo)
		if err != nil {
			return nil, err
		}
		return []string{"Remotes:\n" + strings.Join(remotes, "\n")}, nil
	},

	ToolAddRemote: func(_ context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.AddRemote(repo, args.String("name"), args.String("url"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},

	ToolRemoveRemote: func(_ context.Context, _ *Dispatcher, repo *git.Repository, args Args) ([]string, error) {
		result, err := git.RemoveRemote(repo, args.String("name"))
		if err != nil {
			return nil, err
		}
		return []string{result}, nil
	},
}

// The catalog and the handler table must cover exactly the same identifiers.
func init() {
	for _, d := range catalog {
		if _, ok := handlers[d.Name]; !ok {
			panic("tool descriptor without handler: " + d.Name)
		}
	}
	for name := range handlers {
		if _, ok := catalogByName[name]; !ok {
			panic("tool handler without descriptor: " + name)
		}
	}
}
