package tools

// Wire-visible tool identifiers. These are part of the protocol contract and
// must stay stable.
const (
	ToolStatus           = "git_status"
	ToolDiffUnstaged     = "git_diff_unstaged"
	ToolDiffStaged       = "git_diff_staged"
	ToolDiff             = "git_diff"
	ToolCommit           = "git_commit"
	ToolAdd              = "git_add"
	ToolReset            = "git_reset"
	ToolLog              = "git_log"
	ToolCreateBranch     = "git_create_branch"
	ToolCheckout         = "git_checkout"
	ToolShow             = "git_show"
	ToolPush             = "git_push"
	ToolPull             = "git_pull"
	ToolFetch            = "git_fetch"
	ToolMerge            = "git_merge"
	ToolStash            = "git_stash"
	ToolStashPop         = "git_stash_pop"
	ToolGetCurrentBranch = "git_get_current_branch"
	ToolListBranches     = "git_list_branches"
	ToolDeleteBranch     = "git_delete_branch"
	ToolListRemotes      = "git_list_remotes"
	ToolAddRemote        = "git_add_remote"
	ToolRemoveRemote     = "git_remove_remote"
)

// RepoPathParam is the mandatory argument naming the target repository root.
const RepoPathParam = "repo_path"

func repoPathParam() Param {
	return Param{
		Name:        RepoPathParam,
		Description: "Path to the git repository",
		Type:        TypeString,
		Required:    true,
	}
}

// catalog is the fixed, ordered tool catalog. It is built once at process
// start and never mutated.
var catalog = []Descriptor{
	{
		Name:        ToolStatus,
		Description: "Shows the working tree status",
		Params:      []Param{repoPathParam()},
	},
	{
		Name:        ToolDiffUnstaged,
		Description: "Shows changes in the working directory that are not yet staged",
		Params:      []Param{repoPathParam()},
	},
	{
		Name:        ToolDiffStaged,
		Description: "Shows changes that are staged for commit",
		Params:      []Param{repoPathParam()},
	},
	{
		Name:        ToolDiff,
		Description: "Shows differences between branches or commits",
		Params: []Param{
			repoPathParam(),
			{Name: "target", Description: "Branch or commit to diff against", Type: TypeString, Required: true},
		},
	},
	{
		Name:        ToolCommit,
		Description: "Records changes to the repository",
		Params: []Param{
			repoPathParam(),
			{Name: "message", Description: "Commit message", Type: TypeString, Required: true},
		},
	},
	{
		Name:        ToolAdd,
		Description: "Adds file contents to the staging area",
		Params: []Param{
			repoPathParam(),
			{Name: "files", Description: "Files to stage", Type: TypeStringArray, Required: true},
		},
	},
	{
		Name:        ToolReset,
		Description: "Unstages all staged changes",
		Params:      []Param{repoPathParam()},
	},
	{
		Name:        ToolLog,
		Description: "Shows the commit logs",
		Params: []Param{
			repoPathParam(),
			{Name: "max_count", Description: "Maximum number of commits to show", Type: TypeInteger, Default: 10},
		},
	},
	{
		Name:        ToolCreateBranch,
		Description: "Creates a new branch from an optional base branch",
		Params: []Param{
			repoPathParam(),
			{Name: "branch_name", Description: "Name of the new branch", Type: TypeString, Required: true},
			{Name: "base_branch", Description: "Base branch; defaults to the current branch", Type: TypeString},
		},
	},
	{
		Name:        ToolCheckout,
		Description: "Switches branches",
		Params: []Param{
			repoPathParam(),
			{Name: "branch_name", Description: "Branch to check out", Type: TypeString, Required: true},
		},
	},
	{
		Name:        ToolShow,
		Description: "Shows the contents of a commit",
		Params: []Param{
			repoPathParam(),
			{Name: "revision", Description: "Revision to show", Type: TypeString, Required: true},
		},
	},
	{
		Name:        ToolPush,
		Description: "Push changes to remote repository",
		Params: []Param{
			repoPathParam(),
			{Name: "remote", Description: "Remote name", Type: TypeString, Default: "origin"},
			{Name: "branch", Description: "Branch to push; defaults to the configured upstream", Type: TypeString},
		},
	},
	{
		Name:        ToolPull,
		Description: "Pull changes from remote repository",
		Params: []Param{
			repoPathParam(),
			{Name: "remote", Description: "Remote name", Type: TypeString, Default: "origin"},
			{Name: "branch", Description: "Branch to pull", Type: TypeString},
			{Name: "rebase", Description: "Rebase instead of merge", Type: TypeBoolean, Default: false},
		},
	},
	{
		Name:        ToolFetch,
		Description: "Fetch changes from remote without merging",
		Params: []Param{
			repoPathParam(),
			{Name: "remote", Description: "Remote name", Type: TypeString, Default: "origin"},
		},
	},
	{
		Name:        ToolMerge,
		Description: "Merge a branch into current branch",
		Params: []Param{
			repoPathParam(),
			{Name: "branch", Description: "Branch to merge", Type: TypeString, Required: true},
		},
	},
	{
		Name:        ToolStash,
		Description: "Stash current changes",
		Params: []Param{
			repoPathParam(),
			{Name: "message", Description: "Optional stash message", Type: TypeString},
		},
	},
	{
		Name:        ToolStashPop,
		Description: "Pop stashed changes",
		Params: []Param{
			repoPathParam(),
			{Name: "index", Description: "Zero-based stash index, most recent first", Type: TypeInteger, Default: 0},
		},
	},
	{
		Name:        ToolGetCurrentBranch,
		Description: "Get name of current branch",
		Params:      []Param{repoPathParam()},
	},
	{
		Name:        ToolListBranches,
		Description: "List all branches",
		Params:      []Param{repoPathParam()},
	},
	{
		Name:        ToolDeleteBranch,
		Description: "Delete a branch",
		Params: []Param{
			repoPathParam(),
			{Name: "branch_name", Description: "Branch to delete", Type: TypeString, Required: true},
			{Name: "force", Description: "Force delete even if unmerged", Type: TypeBoolean, Default: false},
		},
	},
	{
		Name:        ToolListRemotes,
		Description: "List remote repositories",
		Params:      []Param{repoPathParam()},
	},
	{
		Name:        ToolAddRemote,
		Description: "Add a new remote repository",
		Params: []Param{
			repoPathParam(),
			{Name: "name", Description: "Remote name", Type: TypeString, Required: true},
			{Name: "url", Description: "Remote URL", Type: TypeString, Required: true},
		},
	},
	{
		Name:        ToolRemoveRemote,
		Description: "Remove a remote repository",
		Params: []Param{
			repoPathParam(),
			{Name: "name", Description: "Remote name", Type: TypeString, Required: true},
		},
	},
}

var catalogByName = func() map[string]Descriptor {
	byName := make(map[string]Descriptor, len(catalog))
	for _, d := range catalog {
		if _, dup := byName[d.Name]; dup {
			panic("duplicate tool descriptor: " + d.Name)
		}
		byName[d.Name] = d
	}
	return byName
}()

// Catalog returns the ordered tool catalog. The result is stable across
// calls.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the descriptor for the given tool identifier.
func Lookup(name string) (Descriptor, bool) {
	d, ok := catalogByName[name]
	return d, ok
}
