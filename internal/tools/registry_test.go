package tools_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gitmcperrors "gitmcp.dev/gitmcp/internal/errors"
	"gitmcp.dev/gitmcp/internal/tools"
)

func TestCatalog(t *testing.T) {
	t.Run("covers the full tool surface", func(t *testing.T) {
		expected := []string{
			tools.ToolStatus,
			tools.ToolDiffUnstaged,
			tools.ToolDiffStaged,
			tools.ToolDiff,
			tools.ToolCommit,
			tools.ToolAdd,
			tools.ToolReset,
			tools.ToolLog,
			tools.ToolCreateBranch,
			tools.ToolCheckout,
			tools.ToolShow,
			tools.ToolPush,
			tools.ToolPull,
			tools.ToolFetch,
			tools.ToolMerge,
			tools.ToolStash,
			tools.ToolStashPop,
			tools.ToolGetCurrentBranch,
			tools.ToolListBranches,
			tools.ToolDeleteBranch,
			tools.ToolListRemotes,
			tools.ToolAddRemote,
			tools.ToolRemoveRemote,
		}

		var names []string
		for _, d := range tools.Catalog() {
			names = append(names, d.Name)
		}
		require.Equal(t, expected, names)
	})

	t.Run("every tool requires the repository path", func(t *testing.T) {
		for _, d := range tools.Catalog() {
			schema := d.InputSchema()
			required, _ := schema["required"].([]string)
			require.Contains(t, required, tools.RepoPathParam, "tool %s", d.Name)
		}
	})

	t.Run("every tool carries a description", func(t *testing.T) {
		for _, d := range tools.Catalog() {
			require.NotEmpty(t, d.Description, "tool %s", d.Name)
		}
	})
}

func TestLookup(t *testing.T) {
	t.Run("known tool", func(t *testing.T) {
		d, ok := tools.Lookup(tools.ToolStatus)
		require.True(t, ok)
		require.Equal(t, tools.ToolStatus, d.Name)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, ok := tools.Lookup("git_rebase")
		require.False(t, ok)
	})
}

func TestInputSchema(t *testing.T) {
	t.Run("renders types, defaults and required fields", func(t *testing.T) {
		d, ok := tools.Lookup(tools.ToolLog)
		require.True(t, ok)

		schema := d.InputSchema()
		require.Equal(t, "object", schema["type"])

		properties := schema["properties"].(map[string]any)
		maxCount := properties["max_count"].(map[string]any)
		require.Equal(t, "integer", maxCount["type"])
		require.Equal(t, 10, maxCount["default"])

		require.Equal(t, []string{tools.RepoPathParam}, schema["required"])
	})

	t.Run("array parameters declare string items", func(t *testing.T) {
		d, ok := tools.Lookup(tools.ToolAdd)
		require.True(t, ok)

		properties := d.InputSchema()["properties"].(map[string]any)
		files := properties["files"].(map[string]any)
		require.Equal(t, "array", files["type"])
		require.Equal(t, map[string]any{"type": "string"}, files["items"])
	})
}

func TestCoerce(t *testing.T) {
	logDesc, ok := tools.Lookup(tools.ToolLog)
	require.True(t, ok)

	t.Run("applies defaults for absent optional arguments", func(t *testing.T) {
		args, err := logDesc.Coerce(map[string]any{tools.RepoPathParam: "/tmp/repo"})
		require.NoError(t, err)
		require.Equal(t, 10, args.Int("max_count"))
	})

	t.Run("converts JSON numbers to integers", func(t *testing.T) {
		args, err := logDesc.Coerce(map[string]any{
			tools.RepoPathParam: "/tmp/repo",
			"max_count":         float64(3),
		})
		require.NoError(t, err)
		require.Equal(t, 3, args.Int("max_count"))
	})

	t.Run("rejects fractional numbers for integer parameters", func(t *testing.T) {
		_, err := logDesc.Coerce(map[string]any{
			tools.RepoPathParam: "/tmp/repo",
			"max_count":         2.5,
		})
		require.ErrorIs(t, err, gitmcperrors.ErrInvalidArgument)
	})

	t.Run("rejects undeclared arguments", func(t *testing.T) {
		_, err := logDesc.Coerce(map[string]any{
			tools.RepoPathParam: "/tmp/repo",
			"depth":             5,
		})
		require.ErrorIs(t, err, gitmcperrors.ErrInvalidArgument)
		require.ErrorContains(t, err, "depth")
	})

	t.Run("rejects type mismatches", func(t *testing.T) {
		_, err := logDesc.Coerce(map[string]any{
			tools.RepoPathParam: "/tmp/repo",
			"max_count":         "ten",
		})
		require.ErrorIs(t, err, gitmcperrors.ErrInvalidArgument)
	})

	t.Run("reports missing required arguments", func(t *testing.T) {
		commitDesc, ok := tools.Lookup(tools.ToolCommit)
		require.True(t, ok)

		_, err := commitDesc.Coerce(map[string]any{tools.RepoPathParam: "/tmp/repo"})
		require.ErrorIs(t, err, gitmcperrors.ErrMissingArgument)
		require.ErrorContains(t, err, "message")
	})

	t.Run("converts JSON arrays to string lists", func(t *testing.T) {
		addDesc, ok := tools.Lookup(tools.ToolAdd)
		require.True(t, ok)

		args, err := addDesc.Coerce(map[string]any{
			tools.RepoPathParam: "/tmp/repo",
			"files":             []any{"a.txt", "b.txt"},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"a.txt", "b.txt"}, args.Strings("files"))
	})
}
