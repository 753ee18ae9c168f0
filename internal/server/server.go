// Package server wires the tool catalog onto an MCP server over stdio.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"gitmcp.dev/gitmcp/internal/config"
	"gitmcp.dev/gitmcp/internal/git"
	"gitmcp.dev/gitmcp/internal/tools"
)

// Server exposes the git tool catalog over the Model Context Protocol.
// Invocations are processed one at a time in arrival order; each opens and
// releases its own repository handle.
type Server struct {
	cfg        config.Config
	dispatcher *tools.Dispatcher
	mcp        *mcp.Server
	log        *slog.Logger
}

// New creates the MCP server and registers every tool in the catalog.
func New(cfg config.Config, version string, logger *slog.Logger) *Server {
	s := &Server{
		cfg:        cfg,
		dispatcher: tools.NewDispatcher(cfg.Credentials),
		log:        logger,
	}

	// Querying roots sends a request back to the client, so it must not run
	// inside the notification handler itself.
	opts := &mcp.ServerOptions{
		InitializedHandler: func(_ context.Context, req *mcp.InitializedRequest) {
			go s.logRepositories(context.Background(), req.Session)
		},
		RootsListChangedHandler: func(_ context.Context, req *mcp.RootsListChangedRequest) {
			go s.logRepositories(context.Background(), req.Session)
		},
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{Name: "mcp-git", Version: version}, opts)

	for _, desc := range tools.Catalog() {
		s.mcp.AddTool(&mcp.Tool{
			Name:        desc.Name,
			Description: desc.Description,
			InputSchema: desc.InputSchema(),
		}, s.callTool(desc.Name))
	}

	return s
}

// Run serves the session over stdio until the context is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over the given transport.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcp.Connect(ctx, transport, nil)
}

// callTool adapts one catalog identifier to an MCP tool handler routed
// through the dispatcher. Operation failures become failed tool results, not
// protocol errors.
func (s *Server) callTool(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return errorResult("invalid arguments: " + err.Error()), nil
			}
		}

		segments, err := s.dispatcher.Dispatch(ctx, name, args)
		if err != nil {
			s.log.Error("tool invocation failed", "tool", name, "error", err)
			return errorResult(err.Error()), nil
		}

		content := make([]mcp.Content, 0, len(segments))
		for _, segment := range segments {
			content = append(content, &mcp.TextContent{Text: segment})
		}
		return &mcp.CallToolResult{Content: content}, nil
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}

// ListRepositories resolves the candidate repository roots for a session:
// roots advertised by the client, filtered to valid repositories, followed by
// the statically configured path. A failing roots query is tolerated and
// treated as empty.
func (s *Server) ListRepositories(ctx context.Context, session *mcp.ServerSession) []string {
	var repos []string

	result, err := session.ListRoots(ctx, &mcp.ListRootsParams{})
	if err != nil {
		s.log.Debug("roots query failed", "error", err)
	} else {
		for _, root := range result.Roots {
			path := rootPath(root.URI)
			if _, err := git.Open(path); err != nil {
				continue
			}
			repos = append(repos, path)
		}
	}

	if s.cfg.Repository != "" {
		if _, err := git.Open(s.cfg.Repository); err == nil {
			repos = append(repos, s.cfg.Repository)
		}
	}

	return repos
}

func (s *Server) logRepositories(ctx context.Context, session *mcp.ServerSession) {
	repos := s.ListRepositories(ctx, session)
	s.log.Info("repositories discovered", "count", len(repos), "paths", repos)
}

// rootPath converts a client-supplied root URI to a filesystem path.
func rootPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return strings.TrimPrefix(uri, "file://")
	}
	return parsed.Path
}
