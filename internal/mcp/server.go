// Package mcp provides the stdio MCP server exposing the session-start context
// to agents that pull context instead of receiving hooks.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/go-ports/memento/internal/buildinfo"
	"github.com/go-ports/memento/internal/hook"
)

// ResourceURI identifies the session-start context resource.
const ResourceURI = "memento://session-start"

const contextDescription = `Get the memento session-start context. ` +
	`Call this at session start when your agent does not run SessionStart hooks; ` +
	`it returns the same guidance the hook injects.`

// NewServer creates a server whose tool and resource read through e.
// It is separate from Serve so tests can attach an in-process client.
func NewServer(e *hook.Emitter) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("memento", buildinfo.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithResourceCapabilities(false, false),
	)
	registerTools(s, e)
	registerResources(s, e)
	return s
}

// Serve starts the stdio MCP server, blocking until stdin closes.
func Serve(_ context.Context, e *hook.Emitter) error {
	log.Debug().Str("plugin_root", e.PluginRoot).Msg("serving MCP over stdio")
	return mcpserver.ServeStdio(NewServer(e))
}

func registerTools(s *mcpserver.MCPServer, e *hook.Emitter) {
	s.AddTool(mcp.NewTool("session_context",
		mcp.WithDescription(contextDescription),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSessionContext(ctx, e, req)
	})
}

func registerResources(s *mcpserver.MCPServer, e *hook.Emitter) {
	s.AddResource(mcp.NewResource(ResourceURI, "session-start",
		mcp.WithResourceDescription("Reference document injected at session start"),
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleReadSessionStart(ctx, e, req)
	})
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func handleSessionContext(_ context.Context, e *hook.Emitter, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := e.Content()
	if err != nil {
		log.Warn().Err(err).Msg("session_context failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

func handleReadSessionStart(_ context.Context, e *hook.Emitter, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := e.Content()
	if err != nil {
		log.Warn().Err(err).Str("uri", req.Params.URI).Msg("read session-start resource failed")
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}
