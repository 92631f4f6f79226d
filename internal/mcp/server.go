// Package mcp exposes PWF validation as MCP tools so agent clients can
// check and normalize documents without linking the library.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PWF", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PWF document server. Validate and normalize Portable Workout Format training plans and workout history exports. Documents are YAML text; issues are addressed by canonical paths like cycle.days[0].exercises."),
	)

	h := &handlers{log: log}

	s.AddTools(
		server.ServerTool{Tool: toolValidatePlan, Handler: h.validatePlan},
		server.ServerTool{Tool: toolValidateHistory, Handler: h.validateHistory},
		server.ServerTool{Tool: toolParsePlan, Handler: h.parsePlan},
		server.ServerTool{Tool: toolEncodePlan, Handler: h.encodePlan},
	)

	s.AddResources(
		server.ServerResource{Resource: resSchemaSummary, Handler: h.schemaSummary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	log *slog.Logger
}

// --- Resource definitions ---

var resSchemaSummary = mcp.NewResource(
	"pwf://schema/summary",
	"Schema Summary",
	mcp.WithResourceDescription("PWF schema versions, the modality enum, and the issue shape validation tools return"),
	mcp.WithMIMEType("application/json"),
)
