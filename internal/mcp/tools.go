package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/pwf"
)

// --- Tool definitions ---

var toolValidatePlan = mcp.NewTool("validate_plan",
	mcp.WithDescription("Validate PWF plan YAML against the Plan v1 schema. Returns {valid, issues}; each issue carries a canonical path (e.g. cycle.days[0].exercises), a message, and a severity."),
	mcp.WithString("document", mcp.Required(), mcp.Description("Plan document as YAML text")),
)

var toolValidateHistory = mcp.NewTool("validate_history",
	mcp.WithDescription("Validate PWF history YAML against the History v1 schema. Returns {valid, issues} with path-addressed issues."),
	mcp.WithString("document", mcp.Required(), mcp.Description("History document as YAML text")),
)

var toolParsePlan = mcp.NewTool("parse_plan",
	mcp.WithDescription("Parse and validate plan YAML. Returns the normalized document as JSON when valid, or the issue list when not."),
	mcp.WithString("document", mcp.Required(), mcp.Description("Plan document as YAML text")),
)

var toolEncodePlan = mcp.NewTool("encode_plan",
	mcp.WithDescription("Validate plan YAML and return it re-encoded as canonical block-style YAML."),
	mcp.WithString("document", mcp.Required(), mcp.Description("Plan document as YAML text")),
)

// validationReport is the JSON payload the validate tools return.
type validationReport struct {
	Valid  bool                  `json:"valid"`
	Issues []pwf.ValidationIssue `json:"issues"`
}

func report(valid bool, issues []pwf.ValidationIssue) (*mcp.CallToolResult, error) {
	if issues == nil {
		issues = []pwf.ValidationIssue{}
	}
	result, err := mcp.NewToolResultJSON(validationReport{Valid: valid, Issues: issues})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) validatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := req.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document parameter is required"), nil
	}
	result := pwf.ParsePlan(doc)
	return report(result.Valid(), result.Issues)
}

func (h *handlers) validateHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := req.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document parameter is required"), nil
	}
	result := pwf.ParseHistory(doc)
	return report(result.Valid(), result.Issues)
}

func (h *handlers) parsePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := req.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document parameter is required"), nil
	}
	result := pwf.ParsePlan(doc)
	if !result.Valid() {
		return report(false, result.Issues)
	}
	out, err := mcp.NewToolResultJSON(result.Plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return out, nil
}

func (h *handlers) encodePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := req.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document parameter is required"), nil
	}
	result := pwf.ParsePlan(doc)
	if !result.Valid() {
		return report(false, result.Issues)
	}
	text, err := pwf.Encode(result.Plan)
	if err != nil {
		h.log.Error("encode failed", "error", err)
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (h *handlers) schemaSummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summary := map[string]any{
		"plan_version":    pwf.PlanVersion,
		"history_version": pwf.HistoryVersion,
		"modalities":      pwf.Modalities(),
		"issue_shape": map[string]string{
			"path":     "canonical path, empty string addresses the document root",
			"message":  "human-readable problem description",
			"severity": "error or warning",
			"code":     "violation keyword, optional",
		},
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
