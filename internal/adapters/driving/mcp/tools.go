package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// DefaultRouteLimit caps route tool results when no limit is given.
const DefaultRouteLimit = 3

// RouteInput is the input schema for the route tool.
type RouteInput struct {
	Query string `json:"query" jsonschema:"the task or question to route to skills"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of matches to return (default 3)"`
}

// RouteOutput is the output schema for the route tool.
type RouteOutput struct {
	Matches  []RouteMatchOutput `json:"matches"`
	Count    int                `json:"count"`
	Fallback bool               `json:"fallback"`
}

// RouteMatchOutput represents a single routed skill.
type RouteMatchOutput struct {
	SkillID         string   `json:"skill_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	Score           int      `json:"score"`
}

// LoadSkillInput is the input schema for the load_skill tool.
type LoadSkillInput struct {
	SkillID string `json:"skill_id" jsonschema:"the identifier of the skill document to load"`
}

// LoadSkillOutput is the output schema for the load_skill tool.
type LoadSkillOutput struct {
	SkillID string `json:"skill_id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "route",
		Description: "Route a task description to the most relevant skills in the catalog",
	}, s.handleRoute)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_skill",
		Description: "Load the full Markdown document for a skill by its identifier",
	}, s.handleLoadSkill)
}

// handleRoute handles the route tool invocation.
func (s *Server) handleRoute(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RouteInput,
) (*mcp.CallToolResult, RouteOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRouteLimit
	}

	opts := domain.RouteOptions{Limit: limit}
	matches, err := s.ports.Router.Route(ctx, input.Query, opts)
	if err != nil {
		return nil, RouteOutput{}, err
	}

	output := RouteOutput{
		Matches: make([]RouteMatchOutput, len(matches)),
		Count:   len(matches),
	}

	for i := range matches {
		output.Matches[i] = RouteMatchOutput{
			SkillID:         matches[i].Skill.ID,
			Title:           matches[i].Skill.DisplayTitle(),
			Description:     matches[i].Skill.Description,
			MatchedKeywords: matches[i].MatchedKeywords,
			Score:           matches[i].Score,
		}
		if matches[i].Fallback {
			output.Fallback = true
		}
	}

	return nil, output, nil
}

// handleLoadSkill handles the load_skill tool invocation.
func (s *Server) handleLoadSkill(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadSkillInput,
) (*mcp.CallToolResult, LoadSkillOutput, error) {
	content, err := s.ports.Content.GetContent(ctx, input.SkillID)
	if err != nil {
		return nil, LoadSkillOutput{}, err
	}

	output := LoadSkillOutput{
		SkillID: input.SkillID,
		Content: content,
	}

	// Title comes from the catalog when available.
	if s.ports.Catalog != nil {
		if skill, err := s.ports.Catalog.Get(ctx, input.SkillID); err == nil {
			output.SkillID = skill.ID
			output.Title = skill.DisplayTitle()
		}
	}

	return nil, output, nil
}
