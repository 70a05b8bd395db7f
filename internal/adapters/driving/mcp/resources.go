package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Skilldex resources.
	uriScheme = "skilldex://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing the skill catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "skills",
		Name:        "skills",
		Description: "The skill catalog: every entry with its trigger keywords",
		MIMEType:    "application/json",
	}, s.handleSkillsResource)

	// Template for skill documents.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "skills/{skillId}",
		Name:        "skill-document",
		Description: "The full Markdown document for a specific skill",
		MIMEType:    "text/markdown",
	}, s.handleSkillDocumentResource)
}

// handleSkillsResource returns the full skill catalog.
func (s *Server) handleSkillsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	skills, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}

	// Build simplified catalog listing.
	type skillInfo struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description,omitempty"`
		Keywords    []string `json:"keywords"`
		Root        bool     `json:"root,omitempty"`
	}

	infos := make([]skillInfo, len(skills))
	for i := range skills {
		infos[i] = skillInfo{
			ID:          skills[i].ID,
			Title:       skills[i].DisplayTitle(),
			Description: skills[i].Description,
			Keywords:    skills[i].Keywords,
			Root:        skills[i].Root,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling skills: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSkillDocumentResource returns the document of a specific skill.
func (s *Server) handleSkillDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract skillId from URI: skilldex://skills/{skillId}
	skillID := extractSkillID(req.Params.URI)
	if skillID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	content, err := s.ports.Content.GetContent(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("getting skill document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		}},
	}, nil
}

// extractSkillID extracts the skill ID from a URI like skilldex://skills/{skillId}.
func extractSkillID(uri string) string {
	const prefix = uriScheme + "skills/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
