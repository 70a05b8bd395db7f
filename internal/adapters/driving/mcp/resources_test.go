package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

func TestExtractSkillID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid skill URI",
			uri:      "skilldex://skills/fee-delegation",
			expected: "fee-delegation",
		},
		{
			name:     "invalid prefix",
			uri:      "file://skills/fee-delegation",
			expected: "",
		},
		{
			name:     "catalog URI without skill",
			uri:      "skilldex://skills",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "skilldex://skills/fee/extra",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractSkillID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleSkillsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil catalog service returns empty list", func(t *testing.T) {
		ports := &Ports{Router: &mockRouterService{}, Content: &mockContentService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("skilldex://skills")
		result, err := server.handleSkillsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns catalog successfully", func(t *testing.T) {
		mockCatalog := &mockCatalogService{
			skills: []domain.Skill{
				{
					ID:       "getting-started",
					Title:    "Getting Started",
					Keywords: []string{"setup", "install"},
					Root:     true,
				},
				{
					ID:          "fee-delegation",
					Title:       "Fee Delegation",
					Description: "Sponsored transactions.",
					Keywords:    []string{"gasless", "sponsored"},
				},
			},
		}

		ports := &Ports{Router: &mockRouterService{}, Content: &mockContentService{}, Catalog: mockCatalog}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("skilldex://skills")
		result, err := server.handleSkillsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "getting-started")
		assert.Contains(t, result.Contents[0].Text, "fee-delegation")
		assert.Contains(t, result.Contents[0].Text, "gasless")
		assert.Contains(t, result.Contents[0].Text, `"root": true`)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		mockCatalog := &mockCatalogService{
			listErr: errors.New("corpus unreadable"),
		}

		ports := &Ports{Router: &mockRouterService{}, Content: &mockContentService{}, Catalog: mockCatalog}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("skilldex://skills")
		_, err = server.handleSkillsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing skills")
	})
}

func TestServer_handleSkillDocumentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns document successfully", func(t *testing.T) {
		mockContent := &mockContentService{
			content: "# Fee Delegation\n\nSponsor the gas for your users.",
		}

		ports := &Ports{Router: &mockRouterService{}, Content: mockContent}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("skilldex://skills/fee-delegation")
		result, err := server.handleSkillDocumentResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "# Fee Delegation\n\nSponsor the gas for your users.", result.Contents[0].Text)
		assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		ports := &Ports{Router: &mockRouterService{}, Content: &mockContentService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("skilldex://invalid/uri")
		_, err = server.handleSkillDocumentResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("returns error on content failure", func(t *testing.T) {
		mockContent := &mockContentService{
			err: errors.New("read failed"),
		}

		ports := &Ports{Router: &mockRouterService{}, Content: mockContent}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("skilldex://skills/fee-delegation")
		_, err = server.handleSkillDocumentResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting skill document")
	})
}
