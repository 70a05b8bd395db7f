package mcp

import (
	"context"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
)

// mockRouterService is a mock implementation of driving.RouterService.
type mockRouterService struct {
	matches []domain.Match
	err     error
}

func (m *mockRouterService) Route(
	_ context.Context,
	_ string,
	_ domain.RouteOptions,
) ([]domain.Match, error) {
	return m.matches, m.err
}

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	content string
	err     error
}

func (m *mockContentService) GetContent(_ context.Context, _ string) (string, error) {
	return m.content, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	skills  []domain.Skill
	skill   domain.Skill
	getErr  error
	listErr error
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.Skill, error) {
	return m.skills, m.listErr
}

func (m *mockCatalogService) Get(_ context.Context, _ string) (domain.Skill, error) {
	return m.skill, m.getErr
}

func (m *mockCatalogService) Root(_ context.Context) (domain.Skill, error) {
	return m.skill, m.getErr
}

func (m *mockCatalogService) Reload(_ context.Context) error {
	return m.listErr
}

func (m *mockCatalogService) Validate(_ context.Context) ([]driving.Issue, error) {
	return nil, m.listErr
}
