// Package mcp provides an MCP (Model Context Protocol) server adapter for Skilldex.
// It lets AI assistants route task descriptions to skills and pull full skill
// documents on demand, over stdio or streamable HTTP.
package mcp

import "errors"

var (
	// ErrMissingRouterService is returned when the router service is not provided.
	ErrMissingRouterService = errors.New("mcp: router service is required")

	// ErrMissingContentService is returned when the content service is not provided.
	ErrMissingContentService = errors.New("mcp: content service is required")
)
