package driving

import "context"

// ContentService loads skill document text on demand.
//
// Document bodies are read lazily, never cached in the catalog:
// a routed skill costs one file read exactly when its text is needed.
type ContentService interface {
	// GetContent returns the full document body for a skill.
	GetContent(ctx context.Context, id string) (string, error)
}
