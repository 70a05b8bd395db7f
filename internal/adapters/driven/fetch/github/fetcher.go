// Package github downloads skill packs from GitHub repositories.
//
// Packs are fetched through the Contents API, directory by directory, so
// no git checkout is needed. Only Markdown documents are written; every
// other entry counts as skipped. A token raises the API quota from 60 to
// 5000 requests per hour but is not required for public repositories.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the HTTP request timeout for API calls.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate throttles Contents API calls. Pack downloads are short
	// bursts, so this stays far below even the unauthenticated quota.
	ProactiveRate = 5

	// ProactiveBurst lets a small pack download start without waiting.
	ProactiveBurst = 5
)

// Fetcher downloads Markdown skill packs via the GitHub Contents API.
type Fetcher struct {
	gh      *gh.Client
	limiter *rate.Limiter
}

// Interface guard
var _ driven.PackFetcher = (*Fetcher)(nil)

// New creates a fetcher. An empty token means unauthenticated access.
func New(ctx context.Context, token string) *Fetcher {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout

	return NewWithClient(gh.NewClient(hc))
}

// NewWithClient creates a fetcher around an existing go-github client.
func NewWithClient(client *gh.Client) *Fetcher {
	return &Fetcher{
		gh:      client,
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), ProactiveBurst),
	}
}

// Fetch downloads every Markdown document under ref into destDir,
// preserving the pack's relative layout.
func (f *Fetcher) Fetch(ctx context.Context, ref driven.PackRef, destDir string) (*driven.FetchResult, error) {
	if ref.Owner == "" || ref.Repo == "" {
		return nil, fmt.Errorf("fetch pack: owner and repository are required")
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create destination %s: %w", destDir, err)
	}

	result := &driven.FetchResult{}
	if err := f.fetchDir(ctx, ref, ref.Dir, destDir, "", result); err != nil {
		return nil, err
	}
	return result, nil
}

// fetchDir lists one remote directory and descends into its entries.
// relDir is the directory's path relative to the pack root.
func (f *Fetcher) fetchDir(
	ctx context.Context, ref driven.PackRef, remotePath, destDir, relDir string, result *driven.FetchResult,
) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: ref.Ref}
	_, entries, _, err := f.gh.Repositories.GetContents(ctx, ref.Owner, ref.Repo, remotePath, opts)
	if err != nil {
		return wrapError(err, ref)
	}
	if entries == nil {
		return fmt.Errorf("fetch pack %s: %q is not a directory", ref, remotePath)
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		name := entry.GetName()
		switch entry.GetType() {
		case "dir":
			if strings.HasPrefix(name, ".") {
				result.Skipped++
				continue
			}
			sub := filepath.Join(destDir, name)
			if err := os.MkdirAll(sub, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", sub, err)
			}
			if err := f.fetchDir(ctx, ref, entry.GetPath(), sub, filepath.Join(relDir, name), result); err != nil {
				return err
			}
		case "file":
			if strings.HasPrefix(name, ".") || !strings.HasSuffix(strings.ToLower(name), ".md") {
				result.Skipped++
				continue
			}
			if err := f.fetchFile(ctx, ref, entry.GetPath(), filepath.Join(destDir, name)); err != nil {
				return err
			}
			result.Files = append(result.Files, filepath.Join(relDir, name))
		default:
			// Symlinks and submodules have no fetchable content.
			result.Skipped++
		}
	}

	return nil
}

// fetchFile downloads a single document and writes it to destPath.
func (f *Fetcher) fetchFile(ctx context.Context, ref driven.PackRef, remotePath, destPath string) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: ref.Ref}
	content, _, _, err := f.gh.Repositories.GetContents(ctx, ref.Owner, ref.Repo, remotePath, opts)
	if err != nil {
		return wrapError(err, ref)
	}
	if content == nil {
		return fmt.Errorf("fetch pack %s: %q is not a file", ref, remotePath)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return fmt.Errorf("decode %s: %w", remotePath, err)
	}

	if err := os.WriteFile(destPath, []byte(decoded), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return nil
}

// wrapError converts go-github errors to this package's error types.
func wrapError(err error, ref driven.PackRef) error {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{ResetAt: rateLimitErr.Rate.Reset.Time}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrPackNotFound, ref)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrUnauthorised, ref)
		}
	}

	return fmt.Errorf("fetch pack %s: %w", ref, err)
}
