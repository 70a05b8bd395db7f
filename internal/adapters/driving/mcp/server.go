package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"
)

// Version is the MCP server version reported during initialisation.
const Version = "0.1.0"

const (
	// httpRateLimit caps sustained requests per second over HTTP.
	httpRateLimit = 20

	// httpRateBurst absorbs short request bursts above the sustained rate.
	httpRateBurst = 40

	// shutdownGrace bounds how long in-flight HTTP requests may drain.
	shutdownGrace = 5 * time.Second
)

// Server exposes routing and document loading to MCP clients. An
// assistant connects once, then calls the route tool with its query
// and load_skill with the chosen ID, so only the relevant document
// ever enters its context window.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer wires the given services into a new MCP server and
// registers its tools and resources.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "skilldex",
			Version: Version,
		}, nil),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run serves MCP over stdio, the transport editors use when they
// spawn the server per session. It blocks until ctx is cancelled or
// the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr for setups where
// one daemon is shared by several clients. It blocks until ctx is
// cancelled, then drains in-flight requests.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           rateLimited(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		drainCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		httpServer.Shutdown(drainCtx) //nolint:errcheck
	}()

	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// rateLimited rejects requests above the configured rate with 429 so
// a misbehaving client cannot starve the corpus for everyone else.
func rateLimited(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(httpRateLimit), httpRateBurst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
