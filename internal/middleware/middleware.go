// Package middleware wires the cross-cutting request plumbing: request IDs,
// request-scoped loggers, CORS/recovery/secure headers, request logging,
// and the global error handler that normalizes every failure into the API's
// error response shape.
package middleware

import (
	"github.com/ncnews/api/internal/server"
)

// Middlewares groups all middleware components so router setup receives
// one wired object.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, and
	// the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// carrying request_id, method, path, and ip.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the application
// container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
