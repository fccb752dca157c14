// Package handler is the HTTP layer: the first entry point for business
// logic after the router.
//
// Handlers bind and validate request data, call the corresponding service,
// and wrap successful results in the named response envelope each endpoint
// uses. Failures are returned as errors and propagate unchanged to the
// global error handler; handlers never write error responses themselves.
package handler

import (
	"github.com/ncnews/api/internal/server"
	"github.com/ncnews/api/internal/service"
)

// Handlers is the container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	API      *APIHandler
	Health   *HealthHandler
	Topics   *TopicHandler
	Articles *ArticleHandler
	Comments *CommentHandler
	Users    *UserHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		API:      NewAPIHandler(s),
		Health:   NewHealthHandler(s),
		Topics:   NewTopicHandler(s, services.Topics),
		Articles: NewArticleHandler(s, services.Articles),
		Comments: NewCommentHandler(s, services.Comments),
		Users:    NewUserHandler(s, services.Users),
	}
}
