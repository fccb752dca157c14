// Package router initializes the HTTP router (echo).
//
// It registers the middlewares and defines the API route groups, mapping
// each path to its handler. New is a pure composition function: it takes
// the wired middleware and handler containers and returns the router, with
// no state at module scope.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/handler"
	"github.com/ncnews/api/internal/middleware"
)

// New builds the echo router from the middleware and handler containers.
// Any path outside the registered set falls through to the global error
// handler's generic 404.
func New(mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true

	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(mw.Global.Recover())
	r.Use(mw.Global.Secure())
	r.Use(mw.Global.CORS())
	r.Use(middleware.RequestID())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Global.RequestLogger())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h)

	return r
}

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	api.GET("", h.API.Endpoints)

	api.GET("/topics", h.Topics.List())

	api.GET("/articles", h.Articles.List())
	api.GET("/articles/:article_id", h.Articles.GetByID())
	api.PATCH("/articles/:article_id", h.Articles.UpdateVotes())

	api.GET("/articles/:article_id/comments", h.Comments.ListForArticle())
	api.POST("/articles/:article_id/comments", h.Comments.Create())
	api.DELETE("/comments/:comment_id", h.Comments.Delete())

	api.GET("/users", h.Users.List())
}
