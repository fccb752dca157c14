package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/middleware"
	"github.com/ncnews/api/internal/server"
	"github.com/ncnews/api/internal/validation"
)

// Handler is the base type concrete handlers embed so they can reach shared
// application dependencies (config, logger, database) via *server.Server.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function: it receives the bound and
// validated request payload and returns the response body or an error.
type HandlerFunc[Req any, Res any] func(c echo.Context, req *Req) (Res, error)

// HandlerFuncNoContent is a typed endpoint function for routes that return
// no response body (204).
type HandlerFuncNoContent[Req any] func(c echo.Context, req *Req) error

// responseHandler defines how a successful handler result is written.
type responseHandler interface {
	Handle(c echo.Context, result any) error
	Operation() string
}

// jsonResponseHandler writes JSON bodies with a fixed success status.
type jsonResponseHandler struct {
	status int
}

func (h jsonResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h jsonResponseHandler) Operation() string {
	return "handler"
}

// noContentResponseHandler writes an empty body with a fixed status.
type noContentResponseHandler struct {
	status int
}

func (h noContentResponseHandler) Handle(c echo.Context, result any) error {
	return c.NoContent(h.status)
}

func (h noContentResponseHandler) Operation() string {
	return "handler_no_content"
}

// handleRequest is the shared execution pipeline for all endpoints. It
// centralizes request binding and validation, structured logging with the
// request-scoped logger, timing, and response writing. Errors are returned
// to echo so the global error handler formats the response.
func handleRequest[Req any](
	c echo.Context,
	fn func(c echo.Context, req *Req) (any, error),
	response responseHandler,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", response.Operation()).
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	// A fresh request value per invocation: handlers run concurrently and
	// must not share bound state.
	req := new(Req)
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().Err(err).Msg("request validation failed")
		return err
	}

	result, err := fn(c, req)
	if err != nil {
		logger.Debug().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("handler returned error")
		return err
	}

	logger.Debug().
		Dur("duration", time.Since(start)).
		Msg("request completed")

	return response.Handle(c, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc that binds,
// validates, logs, and writes a JSON response with the given status.
func Handle[Req any, Res any](h Handler, fn HandlerFunc[Req, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, func(c echo.Context, req *Req) (any, error) {
			return fn(c, req)
		}, jsonResponseHandler{status: status})
	}
}

// HandleNoContent wraps a typed handler for endpoints that return no body.
func HandleNoContent[Req any](h Handler, fn HandlerFuncNoContent[Req], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, func(c echo.Context, req *Req) (any, error) {
			return nil, fn(c, req)
		}, noContentResponseHandler{status: status})
	}
}
