package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/server"
)

// endpointsDoc is the static endpoint-documentation payload served at
// GET /api. It ships inside the binary like the SQL migrations do.
//
//go:embed endpoints.json
var endpointsDoc []byte

// APIHandler serves the endpoint-documentation document.
type APIHandler struct {
	Handler
}

func NewAPIHandler(s *server.Server) *APIHandler {
	return &APIHandler{
		Handler: NewHandler(s),
	}
}

// Endpoints writes the documentation JSON verbatim with a 200.
func (h *APIHandler) Endpoints(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, endpointsDoc)
}
