package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/model"
	"github.com/ncnews/api/internal/server"
	"github.com/ncnews/api/internal/service"
)

// UserHandler serves GET /api/users.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ListUsersRequest carries no parameters.
type ListUsersRequest struct{}

type usersResponse struct {
	Users []model.User `json:"users"`
}

// List returns all users with a 200.
func (h *UserHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListUsersRequest) (usersResponse, error) {
		users, err := h.users.List(c.Request().Context())
		if err != nil {
			return usersResponse{}, err
		}
		return usersResponse{Users: users}, nil
	}, http.StatusOK)
}
