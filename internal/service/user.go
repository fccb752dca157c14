package service

import (
	"context"

	"github.com/ncnews/api/internal/model"
)

// UserReader is the slice of the user repository this service needs.
type UserReader interface {
	List(ctx context.Context) ([]model.User, error)
}

// UserService serves the read-only user listing.
type UserService struct {
	users UserReader
}

func NewUserService(users UserReader) *UserService {
	return &UserService{users: users}
}

// List returns all users. Only username, name, and avatar_url are exposed.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
