// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and methods to fetch, persist, or delete
// rows, abstracting SQL away from the service layer. Repositories report
// missing rows with ErrNotFound; translating that into client-facing
// status/message pairs is the service layer's job.
package repository

import (
	"errors"

	"github.com/ncnews/api/internal/server"
)

// ErrNotFound is returned when a query matched no rows. Services map it to
// the exact 404 message for the operation at hand.
var ErrNotFound = errors.New("not found")

// Repositories is the container for all repository instances, wired once at
// startup and handed to the service layer.
type Repositories struct {
	Topics   *TopicRepository
	Articles *ArticleRepository
	Comments *CommentRepository
	Users    *UserRepository
}

// NewRepositories constructs the repository container from the application
// container's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool

	return &Repositories{
		Topics:   NewTopicRepository(pool),
		Articles: NewArticleRepository(pool),
		Comments: NewCommentRepository(pool),
		Users:    NewUserRepository(pool),
	}
}
