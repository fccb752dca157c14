// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives bound
// request data from handlers, runs the ordered validation and existence
// checks each operation requires, and calls repository methods. Every
// business-rule violation becomes an *errs.HTTPError carrying the exact
// status and message the client must see; checks run as sequential
// dependent steps, and the first failure short-circuits the rest.
package service

import (
	"strconv"

	"github.com/ncnews/api/internal/errs"
	"github.com/ncnews/api/internal/repository"
	"github.com/ncnews/api/internal/server"
)

// Services is the container that groups all business-logic services.
type Services struct {
	Topics   *TopicService
	Articles *ArticleService
	Comments *CommentService
	Users    *UserService
}

// NewServices constructs the service container from the repository
// container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Topics:   NewTopicService(repos.Topics),
		Articles: NewArticleService(repos.Articles),
		Comments: NewCommentService(repos.Comments, repos.Articles, repos.Users),
		Users:    NewUserService(repos.Users),
	}, nil
}

// parseID converts a raw path identifier into an integer. A malformed
// identifier produces the same 400 "Invalid input" the storage engine's
// type error would, so the parse location is invisible to clients.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewBadRequestError("Invalid input")
	}
	return id, nil
}
