package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncnews/api/internal/errs"
	"github.com/ncnews/api/internal/model"
	"github.com/ncnews/api/internal/repository"
)

// CommentStore is the slice of the comment repository this service needs.
type CommentStore interface {
	ListByArticle(ctx context.Context, articleID int) ([]model.Comment, error)
	Insert(ctx context.Context, articleID int, username, body string) (model.Comment, error)
	Delete(ctx context.Context, commentID int) error
}

// ArticleChecker verifies article existence ahead of comment operations.
type ArticleChecker interface {
	Exists(ctx context.Context, articleID int) (bool, error)
}

// UserChecker verifies user existence ahead of comment creation.
type UserChecker interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// CommentService serves comment creation, listing, and deletion.
type CommentService struct {
	comments CommentStore
	articles ArticleChecker
	users    UserChecker
}

func NewCommentService(comments CommentStore, articles ArticleChecker, users UserChecker) *CommentService {
	return &CommentService{
		comments: comments,
		articles: articles,
		users:    users,
	}
}

// ListForArticle returns an article's comments, newest first. The article
// must exist (404 "article_id '{id}' does not exist" otherwise); an
// existing article with no comments yields an empty slice.
func (s *CommentService) ListForArticle(ctx context.Context, rawID string) ([]model.Comment, error) {
	articleID, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewNotFoundError(fmt.Sprintf("article_id '%d' does not exist", articleID))
	}

	return s.comments.ListByArticle(ctx, articleID)
}

// Create inserts a comment on an article.
//
// Hard preconditions, checked in order before any write, each
// short-circuiting the rest:
//  1. username and body present and non-empty —
//     400 "Both 'username' and 'body' are required for a comment."
//  2. username references an existing user —
//     404 "Username '{username}' not found."
//  3. article_id references an existing article —
//     404 "No article found for article_id {id}"
//
// The stored comment comes back with votes 0 and comment_id/created_at
// assigned by the database.
func (s *CommentService) Create(ctx context.Context, rawID, username, body string) (model.Comment, error) {
	articleID, err := parseID(rawID)
	if err != nil {
		return model.Comment{}, err
	}

	if username == "" || body == "" {
		return model.Comment{}, errs.NewBadRequestError("Both 'username' and 'body' are required for a comment.")
	}

	userExists, err := s.users.Exists(ctx, username)
	if err != nil {
		return model.Comment{}, err
	}
	if !userExists {
		return model.Comment{}, errs.NewNotFoundError(fmt.Sprintf("Username '%s' not found.", username))
	}

	articleExists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return model.Comment{}, err
	}
	if !articleExists {
		return model.Comment{}, errs.NewNotFoundError(fmt.Sprintf("No article found for article_id %d", articleID))
	}

	return s.comments.Insert(ctx, articleID, username, body)
}

// Delete removes a comment by id, failing with
// 404 "No comment found for comment_id {id}" when no row matched.
func (s *CommentService) Delete(ctx context.Context, rawID string) error {
	commentID, err := parseID(rawID)
	if err != nil {
		return err
	}

	err = s.comments.Delete(ctx, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(fmt.Sprintf("No comment found for comment_id %d", commentID))
	}
	return err
}
