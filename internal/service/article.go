package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ncnews/api/internal/errs"
	"github.com/ncnews/api/internal/model"
	"github.com/ncnews/api/internal/repository"
)

// ArticleReader is the slice of the article repository this service needs.
type ArticleReader interface {
	GetByID(ctx context.Context, articleID int) (model.Article, error)
	List(ctx context.Context, topic string) ([]model.ArticleSummary, error)
	IncrementVotes(ctx context.Context, articleID, incVotes int) (model.Article, error)
}

// ArticleService serves article reads and the vote-increment update.
type ArticleService struct {
	articles ArticleReader
}

func NewArticleService(articles ArticleReader) *ArticleService {
	return &ArticleService{articles: articles}
}

// GetByID fetches a single article. A malformed id fails with
// 400 "Invalid input"; a well-formed id matching no row fails with
// 404 "No article found for article_id {id}".
func (s *ArticleService) GetByID(ctx context.Context, rawID string) (model.Article, error) {
	articleID, err := parseID(rawID)
	if err != nil {
		return model.Article{}, err
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Article{}, errs.NewNotFoundError(fmt.Sprintf("No article found for article_id %d", articleID))
	}
	if err != nil {
		return model.Article{}, err
	}
	return article, nil
}

// List returns comment-count-annotated article summaries, newest first.
//
// With no topic filter an empty result set is valid. With a filter, zero
// matching rows fail with 404 "Topic '{topic}' not found" — including when
// the topic row exists but has no articles.
func (s *ArticleService) List(ctx context.Context, topic string) ([]model.ArticleSummary, error) {
	articles, err := s.articles.List(ctx, topic)
	if err != nil {
		return nil, err
	}

	if topic != "" && len(articles) == 0 {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Topic '%s' not found", topic))
	}

	return articles, nil
}

// UpdateVotes applies inc_votes to an article's vote count and returns the
// updated row.
//
// Preconditions, in order: inc_votes must be present and a JSON integer
// (400 "Invalid input, must be a number" otherwise, before any storage
// round trip); the article must exist (404 with the standard template).
// The increment itself is a single atomic UPDATE in the repository.
func (s *ArticleService) UpdateVotes(ctx context.Context, rawID string, incVotes json.RawMessage) (model.Article, error) {
	articleID, err := parseID(rawID)
	if err != nil {
		return model.Article{}, err
	}

	var delta int
	if incVotes == nil || json.Unmarshal(incVotes, &delta) != nil {
		return model.Article{}, errs.NewBadRequestError("Invalid input, must be a number")
	}

	article, err := s.articles.IncrementVotes(ctx, articleID, delta)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Article{}, errs.NewNotFoundError(fmt.Sprintf("No article found for article_id %d", articleID))
	}
	if err != nil {
		return model.Article{}, err
	}
	return article, nil
}
