package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/errs"
	"github.com/ncnews/api/internal/model"
	"github.com/ncnews/api/internal/server"
	"github.com/ncnews/api/internal/service"
)

// ArticleHandler serves the /api/articles endpoints.
type ArticleHandler struct {
	Handler
	articles *service.ArticleService
}

func NewArticleHandler(s *server.Server, articles *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		Handler:  NewHandler(s),
		articles: articles,
	}
}

// ListArticlesRequest recognizes exactly one optional query parameter, the
// topic filter. Anything else in the query string is rejected in the
// handler before the service runs.
type ListArticlesRequest struct {
	Topic string `query:"topic"`
}

// GetArticleRequest identifies an article by its path id. The raw string is
// handed to the service, which owns well-formedness.
type GetArticleRequest struct {
	ArticleID string `param:"article_id" json:"-"`
}

// UpdateArticleVotesRequest carries the vote delta. IncVotes stays raw JSON
// so the service can produce the exact wrong-type failure instead of a
// generic bind error.
type UpdateArticleVotesRequest struct {
	ArticleID string          `param:"article_id" json:"-"`
	IncVotes  json.RawMessage `json:"inc_votes"`
}

type articlesResponse struct {
	Articles []model.ArticleSummary `json:"articles"`
}

type articleResponse struct {
	Article model.Article `json:"article"`
}

// List returns comment-count-annotated summaries, optionally filtered by
// topic. Any unrecognized query parameter fails with 400 "Invalid input"
// regardless of its value.
func (h *ArticleHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ListArticlesRequest) (articlesResponse, error) {
		for key := range c.QueryParams() {
			if key != "topic" {
				return articlesResponse{}, errs.NewBadRequestError("Invalid input")
			}
		}

		articles, err := h.articles.List(c.Request().Context(), req.Topic)
		if err != nil {
			return articlesResponse{}, err
		}
		return articlesResponse{Articles: articles}, nil
	}, http.StatusOK)
}

// GetByID returns a single article with a 200.
func (h *ArticleHandler) GetByID() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *GetArticleRequest) (articleResponse, error) {
		article, err := h.articles.GetByID(c.Request().Context(), req.ArticleID)
		if err != nil {
			return articleResponse{}, err
		}
		return articleResponse{Article: article}, nil
	}, http.StatusOK)
}

// UpdateVotes applies inc_votes and returns the updated article with a 200.
func (h *ArticleHandler) UpdateVotes() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateArticleVotesRequest) (articleResponse, error) {
		article, err := h.articles.UpdateVotes(c.Request().Context(), req.ArticleID, req.IncVotes)
		if err != nil {
			return articleResponse{}, err
		}
		return articleResponse{Article: article}, nil
	}, http.StatusOK)
}
