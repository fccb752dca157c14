package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/model"
	"github.com/ncnews/api/internal/server"
	"github.com/ncnews/api/internal/service"
)

// CommentHandler serves the comment endpoints under /api/articles and
// /api/comments.
type CommentHandler struct {
	Handler
	comments *service.CommentService
}

func NewCommentHandler(s *server.Server, comments *service.CommentService) *CommentHandler {
	return &CommentHandler{
		Handler:  NewHandler(s),
		comments: comments,
	}
}

// ListCommentsRequest identifies the article whose comments are listed.
type ListCommentsRequest struct {
	ArticleID string `param:"article_id" json:"-"`
}

// CreateCommentRequest carries the new comment's author and text. JSON
// decoding drops any extra fields in the payload, so they are never
// persisted or echoed back.
type CreateCommentRequest struct {
	ArticleID string `param:"article_id" json:"-"`
	Username  string `json:"username"`
	Body      string `json:"body"`
}

// DeleteCommentRequest identifies a comment by its path id.
type DeleteCommentRequest struct {
	CommentID string `param:"comment_id" json:"-"`
}

type commentsResponse struct {
	Comments []model.Comment `json:"comments"`
}

type commentResponse struct {
	Comment model.Comment `json:"comment"`
}

// ListForArticle returns an article's comments with a 200.
func (h *CommentHandler) ListForArticle() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *ListCommentsRequest) (commentsResponse, error) {
		comments, err := h.comments.ListForArticle(c.Request().Context(), req.ArticleID)
		if err != nil {
			return commentsResponse{}, err
		}
		return commentsResponse{Comments: comments}, nil
	}, http.StatusOK)
}

// Create posts a comment on an article, returning the stored row with a 201.
func (h *CommentHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateCommentRequest) (commentResponse, error) {
		comment, err := h.comments.Create(c.Request().Context(), req.ArticleID, req.Username, req.Body)
		if err != nil {
			return commentResponse{}, err
		}
		return commentResponse{Comment: comment}, nil
	}, http.StatusCreated)
}

// Delete removes a comment, returning 204 with no body.
func (h *CommentHandler) Delete() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *DeleteCommentRequest) error {
		return h.comments.Delete(c.Request().Context(), req.CommentID)
	}, http.StatusNoContent)
}
