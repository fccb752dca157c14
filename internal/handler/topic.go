package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/model"
	"github.com/ncnews/api/internal/server"
	"github.com/ncnews/api/internal/service"
)

// TopicHandler serves GET /api/topics.
type TopicHandler struct {
	Handler
	topics *service.TopicService
}

func NewTopicHandler(s *server.Server, topics *service.TopicService) *TopicHandler {
	return &TopicHandler{
		Handler: NewHandler(s),
		topics:  topics,
	}
}

// ListTopicsRequest carries no parameters.
type ListTopicsRequest struct{}

// topicsResponse uses the singular "topic" envelope key this API has always
// exposed for the topics listing.
type topicsResponse struct {
	Topic []model.Topic `json:"topic"`
}

// List returns all topics with a 200.
func (h *TopicHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListTopicsRequest) (topicsResponse, error) {
		topics, err := h.topics.List(c.Request().Context())
		if err != nil {
			return topicsResponse{}, err
		}
		return topicsResponse{Topic: topics}, nil
	}, http.StatusOK)
}
