package service

import (
	"context"

	"github.com/ncnews/api/internal/model"
)

// TopicReader is the slice of the topic repository this service needs.
type TopicReader interface {
	List(ctx context.Context) ([]model.Topic, error)
}

// TopicService serves the read-only topic listing.
type TopicService struct {
	topics TopicReader
}

func NewTopicService(topics TopicReader) *TopicService {
	return &TopicService{topics: topics}
}

// List returns all topics. An empty set is a valid result, not an error.
func (s *TopicService) List(ctx context.Context) ([]model.Topic, error) {
	return s.topics.List(ctx)
}
