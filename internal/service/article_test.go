package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/api/internal/errs"
	"github.com/ncnews/api/internal/model"
	"github.com/ncnews/api/internal/repository"
)

type fakeArticleRepo struct {
	articles  map[int]model.Article
	summaries []model.ArticleSummary
	incCalls  int
}

func (f *fakeArticleRepo) GetByID(_ context.Context, articleID int) (model.Article, error) {
	a, ok := f.articles[articleID]
	if !ok {
		return model.Article{}, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeArticleRepo) List(_ context.Context, topic string) ([]model.ArticleSummary, error) {
	if topic == "" {
		return f.summaries, nil
	}
	matched := []model.ArticleSummary{}
	for _, s := range f.summaries {
		if s.Topic == topic {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (f *fakeArticleRepo) IncrementVotes(_ context.Context, articleID, incVotes int) (model.Article, error) {
	f.incCalls++
	a, ok := f.articles[articleID]
	if !ok {
		return model.Article{}, repository.ErrNotFound
	}
	a.Votes += incVotes
	f.articles[articleID] = a
	return a, nil
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: map[int]model.Article{
			1: {
				ArticleID: 1,
				Author:    "butter_bridge",
				Title:     "Living in the shadow of a great man",
				Body:      "I find this existence challenging",
				Topic:     "mitch",
				CreatedAt: time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC),
				Votes:     100,
			},
		},
		summaries: []model.ArticleSummary{
			{ArticleID: 3, Topic: "mitch", CreatedAt: time.Date(2020, 11, 3, 9, 12, 0, 0, time.UTC), CommentCount: 2},
			{ArticleID: 1, Topic: "mitch", CreatedAt: time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC), CommentCount: 11},
			{ArticleID: 2, Topic: "cats", CreatedAt: time.Date(2020, 1, 7, 14, 8, 0, 0, time.UTC), CommentCount: 0},
		},
	}
}

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestArticleServiceGetByID(t *testing.T) {
	svc := NewArticleService(newFakeArticleRepo())

	t.Run("returns the stored article", func(t *testing.T) {
		article, err := svc.GetByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, 1, article.ArticleID)
		assert.Equal(t, "butter_bridge", article.Author)
		assert.Equal(t, 100, article.Votes)
	})

	t.Run("missing article fails 404 with the id in the message", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "999")
		requireHTTPError(t, err, 404, "No article found for article_id 999")
	})

	t.Run("malformed id fails 400", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "banana")
		requireHTTPError(t, err, 400, "Invalid input")
	})
}

func TestArticleServiceList(t *testing.T) {
	svc := NewArticleService(newFakeArticleRepo())

	t.Run("no filter returns everything", func(t *testing.T) {
		articles, err := svc.List(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, articles, 3)
	})

	t.Run("topic filter returns matching rows only", func(t *testing.T) {
		articles, err := svc.List(context.Background(), "mitch")
		require.NoError(t, err)
		require.Len(t, articles, 2)
		for _, a := range articles {
			assert.Equal(t, "mitch", a.Topic)
		}
	})

	t.Run("filter matching zero rows fails 404", func(t *testing.T) {
		_, err := svc.List(context.Background(), "gardening")
		requireHTTPError(t, err, 404, "Topic 'gardening' not found")
	})

	t.Run("no filter with empty storage is valid", func(t *testing.T) {
		empty := NewArticleService(&fakeArticleRepo{})
		articles, err := empty.List(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestArticleServiceUpdateVotes(t *testing.T) {
	t.Run("applies the delta", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		article, err := svc.UpdateVotes(context.Background(), "1", json.RawMessage(`-2`))
		require.NoError(t, err)
		assert.Equal(t, 98, article.Votes)
	})

	t.Run("non-numeric inc_votes fails 400 without touching storage", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		_, err := svc.UpdateVotes(context.Background(), "1", json.RawMessage(`"not-a-number"`))
		requireHTTPError(t, err, 400, "Invalid input, must be a number")
		assert.Zero(t, repo.incCalls)
		assert.Equal(t, 100, repo.articles[1].Votes)
	})

	t.Run("absent inc_votes fails 400", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		_, err := svc.UpdateVotes(context.Background(), "1", nil)
		requireHTTPError(t, err, 400, "Invalid input, must be a number")
		assert.Zero(t, repo.incCalls)
	})

	t.Run("missing article fails 404", func(t *testing.T) {
		svc := NewArticleService(newFakeArticleRepo())

		_, err := svc.UpdateVotes(context.Background(), "999", json.RawMessage(`5`))
		requireHTTPError(t, err, 404, "No article found for article_id 999")
	})

	t.Run("malformed id fails 400 before the body check", func(t *testing.T) {
		repo := newFakeArticleRepo()
		svc := NewArticleService(repo)

		_, err := svc.UpdateVotes(context.Background(), "banana", json.RawMessage(`5`))
		requireHTTPError(t, err, 400, "Invalid input")
		assert.Zero(t, repo.incCalls)
	})
}
