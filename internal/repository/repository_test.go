package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/api/internal/repository"
)

// testPool connects to the database named by NCNEWS_TEST_DATABASE_URL, or
// skips the test when the variable is unset. The target database must
// already be migrated.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("NCNEWS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("NCNEWS_TEST_DATABASE_URL not set; skipping database integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	t.Cleanup(pool.Close)
	return pool
}

// seedFixture inserts a topic, two users, an article, and a comment, all
// uniquely named per test run, and registers cleanup deletes in reverse
// dependency order.
type seedFixture struct {
	topic     string
	author    string
	commenter string
	articleID int
	commentID int
}

func seed(t *testing.T, pool *pgxpool.Pool) seedFixture {
	t.Helper()
	ctx := context.Background()

	f := seedFixture{
		topic:     fmt.Sprintf("it-topic-%d", time.Now().UnixNano()),
		author:    fmt.Sprintf("it-author-%d", time.Now().UnixNano()),
		commenter: fmt.Sprintf("it-commenter-%d", time.Now().UnixNano()),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (slug, description) VALUES ($1, 'integration fixture')`, f.topic)
	require.NoError(t, err)

	for _, username := range []string{f.author, f.commenter} {
		_, err = pool.Exec(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, 'fixture', '')`, username)
		require.NoError(t, err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO articles (title, topic, author, body, votes)
		 VALUES ('fixture article', $1, $2, 'fixture body', 10)
		 RETURNING article_id`, f.topic, f.author).Scan(&f.articleID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx,
		`INSERT INTO comments (article_id, author, body)
		 VALUES ($1, $2, 'fixture comment')
		 RETURNING comment_id`, f.articleID, f.commenter).Scan(&f.commentID)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		pool.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, f.articleID)
		pool.Exec(ctx, `DELETE FROM articles WHERE article_id = $1`, f.articleID)
		pool.Exec(ctx, `DELETE FROM users WHERE username IN ($1, $2)`, f.author, f.commenter)
		pool.Exec(ctx, `DELETE FROM topics WHERE slug = $1`, f.topic)
	})

	return f
}

func TestTopicRepository(t *testing.T) {
	pool := testPool(t)
	f := seed(t, pool)
	repo := repository.NewTopicRepository(pool)
	ctx := context.Background()

	topics, err := repo.List(ctx)
	require.NoError(t, err)

	found := false
	for _, topic := range topics {
		if topic.Slug == f.topic {
			found = true
			assert.Equal(t, "integration fixture", topic.Description)
		}
	}
	assert.True(t, found, "seeded topic missing from listing")
}

func TestArticleRepository(t *testing.T) {
	pool := testPool(t)
	f := seed(t, pool)
	repo := repository.NewArticleRepository(pool)
	ctx := context.Background()

	t.Run("GetByID returns the full row", func(t *testing.T) {
		article, err := repo.GetByID(ctx, f.articleID)
		require.NoError(t, err)
		assert.Equal(t, "fixture article", article.Title)
		assert.Equal(t, f.author, article.Author)
		assert.Equal(t, 10, article.Votes)
		assert.False(t, article.CreatedAt.IsZero())
	})

	t.Run("GetByID reports missing rows with ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, -1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("List annotates comment counts and omits bodies", func(t *testing.T) {
		summaries, err := repo.List(ctx, f.topic)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, f.articleID, summaries[0].ArticleID)
		assert.Equal(t, 1, summaries[0].CommentCount)
	})

	t.Run("List with unmatched topic returns no rows without error", func(t *testing.T) {
		summaries, err := repo.List(ctx, "no-such-topic")
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("IncrementVotes applies the delta atomically", func(t *testing.T) {
		article, err := repo.IncrementVotes(ctx, f.articleID, -4)
		require.NoError(t, err)
		assert.Equal(t, 6, article.Votes)

		_, err = repo.IncrementVotes(ctx, -1, 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := repo.Exists(ctx, f.articleID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, -1)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCommentRepository(t *testing.T) {
	pool := testPool(t)
	f := seed(t, pool)
	repo := repository.NewCommentRepository(pool)
	ctx := context.Background()

	t.Run("ListByArticle returns rows newest first", func(t *testing.T) {
		inserted, err := repo.Insert(ctx, f.articleID, f.commenter, "a newer comment")
		require.NoError(t, err)

		comments, err := repo.ListByArticle(ctx, f.articleID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, inserted.CommentID, comments[0].CommentID)
	})

	t.Run("Insert defaults votes to zero", func(t *testing.T) {
		comment, err := repo.Insert(ctx, f.articleID, f.commenter, "another comment")
		require.NoError(t, err)
		assert.Zero(t, comment.Votes)
		assert.Equal(t, f.articleID, comment.ArticleID)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("Delete removes the row once", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, f.commentID))

		err := repo.Delete(ctx, f.commentID)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestUserRepository(t *testing.T) {
	pool := testPool(t)
	f := seed(t, pool)
	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)

	found := false
	for _, user := range users {
		if user.Username == f.author {
			found = true
		}
	}
	assert.True(t, found, "seeded user missing from listing")

	exists, err := repo.Exists(ctx, f.commenter)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "no-such-user")
	require.NoError(t, err)
	assert.False(t, exists)
}
