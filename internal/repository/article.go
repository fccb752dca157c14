package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncnews/api/internal/model"
)

// ArticleRepository reads and vote-patches the articles table.
type ArticleRepository struct {
	db *pgxpool.Pool
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// GetByID fetches a single article by id, returning ErrNotFound when no row
// matches.
func (r *ArticleRepository) GetByID(ctx context.Context, articleID int) (model.Article, error) {
	var a model.Article
	err := r.db.QueryRow(ctx, `
		SELECT article_id, author, title, body, topic, created_at, votes, article_img_url
		FROM articles
		WHERE article_id = $1;
	`, articleID).Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Article{}, ErrNotFound
	}
	if err != nil {
		return model.Article{}, err
	}
	return a, nil
}

// List returns article summaries annotated with their comment counts,
// newest first with article_id as tiebreak. The left join keeps articles
// with zero comments in the result (comment_count 0), and the count is cast
// to int in SQL so it is a number regardless of driver behavior.
//
// topic, when non-empty, filters the listing; an empty string lists all
// articles. A filter matching zero rows is the caller's concern.
func (r *ArticleRepository) List(ctx context.Context, topic string) ([]model.ArticleSummary, error) {
	query := `
		SELECT
			articles.article_id,
			articles.author,
			articles.title,
			articles.topic,
			articles.created_at,
			articles.votes,
			articles.article_img_url,
			COUNT(comments.comment_id)::int AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
	`
	args := []any{}
	if topic != "" {
		query += ` WHERE articles.topic = $1`
		args = append(args, topic)
	}
	query += `
		GROUP BY articles.article_id
		ORDER BY articles.created_at DESC, articles.article_id DESC;
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []model.ArticleSummary{}
	for rows.Next() {
		var a model.ArticleSummary
		if err := rows.Scan(
			&a.ArticleID, &a.Author, &a.Title, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
		); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// IncrementVotes applies the vote delta in a single UPDATE so concurrent
// increments on the same row serialize inside the engine; there is no
// read-modify-write round trip. Returns ErrNotFound when the article does
// not exist.
func (r *ArticleRepository) IncrementVotes(ctx context.Context, articleID, incVotes int) (model.Article, error) {
	var a model.Article
	err := r.db.QueryRow(ctx, `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url;
	`, incVotes, articleID).Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Article{}, ErrNotFound
	}
	if err != nil {
		return model.Article{}, err
	}
	return a, nil
}

// Exists reports whether an article with the given id is present.
func (r *ArticleRepository) Exists(ctx context.Context, articleID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1);
	`, articleID).Scan(&exists)
	return exists, err
}
