package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncnews/api/internal/model"
)

// CommentRepository inserts, lists, and deletes rows in the comments table.
// Comments are never updated.
type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByArticle returns the comments for an article, newest first. An
// article with no comments yields an empty slice; verifying the article
// exists is the caller's concern.
func (r *CommentRepository) ListByArticle(ctx context.Context, articleID int) ([]model.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC;
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// Insert creates a comment and returns the stored row, with comment_id and
// created_at assigned by the database and votes defaulted to 0.
func (r *CommentRepository) Insert(ctx context.Context, articleID int, username, body string) (model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at;
	`, articleID, username, body).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

// Delete removes a comment by id, returning ErrNotFound when no row
// matched the delete.
func (r *CommentRepository) Delete(ctx context.Context, commentID int) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM comments
		WHERE comment_id = $1;
	`, commentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
