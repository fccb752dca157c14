package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncnews/api/internal/model"
)

// TopicRepository reads the topics table. Topics are seeded externally and
// never written through this API.
type TopicRepository struct {
	db *pgxpool.Pool
}

func NewTopicRepository(db *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{db: db}
}

// List returns all topics ordered by slug. An empty table yields an empty
// slice, not an error.
func (r *TopicRepository) List(ctx context.Context) ([]model.Topic, error) {
	rows, err := r.db.Query(ctx, `
		SELECT slug, description
		FROM topics
		ORDER BY slug;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []model.Topic{}
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}

	return topics, rows.Err()
}

// Exists reports whether a topic with the given slug is present.
func (r *TopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1);
	`, slug).Scan(&exists)
	return exists, err
}
