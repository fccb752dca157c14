package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncnews/api/internal/model"
)

// UserRepository reads the users table. Users are seeded externally and
// read-only through this API; only username, name, and avatar_url are ever
// projected.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users ordered by username.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT username, name, avatar_url
		FROM users
		ORDER BY username;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Exists reports whether a user with the given username is present.
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);
	`, username).Scan(&exists)
	return exists, err
}
