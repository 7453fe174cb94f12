package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/evelark/postboard/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID. The unique indexes on
// user_name and email are the source of truth for conflicts: two
// concurrent registrations for the same name race here, not in the
// handler. u.PasswordHash must already be hashed.
func (r *UserRepo) Create(ctx context.Context, u model.User) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (user_name, first_name, last_name, email, password_hash) VALUES (?,?,?,?,?)",
		u.Username, u.FirstName, u.LastName, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash)
	if err != nil {
		// Classify duplicates by the index name, never by the entry value:
		// the error text embeds the user-supplied username, which may
		// itself contain "email".
		if msg := strings.ToLower(err.Error()); strings.Contains(msg, "1062") {
			if strings.Contains(msg, "uq_users_email") {
				return 0, ErrEmailExists
			}
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by login name. The match is
// case-insensitive: "Alice" and "alice" resolve to the same account.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_name,first_name,last_name,email,password_hash,created_at FROM users WHERE LOWER(user_name)=LOWER(?) LIMIT 1",
		strings.TrimSpace(username)).Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
