package repository

import (
	"context"
	"database/sql"

	"github.com/evelark/postboard/internal/model"
)

type PostRepo struct{ DB *sql.DB }

func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{DB: db} }

// Create inserts a post and returns its ID. PostedOn is stored as a DATE,
// so only the calendar day survives.
func (r *PostRepo) Create(ctx context.Context, p model.Post) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO posts (user_id, posted_on, posted_text, view_count) VALUES (?,?,?,?)",
		p.UserID, p.PostedOn.Format("2006-01-02"), p.Text, p.ViewCount)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
