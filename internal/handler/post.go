package handler

import (
	"context"
	"math/rand"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/evelark/postboard/internal/middleware"
	"github.com/evelark/postboard/internal/model"
	"github.com/evelark/postboard/internal/queue"
)

// maxPostLen is the post length limit, counted in characters, not bytes.
const maxPostLen = 100

// PostStore is the slice of the post repository the post endpoint needs.
type PostStore interface {
	Create(ctx context.Context, p model.Post) (uint64, error)
}

// PostHandler creates posts on behalf of the authenticated user. Publish,
// when set, fans the new post out to the message broker; it is optional so
// the endpoint keeps working when no broker is deployed.
type PostHandler struct {
	Posts   PostStore
	Publish func(ctx context.Context, ev queue.PostCreatedEvent) error
}

func NewPostHandler(p PostStore) *PostHandler { return &PostHandler{Posts: p} }

type createPostReq struct {
	PostText string `json:"post_text"`
}

// CreatePost stores a new post for the session's user. The author comes
// from the resolved session, never from the request body. The view count
// is a one-time uniform draw in [0,1000) used as a display seed.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req createPostReq
	if err := c.Bind(&req); err != nil || req.PostText == "" || utf8.RuneCountInString(req.PostText) > maxPostLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Post text is required and must be 100 characters or less"})
	}

	userID, _ := c.Get(middleware.ContextUserID).(uint64)
	username, _ := c.Get(middleware.ContextUsername).(string)

	post := model.Post{
		UserID:    userID,
		PostedOn:  time.Now().UTC().Truncate(24 * time.Hour),
		Text:      req.PostText,
		ViewCount: rand.Intn(1000),
	}

	// Detached from request cancellation: once validated, the write runs
	// to completion even if the client goes away.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 5*time.Second)
	defer cancel()

	id, err := h.Posts.Create(ctx, post)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during post creation"})
	}

	if h.Publish != nil {
		ev := queue.PostCreatedEvent{
			PostID:    id,
			UserID:    userID,
			Username:  username,
			Text:      post.Text,
			PostedOn:  post.PostedOn.Format("2006-01-02"),
			ViewCount: post.ViewCount,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		// Detached from the request context: a client disconnect must not
		// abort the publish once the post is written.
		go func() { _ = h.Publish(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Post created successfully", "post_id": id})
}
