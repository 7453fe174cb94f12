package model

import "time"

// Post is a short text entry written by a signed-in user, one row in the
// `posts` table.  Posts are append-only: nothing in the application updates
// or deletes them after creation.
//
// ViewCount is assigned once at creation from a uniform random draw in
// [0,1000) and never incremented afterwards.  It seeds the dashboard's
// view display and is not a real counter.
type Post struct {
    ID        uint64    // posts.id
    UserID    uint64    // posts.user_id (author, references users.id)
    PostedOn  time.Time // posts.posted_on (UTC calendar day, time part zero)
    Text      string    // posts.posted_text (at most 100 characters)
    ViewCount int       // posts.view_count
}
