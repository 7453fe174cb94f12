// Package queue defines message payloads exchanged over the message broker.
package queue

// PostCreatedEvent is published when a post is successfully stored. It
// carries enough information for downstream consumers to log or feed
// analytics without querying the primary database.
type PostCreatedEvent struct {
    PostID    uint64 `json:"post_id"`
    UserID    uint64 `json:"user_id"`
    Username  string `json:"username"`
    Text      string `json:"text"`
    PostedOn  string `json:"posted_on"`
    ViewCount int    `json:"view_count"`
    CreatedAt string `json:"created_at"`
}
