// Package session implements the server-side session records backing the
// cookie authentication flow. Sessions live in Redis so that any number of
// stateless server processes share one view of who is signed in. The client
// only ever holds the opaque session ID in an HTTP-only cookie; the payload
// never leaves the server.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "session:"
	defaultTTL = time.Hour
)

// Payload is the identity bound to a session once its owner has logged in.
type Payload struct {
	Username string `json:"username"`
	UserID   uint64 `json:"user_id"`
}

// Store is the contract the middleware and handlers program against.
// A session that is unknown, expired, or malformed reads as absent, never
// as an error: expiry is lazy and handled by the backing store's TTL.
type Store interface {
	// Create persists a new session for the payload and returns its ID.
	Create(ctx context.Context, p Payload) (string, error)
	// Get resolves a session ID. ok is false when the session is absent.
	Get(ctx context.Context, id string) (p Payload, ok bool, err error)
	// Destroy removes a session. Destroying an unknown ID is not an error.
	Destroy(ctx context.Context, id string) error
}

// RedisStore keeps sessions in Redis with a fixed TTL set at creation.
// The TTL is never refreshed by activity; only a new login issues a new
// session with a fresh hour.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore returns a session store with the given lifetime.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Create stores a new session and returns its ID.
func (s *RedisStore) Create(ctx context.Context, p Payload) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+id, string(raw), s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Get looks a session up by ID. Redis expires keys at TTL, so an expired
// session reads exactly like one that never existed.
func (s *RedisStore) Get(ctx context.Context, id string) (Payload, bool, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return Payload{}, false, nil
	}
	if err != nil {
		return Payload{}, false, err
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		// Unreadable record: treat as absent rather than locking the
		// cookie holder out with a 500.
		return Payload{}, false, nil
	}
	if p.Username == "" {
		return Payload{}, false, nil
	}
	return p, true, nil
}

// Destroy removes a session by ID. DEL on a missing key is a no-op, which
// makes sign-out idempotent.
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}

func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
