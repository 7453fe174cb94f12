package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := newSessionID()
		require.NoError(t, err)
		require.Len(t, id, 64, "32 random bytes hex-encoded")
		require.False(t, seen[id], "session IDs must not repeat")
		seen[id] = true
	}
}

func TestRedisStore_Create(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, time.Hour)

	mock.Regexp().ExpectSet(`session:[0-9a-f]{64}`, `\{"username":"alice","user_id":7\}`, time.Hour).SetVal("OK")

	id, err := store.Create(context.Background(), Payload{Username: "alice", UserID: 7})
	require.NoError(t, err)
	require.Len(t, id, 64)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Get(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, time.Hour)

	mock.ExpectGet("session:known").SetVal(`{"username":"alice","user_id":7}`)

	p, ok, err := store.Get(context.Background(), "known")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Payload{Username: "alice", UserID: 7}, p)
}

func TestRedisStore_Get_AbsentOrExpired(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, time.Hour)

	// Redis drops expired keys itself, so an expired session and a session
	// that never existed both answer redis.Nil.
	mock.ExpectGet("session:gone").RedisNil()

	_, ok, err := store.Get(context.Background(), "gone")
	require.NoError(t, err, "absence is not an error")
	require.False(t, ok)
}

func TestRedisStore_Get_CorruptRecord(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, time.Hour)

	mock.ExpectGet("session:bad").SetVal("not-json")

	_, ok, err := store.Get(context.Background(), "bad")
	require.NoError(t, err, "an unreadable record reads as absent, not as a failure")
	require.False(t, ok)
}

func TestRedisStore_Get_EmptyPayload(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, time.Hour)

	// A record without an identity is a pre-login session: unauthenticated.
	mock.ExpectGet("session:empty").SetVal(`{"username":"","user_id":0}`)

	_, ok, err := store.Get(context.Background(), "empty")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisStore_Get_BackendError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, time.Hour)

	mock.ExpectGet("session:x").SetErr(errors.New("connection refused"))

	_, ok, err := store.Get(context.Background(), "x")
	require.Error(t, err, "a store failure must not read as a clean miss")
	require.False(t, ok)
}

func TestRedisStore_Destroy_Idempotent(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, time.Hour)

	// DEL of a missing key answers 0 affected; still a success.
	mock.ExpectDel("session:gone").SetVal(0)

	require.NoError(t, store.Destroy(context.Background(), "gone"))
}
