package handler

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/evelark/postboard/internal/model"
	"github.com/evelark/postboard/internal/repository"
	"github.com/evelark/postboard/internal/session"
)

// In-memory stand-ins for the MySQL repositories and the Redis session
// store, mirroring their documented contracts: case-insensitive username
// lookup, store-level uniqueness, absent-on-expiry sessions.

type fakeUsers struct {
	users     map[string]model.User // key: lowercased username
	nextID    uint64
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]model.User)}
}

func (f *fakeUsers) Create(ctx context.Context, u model.User) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	key := strings.ToLower(u.Username)
	if _, ok := f.users[key]; ok {
		return 0, repository.ErrUsernameExists
	}
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return 0, repository.ErrEmailExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users[key] = u
	return u.ID, nil
}

func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (model.User, error) {
	u, ok := f.users[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

type fakeSessions struct {
	sessions  map[string]session.Payload
	nextID    int
	createErr error
	destroyed []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]session.Payload)}
}

func (f *fakeSessions) Create(ctx context.Context, p session.Payload) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("sid-%d", f.nextID)
	f.sessions[id] = p
	return id, nil
}

func (f *fakeSessions) Get(ctx context.Context, id string) (session.Payload, bool, error) {
	p, ok := f.sessions[id]
	return p, ok, nil
}

func (f *fakeSessions) Destroy(ctx context.Context, id string) error {
	delete(f.sessions, id)
	f.destroyed = append(f.destroyed, id)
	return nil
}

type fakePosts struct {
	posts     []model.Post
	createErr error
}

func (f *fakePosts) Create(ctx context.Context, p model.Post) (uint64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	p.ID = uint64(len(f.posts) + 1)
	f.posts = append(f.posts, p)
	return p.ID, nil
}
