// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. The
// uniqueness sentinels name the exact column that collided so the
// endpoint layer can report a precise conflict message without
// inspecting driver errors itself.
package repository

import "errors"

// ErrUsernameExists is returned when an insert into the users table
// violates the unique index on user_name. Handlers should translate
// this into an HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when an insert into the users table
// violates the unique index on email. Handlers should translate this
// into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
