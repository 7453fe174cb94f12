package model

import "time"

// User represents an account record as stored in the `users` table.  Each
// field corresponds to a column in the database.  The json tags are omitted
// here because these structs are used internally by the repository layer;
// handlers define separate response types with appropriate JSON tags.
// Usernames keep the casing the account was registered with, but both the
// username and email columns carry case-insensitive unique indexes, so no
// two accounts may differ only in case.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name (users.user_name).
//  FirstName    – given name (users.first_name).
//  LastName     – family name (users.last_name).
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password; the plaintext is never stored.
//  CreatedAt    – timestamp of registration.
type User struct {
    ID           uint64    // users.id
    Username     string    // users.user_name
    FirstName    string    // users.first_name
    LastName     string    // users.last_name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    CreatedAt    time.Time // users.created_at
}
