package session

import "context"

// Session is the server-side state behind a session cookie. It references the
// user by id only; if the user is deleted mid-session the next lookup against
// the user table decides what happens.
type Session struct {
	ID       string `json:"-"`
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Store issues and validates server-side sessions.
//
// Get renews the session's expiry to now + TTL on every hit (rolling expiry);
// an expired or unknown id yields (nil, nil), which callers treat as
// anonymous. Destroy is idempotent.
type Store interface {
	Create(ctx context.Context, userID uint, fullName, email string) (*Session, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, sess *Session) error
	Destroy(ctx context.Context, sessionID string) error
}
