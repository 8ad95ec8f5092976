package session

import (
	"context"
	"errors"
)

var ErrNoSession = errors.New("no active manager session")

// Session identifies the manager operating the current request. It is
// created at login, carried inside the access token and cleared at logout.
type Session struct {
	ManagerID    string
	ManagerName  string
	ManagerEmail string
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session placed by the auth middleware.
func FromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(contextKey{}).(Session)
	if !ok || s.ManagerEmail == "" {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// FromClaims builds a session from verified access token claims.
func FromClaims(claims map[string]interface{}) (Session, error) {
	id, _ := claims["manager_id"].(string)
	name, _ := claims["manager_name"].(string)
	email, _ := claims["email"].(string)
	if id == "" || name == "" || email == "" {
		return Session{}, ErrNoSession
	}
	return Session{ManagerID: id, ManagerName: name, ManagerEmail: email}, nil
}
