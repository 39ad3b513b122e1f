// Package session resolves the signed-in user of a request from a verified
// JWT, and issues the tokens that identify it.
package session

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth"
)

type Session struct {
	Username    string
	DisplayName string
	// Token is the raw access token, forwarded to the GraphQL API.
	Token string
}

// Resolver returns the session of r, or nil when nobody is signed in.
type Resolver interface {
	Resolve(r *http.Request) *Session
}

type ResolverFunc func(r *http.Request) *Session

func (f ResolverFunc) Resolve(r *http.Request) *Session {
	return f(r)
}

// JWTResolver reads the token that jwtauth.Verify placed in the request
// context. Missing, expired or badly signed tokens yield no session.
type JWTResolver struct{}

func (JWTResolver) Resolve(r *http.Request) *Session {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return nil
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}
	name, _ := claims["name"].(string)

	raw := jwtauth.TokenFromCookie(r)
	if raw == "" {
		raw = jwtauth.TokenFromHeader(r)
	}
	return &Session{Username: sub, DisplayName: name, Token: raw}
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by NewContext, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
