package session

import (
	"time"

	"github.com/go-chi/jwtauth"
	"github.com/pkg/errors"
)

const (
	CookieName        = "jwt"
	RefreshCookieName = "refresh_token"
)

// Issuer signs access tokens with a shared HS256 secret.
type Issuer struct {
	auth *jwtauth.JWTAuth
	ttl  time.Duration
	now  func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		auth: jwtauth.New("HS256", []byte(secret), nil),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Auth is the verifier used by the session middleware.
func (iss *Issuer) Auth() *jwtauth.JWTAuth {
	return iss.auth
}

func (iss *Issuer) TTL() time.Duration {
	return iss.ttl
}

func (iss *Issuer) Issue(username, displayName string) (token string, expires time.Time, err error) {
	now := iss.now()
	expires = now.Add(iss.ttl)

	claims := map[string]interface{}{
		"sub":  username,
		"name": displayName,
	}
	jwtauth.SetIssuedAt(claims, now)
	jwtauth.SetExpiry(claims, expires)

	_, token, err = iss.auth.Encode(claims)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "session.issue")
	}
	return token, expires, nil
}
