package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/mbolis/survey-editor/session"
)

// Tokens is what a successful sign in or refresh hands out.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`

	Expires time.Time `json:"-"`
}

// IssueTokens signs an access token for username and stores a fresh
// refresh token for it.
func (app App) IssueTokens(ctx context.Context, username, displayName string) (Tokens, error) {
	access, expires, err := app.Tokens.Issue(username, displayName)
	if err != nil {
		return Tokens{}, err
	}

	refreshID, err := uuid.NewV4()
	if err != nil {
		return Tokens{}, errors.Wrap(err, "uuid.refresh_token")
	}
	if err := app.Credentials.StoreRefreshToken(ctx, username, refreshID.String()); err != nil {
		return Tokens{}, err
	}

	return Tokens{
		AccessToken:  access,
		TokenType:    "Bearer",
		ExpiresIn:    int(app.Tokens.TTL().Seconds()),
		RefreshToken: refreshID.String(),
		Expires:      expires,
	}, nil
}

// SetCookies stores both tokens as cookies, for browser sessions.
func (app App) SetCookies(w http.ResponseWriter, tokens Tokens) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     session.CookieName,
		Value:    tokens.AccessToken,
		Expires:  tokens.Expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     session.RefreshCookieName,
		Value:    tokens.RefreshToken,
		MaxAge:   int(app.Credentials.RefreshTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (app App) ClearCookies(w http.ResponseWriter) {
	for _, name := range []string{session.CookieName, session.RefreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Path:   "/",
			Name:   name,
			Value:  "",
			MaxAge: -1,
		})
	}
}

// Session is the session the tokens open.
func (tokens Tokens) Session(username, displayName string) *session.Session {
	return &session.Session{Username: username, DisplayName: displayName, Token: tokens.AccessToken}
}
