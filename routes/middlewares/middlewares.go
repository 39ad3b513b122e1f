package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"

	"github.com/mbolis/survey-editor/app"
	"github.com/mbolis/survey-editor/gqlclient"
	"github.com/mbolis/survey-editor/httpx"
	"github.com/mbolis/survey-editor/log"
	"github.com/mbolis/survey-editor/session"
)

// Session verifies the access token of the request, if any, and stores the
// resolved session in the request context. It never rejects a request:
// pages decide what to show to anonymous users.
//
// A browser whose access token is missing or expired, but which still holds
// a refresh token cookie, gets a new pair of tokens on its next GET.
func Session(app app.App) func(http.Handler) http.Handler {
	verify := jwtauth.Verify(app.Tokens.Auth(), jwtauth.TokenFromCookie, jwtauth.TokenFromHeader)

	return func(next http.Handler) http.Handler {
		return verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := app.Sessions.Resolve(r)
			if s == nil && r.Method == http.MethodGet {
				s = refreshFromCookie(app, w, r)
			}
			if s != nil {
				r = r.WithContext(session.NewContext(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func refreshFromCookie(app app.App, w http.ResponseWriter, r *http.Request) *session.Session {
	cookie, err := r.Cookie(session.RefreshCookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
		return nil
	}
	if err != nil {
		log.WithError(err).Debug("session.refresh_cookie")
		return nil
	}

	username, displayName, err := app.Credentials.ConsumeRefreshToken(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, httpx.ErrInvalidRefresh) {
			log.WithError(err).Error("session.refresh")
		}
		app.ClearCookies(w)
		app.Metrics.IncLogin("refresh_rejected")
		return nil
	}

	tokens, err := app.IssueTokens(r.Context(), username, displayName)
	if err != nil {
		log.WithError(err).Error("session.refresh.issue")
		return nil
	}
	app.SetCookies(w, tokens)
	app.Metrics.IncLogin("refreshed")

	log.WithFields(log.Fields{"user": username}).Debug("session.refreshed")
	return tokens.Session(username, displayName)
}

// Locale forwards the {locale} URL parameter to the GraphQL API as the
// preferred response language.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if locale := strings.ToLower(chi.URLParam(r, "locale")); locale != "" {
			r = r.WithContext(gqlclient.WithAcceptLanguage(r.Context(), locale))
		}
		next.ServeHTTP(w, r)
	})
}
