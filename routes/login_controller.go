package routes

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/go-chi/render"

	"github.com/mbolis/survey-editor/app"
	"github.com/mbolis/survey-editor/httpx"
	"github.com/mbolis/survey-editor/i18n"
	"github.com/mbolis/survey-editor/log"
	"github.com/mbolis/survey-editor/session"
	"github.com/mbolis/survey-editor/views"
)

var reRefresh = regexp.MustCompile(`(?i)^refresh\s+(.*)`)

// Login exchanges HTTP basic credentials for a token pair.
func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "login.basic_auth")
			return
		}

		displayName, err := app.Credentials.ValidateUser(r.Context(), user, pass)
		if errors.Is(err, httpx.ErrInvalidCredentials) {
			app.Metrics.IncLogin("invalid")
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "login.credentials")
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "login.validate_user", err)
			return
		}

		tokens, err := app.IssueTokens(r.Context(), user, displayName)
		if err != nil {
			httpx.LogInternalError(w, "login.issue_tokens", err)
			return
		}
		app.Metrics.IncLogin("ok")
		render.JSON(w, r, tokens)
	}
}

// Refresh exchanges a refresh token, sent as "Authorization: Refresh <id>",
// for a new token pair. Each refresh token works once.
func Refresh(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match := reRefresh.FindStringSubmatch(r.Header.Get("Authorization"))
		if len(match) == 0 || match[1] == "" {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "refresh.token")
			return
		}

		username, displayName, err := app.Credentials.ConsumeRefreshToken(r.Context(), match[1])
		if errors.Is(err, httpx.ErrInvalidRefresh) {
			app.Metrics.IncLogin("refresh_rejected")
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "refresh.invalid")
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "refresh.consume", err)
			return
		}

		tokens, err := app.IssueTokens(r.Context(), username, displayName)
		if err != nil {
			httpx.LogInternalError(w, "refresh.issue_tokens", err)
			return
		}
		app.Metrics.IncLogin("refreshed")
		render.JSON(w, r, tokens)
	}
}

func renderLogin(app app.App, w http.ResponseWriter, status int, page views.LoginPage) {
	page.Title = page.T.PageTitle(page.T.Login.Title)
	page.Action = "/login"
	if err := app.Views.Render(w, status, views.Login, page); err != nil {
		httpx.LogInternalError(w, "views.login", err)
	}
}

func LoginPage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.Get(app.DefaultLocale)
		renderLogin(app, w, http.StatusOK, views.LoginPage{
			Page: views.Page{T: t},
			Goto: safeRedirect(r.URL.Query().Get("goto")),
		})
	}
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Goto     string `form:"goto"`
}

// LoginForm signs a browser in: on success both tokens are set as cookies
// and the browser goes back to where it came from.
func LoginForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.Get(app.DefaultLocale)

		var form loginForm
		if err := render.DecodeForm(r.Body, &form); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_form")
			return
		}
		target := safeRedirect(form.Goto)

		displayName, err := app.Credentials.ValidateUser(r.Context(), form.Username, form.Password)
		if errors.Is(err, httpx.ErrInvalidCredentials) {
			app.Metrics.IncLogin("invalid")
			log.WithFields(log.Fields{"user": form.Username}).Debug("login.credentials")
			renderLogin(app, w, http.StatusUnauthorized, views.LoginPage{
				Page:     views.Page{T: t},
				Goto:     target,
				Username: form.Username,
				Invalid:  true,
			})
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "login.validate_user", err)
			return
		}

		tokens, err := app.IssueTokens(r.Context(), form.Username, displayName)
		if err != nil {
			httpx.LogInternalError(w, "login.issue_tokens", err)
			return
		}
		app.SetCookies(w, tokens)
		app.Metrics.IncLogin("ok")

		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// Logout drops the cookies and revokes the refresh token they carried.
func Logout(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(session.RefreshCookieName); err == nil && cookie.Value != "" {
			_, _, err = app.Credentials.ConsumeRefreshToken(r.Context(), cookie.Value)
			if err != nil && !errors.Is(err, httpx.ErrInvalidRefresh) {
				log.WithError(err).Warn("logout.revoke")
			}
		}
		app.ClearCookies(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
