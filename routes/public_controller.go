package routes

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/mbolis/survey-editor/app"
	"github.com/mbolis/survey-editor/httpx"
	"github.com/mbolis/survey-editor/i18n"
	"github.com/mbolis/survey-editor/session"
	"github.com/mbolis/survey-editor/views"
)

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}

// currentSession prefers the session the middleware resolved, so that a
// refresh done there is not lost.
func currentSession(app app.App, r *http.Request) *session.Session {
	if s := session.FromContext(r.Context()); s != nil {
		return s
	}
	return app.Sessions.Resolve(r)
}

func renderSignInRequired(app app.App, w http.ResponseWriter, r *http.Request, t *i18n.Translations, page string) {
	app.Metrics.IncPage(page, "sign_in_required")
	err := app.Views.Render(w, http.StatusOK, views.SignInRequired, views.SignInRequiredPage{
		Page:     views.Page{T: t, Title: t.PageTitle(t.SignInRequired.Metadata.Title)},
		LoginURL: loginPath(r.URL.RequestURI()),
	})
	if err != nil {
		httpx.LogInternalError(w, "views.sign_in_required", err)
	}
}

func renderNotFound(app app.App, w http.ResponseWriter, t *i18n.Translations, s *session.Session, page, code string, id any) {
	httpx.NotFound(code, id)
	app.Metrics.IncPage(page, "not_found")
	err := app.Views.Render(w, http.StatusNotFound, views.NotFound, views.NotFoundPage{
		Page: views.Page{T: t, Title: t.PageTitle(t.NotFound.Title), Session: s},
	})
	if err != nil {
		httpx.LogInternalError(w, "views.not_found", err)
	}
}

// NotFound renders the not found page for unmatched routes.
func NotFound(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.Get(app.DefaultLocale)
		renderNotFound(app, w, t, currentSession(app, r), "unmatched", "route", r.URL.Path)
	}
}
