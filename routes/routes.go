package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mbolis/survey-editor/app"
	"github.com/mbolis/survey-editor/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	root.Get("/healthz", Health())
	root.Method(http.MethodGet, "/metrics", app.Metrics.Handler())

	root.Mount("/api", apiRouter(app))

	root.Group(func(r chi.Router) {
		r.Use(middlewares.Session(app))

		r.Get("/login", LoginPage(app))
		r.Post("/login", LoginForm(app))
		r.Post("/logout", Logout(app))

		r.Route("/{locale}/events/{eventSlug}/surveys", func(r chi.Router) {
			r.Use(middlewares.Locale)

			r.Get("/", ListSurveys(app))
			r.Route("/{surveySlug}/edit", func(r chi.Router) {
				r.Post("/languages", CreateSurveyLanguage(app))
				r.Get("/{language}", EditSurveyLanguage(app))
				r.Post("/{language}", UpdateSurveyLanguage(app))
				r.Post("/{language}/delete", DeleteSurveyLanguage(app))
			})
		})

		r.NotFound(NotFound(app))
	})

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}
