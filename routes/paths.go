package routes

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// surveyParams are the URL parameters shared by the survey pages.
type surveyParams struct {
	Locale     string
	EventSlug  string
	SurveySlug string
	Language   string
}

func urlParams(r *http.Request) surveyParams {
	return surveyParams{
		Locale:     chi.URLParam(r, "locale"),
		EventSlug:  chi.URLParam(r, "eventSlug"),
		SurveySlug: chi.URLParam(r, "surveySlug"),
		Language:   chi.URLParam(r, "language"),
	}
}

func join(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return "/" + strings.Join(escaped, "/")
}

func surveysPath(locale, eventSlug string) string {
	return join(locale, "events", eventSlug, "surveys")
}

func editPath(locale, eventSlug, surveySlug, language string) string {
	return join(locale, "events", eventSlug, "surveys", surveySlug, "edit", language)
}

func deletePath(locale, eventSlug, surveySlug, language string) string {
	return editPath(locale, eventSlug, surveySlug, language) + "/delete"
}

func createLanguagePath(locale, eventSlug, surveySlug string) string {
	return join(locale, "events", eventSlug, "surveys", surveySlug, "edit", "languages")
}

func loginPath(next string) string {
	return "/login?" + url.Values{"goto": {next}}.Encode()
}

// safeRedirect keeps post-login redirects on this site.
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
