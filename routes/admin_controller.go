package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/mbolis/survey-editor/app"
	"github.com/mbolis/survey-editor/gql"
	"github.com/mbolis/survey-editor/httpx"
	"github.com/mbolis/survey-editor/i18n"
	"github.com/mbolis/survey-editor/log"
	"github.com/mbolis/survey-editor/model"
	"github.com/mbolis/survey-editor/session"
	"github.com/mbolis/survey-editor/views"
)

const surveysPage = "surveys"

// ListSurveys renders the surveys of an event with their language versions.
func ListSurveys(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := urlParams(r)
		t := i18n.Get(p.Locale)

		s := currentSession(app, r)
		if s == nil {
			renderSignInRequired(app, w, r, t, surveysPage)
			return
		}

		data, err := gql.Execute(session.NewContext(r.Context(), s), app.GraphQL, gql.Surveys, gql.SurveysVariables{
			EventSlug: p.EventSlug,
			Locale:    p.Locale,
		})
		if err != nil {
			app.Metrics.IncPage(surveysPage, "error")
			httpx.LogInternalError(w, "graphql.surveys", err)
			return
		}
		if data.Event == nil || data.Event.Forms == nil {
			renderNotFound(app, w, t, s, surveysPage, "surveys.event", p.EventSlug)
			return
		}

		items := make([]views.SurveyItem, 0, len(data.Event.Forms.Surveys))
		for _, survey := range data.Event.Forms.Surveys {
			items = append(items, views.SurveyItem{
				Slug:         survey.Slug,
				Title:        survey.Title,
				IsActive:     survey.IsActive,
				Responses:    survey.CountResponses,
				Languages:    languageLinks(t, p, survey.Slug, survey.Languages, ""),
				CreateAction: createLanguagePath(p.Locale, p.EventSlug, survey.Slug),
				Missing:      missingLanguages(t, survey.Languages),
			})
		}

		err = app.Views.Render(w, http.StatusOK, views.Surveys, views.SurveysPage{
			Page:      views.Page{T: t, Title: t.PageTitle(t.Survey.ListTitle, data.Event.Name), Session: s},
			EventName: data.Event.Name,
			Surveys:   items,
		})
		if err != nil {
			httpx.LogInternalError(w, "views.surveys", err)
			return
		}
		app.Metrics.IncPage(surveysPage, "ok")
	}
}

func missingLanguages(t *i18n.Translations, have []model.FormLanguage) []views.LanguageOption {
	present := map[string]bool{}
	for _, l := range have {
		present[l.Code()] = true
	}

	var missing []views.LanguageOption
	for _, code := range i18n.Supported() {
		if !present[code] {
			missing = append(missing, views.LanguageOption{Code: code, Name: t.LanguageName(code)})
		}
	}
	return missing
}

type surveyLanguageForm struct {
	Title           string `form:"title"`
	Description     string `form:"description"`
	ThankYouMessage string `form:"thankYouMessage"`
}

// UpdateSurveyLanguage saves the properties of one language version.
func UpdateSurveyLanguage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := urlParams(r)
		t := i18n.Get(p.Locale)

		s := currentSession(app, r)
		if s == nil {
			renderSignInRequired(app, w, r, t, "update_survey_language")
			return
		}

		var form surveyLanguageForm
		if err := render.DecodeForm(r.Body, &form); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_form")
			return
		}

		result, err := gql.Execute(session.NewContext(r.Context(), s), app.GraphQL, gql.UpdateSurveyLanguage, gql.UpdateSurveyLanguageVariables{
			Input: gql.UpdateSurveyLanguageInput{
				EventSlug:  p.EventSlug,
				SurveySlug: p.SurveySlug,
				Language:   p.Language,
				FormData: map[string]string{
					"title":           form.Title,
					"description":     form.Description,
					"thankYouMessage": form.ThankYouMessage,
				},
			},
		})
		if err != nil {
			httpx.LogInternalError(w, "graphql.update_survey_language", err)
			return
		}
		if result.UpdateSurveyLanguage == nil || result.UpdateSurveyLanguage.Survey == nil {
			renderNotFound(app, w, t, s, "update_survey_language", "update_survey_language.survey", p)
			return
		}

		log.WithFields(log.Fields{
			"user":     s.Username,
			"event":    p.EventSlug,
			"survey":   p.SurveySlug,
			"language": p.Language,
		}).Info("survey language updated")
		http.Redirect(w, r, editPath(p.Locale, p.EventSlug, p.SurveySlug, p.Language), http.StatusSeeOther)
	}
}

// DeleteSurveyLanguage removes one language version and goes back to the
// survey list.
func DeleteSurveyLanguage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := urlParams(r)
		t := i18n.Get(p.Locale)

		s := currentSession(app, r)
		if s == nil {
			renderSignInRequired(app, w, r, t, "delete_survey_language")
			return
		}

		language := strings.ToLower(p.Language)
		result, err := gql.Execute(session.NewContext(r.Context(), s), app.GraphQL, gql.DeleteSurveyLanguage, gql.DeleteSurveyLanguageVariables{
			Input: gql.DeleteSurveyLanguageInput{
				EventSlug:  p.EventSlug,
				SurveySlug: p.SurveySlug,
				Language:   language,
			},
		})
		if err != nil {
			httpx.LogInternalError(w, "graphql.delete_survey_language", err)
			return
		}
		if result.DeleteSurveyLanguage == nil {
			renderNotFound(app, w, t, s, "delete_survey_language", "delete_survey_language.language", p)
			return
		}

		log.WithFields(log.Fields{
			"user":     s.Username,
			"event":    p.EventSlug,
			"survey":   p.SurveySlug,
			"language": language,
		}).Info("survey language deleted")
		http.Redirect(w, r, surveysPath(p.Locale, p.EventSlug), http.StatusSeeOther)
	}
}

type createLanguageForm struct {
	Language string `form:"language"`
	CopyFrom string `form:"copyFrom"`
}

// CreateSurveyLanguage adds a language version, optionally copying the
// fields of an existing one, and opens its editor.
func CreateSurveyLanguage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := urlParams(r)
		t := i18n.Get(p.Locale)

		s := currentSession(app, r)
		if s == nil {
			renderSignInRequired(app, w, r, t, "create_survey_language")
			return
		}

		var form createLanguageForm
		if err := render.DecodeForm(r.Body, &form); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_form")
			return
		}
		language := strings.ToLower(strings.TrimSpace(form.Language))
		if language == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.language", "missing language")
			return
		}

		result, err := gql.Execute(session.NewContext(r.Context(), s), app.GraphQL, gql.CreateSurveyLanguage, gql.CreateSurveyLanguageVariables{
			Input: gql.CreateSurveyLanguageInput{
				EventSlug:  p.EventSlug,
				SurveySlug: p.SurveySlug,
				Language:   language,
				CopyFrom:   strings.ToLower(strings.TrimSpace(form.CopyFrom)),
			},
		})
		if err != nil {
			httpx.LogInternalError(w, "graphql.create_survey_language", err)
			return
		}
		if result.CreateSurveyLanguage == nil || result.CreateSurveyLanguage.Form == nil {
			renderNotFound(app, w, t, s, "create_survey_language", "create_survey_language.survey", p)
			return
		}

		created := result.CreateSurveyLanguage.Form.Code()
		log.WithFields(log.Fields{
			"user":     s.Username,
			"event":    p.EventSlug,
			"survey":   p.SurveySlug,
			"language": created,
		}).Info("survey language created")
		http.Redirect(w, r, editPath(p.Locale, p.EventSlug, p.SurveySlug, created), http.StatusSeeOther)
	}
}
