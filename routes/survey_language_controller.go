package routes

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/mbolis/survey-editor/app"
	"github.com/mbolis/survey-editor/gql"
	"github.com/mbolis/survey-editor/httpx"
	"github.com/mbolis/survey-editor/i18n"
	"github.com/mbolis/survey-editor/log"
	"github.com/mbolis/survey-editor/model"
	"github.com/mbolis/survey-editor/session"
	"github.com/mbolis/survey-editor/views"
)

const (
	editSurveyLanguagePage = "edit_survey_language"
	textAreaRows           = 3
)

// surveyLanguageLoader runs the page query at most once per request; the
// page title and the page body share its result.
type surveyLanguageLoader struct {
	once   sync.Once
	ctx    context.Context
	exec   gql.Executor
	vars   gql.EditSurveyLanguagePageQueryVariables
	result *gql.EditSurveyLanguagePageQueryResult
	err    error
}

func (l *surveyLanguageLoader) load() (*gql.EditSurveyLanguagePageQueryResult, error) {
	l.once.Do(func() {
		l.result, l.err = gql.Execute(l.ctx, l.exec, gql.EditSurveyLanguagePageQuery, l.vars)
	})
	return l.result, l.err
}

// title is the page metadata. It never fails: errors are logged and the
// title falls back to the site name.
func (l *surveyLanguageLoader) title(t *i18n.Translations) string {
	data, err := l.load()
	if err != nil {
		log.WithFields(log.Fields{
			"event":    l.vars.EventSlug,
			"survey":   l.vars.SurveySlug,
			"language": l.vars.Language,
		}).WithError(err).Warn("edit_survey_language.metadata")
		return t.PageTitle()
	}

	_, form, missing := data.Event.Lookup()
	if missing != "" {
		return t.PageTitle(t.NotFound.Title)
	}
	return t.PageTitle(form.Title, t.Survey.EditSurveyPage.Title, data.Event.Name)
}

func surveyLanguageFields(t *i18n.Translations) []model.Field {
	attrs := t.FormEditor.Attributes
	return []model.Field{
		{
			Slug:     "title",
			Type:     model.SingleLineText,
			Title:    attrs.Title.Title,
			HelpText: attrs.Title.HelpText,
		},
		{
			Slug:     "description",
			Type:     model.MultiLineText,
			Rows:     textAreaRows,
			Title:    attrs.Description.Title,
			HelpText: attrs.Description.HelpText,
		},
		{
			Slug:     "thankYouMessage",
			Type:     model.MultiLineText,
			Rows:     textAreaRows,
			Title:    attrs.ThankYouMessage.Title,
			HelpText: attrs.ThankYouMessage.HelpText,
		},
	}
}

func languageLinks(t *i18n.Translations, p surveyParams, surveySlug string, languages []model.FormLanguage, active string) []views.LanguageLink {
	links := make([]views.LanguageLink, 0, len(languages))
	for _, l := range languages {
		links = append(links, views.LanguageLink{
			Code:   l.Code(),
			Name:   t.LanguageName(l.Language),
			URL:    editPath(p.Locale, p.EventSlug, surveySlug, l.Code()),
			Active: l.Code() == active,
		})
	}
	return links
}

// EditSurveyLanguage renders the editor of one language version of a survey.
func EditSurveyLanguage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := urlParams(r)
		t := i18n.Get(p.Locale)

		s := currentSession(app, r)
		if s == nil {
			renderSignInRequired(app, w, r, t, editSurveyLanguagePage)
			return
		}

		loader := &surveyLanguageLoader{
			ctx:  session.NewContext(r.Context(), s),
			exec: app.GraphQL,
			vars: gql.EditSurveyLanguagePageQueryVariables{
				EventSlug:  p.EventSlug,
				SurveySlug: p.SurveySlug,
				Language:   p.Language,
				Locale:     p.Locale,
			},
		}
		title := loader.title(t)

		data, err := loader.load()
		if err != nil {
			app.Metrics.IncPage(editSurveyLanguagePage, "error")
			httpx.LogInternalError(w, "graphql.edit_survey_language", err)
			return
		}

		survey, form, missing := data.Event.Lookup()
		if missing != "" {
			renderNotFound(app, w, t, s, editSurveyLanguagePage, "edit_survey_language."+missing, p)
			return
		}

		languageCode := strings.ToLower(form.Language)
		page := views.EditSurveyLanguagePage{
			Page:         views.Page{T: t, Title: title, Session: s},
			EventName:    data.Event.Name,
			SurveyTitle:  survey.Title,
			SurveysURL:   surveysPath(p.Locale, p.EventSlug),
			EditURL:      editPath(p.Locale, p.EventSlug, p.SurveySlug, p.Language),
			Languages:    languageLinks(t, p, survey.Slug, survey.Languages, strings.ToLower(p.Language)),
			Fields:       views.Fields(surveyLanguageFields(t), form.Values()),
			UpdateAction: editPath(p.Locale, p.EventSlug, p.SurveySlug, p.Language),
			DeleteAction: deletePath(p.Locale, p.EventSlug, survey.Slug, languageCode),
			CanRemove:    form.CanRemove,
			Confirmation: t.ConfirmationFor(t.LanguageName(form.Language)),
		}

		err = app.Views.Render(w, http.StatusOK, views.EditSurveyLanguage, page)
		if err != nil {
			httpx.LogInternalError(w, "views.edit_survey_language", err)
			return
		}
		app.Metrics.IncPage(editSurveyLanguagePage, "ok")
	}
}
