package routes

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/survey-editor/gql"
	"github.com/mbolis/survey-editor/i18n"
	"github.com/mbolis/survey-editor/model"
	"github.com/mbolis/survey-editor/views"
)

func TestUpdateSurveyLanguage(t *testing.T) {
	exec := &fakeExecutor{responses: map[string]string{
		"UpdateSurveyLanguageMutation": `{"updateSurveyLanguage":{"survey":{"slug":"kickoff"}}}`,
	}}
	rec := postForm(newTestApp(t, signedIn(alice), exec), editURL, url.Values{
		"title":           {"New title"},
		"description":     {"New description"},
		"thankYouMessage": {"Thanks!"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, editURL, rec.Header().Get("Location"))

	calls := exec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, gql.UpdateSurveyLanguageVariables{
		Input: gql.UpdateSurveyLanguageInput{
			EventSlug:  "tracon",
			SurveySlug: "kickoff",
			Language:   "fi",
			FormData: map[string]string{
				"title":           "New title",
				"description":     "New description",
				"thankYouMessage": "Thanks!",
			},
		},
	}, calls[0].Variables)
	assert.Same(t, alice, calls[0].Session)
}

func TestUpdateSurveyLanguageRejects(t *testing.T) {
	exec := &fakeExecutor{}

	rec := postForm(newTestApp(t, anonymous, exec), editURL, url.Values{"title": {"x"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in required")

	rec = postForm(newTestApp(t, signedIn(alice), exec), editURL, url.Values{"bogus": {"x"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, exec.Calls())
}

func TestUpdateSurveyLanguageMissingSurvey(t *testing.T) {
	exec := &fakeExecutor{responses: map[string]string{
		"UpdateSurveyLanguageMutation": `{"updateSurveyLanguage":null}`,
	}}
	rec := postForm(newTestApp(t, signedIn(alice), exec), editURL, url.Values{"title": {"x"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSurveyLanguage(t *testing.T) {
	exec := &fakeExecutor{responses: map[string]string{
		"DeleteSurveyLanguage": `{"deleteSurveyLanguage":{"language":"fi"}}`,
	}}
	// the delete button submits the whole edit form
	rec := postForm(newTestApp(t, signedIn(alice), exec), "/en/events/tracon/surveys/kickoff/edit/FI/delete", url.Values{
		"title": {"T"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/en/events/tracon/surveys", rec.Header().Get("Location"))

	calls := exec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, gql.DeleteSurveyLanguageVariables{
		Input: gql.DeleteSurveyLanguageInput{EventSlug: "tracon", SurveySlug: "kickoff", Language: "fi"},
	}, calls[0].Variables)
}

func TestDeleteSurveyLanguageFailure(t *testing.T) {
	exec := &fakeExecutor{responses: map[string]string{}}
	rec := postForm(newTestApp(t, signedIn(alice), exec), editURL+"/delete", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateSurveyLanguage(t *testing.T) {
	exec := &fakeExecutor{responses: map[string]string{
		"CreateSurveyLanguage": `{"createSurveyLanguage":{"form":{"language":"SV"}}}`,
	}}
	rec := postForm(newTestApp(t, signedIn(alice), exec), "/en/events/tracon/surveys/kickoff/edit/languages", url.Values{
		"language": {"SV"},
		"copyFrom": {"FI"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/en/events/tracon/surveys/kickoff/edit/sv", rec.Header().Get("Location"))

	calls := exec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, gql.CreateSurveyLanguageVariables{
		Input: gql.CreateSurveyLanguageInput{EventSlug: "tracon", SurveySlug: "kickoff", Language: "sv", CopyFrom: "fi"},
	}, calls[0].Variables)
}

func TestCreateSurveyLanguageRequiresLanguage(t *testing.T) {
	exec := &fakeExecutor{}
	rec := postForm(newTestApp(t, signedIn(alice), exec), "/en/events/tracon/surveys/kickoff/edit/languages", url.Values{
		"language": {" "},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, exec.Calls())
}

func TestListSurveys(t *testing.T) {
	exec := &fakeExecutor{responses: map[string]string{
		"Surveys": `{"event":{"name":"Tracon","slug":"tracon","forms":{"surveys":[
			{"slug":"kickoff","title":"Kickoff","isActive":true,"countResponses":4,"languages":[{"language":"FI"},{"language":"EN"}]},
			{"slug":"feedback","title":"Feedback","languages":[]}
		]}}}`,
	}}
	rec := get(newTestApp(t, signedIn(alice), exec), "/en/events/tracon/surveys")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Surveys – Tracon – Kompassi</title>")
	assert.Contains(t, body, `href="/en/events/tracon/surveys/kickoff/edit/fi"`)
	assert.Contains(t, body, `href="/en/events/tracon/surveys/kickoff/edit/en"`)
	assert.Contains(t, body, `action="/en/events/tracon/surveys/feedback/edit/languages"`)
	assert.Contains(t, body, `<option value="sv">Swedish</option>`)

	calls := exec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, gql.SurveysVariables{EventSlug: "tracon", Locale: "en"}, calls[0].Variables)
}

func TestListSurveysUnknownEvent(t *testing.T) {
	exec := &fakeExecutor{responses: map[string]string{"Surveys": `{"event":null}`}}
	rec := get(newTestApp(t, signedIn(alice), exec), "/en/events/nope/surveys")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMissingLanguages(t *testing.T) {
	got := missingLanguages(i18n.Get("en"), []model.FormLanguage{{Language: "FI"}})
	assert.Equal(t, []views.LanguageOption{
		{Code: "en", Name: "English"},
		{Code: "sv", Name: "Swedish"},
	}, got)

	assert.Empty(t, missingLanguages(i18n.Get("en"), []model.FormLanguage{{Language: "en"}, {Language: "fi"}, {Language: "SV"}}))
}
