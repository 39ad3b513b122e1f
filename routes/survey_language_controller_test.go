package routes

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/survey-editor/gql"
	"github.com/mbolis/survey-editor/i18n"
)

const editURL = "/en/events/tracon/surveys/kickoff/edit/fi"

func editPageResponse(language string, canRemove bool) string {
	return fmt.Sprintf(`{"event":{"name":"Tracon","forms":{"survey":{
		"slug":"kickoff","title":"Kickoff","canRemove":true,
		"form":{"title":"T","language":%q,"description":"D","thankYouMessage":"Y","fields":[],"canRemove":%t},
		"languages":[{"language":"FI"},{"language":"EN"}]}}}}`, language, canRemove)
}

func editPageExecutor(data string) *fakeExecutor {
	return &fakeExecutor{responses: map[string]string{"EditSurveyLanguagePageQuery": data}}
}

func TestEditSurveyLanguageWithoutSession(t *testing.T) {
	exec := editPageExecutor(editPageResponse("FI", true))
	rec := get(newTestApp(t, anonymous, exec), editURL)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Sign in required – Kompassi</title>")
	assert.Contains(t, body, "You need to sign in to view this page.")
	assert.Contains(t, body, `href="/login?goto=%2Fen%2Fevents%2Ftracon%2Fsurveys%2Fkickoff%2Fedit%2Ffi"`)
	assert.Empty(t, exec.Calls())
}

func TestEditSurveyLanguageRendersForm(t *testing.T) {
	exec := editPageExecutor(editPageResponse("FI", true))
	rec := get(newTestApp(t, signedIn(alice), exec), editURL)

	require.Equal(t, http.StatusOK, rec.Code)

	calls := exec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "EditSurveyLanguagePageQuery", calls[0].Operation)
	assert.Equal(t, gql.EditSurveyLanguagePageQueryVariables{
		EventSlug:  "tracon",
		SurveySlug: "kickoff",
		Language:   "fi",
		Locale:     "en",
	}, calls[0].Variables)
	assert.Same(t, alice, calls[0].Session)

	body := rec.Body.String()
	assert.Contains(t, body, "<title>T – Edit survey – Tracon – Kompassi</title>")
	assert.Contains(t, body, `name="title" value="T">`)
	assert.Contains(t, body, `name="description" rows="3">D</textarea>`)
	assert.Contains(t, body, `name="thankYouMessage" rows="3">Y</textarea>`)
	assert.Contains(t, body, `<form id="survey-language-form" method="post" action="/en/events/tracon/surveys/kickoff/edit/fi">`)
	assert.Contains(t, body, `formaction="/en/events/tracon/surveys/kickoff/edit/fi/delete" formmethod="post">`)
	assert.Contains(t, body, "Are you sure you want to delete the Finnish language version of this survey?")
	assert.Contains(t, body, `<a class="nav-link active" href="/en/events/tracon/surveys/kickoff/edit/fi">Finnish</a>`)
	assert.Contains(t, body, `<a class="nav-link" href="/en/events/tracon/surveys/kickoff/edit/en">English</a>`)
	assert.Contains(t, body, "Alice")
}

func TestEditSurveyLanguageDeleteControl(t *testing.T) {
	cases := []struct {
		canRemove bool
		want      string
	}{
		{true, `formmethod="post">`},
		{false, `formmethod="post" disabled>`},
	}
	for _, c := range cases {
		exec := editPageExecutor(editPageResponse("FI", c.canRemove))
		rec := get(newTestApp(t, signedIn(alice), exec), editURL)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), c.want, "canRemove=%t", c.canRemove)
	}
}

func TestEditSurveyLanguageNames(t *testing.T) {
	cases := map[string]string{
		"EN": "delete the English language version",
		"xx": "delete the xx language version",
	}
	for language, want := range cases {
		exec := editPageExecutor(editPageResponse(language, true))
		rec := get(newTestApp(t, signedIn(alice), exec), editURL)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), want, language)
	}
}

func TestEditSurveyLanguageDeleteUsesLowercaseLanguage(t *testing.T) {
	exec := editPageExecutor(editPageResponse("SV", true))
	rec := get(newTestApp(t, signedIn(alice), exec), "/en/events/tracon/surveys/kickoff/edit/SV")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `formaction="/en/events/tracon/surveys/kickoff/edit/sv/delete"`)
}

func TestEditSurveyLanguageNotFound(t *testing.T) {
	cases := map[string]string{
		"event":  `{"event":null}`,
		"forms":  `{"event":{"name":"Tracon","forms":null}}`,
		"survey": `{"event":{"name":"Tracon","forms":{"survey":null}}}`,
		"form":   `{"event":{"name":"Tracon","forms":{"survey":{"slug":"kickoff","canRemove":true,"form":null,"languages":[]}}}}`,
	}
	for missing, data := range cases {
		exec := editPageExecutor(data)
		rec := get(newTestApp(t, signedIn(alice), exec), editURL)

		assert.Equal(t, http.StatusNotFound, rec.Code, missing)
		assert.Contains(t, rec.Body.String(), "<title>Not found – Kompassi</title>", missing)
		assert.Len(t, exec.Calls(), 1, missing)
	}
}

func TestEditSurveyLanguageFetchFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("connection refused")}
	a := newTestApp(t, signedIn(alice), exec)

	var code int
	assert.NotPanics(t, func() {
		code = get(a, editURL).Code
	})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Len(t, exec.Calls(), 1)
}

func TestEditSurveyLanguageLocalizedLabels(t *testing.T) {
	exec := editPageExecutor(editPageResponse("FI", true))
	rec := get(newTestApp(t, signedIn(alice), exec), "/fi/events/tracon/surveys/kickoff/edit/fi")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="fi">`)
	assert.Contains(t, body, `<label for="field-thankYouMessage" class="form-label">Kiitosviesti</label>`)
	assert.Contains(t, body, "Haluatko varmasti poistaa kyselyn kieliversion suomi?")
	assert.Equal(t, "fi", exec.Calls()[0].Variables.(gql.EditSurveyLanguagePageQueryVariables).Locale)
}

func TestSurveyLanguageLoaderTitle(t *testing.T) {
	exec := editPageExecutor(editPageResponse("FI", true))
	a := newTestApp(t, signedIn(alice), exec)
	loader := &surveyLanguageLoader{ctx: context.Background(), exec: a.GraphQL}

	tr := i18n.Get("en")
	assert.Equal(t, "T – Edit survey – Tracon – Kompassi", loader.title(tr))
	assert.Equal(t, "T – Edit survey – Tracon – Kompassi", loader.title(tr))
	assert.Len(t, exec.Calls(), 1)

	failing := &surveyLanguageLoader{ctx: context.Background(), exec: &fakeExecutor{err: errors.New("boom")}}
	assert.Equal(t, "Kompassi", failing.title(tr))
}
