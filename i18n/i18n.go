// Package i18n holds the static UI strings of every supported locale.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Translations struct {
	Locale   string
	SiteName string

	SignInRequired   SignInRequired
	NotFound         NotFound
	Survey           Survey
	FormEditor       FormEditor
	LanguageSwitcher LanguageSwitcher
	Login            Login
}

type Metadata struct {
	Title string
}

type SignInRequired struct {
	Metadata Metadata
	Title    string
	Message  string
	SignIn   string
}

type NotFound struct {
	Title   string
	Message string
}

type Survey struct {
	ListTitle string
	NoSurveys string
	Languages string

	EditSurveyPage      EditSurveyPage
	Actions             SurveyActions
	CreateLanguage      CreateLanguage
	DeleteLanguageModal DeleteLanguageModal
}

type EditSurveyPage struct {
	Title string
}

type SurveyActions struct {
	SaveProperties string
	AddLanguage    string
}

type CreateLanguage struct {
	Language string
	CopyFrom string
	NoCopy   string
}

type DeleteLanguageModal struct {
	Title string
	// Confirmation takes the display name of the language.
	Confirmation string
	Cancel       string
	Submit       string
}

type FieldLabels struct {
	Title    string
	HelpText string
}

type FormEditor struct {
	Attributes FormAttributes
}

type FormAttributes struct {
	Title           FieldLabels
	Description     FieldLabels
	ThankYouMessage FieldLabels
}

type LanguageSwitcher struct {
	// SupportedLanguages maps lowercase language codes to display names.
	SupportedLanguages map[string]string
}

type Login struct {
	Title    string
	Username string
	Password string
	Submit   string
	Invalid  string
}

// ConfirmationFor fills the delete confirmation with a language name.
func (t *Translations) ConfirmationFor(languageName string) string {
	return fmt.Sprintf(t.Survey.DeleteLanguageModal.Confirmation, languageName)
}

// LanguageName returns the display name of a form language, or the code
// itself when the locale has no name for it.
func (t *Translations) LanguageName(code string) string {
	if name, ok := t.LanguageSwitcher.SupportedLanguages[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// PageTitle joins the parts of a page title, skipping empty ones, and ends
// with the site name.
func (t *Translations) PageTitle(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(append(nonEmpty, t.SiteName), " – ")
}

var (
	catalog = map[string]*Translations{
		"en": &en,
		"fi": &fi,
		"sv": &sv,
	}
	matcher = language.NewMatcher([]language.Tag{
		language.English,
		language.Finnish,
		language.Swedish,
	})
	matched = []string{"en", "fi", "sv"}
)

// Supported lists the locales that have translations.
func Supported() []string {
	return append([]string(nil), matched...)
}

// Get returns the translations best matching locale. Unknown locales fall
// back to English.
func Get(locale string) *Translations {
	if t, ok := catalog[strings.ToLower(locale)]; ok {
		return t
	}
	_, index, confidence := matcher.Match(language.Make(locale))
	if confidence == language.No {
		return &en
	}
	return catalog[matched[index]]
}
