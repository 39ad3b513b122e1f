package views

import (
	"github.com/mbolis/survey-editor/i18n"
	"github.com/mbolis/survey-editor/model"
	"github.com/mbolis/survey-editor/session"
)

// Page is the part of every page the layout needs.
type Page struct {
	T       *i18n.Translations
	Title   string
	Session *session.Session
}

type SignInRequiredPage struct {
	Page
	LoginURL string
}

type NotFoundPage struct {
	Page
}

// FieldValue is a field descriptor with the current value of the field.
type FieldValue struct {
	model.Field
	Value string
}

// Fields pairs descriptors with the values of the same slug.
func Fields(fields []model.Field, values map[string]string) []FieldValue {
	out := make([]FieldValue, len(fields))
	for i, f := range fields {
		out[i] = FieldValue{Field: f, Value: values[f.Slug]}
	}
	return out
}

type LanguageLink struct {
	Code   string
	Name   string
	URL    string
	Active bool
}

type EditSurveyLanguagePage struct {
	Page
	EventName   string
	SurveyTitle string
	SurveysURL  string
	EditURL     string
	Languages   []LanguageLink

	Fields       []FieldValue
	UpdateAction string
	DeleteAction string
	CanRemove    bool
	Confirmation string
}

type LanguageOption struct {
	Code string
	Name string
}

type SurveyItem struct {
	Slug         string
	Title        string
	IsActive     bool
	Responses    int
	Languages    []LanguageLink
	CreateAction string
	// Missing are the supported languages the survey has no version in.
	Missing []LanguageOption
}

type SurveysPage struct {
	Page
	EventName string
	Surveys   []SurveyItem
}

type LoginPage struct {
	Page
	Action   string
	Goto     string
	Username string
	Invalid  bool
}
