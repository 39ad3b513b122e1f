package model

import (
	"strings"
	"time"
)

type Event struct {
	Name  string      `json:"name"`
	Slug  string      `json:"slug,omitempty"`
	Forms *EventForms `json:"forms"`
}

type EventForms struct {
	Survey  *Survey  `json:"survey,omitempty"`
	Surveys []Survey `json:"surveys,omitempty"`
}

type Survey struct {
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	CanRemove      bool           `json:"canRemove"`
	IsActive       bool           `json:"isActive,omitempty"`
	ActiveFrom     *time.Time     `json:"activeFrom,omitempty"`
	ActiveUntil    *time.Time     `json:"activeUntil,omitempty"`
	CountResponses int            `json:"countResponses,omitempty"`
	Form           *Form          `json:"form,omitempty"`
	Languages      []FormLanguage `json:"languages"`
}

// Form is one language version of a survey.
type Form struct {
	Title           string `json:"title"`
	Language        string `json:"language"`
	Description     string `json:"description"`
	ThankYouMessage string `json:"thankYouMessage"`
	Fields          any    `json:"fields"`
	CanRemove       bool   `json:"canRemove"`
}

type FormLanguage struct {
	Language string `json:"language"`
}

// Code is the language in the lowercase form used in URLs.
func (l FormLanguage) Code() string {
	return strings.ToLower(l.Language)
}

// Field types understood by the schema form renderer.
const (
	SingleLineText = "SingleLineText"
	MultiLineText  = "MultiLineText"
)

// Field describes one input of a generic schema-driven form.
type Field struct {
	Slug     string `json:"slug"`
	Type     string `json:"type"`
	Title    string `json:"title,omitempty"`
	HelpText string `json:"helpText,omitempty"`
	Rows     int    `json:"rows,omitempty"`
}

// Lookup walks the event down to the requested language version of the
// survey. When something is missing, missing names the first absent level.
func (e *Event) Lookup() (survey *Survey, form *Form, missing string) {
	switch {
	case e == nil:
		return nil, nil, "event"
	case e.Forms == nil:
		return nil, nil, "forms"
	case e.Forms.Survey == nil:
		return nil, nil, "survey"
	case e.Forms.Survey.Form == nil:
		return e.Forms.Survey, nil, "form"
	}
	return e.Forms.Survey, e.Forms.Survey.Form, ""
}

// Values returns the editable properties of the form keyed by field slug.
func (f *Form) Values() map[string]string {
	return map[string]string{
		"title":           f.Title,
		"description":     f.Description,
		"thankYouMessage": f.ThankYouMessage,
	}
}
