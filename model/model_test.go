package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventLookup(t *testing.T) {
	form := &Form{Title: "T"}
	cases := []struct {
		name    string
		event   *Event
		missing string
	}{
		{"nil event", nil, "event"},
		{"no forms", &Event{Name: "Tracon"}, "forms"},
		{"no survey", &Event{Forms: &EventForms{}}, "survey"},
		{"no language", &Event{Forms: &EventForms{Survey: &Survey{Slug: "s"}}}, "form"},
		{"found", &Event{Forms: &EventForms{Survey: &Survey{Slug: "s", Form: form}}}, ""},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, got, missing := c.event.Lookup()
			assert.Equal(t, c.missing, missing)
			if c.missing == "" {
				assert.Same(t, form, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFormValuesKeepText(t *testing.T) {
	f := &Form{Title: "T", Description: "D", ThankYouMessage: "Y"}
	assert.Equal(t, map[string]string{
		"title":           "T",
		"description":     "D",
		"thankYouMessage": "Y",
	}, f.Values())
}

func TestFormLanguageCode(t *testing.T) {
	assert.Equal(t, "fi", FormLanguage{Language: "FI"}.Code())
}
